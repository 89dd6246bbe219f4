package location

import "voyago/models"

// airportDirectory is the built-in reference table of airport and metro
// codes. Read-only after initialization.
var airportDirectory = map[string]models.LocationEntry{
	// Major US airports
	"ATL": {Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "United States"},
	"LAX": {Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
	"ORD": {Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States"},
	"DFW": {Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "United States"},
	"DEN": {Code: "DEN", Name: "Denver International Airport", City: "Denver", Country: "United States"},
	"JFK": {Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States"},
	"SFO": {Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States"},
	"SEA": {Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "United States"},
	"LAS": {Code: "LAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "United States"},
	"MCO": {Code: "MCO", Name: "Orlando International Airport", City: "Orlando", Country: "United States"},
	"EWR": {Code: "EWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "United States"},
	"MIA": {Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "United States"},
	"PHX": {Code: "PHX", Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "United States"},
	"IAH": {Code: "IAH", Name: "George Bush Intercontinental Airport", City: "Houston", Country: "United States"},
	"BOS": {Code: "BOS", Name: "Boston Logan International Airport", City: "Boston", Country: "United States"},
	"DTW": {Code: "DTW", Name: "Detroit Metropolitan Wayne County Airport", City: "Detroit", Country: "United States"},
	"MSP": {Code: "MSP", Name: "Minneapolis-Saint Paul International Airport", City: "Minneapolis", Country: "United States"},
	"LGA": {Code: "LGA", Name: "LaGuardia Airport", City: "New York", Country: "United States"},
	"PHL": {Code: "PHL", Name: "Philadelphia International Airport", City: "Philadelphia", Country: "United States"},
	"CLT": {Code: "CLT", Name: "Charlotte Douglas International Airport", City: "Charlotte", Country: "United States"},
	"IAD": {Code: "IAD", Name: "Washington Dulles International Airport", City: "Washington", Country: "United States"},
	"DCA": {Code: "DCA", Name: "Ronald Reagan Washington National Airport", City: "Washington", Country: "United States"},
	"BWI": {Code: "BWI", Name: "Baltimore/Washington International Airport", City: "Baltimore", Country: "United States"},
	"MDW": {Code: "MDW", Name: "Chicago Midway International Airport", City: "Chicago", Country: "United States"},
	"SAN": {Code: "SAN", Name: "San Diego International Airport", City: "San Diego", Country: "United States"},
	"TPA": {Code: "TPA", Name: "Tampa International Airport", City: "Tampa", Country: "United States"},
	"PDX": {Code: "PDX", Name: "Portland International Airport", City: "Portland", Country: "United States"},
	"STL": {Code: "STL", Name: "St. Louis Lambert International Airport", City: "St. Louis", Country: "United States"},
	"MCI": {Code: "MCI", Name: "Kansas City International Airport", City: "Kansas City", Country: "United States"},
	"CLE": {Code: "CLE", Name: "Cleveland Hopkins International Airport", City: "Cleveland", Country: "United States"},

	// Major international airports
	"LHR": {Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom"},
	"LGW": {Code: "LGW", Name: "London Gatwick Airport", City: "London", Country: "United Kingdom"},
	"STN": {Code: "STN", Name: "London Stansted Airport", City: "London", Country: "United Kingdom"},
	"LTN": {Code: "LTN", Name: "London Luton Airport", City: "London", Country: "United Kingdom"},
	"LCY": {Code: "LCY", Name: "London City Airport", City: "London", Country: "United Kingdom"},
	"CDG": {Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	"ORY": {Code: "ORY", Name: "Paris Orly Airport", City: "Paris", Country: "France"},
	"AMS": {Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	"FRA": {Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	"MUC": {Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany"},
	"ZRH": {Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland"},
	"VIE": {Code: "VIE", Name: "Vienna International Airport", City: "Vienna", Country: "Austria"},
	"MAD": {Code: "MAD", Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Country: "Spain"},
	"BCN": {Code: "BCN", Name: "Josep Tarradellas Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain"},
	"FCO": {Code: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "Italy"},
	"MXP": {Code: "MXP", Name: "Milan Malpensa Airport", City: "Milan", Country: "Italy"},
	"IST": {Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey"},
	"DXB": {Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	"DOH": {Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar"},
	"AUH": {Code: "AUH", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "United Arab Emirates"},
	"HKG": {Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "China"},
	"ICN": {Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	"SIN": {Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	"KUL": {Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia"},
	"BKK": {Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	"NRT": {Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	"HND": {Code: "HND", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan"},
	"PEK": {Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China"},
	"PVG": {Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China"},
	"CAN": {Code: "CAN", Name: "Guangzhou Baiyun International Airport", City: "Guangzhou", Country: "China"},
	"SYD": {Code: "SYD", Name: "Sydney Airport", City: "Sydney", Country: "Australia"},
	"MEL": {Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia"},
	"AKL": {Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand"},
	"YYZ": {Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada"},
	"YVR": {Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada"},
	"YUL": {Code: "YUL", Name: "Montreal-Trudeau International Airport", City: "Montreal", Country: "Canada"},
	"YYC": {Code: "YYC", Name: "Calgary International Airport", City: "Calgary", Country: "Canada"},
	"MEX": {Code: "MEX", Name: "Mexico City International Airport", City: "Mexico City", Country: "Mexico"},
	"GRU": {Code: "GRU", Name: "Sao Paulo/Guarulhos International Airport", City: "Sao Paulo", Country: "Brazil"},
	"GIG": {Code: "GIG", Name: "Rio de Janeiro/Galeao International Airport", City: "Rio de Janeiro", Country: "Brazil"},
	"EZE": {Code: "EZE", Name: "Ezeiza International Airport", City: "Buenos Aires", Country: "Argentina"},
	"JNB": {Code: "JNB", Name: "O.R. Tambo International Airport", City: "Johannesburg", Country: "South Africa"},
	"CPT": {Code: "CPT", Name: "Cape Town International Airport", City: "Cape Town", Country: "South Africa"},
	"CAI": {Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt"},

	// City codes for areas with multiple airports
	"NYC": {Code: "NYC", Name: "All New York City airports", City: "New York", Country: "United States", Airports: []string{"JFK", "LGA", "EWR"}},
	"LON": {Code: "LON", Name: "All London airports", City: "London", Country: "United Kingdom", Airports: []string{"LHR", "LGW", "STN", "LTN", "LCY"}},
	"PAR": {Code: "PAR", Name: "All Paris airports", City: "Paris", Country: "France", Airports: []string{"CDG", "ORY"}},
	"TYO": {Code: "TYO", Name: "All Tokyo airports", City: "Tokyo", Country: "Japan", Airports: []string{"NRT", "HND"}},
	"CHI": {Code: "CHI", Name: "All Chicago airports", City: "Chicago", Country: "United States", Airports: []string{"ORD", "MDW"}},
	"WAS": {Code: "WAS", Name: "All Washington DC airports", City: "Washington", Country: "United States", Airports: []string{"IAD", "DCA", "BWI"}},
	"MIL": {Code: "MIL", Name: "All Milan airports", City: "Milan", Country: "Italy", Airports: []string{"MXP", "LIN"}},
	"BER": {Code: "BER", Name: "All Berlin airports", City: "Berlin", Country: "Germany", Airports: []string{"BER", "TXL", "SXF"}},
}

// cityAliases maps normalized free-text city phrases to a directory code.
var cityAliases = map[string]string{
	"new york":        "NYC",
	"nyc":             "NYC",
	"los angeles":     "LAX",
	"la":              "LAX",
	"chicago":         "CHI",
	"san francisco":   "SFO",
	"san fran":        "SFO",
	"sf":              "SFO",
	"washington":      "WAS",
	"washington dc":   "WAS",
	"dc":              "WAS",
	"london":          "LON",
	"paris":           "PAR",
	"tokyo":           "TYO",
	"new york city":   "NYC",
	"washington d.c.": "WAS",
	"san diego":       "SAN",
	"dallas":          "DFW",
	"toronto":         "YYZ",
	"vancouver":       "YVR",
	"montreal":        "YUL",
	"sydney":          "SYD",
	"beijing":         "PEK",
	"shanghai":        "PVG",
	"bangkok":         "BKK",
	"singapore":       "SIN",
	"seoul":           "ICN",
	"hong kong":       "HKG",
	"dubai":           "DXB",
	"amsterdam":       "AMS",
	"frankfurt":       "FRA",
	"munich":          "MUC",
	"zurich":          "ZRH",
	"madrid":          "MAD",
	"barcelona":       "BCN",
	"rome":            "FCO",
	"milan":           "MIL",
	"istanbul":        "IST",
}
