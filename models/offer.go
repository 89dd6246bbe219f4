package models

// FlightOffer is one priced itinerary option as returned by the flight
// search upstream. The structure mirrors the upstream wire format; the
// service never mutates offer content, only indexes into the returned
// collection by 1-based display order.
type FlightOffer struct {
	ID                     string            `json:"id"`
	Carrier                string            `json:"carrier,omitempty"` // free-form carrier hint, when present
	Price                  OfferPrice        `json:"price"`
	Itineraries            []Itinerary       `json:"itineraries"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes,omitempty"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings,omitempty"`
}

type OfferPrice struct {
	Currency   string `json:"currency"`
	Base       string `json:"base,omitempty"`
	Total      string `json:"total,omitempty"`
	GrandTotal string `json:"grandTotal"`
}

type Itinerary struct {
	Duration string    `json:"duration,omitempty"` // ISO-8601 duration, e.g. "PT5H30M"
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightPoint `json:"departure"`
	Arrival     FlightPoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
	Aircraft    Aircraft    `json:"aircraft,omitempty"`
	Duration    string      `json:"duration,omitempty"`
}

type FlightPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"` // ISO-8601 local timestamp
}

type Aircraft struct {
	Code string `json:"code,omitempty"`
}

type TravelerPricing struct {
	TravelerID           string       `json:"travelerId,omitempty"`
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment,omitempty"`
}

type FareDetail struct {
	Cabin               string   `json:"cabin,omitempty"`
	IncludedCheckedBags *Baggage `json:"includedCheckedBags,omitempty"`
}

type Baggage struct {
	Quantity   int    `json:"quantity,omitempty"`
	Weight     int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// OfferList is the upstream search response: the ordered offer collection
// plus optional display-name dictionaries.
type OfferList struct {
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries,omitempty"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers,omitempty"`
	Aircraft map[string]string `json:"aircraft,omitempty"`
}
