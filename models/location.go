package models

// LocationEntry describes a single airport or metro-area code in the
// reference directory. Entries are read-only after initialization.
type LocationEntry struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Airports []string `json:"airports,omitempty"` // constituent airports for metro codes
}

// IsMetro reports whether the entry is a city-level code covering
// multiple airports.
func (e LocationEntry) IsMetro() bool {
	return len(e.Airports) > 0
}
