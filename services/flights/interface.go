package flights

import (
	"context"

	"voyago/models"

	"go.uber.org/zap"
)

// SearchQuery carries the parameters of one upstream flight search.
type SearchQuery struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"` // YYYY-MM-DD
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	TravelClass   string `json:"travelClass,omitempty"` // ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST
	NonStop       bool   `json:"nonStop,omitempty"`
	Currency      string `json:"currency,omitempty"`
	MaxPrice      int    `json:"maxPrice,omitempty"`
	MaxResults    int    `json:"maxResults,omitempty"`
}

// SearchClient is the opaque boundary to the flight search/price upstream.
type SearchClient interface {
	Search(ctx context.Context, q SearchQuery) (*models.OfferList, error)
	Ping(ctx context.Context) error
}

// SearchResult is the outcome of one orchestrated search. Offers keep the
// upstream relevance order; selection indices are 1-based positions in it.
type SearchResult struct {
	Offers       []models.FlightOffer
	Dictionaries models.Dictionaries
	Summary      string // formatted reply text
	Found        bool   // false when the upstream returned zero offers
	Verified     bool   // true when the price-verification pass produced the summary
}

// OfferService orchestrates searching, best-effort price verification,
// and selection from a retained offer batch.
type OfferService interface {
	Search(ctx context.Context, q SearchQuery) (*SearchResult, error)
	Select(offers []models.FlightOffer, displayIndex int) (models.FlightOffer, string, error)
	Ping(ctx context.Context) error
}

// DefaultOfferService implements OfferService.
type DefaultOfferService struct {
	Client SearchClient
	Pricer SearchClient // optional; nil disables price verification
	Logger *zap.Logger
}
