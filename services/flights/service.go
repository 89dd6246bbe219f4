// File: services/flights/service.go
package flights

import (
	"context"
	"fmt"

	"voyago/models"

	"go.uber.org/zap"
)

const priceVerifyMaxResults = 5

// Search invokes the upstream search, retains the ordered offer list, and
// attempts a best-effort price-verification pass with the same parameters.
// A non-empty verification result supersedes the raw summary; any
// verification failure leaves the raw search result untouched. Zero offers
// is reported as a not-found outcome, not an error.
func (s *DefaultOfferService) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	s.Logger.Info("searching flights",
		zap.String("origin", q.Origin),
		zap.String("destination", q.Destination),
		zap.String("date", q.DepartureDate),
	)

	list, err := s.Client.Search(ctx, q)
	if err != nil {
		return nil, &UpstreamError{Op: "search", Err: err}
	}

	if len(list.Data) == 0 {
		return &SearchResult{
			Found: false,
			Summary: fmt.Sprintf("No flights found for %s to %s on %s. Please try different dates or airports.",
				q.Origin, q.Destination, q.DepartureDate),
		}, nil
	}

	result := &SearchResult{
		Offers:       list.Data,
		Dictionaries: list.Dictionaries,
		Summary:      FormatOffers(list),
		Found:        true,
	}

	// Price verification never blocks the primary result.
	if s.Pricer != nil {
		vq := q
		vq.MaxResults = priceVerifyMaxResults
		verified, err := s.Pricer.Search(ctx, vq)
		if err != nil {
			s.Logger.Warn("price verification failed", zap.Error(err))
		} else if len(verified.Data) > 0 {
			result.Summary = FormatVerifiedPrices(verified)
			result.Verified = true
		}
	}

	return result, nil
}

// Select records the offer at the given 1-based display position and
// returns a confirmation line. Out-of-range indices fail without touching
// any state.
func (s *DefaultOfferService) Select(offers []models.FlightOffer, displayIndex int) (models.FlightOffer, string, error) {
	if displayIndex < 1 || displayIndex > len(offers) {
		return models.FlightOffer{}, "", &SelectionError{Index: displayIndex, Valid: len(offers)}
	}

	offer := offers[displayIndex-1]
	s.Logger.Info("selected flight option", zap.Int("option", displayIndex), zap.String("offerId", offer.ID))

	confirmation := fmt.Sprintf(
		"You've selected flight option %d for %s %s. Please provide passenger information to complete the booking.",
		displayIndex, offer.Price.GrandTotal, offer.Price.Currency)
	return offer, confirmation, nil
}

// Ping reports upstream connectivity.
func (s *DefaultOfferService) Ping(ctx context.Context) error {
	if err := s.Client.Ping(ctx); err != nil {
		return &UpstreamError{Op: "ping", Err: err}
	}
	return nil
}
