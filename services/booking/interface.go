// File: services/booking/interface.go
package booking

import (
	"context"
	"math/rand"
	"time"

	"voyago/database/repository/bookings"
	"voyago/models"
	"voyago/services/ticket"

	"go.uber.org/zap"
)

// Service creates and retrieves booking records.
type Service interface {
	// Book validates traveler info, synthesizes booking identifiers,
	// persists the record, and best-effort renders the e-ticket.
	Book(ctx context.Context, offer models.FlightOffer, traveler models.TravelerInfo) (*models.BookingRecord, error)

	// GetBooking loads a previously created record by booking ID.
	GetBooking(ctx context.Context, id string) (*models.BookingRecord, error)
}

// DefaultBookingService is the standard Service implementation. Rand and
// Now are injectable so identifier generation is reproducible in tests.
type DefaultBookingService struct {
	Repo     bookings.BookingRecordRepository
	Renderer ticket.Renderer
	Rand     *rand.Rand
	Now      func() time.Time
	Logger   *zap.Logger
}

func NewBookingService(repo bookings.BookingRecordRepository, renderer ticket.Renderer, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Renderer: renderer,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:      time.Now,
		Logger:   logger,
	}
}
