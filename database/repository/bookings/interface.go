// File: database/repository/bookings/interface.go
package bookings

import (
	"context"

	"voyago/models"
)

// BookingRecordRepository persists completed booking records keyed by
// booking ID.
type BookingRecordRepository interface {
	Create(ctx context.Context, record *models.BookingRecord) error
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	SetTicketPath(ctx context.Context, id, path string) error
}
