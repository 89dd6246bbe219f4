package bookings_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/database/repository/bookings"
	"voyago/models"
)

func testRecord() *models.BookingRecord {
	return &models.BookingRecord{
		ID:            "ORDER_20251201143005",
		PNR:           "ABCDEF",
		ETicketNumber: "0061234567890",
		CarrierCode:   "DL",
		Traveler:      models.TravelerInfo{FirstName: "John", LastName: "Doe"},
		Offer:         models.FlightOffer{ID: "1", Price: models.OfferPrice{Currency: "USD", GrandTotal: "250.00"}},
		CreatedAt:     time.Date(2025, 12, 1, 14, 30, 5, 0, time.UTC),
	}
}

func TestFileRepo_CreateAndGet(t *testing.T) {
	repo, err := bookings.NewFileRepo(t.TempDir())
	require.NoError(t, err)

	record := testRecord()
	require.NoError(t, repo.Create(context.Background(), record))

	loaded, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.PNR, loaded.PNR)
	assert.Equal(t, record.ETicketNumber, loaded.ETicketNumber)
	assert.Equal(t, record.Traveler, loaded.Traveler)
	assert.True(t, record.CreatedAt.Equal(loaded.CreatedAt))
}

func TestFileRepo_GetMissing(t *testing.T) {
	repo, err := bookings.NewFileRepo(t.TempDir())
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "ORDER_NOPE")
	assert.ErrorIs(t, err, bookings.ErrNotFound)
}

func TestFileRepo_SetTicketPath(t *testing.T) {
	repo, err := bookings.NewFileRepo(t.TempDir())
	require.NoError(t, err)

	record := testRecord()
	require.NoError(t, repo.Create(context.Background(), record))

	path := filepath.Join("tickets", "eticket.pdf")
	require.NoError(t, repo.SetTicketPath(context.Background(), record.ID, path))

	loaded, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.TicketPath)

	assert.ErrorIs(t, repo.SetTicketPath(context.Background(), "ORDER_NOPE", path), bookings.ErrNotFound)
}

func TestFileRepo_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "bookings")
	repo, err := bookings.NewFileRepo(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), testRecord()))
}
