package booking_test

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyago/database/repository/bookings"
	"voyago/models"
	"voyago/services/booking"
	"voyago/services/ticket"
)

var (
	pnrRe     = regexp.MustCompile(`^[A-Z]{6}$`)
	eticketRe = regexp.MustCompile(`^\d{13}$`)
)

type fakeRenderer struct {
	path string
	err  error
	last ticket.RenderRequest
}

func (f *fakeRenderer) Render(_ context.Context, req ticket.RenderRequest) (string, error) {
	f.last = req
	return f.path, f.err
}

func newService(t *testing.T, renderer ticket.Renderer) *booking.DefaultBookingService {
	t.Helper()
	repo, err := bookings.NewFileRepo(t.TempDir())
	require.NoError(t, err)

	svc := booking.NewBookingService(repo, renderer, zap.NewNop())
	svc.Rand = rand.New(rand.NewSource(42))
	svc.Now = func() time.Time { return time.Date(2025, 12, 1, 14, 30, 5, 0, time.UTC) }
	return svc
}

func testOffer() models.FlightOffer {
	return models.FlightOffer{
		ID:    "1",
		Price: models.OfferPrice{Currency: "USD", GrandTotal: "250.00"},
		Itineraries: []models.Itinerary{{
			Segments: []models.Segment{{
				Departure:   models.FlightPoint{IataCode: "JFK", At: "2025-12-20T08:00:00"},
				Arrival:     models.FlightPoint{IataCode: "LAX", At: "2025-12-20T11:30:00"},
				CarrierCode: "DL",
				Number:      "100",
			}},
		}},
	}
}

func testTraveler() models.TravelerInfo {
	return models.TravelerInfo{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		Phone:       "+1 555 0100",
		DateOfBirth: "1990-05-15",
	}
}

func TestBook(t *testing.T) {
	renderer := &fakeRenderer{path: "tickets/eticket_ORDER_20251201143005.pdf"}
	svc := newService(t, renderer)

	record, err := svc.Book(context.Background(), testOffer(), testTraveler())
	require.NoError(t, err)

	assert.Equal(t, "ORDER_20251201143005", record.ID)
	assert.Regexp(t, pnrRe, record.PNR)
	assert.Regexp(t, eticketRe, record.ETicketNumber)
	assert.Equal(t, "DL", record.CarrierCode)
	assert.Equal(t, "006", record.ETicketNumber[:3])
	assert.Equal(t, "MALE", record.Traveler.Gender)
	assert.Equal(t, renderer.path, record.TicketPath)

	// The record is durable and reloads with the same identifiers.
	loaded, err := svc.GetBooking(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.PNR, loaded.PNR)
	assert.Equal(t, record.ETicketNumber, loaded.ETicketNumber)
	assert.Equal(t, renderer.path, loaded.TicketPath)

	// The renderer got the flattened itinerary.
	require.Len(t, renderer.last.Legs, 1)
	assert.Equal(t, "DL100", renderer.last.Legs[0].Flight)
	assert.Equal(t, "John Doe", renderer.last.PassengerName)
}

func TestBook_DeterministicIdentifiers(t *testing.T) {
	first := newService(t, nil)
	second := newService(t, nil)

	r1, err := first.Book(context.Background(), testOffer(), testTraveler())
	require.NoError(t, err)
	r2, err := second.Book(context.Background(), testOffer(), testTraveler())
	require.NoError(t, err)

	// Same seed, same identifiers.
	assert.Equal(t, r1.PNR, r2.PNR)
	assert.Equal(t, r1.ETicketNumber, r2.ETicketNumber)
}

func TestBook_MissingFields(t *testing.T) {
	svc := newService(t, nil)

	traveler := models.TravelerInfo{FirstName: "John", Email: "john@example.com"}
	_, err := svc.Book(context.Background(), testOffer(), traveler)
	require.Error(t, err)

	var valErr *booking.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"lastName", "phone", "dateOfBirth"}, valErr.Missing)

	// Nothing was persisted.
	_, err = svc.GetBooking(context.Background(), "ORDER_20251201143005")
	assert.ErrorIs(t, err, bookings.ErrNotFound)
}

func TestBook_GenderPreserved(t *testing.T) {
	svc := newService(t, nil)

	traveler := testTraveler()
	traveler.Gender = "female"
	record, err := svc.Book(context.Background(), testOffer(), traveler)
	require.NoError(t, err)
	assert.Equal(t, "FEMALE", record.Traveler.Gender)
}

func TestBook_RenderFailureIsNotFatal(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("renderer down")}
	svc := newService(t, renderer)

	record, err := svc.Book(context.Background(), testOffer(), testTraveler())
	require.NoError(t, err)
	assert.Empty(t, record.TicketPath)

	// The booking itself is still durable.
	loaded, err := svc.GetBooking(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.TicketPath)
}

func TestBook_UnknownCarrierPrefix(t *testing.T) {
	svc := newService(t, nil)

	offer := testOffer()
	offer.Itineraries[0].Segments[0].CarrierCode = "XQ"
	record, err := svc.Book(context.Background(), offer, testTraveler())
	require.NoError(t, err)
	assert.Equal(t, "XQ", record.CarrierCode)
	assert.Equal(t, "000", record.ETicketNumber[:3])
}
