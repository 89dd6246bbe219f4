package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voyago/models"
	"voyago/services/booking"
)

func confirmationRecord() *models.BookingRecord {
	return &models.BookingRecord{
		ID:            "ORDER_20251201143005",
		PNR:           "KXQWTZ",
		ETicketNumber: "0061234567890",
		CarrierCode:   "DL",
		Traveler: models.TravelerInfo{
			FirstName:   "John",
			LastName:    "Doe",
			DateOfBirth: "1990-05-01",
			Gender:      "MALE",
		},
		Offer: models.FlightOffer{
			ID:    "1",
			Price: models.OfferPrice{Currency: "USD", GrandTotal: "350.00"},
			Itineraries: []models.Itinerary{{
				Duration: "PT5H30M",
				Segments: []models.Segment{{
					Departure:   models.FlightPoint{IataCode: "JFK", Terminal: "4", At: "2025-12-20T08:00:00"},
					Arrival:     models.FlightPoint{IataCode: "LAX", At: "2025-12-20T11:30:00"},
					CarrierCode: "DL",
					Number:      "100",
					Duration:    "PT5H30M",
					Aircraft:    models.Aircraft{Code: "321"},
				}},
			}},
		},
		TicketPath: "/tickets/ORDER_20251201143005.pdf",
		CreatedAt:  time.Date(2025, 12, 1, 14, 30, 5, 0, time.UTC),
	}
}

func TestFormatConfirmation(t *testing.T) {
	text := booking.FormatConfirmation(confirmationRecord())

	assert.Contains(t, text, "## Flight Booking Confirmation")
	assert.Contains(t, text, "**Booking Reference**: ORDER_20251201143005")
	assert.Contains(t, text, "- **PNR**: KXQWTZ")
	assert.Contains(t, text, "E-Ticket Number: 0061234567890")
	assert.Contains(t, text, "- Passenger 1: John Doe")
	assert.Contains(t, text, "**Flight Journey**:")
	assert.Contains(t, text, "- Flight: DL100")
	assert.Contains(t, text, "From: JFK Terminal 4 at Sat, Dec 20, 08:00")
	assert.Contains(t, text, "Duration: 5h 30m")
	assert.Contains(t, text, "saved to: /tickets/ORDER_20251201143005.pdf")
	assert.Contains(t, text, "arrive at the airport at least 2 hours")
}

func TestFormatDetails(t *testing.T) {
	text := booking.FormatDetails(confirmationRecord())

	assert.Contains(t, text, "Booking Reference: ORDER_20251201143005")
	assert.Contains(t, text, "PNR: KXQWTZ")
	assert.Contains(t, text, "Total Price: 350.00 USD")
}
