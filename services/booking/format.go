// File: services/booking/format.go
package booking

import (
	"fmt"
	"strings"
	"time"

	"voyago/models"
	"voyago/services/flights"
)

// FormatConfirmation renders the full booking confirmation shown right
// after a successful booking.
func FormatConfirmation(record *models.BookingRecord) string {
	var b strings.Builder
	b.WriteString("## Flight Booking Confirmation\n\n")
	fmt.Fprintf(&b, "**Booking Reference**: %s\n\n", record.ID)

	b.WriteString("**Booking References**:\n")
	fmt.Fprintf(&b, "- **PNR**: %s\n", record.PNR)
	fmt.Fprintf(&b, "  Created: %s\n", record.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "  E-Ticket Number: %s\n\n", record.ETicketNumber)

	b.WriteString("**Passenger Information**:\n")
	fmt.Fprintf(&b, "- Passenger 1: %s %s\n", record.Traveler.FirstName, record.Traveler.LastName)
	if record.Traveler.DateOfBirth != "" {
		fmt.Fprintf(&b, "  Date of Birth: %s\n", record.Traveler.DateOfBirth)
	}
	if record.Traveler.Gender != "" {
		fmt.Fprintf(&b, "  Gender: %s\n", record.Traveler.Gender)
	}
	b.WriteString("\n")

	b.WriteString("**Flight Details**:\n")
	fmt.Fprintf(&b, "**Total Price**: %s %s\n\n", record.Offer.Price.GrandTotal, record.Offer.Price.Currency)

	for i, itin := range record.Offer.Itineraries {
		tripType := "Outbound"
		if len(record.Offer.Itineraries) == 1 {
			tripType = "Flight"
		} else if i > 0 {
			tripType = "Return"
		}
		fmt.Fprintf(&b, "**%s Journey**:\n", tripType)

		for _, seg := range itin.Segments {
			fmt.Fprintf(&b, "- Flight: %s%s\n", seg.CarrierCode, seg.Number)
			writeConfirmationPoint(&b, "From", seg.Departure)
			writeConfirmationPoint(&b, "To", seg.Arrival)
			if seg.Duration != "" {
				fmt.Fprintf(&b, "  Duration: %s\n", flights.PrettyDuration(seg.Duration))
			}
			if seg.Aircraft.Code != "" {
				fmt.Fprintf(&b, "  Aircraft: %s\n", seg.Aircraft.Code)
			}
			b.WriteString("\n")
		}
	}

	if record.TicketPath != "" {
		fmt.Fprintf(&b, "**E-Ticket**: Your e-ticket has been generated and saved to: %s\n\n", record.TicketPath)
	}

	b.WriteString("**Important**: Please arrive at the airport at least 2 hours before your flight.\n")
	b.WriteString("Thank you for booking with us!\n")
	return b.String()
}

// FormatDetails renders the short recall text for post-booking queries
// about the reference or PNR.
func FormatDetails(record *models.BookingRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Booking Reference: %s\n\n", record.ID)
	fmt.Fprintf(&b, "PNR: %s\n", record.PNR)
	fmt.Fprintf(&b, "Total Price: %s %s\n", record.Offer.Price.GrandTotal, record.Offer.Price.Currency)
	return b.String()
}

func writeConfirmationPoint(b *strings.Builder, label string, p models.FlightPoint) {
	fmt.Fprintf(b, "  %s: %s", label, p.IataCode)
	if p.Terminal != "" {
		fmt.Fprintf(b, " Terminal %s", p.Terminal)
	}
	fmt.Fprintf(b, " at %s\n", formatPointTime(p.At))
}

func formatPointTime(v string) string {
	t, err := time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(v, "Z"))
	if err != nil {
		return v
	}
	return t.Format("Mon, Jan 02, 15:04")
}
