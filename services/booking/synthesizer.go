// File: services/booking/synthesizer.go
package booking

import (
	"context"
	"fmt"
	"strings"

	"voyago/models"
	"voyago/services/ticket"

	"go.uber.org/zap"
)

const pnrLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Book validates the traveler, synthesizes the booking ID, PNR, and
// e-ticket number, persists the record, then tries to render the ticket
// artifact. Rendering failures never fail the booking; the record is
// already durable by then.
func (s *DefaultBookingService) Book(ctx context.Context, offer models.FlightOffer, traveler models.TravelerInfo) (*models.BookingRecord, error) {
	if missing := missingFields(traveler); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}
	if traveler.Gender == "" {
		traveler.Gender = "MALE"
	} else {
		traveler.Gender = strings.ToUpper(traveler.Gender)
	}

	now := s.Now()
	carrier := extractCarrierCode(offer)
	record := &models.BookingRecord{
		ID:            "ORDER_" + now.Format("20060102150405"),
		PNR:           s.generatePNR(),
		ETicketNumber: s.generateETicket(carrier),
		CarrierCode:   carrier,
		Traveler:      traveler,
		Offer:         offer,
		CreatedAt:     now,
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persisting booking: %w", err)
	}
	s.Logger.Info("booking created",
		zap.String("bookingId", record.ID),
		zap.String("pnr", record.PNR),
		zap.String("carrier", record.CarrierCode),
	)

	if s.Renderer != nil {
		path, err := s.Renderer.Render(ctx, ticket.BuildRenderRequest(record))
		if err != nil {
			s.Logger.Warn("ticket rendering failed", zap.String("bookingId", record.ID), zap.Error(err))
		} else {
			record.TicketPath = path
			if err := s.Repo.SetTicketPath(ctx, record.ID, path); err != nil {
				s.Logger.Warn("attaching ticket path failed", zap.String("bookingId", record.ID), zap.Error(err))
			}
		}
	}

	return record, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	return s.Repo.GetByID(ctx, id)
}

// missingFields names the absent required traveler fields in a fixed
// order. Gender is optional and defaulted, never reported missing.
func missingFields(t models.TravelerInfo) []string {
	var missing []string
	if strings.TrimSpace(t.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(t.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(t.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(t.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(t.DateOfBirth) == "" {
		missing = append(missing, "dateOfBirth")
	}
	return missing
}

func (s *DefaultBookingService) generatePNR() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = pnrLetters[s.Rand.Intn(len(pnrLetters))]
	}
	return string(b)
}

func (s *DefaultBookingService) generateETicket(carrierCode string) string {
	var b strings.Builder
	b.WriteString(eticketPrefix(carrierCode))
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "%d", s.Rand.Intn(10))
	}
	return b.String()
}
