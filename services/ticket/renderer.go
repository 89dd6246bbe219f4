// File: services/ticket/renderer.go
package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"voyago/config"
	"voyago/models"
)

// RenderRequest is the payload forwarded to the e-ticket renderer service.
type RenderRequest struct {
	BookingID     string      `json:"bookingId"`
	PNR           string      `json:"pnr"`
	ETicketNumber string      `json:"eTicketNumber"`
	CarrierCode   string      `json:"carrierCode"`
	PassengerName string      `json:"passengerName"`
	Legs          []TicketLeg `json:"legs"`
	Price         TicketPrice `json:"price"`
	Issued        time.Time   `json:"issued"`
}

type TicketLeg struct {
	Flight    string `json:"flight"`
	Origin    string `json:"origin"`
	Departure string `json:"departure"`
	Dest      string `json:"destination"`
	Arrival   string `json:"arrival"`
	Cabin     string `json:"cabin,omitempty"`
}

type TicketPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// Renderer produces a printable e-ticket artifact for a completed booking
// and returns the path where the artifact was written.
type Renderer interface {
	Render(ctx context.Context, req RenderRequest) (string, error)
}

// HTTPRenderer forwards render requests to an external renderer service.
type HTTPRenderer struct {
	url        string
	httpClient *http.Client
}

func NewHTTPRenderer() *HTTPRenderer {
	return &HTTPRenderer{
		url:        config.AppConfig.RendererURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type renderResponse struct {
	Path string `json:"path"`
}

func (r *HTTPRenderer) Render(ctx context.Context, req RenderRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("renderer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("renderer returned status %d", resp.StatusCode)
	}

	var out renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding renderer response: %w", err)
	}
	if out.Path == "" {
		return "", fmt.Errorf("renderer returned empty artifact path")
	}
	return out.Path, nil
}

// BuildRenderRequest flattens a booking record into the renderer payload.
func BuildRenderRequest(record *models.BookingRecord) RenderRequest {
	req := RenderRequest{
		BookingID:     record.ID,
		PNR:           record.PNR,
		ETicketNumber: record.ETicketNumber,
		CarrierCode:   record.CarrierCode,
		PassengerName: record.Traveler.FirstName + " " + record.Traveler.LastName,
		Price: TicketPrice{
			Currency: record.Offer.Price.Currency,
			Total:    record.Offer.Price.GrandTotal,
		},
		Issued: record.CreatedAt,
	}
	for _, itin := range record.Offer.Itineraries {
		for _, seg := range itin.Segments {
			req.Legs = append(req.Legs, TicketLeg{
				Flight:    seg.CarrierCode + seg.Number,
				Origin:    seg.Departure.IataCode,
				Departure: seg.Departure.At,
				Dest:      seg.Arrival.IataCode,
				Arrival:   seg.Arrival.At,
			})
		}
	}
	return req
}
