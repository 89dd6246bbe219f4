package models

import "time"

// TravelerInfo carries the identity fields required to book.
type TravelerInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender      string `json:"gender"`      // MALE or FEMALE, defaults to MALE
}

// BookingRecord is the durable record of a completed booking. It is
// written once, keyed by ID, and never mutated afterwards except to
// attach the rendered ticket path.
type BookingRecord struct {
	ID            string       `json:"id"`
	PNR           string       `json:"pnr"`           // 6-letter locator
	ETicketNumber string       `json:"eticketNumber"` // 13 digits, carrier-prefixed
	CarrierCode   string       `json:"carrierCode"`
	Traveler      TravelerInfo `json:"traveler"`
	Offer         FlightOffer  `json:"offer"`
	TicketPath    string       `json:"ticketPath,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}
