package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints.
	HandleChat gin.HandlerFunc
	ResetChat  gin.HandlerFunc

	// Flight endpoints.
	SearchFlights   gin.HandlerFunc
	ResolveLocation gin.HandlerFunc

	// Booking endpoints.
	GetBooking gin.HandlerFunc
}
