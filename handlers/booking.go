package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/database/repository/bookings"
	"voyago/services/booking"
)

// BookingHandler exposes read access to persisted booking records.
type BookingHandler struct {
	Booking booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Booking: svc}
}

// GetBooking returns a booking record by its booking ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	record, err := h.Booking.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}
