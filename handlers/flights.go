package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/services/flights"
	"voyago/services/location"
)

// FlightHandler exposes the direct (non-conversational) search endpoint.
type FlightHandler struct {
	Offers    flights.OfferService
	Locations *location.Resolver
}

func NewFlightHandler(offers flights.OfferService, locations *location.Resolver) *FlightHandler {
	return &FlightHandler{Offers: offers, Locations: locations}
}

// SearchFlights runs a flight search from explicit parameters.
func (h *FlightHandler) SearchFlights(c *gin.Context) {
	var req flights.SearchQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin, destination and departureDate are required"})
		return
	}
	if req.Adults <= 0 {
		req.Adults = 1
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 10
	}

	result, err := h.Offers.Search(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "flight search failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":   result.Found,
		"offers":  result.Offers,
		"summary": result.Summary,
	})
}

// ResolveLocation maps free text to airport entries.
func (h *FlightHandler) ResolveLocation(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	c.JSON(http.StatusOK, h.Locations.Resolve(query))
}
