package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-assistant-backend/internal/booking"
	"salon-assistant-backend/internal/store"
)

// GetSlots returns the open slots for a date.
func (h *Handler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	available, err := h.bookings.ListAvailable(c.Request.Context(), date)
	if err != nil {
		var badInput *booking.InvalidInputError
		switch {
		case errors.As(err, &badInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "booking records are unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      date,
		"available": available,
	})
}
