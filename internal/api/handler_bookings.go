package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-assistant-backend/internal/booking"
	"salon-assistant-backend/internal/store"
)

type createBookingRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Service      string `json:"service" binding:"required"`
}

// CreateBooking books a slot for a customer.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.bookings.Book(c.Request.Context(), req.CustomerName, req.Date, req.Time, req.Service)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	if h.notify != nil {
		h.notify(record.ID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":            record.ID,
		"customer_name": record.CustomerName,
		"date":          record.Date,
		"time":          record.Time,
		"service":       record.Service,
		"status":        record.Status,
	})
}

func (h *Handler) writeBookingError(c *gin.Context, err error) {
	var badInput *booking.InvalidInputError
	var badTime *booking.InvalidTimeFormatError
	var unavailable *booking.SlotUnavailableError
	var conflict *booking.SlotConflictError
	switch {
	case errors.As(err, &badInput), errors.As(err, &badTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error":     err.Error(),
			"available": unavailable.Available,
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "booking records are unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
