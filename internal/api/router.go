package api

import (
	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"salon-assistant-backend/internal/mw"
	"salon-assistant-backend/internal/store"
)

// RouterOptions carries the dependencies the HTTP surface needs.
type RouterOptions struct {
	Store     store.Store
	Bookings  BookingService
	Chat      Assistant
	WebPush   *webpush.Options
	RateLimit rate.Limit
	RateBurst int
	Notify    func(bookingID int64)
}

// NewRouter creates and configures a new Gin router.
func NewRouter(opts RouterOptions) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(opts.Store, opts.Bookings, opts.Chat, opts.WebPush)
	if opts.Notify != nil {
		handler.SetNotify(opts.Notify)
	}

	rateLimiter := mw.RateLimiter(opts.RateLimit, opts.RateBurst)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Availability is always read fresh, never cached.
		api.GET("/slots", handler.GetSlots)
		api.POST("/bookings", handler.CreateBooking)

		api.POST("/chat", handler.PostChat)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
