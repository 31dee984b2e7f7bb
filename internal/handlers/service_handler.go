package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mirado/doctors-portal-api/internal/models"
)

const (
	serviceCacheKey = "services:catalog"
	serviceCacheTTL = 5 * time.Minute
)

// Home is the unauthenticated liveness greeting.
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello from Doctors Portal server")
}

// ListServices returns the full treatment catalog. The catalog is read-only
// and hot, so it goes through the cache when one is configured.
func (h *Handler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	var services []models.Service
	if h.Cache != nil && h.Cache.GetJSON(ctx, serviceCacheKey, &services) {
		c.JSON(http.StatusOK, services)
		return
	}

	services, err := h.Store.Services(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	if services == nil {
		services = make([]models.Service, 0)
	}

	if h.Cache != nil {
		h.Cache.SetJSON(ctx, serviceCacheKey, services, serviceCacheTTL)
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailable returns each service with its slots reduced to the ones still
// free on the requested date. Slot order is preserved.
func (h *Handler) GetAvailable(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Query("date")

	services, err := h.Store.Services(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}

	bookings, err := h.Store.BookingsByDate(ctx, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	for i := range services {
		services[i].Slots = availableSlots(services[i], bookings)
	}
	if services == nil {
		services = make([]models.Service, 0)
	}

	c.JSON(http.StatusOK, services)
}

// availableSlots filters a service's slot list down to slots not taken by a
// booking for that treatment. Slot equality is plain string match.
func availableSlots(service models.Service, bookings []models.Booking) []string {
	booked := make(map[string]bool)
	for _, b := range bookings {
		if b.Treatment == service.Name {
			booked[b.Slot] = true
		}
	}

	available := make([]string, 0, len(service.Slots))
	for _, slot := range service.Slots {
		if !booked[slot] {
			available = append(available, slot)
		}
	}
	return available
}
