package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mirado/doctors-portal-api/internal/middleware"
	"github.com/mirado/doctors-portal-api/internal/models"
	"github.com/mirado/doctors-portal-api/internal/store"
)

// CreateBooking inserts a booking unless one already exists for the same
// (treatment, date, patient). A duplicate answers 200 with the existing
// booking, not a conflict status. The existence check and the insert are two
// separate operations, so concurrent identical submissions can both land.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.Store.FindBooking(ctx, booking.Treatment, booking.Date, booking.Patient)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing bookings"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": existing})
		return
	}

	result, err := h.Store.InsertBooking(ctx, booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	h.NotificationSvc.SendBookingConfirmationSMS(&booking)

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// ListBookings returns every booking of one patient. The patient query
// parameter must match the email the token was issued for.
func (h *Handler) ListBookings(c *gin.Context) {
	patient := c.Query("patient")
	email := c.GetString(middleware.EmailKey)
	if patient != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	bookings, err := h.Store.BookingsByPatient(c.Request.Context(), patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}

	c.JSON(http.StatusOK, bookings)
}
