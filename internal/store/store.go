package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mirado/doctors-portal-api/internal/models"
)

// ErrNotFound is returned by single-document lookups that match nothing.
var ErrNotFound = errors.New("store: not found")

// Store is the data-access context handed to the handler set. It covers the
// three collections the portal uses: services, bookings and users.
type Store interface {
	Services(ctx context.Context) ([]models.Service, error)

	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	BookingsByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	FindBooking(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	InsertBooking(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error)

	Users(ctx context.Context) ([]models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUser(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error)
	GrantAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error)
}
