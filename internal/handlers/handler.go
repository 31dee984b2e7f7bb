package handlers

import (
	"context"
	"time"

	"github.com/mirado/doctors-portal-api/internal/services"
	"github.com/mirado/doctors-portal-api/internal/store"
)

// Cache is the read-through cache surface the catalog endpoint needs.
// Implementations must fail open: any cache trouble surfaces as a miss,
// never as a request error.
type Cache interface {
	GetJSON(ctx context.Context, key string, v interface{}) bool
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration)
}

// Handler bundles the collaborators every route needs: the data store, the
// optional service-catalog cache and the notification sender.
type Handler struct {
	Store           store.Store
	Cache           Cache
	NotificationSvc *services.NotificationService
}

func NewHandler(s store.Store, c Cache, notificationSvc *services.NotificationService) *Handler {
	return &Handler{
		Store:           s,
		Cache:           c,
		NotificationSvc: notificationSvc,
	}
}
