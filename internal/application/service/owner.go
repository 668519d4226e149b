package service

import (
	"context"
	"time"

	"countdown/internal/application/dto"
)

// OwnerService defines the interface for owner settings logic.
type OwnerService interface {
	// SetTimezone validates and stores the owner's timezone. Fails with
	// ErrInvalidTimezone.
	SetTimezone(ctx context.Context, req dto.SetTimezoneRequest) error
	// Location returns the owner's effective timezone: their stored setting
	// when present and valid, the configured global default otherwise.
	Location(ctx context.Context, ownerID string) *time.Location
	// DeleteOwner removes the owner's settings and all of their countdowns.
	// Used when the chat platform reports the owner left.
	DeleteOwner(ctx context.Context, ownerID string) error
}
