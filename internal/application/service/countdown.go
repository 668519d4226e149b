package service

import (
	"context"

	"countdown/internal/application/dto"
)

// CountdownService defines the interface for countdown business logic.
type CountdownService interface {
	// Create validates and persists a new countdown with reminders disabled.
	// Fails with ErrInvalidDate or ErrDuplicateName.
	Create(ctx context.Context, req dto.CreateCountdownRequest) (*dto.CountdownStatus, error)
	// Describe returns the countdown's current remaining or elapsed time in
	// the owner's effective timezone. Fails with ErrCountdownNotFound.
	Describe(ctx context.Context, ownerID, name string) (*dto.CountdownStatus, error)
	// List returns all of the owner's countdowns in creation order, each
	// annotated with its computed status.
	List(ctx context.Context, ownerID string) ([]dto.CountdownStatus, error)
	// SetReminder toggles the daily reminder flag. Idempotent. Fails with
	// ErrCountdownNotFound.
	SetReminder(ctx context.Context, ownerID, name string, enabled bool) error
	// Delete permanently removes a countdown. Fails with ErrCountdownNotFound.
	Delete(ctx context.Context, ownerID, name string) error
}
