package repository

import (
	"context"

	"countdown/internal/domain/entity"
)

// CountdownRepository defines the interface for countdown data operations.
type CountdownRepository interface {
	// FindByName retrieves a countdown by owner and name (case-insensitive).
	FindByName(ctx context.Context, ownerID, name string) (*entity.Countdown, error)
	// FindByOwner retrieves all countdowns of an owner in creation order.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Countdown, error)
	// FindWithReminders retrieves every countdown across all owners with the
	// daily reminder flag set. Used only by the scheduler batch.
	FindWithReminders(ctx context.Context) ([]*entity.Countdown, error)
	// Create creates a new countdown. Returns the ID of the created record.
	Create(ctx context.Context, countdown *entity.Countdown) (uint, error)
	// Update updates an existing countdown.
	Update(ctx context.Context, countdown *entity.Countdown) error
	// Delete deletes a countdown by its ID.
	Delete(ctx context.Context, id uint) error
	// DeleteByOwner deletes all countdowns of an owner.
	DeleteByOwner(ctx context.Context, ownerID string) error
}
