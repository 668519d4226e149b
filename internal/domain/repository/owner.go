package repository

import (
	"context"

	"countdown/internal/domain/entity"
)

// OwnerRepository defines the interface for owner settings operations.
type OwnerRepository interface {
	// FindByOwnerID retrieves the settings row for an owner.
	FindByOwnerID(ctx context.Context, ownerID string) (*entity.Owner, error)
	// Save inserts or updates the settings row for an owner.
	Save(ctx context.Context, owner *entity.Owner) error
	// Delete removes the settings row for an owner.
	Delete(ctx context.Context, ownerID string) error
}
