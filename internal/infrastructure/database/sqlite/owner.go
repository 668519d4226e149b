package sqlite

import (
	"context"
	"fmt"

	"countdown/internal/domain/entity"
	"countdown/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new instance of OwnerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// FindByOwnerID retrieves the settings row for an owner.
func (r *ownerRepository) FindByOwnerID(ctx context.Context, ownerID string) (*entity.Owner, error) {
	var owner entity.Owner
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&owner).Error; err != nil {
		return nil, fmt.Errorf("failed to find settings for owner %s: %w", ownerID, err)
	}
	return &owner, nil
}

// Save inserts or updates the settings row for an owner.
func (r *ownerRepository) Save(ctx context.Context, owner *entity.Owner) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		UpdateAll: true,
	}).Create(owner).Error; err != nil {
		return fmt.Errorf("failed to save settings for owner %s: %w", owner.ID, err)
	}
	return nil
}

// Delete removes the settings row for an owner.
func (r *ownerRepository) Delete(ctx context.Context, ownerID string) error {
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&entity.Owner{}).Error; err != nil {
		return fmt.Errorf("failed to delete settings for owner %s: %w", ownerID, err)
	}
	return nil
}
