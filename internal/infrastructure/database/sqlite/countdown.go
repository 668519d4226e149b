package sqlite

import (
	"context"
	"fmt"

	"countdown/internal/domain/entity"
	"countdown/internal/domain/repository"

	"gorm.io/gorm"
)

type countdownRepository struct {
	db *gorm.DB
}

// NewCountdownRepository creates a new instance of CountdownRepository.
func NewCountdownRepository(db *gorm.DB) repository.CountdownRepository {
	return &countdownRepository{db: db}
}

// FindByName retrieves a countdown by owner and name. Matching is
// case-insensitive through the normalized name_key column.
func (r *countdownRepository) FindByName(ctx context.Context, ownerID, name string) (*entity.Countdown, error) {
	var countdown entity.Countdown
	key := entity.NormalizeName(name)
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND name_key = ?", ownerID, key).First(&countdown).Error; err != nil {
		return nil, fmt.Errorf("failed to find countdown %q for owner %s: %w", name, ownerID, err)
	}
	return &countdown, nil
}

// FindByOwner retrieves all countdowns of an owner in creation order.
func (r *countdownRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Countdown, error) {
	var countdowns []*entity.Countdown
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at asc, id asc").Find(&countdowns).Error; err != nil {
		return nil, fmt.Errorf("failed to find countdowns for owner %s: %w", ownerID, err)
	}
	return countdowns, nil
}

// FindWithReminders retrieves every countdown with the daily reminder flag set.
func (r *countdownRepository) FindWithReminders(ctx context.Context) ([]*entity.Countdown, error) {
	var countdowns []*entity.Countdown
	if err := r.db.WithContext(ctx).Where("daily_reminder = ?", true).Order("created_at asc, id asc").Find(&countdowns).Error; err != nil {
		return nil, fmt.Errorf("failed to find countdowns with reminders: %w", err)
	}
	return countdowns, nil
}

// Create creates a new countdown. The unique index on (owner_id, name_key)
// backs the per-owner name invariant.
func (r *countdownRepository) Create(ctx context.Context, countdown *entity.Countdown) (uint, error) {
	if err := r.db.WithContext(ctx).Create(countdown).Error; err != nil {
		return 0, fmt.Errorf("failed to create countdown %q for owner %s: %w", countdown.Name, countdown.OwnerID, err)
	}
	return countdown.ID, nil
}

// Update updates an existing countdown.
func (r *countdownRepository) Update(ctx context.Context, countdown *entity.Countdown) error {
	if err := r.db.WithContext(ctx).Save(countdown).Error; err != nil {
		return fmt.Errorf("failed to update countdown %d: %w", countdown.ID, err)
	}
	return nil
}

// Delete deletes a countdown by its ID.
func (r *countdownRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Countdown{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete countdown %d: %w", id, err)
	}
	return nil
}

// DeleteByOwner deletes all countdowns of an owner.
func (r *countdownRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&entity.Countdown{}).Error; err != nil {
		return fmt.Errorf("failed to delete countdowns for owner %s: %w", ownerID, err)
	}
	return nil
}
