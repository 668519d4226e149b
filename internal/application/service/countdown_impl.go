package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"countdown/internal/application/dto"
	"countdown/internal/domain/entity"
	"countdown/internal/domain/repository"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"

	"gorm.io/gorm"
)

type countdownService struct {
	countdownRepo repository.CountdownRepository
	ownerSvc      OwnerService
	log           logger.Logger
}

// NewCountdownService creates a new instance of CountdownService implementation.
func NewCountdownService(
	countdownRepo repository.CountdownRepository,
	ownerSvc OwnerService,
	log logger.Logger,
) CountdownService {
	return &countdownService{
		countdownRepo: countdownRepo,
		ownerSvc:      ownerSvc,
		log:           log,
	}
}

// Create validates and persists a new countdown with reminders disabled.
func (s *countdownService) Create(ctx context.Context, req dto.CreateCountdownRequest) (*dto.CountdownStatus, error) {
	name := strings.TrimSpace(req.Name)

	// time.Parse rejects impossible calendar dates such as 2024-02-30.
	targetDate, err := time.Parse("2006-01-02", req.DateString)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", appErrors.ErrInvalidDate, req.DateString)
	}

	// Case-insensitive duplicate check; the unique index on
	// (owner_id, name_key) backs this against concurrent creates.
	if _, err := s.countdownRepo.FindByName(ctx, req.OwnerID, name); err == nil {
		return nil, fmt.Errorf("%w: %q", appErrors.ErrDuplicateName, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error(fmt.Sprintf("Failed to check for existing countdown %q of owner %s", name, req.OwnerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	countdown := &entity.Countdown{
		OwnerID:    req.OwnerID,
		Name:       name,
		NameKey:    entity.NormalizeName(name),
		TargetDate: targetDate,
		CreatedAt:  time.Now(),
	}
	id, err := s.countdownRepo.Create(ctx, countdown)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create countdown %q for owner %s", name, req.OwnerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created countdown %d (%q, %s) for owner %s", id, name, countdown.DateString(), req.OwnerID))

	loc := s.ownerSvc.Location(ctx, req.OwnerID)
	status := dto.NewCountdownStatus(countdown, time.Now().In(loc), loc)
	return &status, nil
}

// Describe returns the countdown's current remaining or elapsed time. A past
// target date reports elapsed time rather than an error.
func (s *countdownService) Describe(ctx context.Context, ownerID, name string) (*dto.CountdownStatus, error) {
	countdown, err := s.findByName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	loc := s.ownerSvc.Location(ctx, ownerID)
	status := dto.NewCountdownStatus(countdown, time.Now().In(loc), loc)
	return &status, nil
}

// List returns all of the owner's countdowns in creation order.
func (s *countdownService) List(ctx context.Context, ownerID string) ([]dto.CountdownStatus, error) {
	countdowns, err := s.countdownRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list countdowns for owner %s", ownerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	loc := s.ownerSvc.Location(ctx, ownerID)
	return dto.NewCountdownStatusList(countdowns, time.Now().In(loc), loc), nil
}

// SetReminder toggles the daily reminder flag.
func (s *countdownService) SetReminder(ctx context.Context, ownerID, name string, enabled bool) error {
	countdown, err := s.findByName(ctx, ownerID, name)
	if err != nil {
		return err
	}
	countdown.ReminderEnabled = enabled
	if err := s.countdownRepo.Update(ctx, countdown); err != nil {
		s.log.Error(fmt.Sprintf("Failed to set reminder=%t on countdown %d", enabled, countdown.ID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Set reminder=%t on countdown %d (%q) for owner %s", enabled, countdown.ID, countdown.Name, ownerID))
	return nil
}

// Delete permanently removes a countdown.
func (s *countdownService) Delete(ctx context.Context, ownerID, name string) error {
	countdown, err := s.findByName(ctx, ownerID, name)
	if err != nil {
		return err
	}
	if err := s.countdownRepo.Delete(ctx, countdown.ID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete countdown %d", countdown.ID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted countdown %d (%q) for owner %s", countdown.ID, countdown.Name, ownerID))
	return nil
}

func (s *countdownService) findByName(ctx context.Context, ownerID, name string) (*entity.Countdown, error) {
	countdown, err := s.countdownRepo.FindByName(ctx, ownerID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", appErrors.ErrCountdownNotFound, name)
		}
		s.log.Error(fmt.Sprintf("Failed to find countdown %q for owner %s", name, ownerID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return countdown, nil
}
