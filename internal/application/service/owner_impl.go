package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"countdown/internal/application/dto"
	"countdown/internal/domain/entity"
	"countdown/internal/domain/repository"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"

	"gorm.io/gorm"
)

type ownerService struct {
	ownerRepo     repository.OwnerRepository
	countdownRepo repository.CountdownRepository // Needed for deleting countdowns when an owner leaves
	defaultLoc    *time.Location
	log           logger.Logger
}

// NewOwnerService creates a new instance of OwnerService implementation.
func NewOwnerService(
	ownerRepo repository.OwnerRepository,
	countdownRepo repository.CountdownRepository,
	defaultLoc *time.Location,
	log logger.Logger,
) OwnerService {
	return &ownerService{
		ownerRepo:     ownerRepo,
		countdownRepo: countdownRepo,
		defaultLoc:    defaultLoc,
		log:           log,
	}
}

// SetTimezone validates and stores the owner's timezone.
func (s *ownerService) SetTimezone(ctx context.Context, req dto.SetTimezoneRequest) error {
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return fmt.Errorf("%w: %q", appErrors.ErrInvalidTimezone, req.Timezone)
	}
	owner := &entity.Owner{
		ID:       req.OwnerID,
		Timezone: req.Timezone,
	}
	if err := s.ownerRepo.Save(ctx, owner); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save timezone %q for owner %s", req.Timezone, req.OwnerID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Set timezone %q for owner %s", req.Timezone, req.OwnerID))
	return nil
}

// Location returns the owner's effective timezone. Lookup failures fall back
// to the configured default so that read paths never fail on settings.
func (s *ownerService) Location(ctx context.Context, ownerID string) *time.Location {
	owner, err := s.ownerRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error(fmt.Sprintf("Failed to load settings for owner %s, using default timezone", ownerID), err)
		}
		return s.defaultLoc
	}
	if owner.Timezone == "" {
		return s.defaultLoc
	}
	loc, err := time.LoadLocation(owner.Timezone)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Owner %s has unloadable timezone %q, using default", ownerID, owner.Timezone))
		return s.defaultLoc
	}
	return loc
}

// DeleteOwner removes the owner's settings and all of their countdowns.
func (s *ownerService) DeleteOwner(ctx context.Context, ownerID string) error {
	if err := s.countdownRepo.DeleteByOwner(ctx, ownerID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete countdowns for departing owner %s", ownerID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if err := s.ownerRepo.Delete(ctx, ownerID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete settings for departing owner %s", ownerID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted all data for owner %s", ownerID))
	return nil
}
