package service

import (
	"context"
	"fmt"
	"time"

	"countdown/internal/application/dto"
	"countdown/internal/domain/entity"
	"countdown/internal/domain/repository"
	"countdown/internal/infrastructure/scheduler"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

type schedulerService struct {
	cronScheduler  *scheduler.Scheduler
	countdownRepo  repository.CountdownRepository
	ownerSvc       OwnerService
	notifier       Notifier
	reminderHour   int
	reminderMinute int
	entryID        cron.EntryID
	log            logger.Logger
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
// The cron scheduler must be constructed with the configured global timezone so
// that the daily trigger fires at local wall-clock time.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	countdownRepo repository.CountdownRepository,
	ownerSvc OwnerService,
	notifier Notifier,
	reminderHour, reminderMinute int,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		cronScheduler:  cronScheduler,
		countdownRepo:  countdownRepo,
		ownerSvc:       ownerSvc,
		notifier:       notifier,
		reminderHour:   reminderHour,
		reminderMinute: reminderMinute,
		log:            log,
	}
}

// Start registers the recurring daily reminder job. Cron recomputes the next
// activation after every run, so there is no fixed-interval drift.
func (s *schedulerService) Start(ctx context.Context) error {
	spec := fmt.Sprintf("0 %d %d * * *", s.reminderMinute, s.reminderHour)
	entryID, err := s.cronScheduler.AddJob(spec, func() {
		sent, err := s.RunDailyBatch(context.Background())
		if err != nil {
			s.log.Error("Daily reminder batch failed", err)
			return
		}
		s.log.Info(fmt.Sprintf("Daily reminder batch complete, %d notifications sent", sent))
	})
	if err != nil {
		return fmt.Errorf("failed to register daily reminder job: %w", err)
	}
	s.entryID = entryID
	s.log.Info(fmt.Sprintf("Daily reminders scheduled at %02d:%02d, next run %v",
		s.reminderHour, s.reminderMinute, s.cronScheduler.NextRun(entryID)))
	return nil
}

// RunDailyBatch pushes one notification per reminder-enabled countdown. A
// failed delivery is logged and the batch continues with the remaining records.
func (s *schedulerService) RunDailyBatch(ctx context.Context) (int, error) {
	countdowns, err := s.countdownRepo.FindWithReminders(ctx)
	if err != nil {
		s.log.Error("Failed to load reminder-enabled countdowns", err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	sent := 0
	for _, c := range countdowns {
		loc := s.ownerSvc.Location(ctx, c.OwnerID)
		text := reminderText(c, time.Now().In(loc), loc)
		if err := s.notifier.Push(c.OwnerID, text); err != nil {
			s.log.Error(fmt.Sprintf("%v: countdown %d (%q) for owner %s",
				appErrors.ErrDelivery, c.ID, c.Name, c.OwnerID), err)
			continue
		}
		sent++
	}
	return sent, nil
}

// Stop stops the underlying scheduler.
func (s *schedulerService) Stop() {
	s.cronScheduler.Stop()
}

// reminderText renders the daily push for one countdown.
func reminderText(c *entity.Countdown, now time.Time, loc *time.Location) string {
	status := dto.NewCountdownStatus(c, now, loc)
	return fmt.Sprintf("⏰ Daily Reminder for '%s':\nTimezone: %s\n%s", status.Name, status.Timezone, status.Summary())
}
