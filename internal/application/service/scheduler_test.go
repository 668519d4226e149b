package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	sqlitedb "countdown/internal/infrastructure/database/sqlite"
	"countdown/internal/infrastructure/scheduler"
)

type fakeNotifier struct {
	pushed  map[string][]string // ownerID -> delivered texts
	failFor map[string]bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		pushed:  make(map[string][]string),
		failFor: make(map[string]bool),
	}
}

func (f *fakeNotifier) Push(ownerID string, text string) error {
	if f.failFor[ownerID] {
		return errors.New("delivery refused")
	}
	f.pushed[ownerID] = append(f.pushed[ownerID], text)
	return nil
}

func newTestScheduler(t *testing.T, notifier Notifier) (SchedulerService, CountdownService) {
	t.Helper()
	db := newTestDB(t)
	countdownRepo := sqlitedb.NewCountdownRepository(db)
	ownerRepo := sqlitedb.NewOwnerRepository(db)
	ownerSvc := NewOwnerService(ownerRepo, countdownRepo, time.UTC, nopLogger{})
	countdownSvc := NewCountdownService(countdownRepo, ownerSvc, nopLogger{})

	cronScheduler := scheduler.NewScheduler(time.UTC, nopLogger{})
	t.Cleanup(cronScheduler.Stop)

	schedulerSvc := NewSchedulerService(cronScheduler, countdownRepo, ownerSvc, notifier, 9, 0, nopLogger{})
	return schedulerSvc, countdownSvc
}

func TestDailyBatchHonorsReminderFlag(t *testing.T) {
	notifier := newFakeNotifier()
	schedulerSvc, countdownSvc := newTestScheduler(t, notifier)
	ctx := context.Background()

	mustCreate(t, countdownSvc, "alice", "birthday", "2030-01-01")
	mustCreate(t, countdownSvc, "bob", "launch", "2030-06-01")
	if err := countdownSvc.SetReminder(ctx, "alice", "birthday", true); err != nil {
		t.Fatalf("enable reminder: %v", err)
	}

	sent, err := schedulerSvc.RunDailyBatch(ctx)
	if err != nil {
		t.Fatalf("run batch: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if len(notifier.pushed["alice"]) != 1 {
		t.Errorf("alice got %d notifications, want 1", len(notifier.pushed["alice"]))
	}
	if len(notifier.pushed["bob"]) != 0 {
		t.Errorf("bob got %d notifications despite disabled reminder", len(notifier.pushed["bob"]))
	}
	if text := notifier.pushed["alice"][0]; !strings.Contains(text, "birthday") || !strings.Contains(text, "Remaining:") {
		t.Errorf("notification text = %q, want name and remaining breakdown", text)
	}

	// Disabling and deleting both exclude records from subsequent batches.
	if err := countdownSvc.SetReminder(ctx, "alice", "birthday", false); err != nil {
		t.Fatalf("disable reminder: %v", err)
	}
	sent, err = schedulerSvc.RunDailyBatch(ctx)
	if err != nil {
		t.Fatalf("run batch: %v", err)
	}
	if sent != 0 {
		t.Errorf("sent after disable = %d, want 0", sent)
	}
}

func TestDailyBatchIsolatesDeliveryFailures(t *testing.T) {
	notifier := newFakeNotifier()
	notifier.failFor["alice"] = true
	schedulerSvc, countdownSvc := newTestScheduler(t, notifier)
	ctx := context.Background()

	mustCreate(t, countdownSvc, "alice", "birthday", "2030-01-01")
	mustCreate(t, countdownSvc, "bob", "launch", "2030-06-01")
	for owner, name := range map[string]string{"alice": "birthday", "bob": "launch"} {
		if err := countdownSvc.SetReminder(ctx, owner, name, true); err != nil {
			t.Fatalf("enable reminder for %s: %v", owner, err)
		}
	}

	sent, err := schedulerSvc.RunDailyBatch(ctx)
	if err != nil {
		t.Fatalf("batch aborted on single delivery failure: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if len(notifier.pushed["bob"]) != 1 {
		t.Errorf("bob got %d notifications, want 1 despite alice's failure", len(notifier.pushed["bob"]))
	}
}

func TestDailyBatchReportsElapsedForPastDates(t *testing.T) {
	notifier := newFakeNotifier()
	schedulerSvc, countdownSvc := newTestScheduler(t, notifier)
	ctx := context.Background()

	mustCreate(t, countdownSvc, "bob", "launch", "2000-01-01")
	if err := countdownSvc.SetReminder(ctx, "bob", "launch", true); err != nil {
		t.Fatalf("enable reminder: %v", err)
	}

	sent, err := schedulerSvc.RunDailyBatch(ctx)
	if err != nil {
		t.Fatalf("run batch: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}
	if text := notifier.pushed["bob"][0]; !strings.Contains(text, "Passed:") {
		t.Errorf("notification text = %q, want elapsed breakdown", text)
	}
}

func TestStartRegistersDailyJob(t *testing.T) {
	notifier := newFakeNotifier()
	schedulerSvc, _ := newTestScheduler(t, notifier)

	if err := schedulerSvc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	impl := schedulerSvc.(*schedulerService)
	next := impl.cronScheduler.NextRun(impl.entryID)
	if next.IsZero() {
		t.Fatal("daily job has no next activation")
	}
	if next.Hour() != 9 || next.Minute() != 0 {
		t.Errorf("next activation at %02d:%02d, want 09:00", next.Hour(), next.Minute())
	}
}
