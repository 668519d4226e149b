package service

import "context"

// Notifier delivers outbound notification text to an owner. The transport
// adapter satisfies it; tests substitute a fake.
type Notifier interface {
	Push(ownerID string, text string) error
}

// SchedulerService defines the interface for the daily reminder loop.
type SchedulerService interface {
	// Start registers the recurring daily job at the configured local time.
	Start(ctx context.Context) error
	// RunDailyBatch scans all reminder-enabled countdowns and pushes one
	// notification per record. A delivery failure is logged and the batch
	// continues. Returns the number of notifications delivered.
	RunDailyBatch(ctx context.Context) (int, error)
	// Stop cancels the daily loop and waits for a running batch.
	Stop()
}
