package dto

import (
	"fmt"
	"time"

	"countdown/internal/domain/entity"
)

// CreateCountdownRequest is the DTO for creating a new countdown.
type CreateCountdownRequest struct {
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
	DateString string `json:"date"` // YYYY-MM-DD
}

// CountdownStatus is a countdown annotated with its computed remaining or
// elapsed time at a fixed instant. The breakdown is deterministic for a given
// (countdown, now, location) triple.
type CountdownStatus struct {
	Name            string `json:"name"`
	TargetDate      string `json:"target_date"` // YYYY-MM-DD
	Timezone        string `json:"timezone"`
	ReminderEnabled bool   `json:"daily_reminder"`
	Days            int    `json:"days"`
	Hours           int    `json:"hours"`
	Minutes         int    `json:"minutes"`
	// Passed reports whether local midnight of the target date is behind now,
	// in which case Days/Hours/Minutes describe elapsed time.
	Passed bool `json:"passed"`
}

// NewCountdownStatus computes the status of a countdown at the given instant
// in the given location.
func NewCountdownStatus(c *entity.Countdown, now time.Time, loc *time.Location) CountdownStatus {
	remaining := c.Remaining(now, loc)
	passed := remaining < 0
	if passed {
		remaining = -remaining
	}
	return CountdownStatus{
		Name:            c.Name,
		TargetDate:      c.DateString(),
		Timezone:        loc.String(),
		ReminderEnabled: c.ReminderEnabled,
		Days:            int(remaining / (24 * time.Hour)),
		Hours:           int(remaining % (24 * time.Hour) / time.Hour),
		Minutes:         int(remaining % time.Hour / time.Minute),
		Passed:          passed,
	}
}

// NewCountdownStatusList computes statuses for a slice of countdowns, keeping
// their order.
func NewCountdownStatusList(countdowns []*entity.Countdown, now time.Time, loc *time.Location) []CountdownStatus {
	list := make([]CountdownStatus, len(countdowns))
	for i, c := range countdowns {
		list[i] = NewCountdownStatus(c, now, loc)
	}
	return list
}

// Summary renders the remaining or elapsed breakdown as a single line, e.g.
// "Remaining: 3 days, 4 hours, 5 minutes".
func (s CountdownStatus) Summary() string {
	if s.Passed {
		return fmt.Sprintf("Passed: %d days, %d hours, %d minutes ago", s.Days, s.Hours, s.Minutes)
	}
	return fmt.Sprintf("Remaining: %d days, %d hours, %d minutes", s.Days, s.Hours, s.Minutes)
}

// ListLine renders the compact one-line form used by /list, with a bell
// marking the reminder state.
func (s CountdownStatus) ListLine() string {
	bell := "🔕"
	if s.ReminderEnabled {
		bell = "🔔"
	}
	if s.Passed {
		return fmt.Sprintf("%s %s (%s, %s): passed %d days ago", bell, s.Name, s.TargetDate, s.Timezone, s.Days)
	}
	return fmt.Sprintf("%s %s (%s, %s): %d days remaining", bell, s.Name, s.TargetDate, s.Timezone, s.Days)
}
