package entity

import (
	"strings"
	"time"
)

// Countdown represents a named target date an owner counts toward.
type Countdown struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	OwnerID string `gorm:"column:owner_id;uniqueIndex:idx_owner_name_key"`
	// Name is stored exactly as the user typed it; NameKey carries the
	// normalized form so that uniqueness and lookup are case-insensitive.
	Name    string `gorm:"column:name"`
	NameKey string `gorm:"column:name_key;uniqueIndex:idx_owner_name_key"`
	// TargetDate holds the calendar date only (midnight UTC as a date
	// container). The instant it counts toward is local midnight of that
	// date in the owner's effective timezone, resolved at computation time.
	TargetDate      time.Time `gorm:"column:target_date"`
	ReminderEnabled bool      `gorm:"column:daily_reminder;default:false"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for the Countdown entity.
func (Countdown) TableName() string {
	return "countdown_events"
}

// NormalizeName returns the canonical key form of a countdown name used for
// uniqueness checks and lookups.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TargetIn returns the instant the countdown counts toward: local midnight of
// the target date in the given location. The day boundary is therefore local
// midnight, not UTC midnight.
func (c *Countdown) TargetIn(loc *time.Location) time.Time {
	year, month, day := c.TargetDate.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// Remaining returns the signed duration from now until the target instant in
// the given location. Negative means the date has passed.
func (c *Countdown) Remaining(now time.Time, loc *time.Location) time.Duration {
	return c.TargetIn(loc).Sub(now)
}

// DateString renders the target date as YYYY-MM-DD.
func (c *Countdown) DateString() string {
	return c.TargetDate.Format("2006-01-02")
}
