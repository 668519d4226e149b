package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	appErrors "countdown/internal/pkg/errors"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultTimezone     = "UTC"
	DefaultReminderTime = "09:00"
	DefaultDatabaseURL  = "countdown.db"
	DefaultPort         = 8080
)

// Config holds the runtime configuration of the bot.
type Config struct {
	Port        int
	DatabaseURL string

	// Timezone is the IANA name of the global default zone; Location is its
	// resolved form. Owners may override it per chat via /timezone.
	Timezone string
	Location *time.Location

	// Daily reminder trigger, local to Location.
	ReminderHour   int
	ReminderMinute int
}

// Load reads configuration from the environment. An unset TIMEZONE or
// DAILY_REMINDER_TIME falls back to the default; an unparsable value is a
// fatal ErrInvalidConfig so the process refuses to start instead of silently
// degrading.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        DefaultPort,
		DatabaseURL: DefaultDatabaseURL,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid PORT %q: %v", appErrors.ErrInvalidConfig, portStr, err)
		}
		cfg.Port = port
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid TIMEZONE %q: %v", appErrors.ErrInvalidConfig, tz, err)
	}
	cfg.Timezone = tz
	cfg.Location = loc

	reminderTime := os.Getenv("DAILY_REMINDER_TIME")
	if reminderTime == "" {
		reminderTime = DefaultReminderTime
	}
	hour, minute, err := parseClock(reminderTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid DAILY_REMINDER_TIME %q: %v", appErrors.ErrInvalidConfig, reminderTime, err)
	}
	cfg.ReminderHour = hour
	cfg.ReminderMinute = minute

	return cfg, nil
}

// parseClock parses a strict 24-hour "HH:MM" string.
func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}
