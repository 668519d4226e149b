package config

import (
	"errors"
	"testing"

	appErrors "countdown/internal/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "TIMEZONE", "DAILY_REMINDER_TIME"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with defaults: %v", err)
	}
	if cfg.Timezone != "UTC" || cfg.Location.String() != "UTC" {
		t.Errorf("default timezone = %q (%v), want UTC", cfg.Timezone, cfg.Location)
	}
	if cfg.ReminderHour != 9 || cfg.ReminderMinute != 0 {
		t.Errorf("default reminder time = %02d:%02d, want 09:00", cfg.ReminderHour, cfg.ReminderMinute)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("default port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.DatabaseURL != DefaultDatabaseURL {
		t.Errorf("default database url = %q, want %q", cfg.DatabaseURL, DefaultDatabaseURL)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("DAILY_REMINDER_TIME", "18:45")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "bot.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Location.String() != "Europe/Berlin" {
		t.Errorf("location = %v, want Europe/Berlin", cfg.Location)
	}
	if cfg.ReminderHour != 18 || cfg.ReminderMinute != 45 {
		t.Errorf("reminder time = %02d:%02d, want 18:45", cfg.ReminderHour, cfg.ReminderMinute)
	}
	if cfg.Port != 9090 || cfg.DatabaseURL != "bot.db" {
		t.Errorf("port/db = %d/%q, want 9090/bot.db", cfg.Port, cfg.DatabaseURL)
	}
}

func TestLoadFailsFast(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"TIMEZONE", "Not/AZone"},
		{"DAILY_REMINDER_TIME", "25:00"},
		{"DAILY_REMINDER_TIME", "9am"},
		{"PORT", "not-a-port"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); !errors.Is(err, appErrors.ErrInvalidConfig) {
				t.Errorf("Load() with %s=%q: got %v, want ErrInvalidConfig", tc.key, tc.value, err)
			}
		})
	}
}
