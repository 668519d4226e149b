package bot

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"countdown/internal/application/service"
	sqlitedb "countdown/internal/infrastructure/database/sqlite"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nopLogger struct{}

func (nopLogger) Error(string, error) {}
func (nopLogger) Warn(string)         {}
func (nopLogger) Info(string)         {}
func (nopLogger) Debug(string)        {}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	db, err := gorm.Open(sqlitedriver.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := sqlitedb.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	countdownRepo := sqlitedb.NewCountdownRepository(db)
	ownerRepo := sqlitedb.NewOwnerRepository(db)
	ownerSvc := service.NewOwnerService(ownerRepo, countdownRepo, time.UTC, nopLogger{})
	countdownSvc := service.NewCountdownService(countdownRepo, ownerSvc, nopLogger{})
	return NewDispatcher(countdownSvc, ownerSvc, nopLogger{})
}

func TestDispatchStartAndUnknown(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	if reply := d.Dispatch(ctx, "alice", "/start"); !strings.Contains(reply, "/set <name> <date>") {
		t.Errorf("/start reply missing usage: %q", reply)
	}
	for _, text := range []string{"/frobnicate", "hello there", "", "   "} {
		if reply := d.Dispatch(ctx, "alice", text); reply != unknownCommandText {
			t.Errorf("Dispatch(%q) = %q, want unknown-command reply", text, reply)
		}
	}
}

func TestDispatchSet(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	cases := []struct {
		text string
		want string
	}{
		{"/set", "Please provide a name and date.\nExample: /set birthday 2024-12-31"},
		{"/set birthday", "Please provide a name and date.\nExample: /set birthday 2024-12-31"},
		{"/set birthday 2024-02-30", "Invalid date format. Please use YYYY-MM-DD"},
		{"/set birthday 2030-01-01", "✅ Countdown 'birthday' set for 2030-01-01"},
		{"/set Birthday 2031-01-01", "A countdown with name 'Birthday' already exists."},
	}
	for _, tc := range cases {
		if got := d.Dispatch(ctx, "alice", tc.text); got != tc.want {
			t.Errorf("Dispatch(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestDispatchCountdownAndList(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	if got := d.Dispatch(ctx, "alice", "/countdown birthday"); got != "No countdown found with name 'birthday'" {
		t.Errorf("missing countdown reply = %q", got)
	}
	if got := d.Dispatch(ctx, "alice", "/list"); got != "No countdown events found." {
		t.Errorf("empty list reply = %q", got)
	}

	d.Dispatch(ctx, "alice", "/set birthday 2030-01-01")

	reply := d.Dispatch(ctx, "alice", "/countdown birthday")
	if !strings.Contains(reply, "⏳ Countdown for 'birthday':") || !strings.Contains(reply, "Remaining:") {
		t.Errorf("/countdown reply = %q", reply)
	}

	reply = d.Dispatch(ctx, "alice", "/list")
	if !strings.Contains(reply, "📋 Your countdown events:") || !strings.Contains(reply, "birthday") {
		t.Errorf("/list reply = %q", reply)
	}
	if lines := strings.Count(reply, "\n"); lines != 2 {
		t.Errorf("/list with one countdown has %d newlines, want 2: %q", lines, reply)
	}

	// Past dates report elapsed time, not an error.
	d.Dispatch(ctx, "bob", "/set launch 2000-01-01")
	reply = d.Dispatch(ctx, "bob", "/countdown launch")
	if !strings.Contains(reply, "Passed:") {
		t.Errorf("past countdown reply = %q, want elapsed breakdown", reply)
	}
}

func TestDispatchReminderToggle(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	if got := d.Dispatch(ctx, "alice", "/remind birthday"); got != "No countdown found with name 'birthday'" {
		t.Errorf("remind missing reply = %q", got)
	}

	d.Dispatch(ctx, "alice", "/set birthday 2030-01-01")

	if got := d.Dispatch(ctx, "alice", "/remind birthday"); got != "✅ Daily reminders for 'birthday' have been enabled." {
		t.Errorf("remind reply = %q", got)
	}
	if reply := d.Dispatch(ctx, "alice", "/list"); !strings.Contains(reply, "🔔") {
		t.Errorf("/list missing enabled bell: %q", reply)
	}
	if got := d.Dispatch(ctx, "alice", "/unremind birthday"); got != "✅ Daily reminders for 'birthday' have been disabled." {
		t.Errorf("unremind reply = %q", got)
	}
	if reply := d.Dispatch(ctx, "alice", "/list"); !strings.Contains(reply, "🔕") {
		t.Errorf("/list missing disabled bell: %q", reply)
	}
}

func TestDispatchDelete(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	d.Dispatch(ctx, "alice", "/set birthday 2030-01-01")

	if got := d.Dispatch(ctx, "alice", "/delete birthday"); got != "✅ Countdown 'birthday' has been deleted." {
		t.Errorf("delete reply = %q", got)
	}
	if got := d.Dispatch(ctx, "alice", "/countdown birthday"); got != "No countdown found with name 'birthday'" {
		t.Errorf("countdown after delete reply = %q", got)
	}
	if got := d.Dispatch(ctx, "alice", "/delete birthday"); got != "No countdown found with name 'birthday'" {
		t.Errorf("second delete reply = %q", got)
	}
}

func TestDispatchTimezone(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	if reply := d.Dispatch(ctx, "alice", "/timezone"); !strings.Contains(reply, "Common timezones:") {
		t.Errorf("bare /timezone reply = %q", reply)
	}
	if got := d.Dispatch(ctx, "alice", "/timezone Mars/Olympus"); got != "Unknown timezone 'Mars/Olympus'. Use an IANA name like Europe/Berlin." {
		t.Errorf("invalid timezone reply = %q", got)
	}
	if got := d.Dispatch(ctx, "alice", "/timezone Asia/Tokyo"); got != "✅ Timezone set to Asia/Tokyo" {
		t.Errorf("set timezone reply = %q", got)
	}

	d.Dispatch(ctx, "alice", "/set birthday 2030-01-01")
	if reply := d.Dispatch(ctx, "alice", "/countdown birthday"); !strings.Contains(reply, "Timezone: Asia/Tokyo") {
		t.Errorf("/countdown does not use owner timezone: %q", reply)
	}
}
