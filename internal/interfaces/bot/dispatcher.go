package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"countdown/internal/application/dto"
	"countdown/internal/application/service"
	"countdown/internal/domain/constant"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"
)

const helpText = `👋 Welcome to the Countdown Bot!

Here's how to use me:
1. Create a countdown: /set <name> <date>
   Example: /set birthday 2024-12-31
2. Check countdown: /countdown <name>
3. List all countdowns: /list
4. Enable daily reminders: /remind <name>
5. Disable daily reminders: /unremind <name>
6. Delete a countdown: /delete <name>
7. Set your timezone: /timezone <zone>`

const unknownCommandText = "Unknown command. Send /start to see what I can do."

// Dispatcher maps inbound command text to service calls and renders replies.
// It holds no per-conversation state; every message is handled independently
// and every service error becomes a user-facing reply.
type Dispatcher struct {
	countdownSvc service.CountdownService
	ownerSvc     service.OwnerService
	log          logger.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(countdownSvc service.CountdownService, ownerSvc service.OwnerService, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		countdownSvc: countdownSvc,
		ownerSvc:     ownerSvc,
		log:          log,
	}
}

// Help returns the static help text, also used as the welcome message.
func (d *Dispatcher) Help() string {
	return helpText
}

// Dispatch handles one inbound message from an owner and returns the reply.
func (d *Dispatcher) Dispatch(ctx context.Context, ownerID, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return unknownCommandText
	}
	command, args := fields[0], fields[1:]

	switch command {
	case constant.CmdStart:
		return helpText
	case constant.CmdSet:
		return d.handleSet(ctx, ownerID, args)
	case constant.CmdCountdown:
		return d.handleCountdown(ctx, ownerID, args)
	case constant.CmdList:
		return d.handleList(ctx, ownerID)
	case constant.CmdRemind:
		return d.handleReminder(ctx, ownerID, args, true)
	case constant.CmdUnremind:
		return d.handleReminder(ctx, ownerID, args, false)
	case constant.CmdDelete:
		return d.handleDelete(ctx, ownerID, args)
	case constant.CmdTimezone:
		return d.handleTimezone(ctx, ownerID, args)
	default:
		return unknownCommandText
	}
}

func (d *Dispatcher) handleSet(ctx context.Context, ownerID string, args []string) string {
	if len(args) != 2 {
		return "Please provide a name and date.\nExample: /set birthday 2024-12-31"
	}
	name, dateStr := args[0], args[1]

	status, err := d.countdownSvc.Create(ctx, dto.CreateCountdownRequest{
		OwnerID:    ownerID,
		Name:       name,
		DateString: dateStr,
	})
	switch {
	case errors.Is(err, appErrors.ErrInvalidDate):
		return "Invalid date format. Please use YYYY-MM-DD"
	case errors.Is(err, appErrors.ErrDuplicateName):
		return fmt.Sprintf("A countdown with name '%s' already exists.", name)
	case err != nil:
		d.log.Error(fmt.Sprintf("Failed to create countdown for owner %s", ownerID), err)
		return "An error occurred while setting the countdown."
	}
	return fmt.Sprintf("✅ Countdown '%s' set for %s", status.Name, status.TargetDate)
}

func (d *Dispatcher) handleCountdown(ctx context.Context, ownerID string, args []string) string {
	if len(args) != 1 {
		return "Please provide a countdown name.\nExample: /countdown birthday"
	}
	name := args[0]

	status, err := d.countdownSvc.Describe(ctx, ownerID, name)
	switch {
	case errors.Is(err, appErrors.ErrCountdownNotFound):
		return fmt.Sprintf("No countdown found with name '%s'", name)
	case err != nil:
		d.log.Error(fmt.Sprintf("Failed to describe countdown for owner %s", ownerID), err)
		return "An error occurred while getting the countdown."
	}
	return fmt.Sprintf("⏳ Countdown for '%s':\nTimezone: %s\n%s", status.Name, status.Timezone, status.Summary())
}

func (d *Dispatcher) handleList(ctx context.Context, ownerID string) string {
	statuses, err := d.countdownSvc.List(ctx, ownerID)
	if err != nil {
		d.log.Error(fmt.Sprintf("Failed to list countdowns for owner %s", ownerID), err)
		return "An error occurred while listing countdowns."
	}
	if len(statuses) == 0 {
		return "No countdown events found."
	}

	var builder strings.Builder
	builder.WriteString("📋 Your countdown events:\n\n")
	for _, status := range statuses {
		builder.WriteString(status.ListLine())
		builder.WriteString("\n")
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

func (d *Dispatcher) handleReminder(ctx context.Context, ownerID string, args []string, enable bool) string {
	if len(args) != 1 {
		return "Please provide a countdown name."
	}
	name := args[0]

	err := d.countdownSvc.SetReminder(ctx, ownerID, name, enable)
	switch {
	case errors.Is(err, appErrors.ErrCountdownNotFound):
		return fmt.Sprintf("No countdown found with name '%s'", name)
	case err != nil:
		d.log.Error(fmt.Sprintf("Failed to toggle reminder for owner %s", ownerID), err)
		return "An error occurred while toggling the reminder."
	}
	state := "disabled"
	if enable {
		state = "enabled"
	}
	return fmt.Sprintf("✅ Daily reminders for '%s' have been %s.", name, state)
}

func (d *Dispatcher) handleDelete(ctx context.Context, ownerID string, args []string) string {
	if len(args) != 1 {
		return "Please provide a countdown name."
	}
	name := args[0]

	err := d.countdownSvc.Delete(ctx, ownerID, name)
	switch {
	case errors.Is(err, appErrors.ErrCountdownNotFound):
		return fmt.Sprintf("No countdown found with name '%s'", name)
	case err != nil:
		d.log.Error(fmt.Sprintf("Failed to delete countdown for owner %s", ownerID), err)
		return "An error occurred while deleting the countdown."
	}
	return fmt.Sprintf("✅ Countdown '%s' has been deleted.", name)
}

func (d *Dispatcher) handleTimezone(ctx context.Context, ownerID string, args []string) string {
	if len(args) != 1 {
		return "Please provide a timezone.\nExample: /timezone Europe/Berlin\n\nCommon timezones:\n" +
			strings.Join(constant.CommonTimezones, "\n")
	}
	zone := args[0]

	err := d.ownerSvc.SetTimezone(ctx, dto.SetTimezoneRequest{OwnerID: ownerID, Timezone: zone})
	switch {
	case errors.Is(err, appErrors.ErrInvalidTimezone):
		return fmt.Sprintf("Unknown timezone '%s'. Use an IANA name like Europe/Berlin.", zone)
	case err != nil:
		d.log.Error(fmt.Sprintf("Failed to set timezone for owner %s", ownerID), err)
		return "An error occurred while setting the timezone."
	}
	return fmt.Sprintf("✅ Timezone set to %s", zone)
}
