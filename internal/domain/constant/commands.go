package constant

// Bot commands recognized by the dispatcher.
const (
	CmdStart     = "/start"
	CmdSet       = "/set"
	CmdCountdown = "/countdown"
	CmdList      = "/list"
	CmdRemind    = "/remind"
	CmdUnremind  = "/unremind"
	CmdDelete    = "/delete"
	CmdTimezone  = "/timezone"
)

// CommonTimezones are offered when the user asks to change their timezone.
var CommonTimezones = []string{
	"Europe/Berlin",
	"UTC",
	"America/New_York",
	"Europe/London",
	"Asia/Tokyo",
	"Australia/Sydney",
}
