package errors

import "errors"

// Custom application errors
var (
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")       // Malformed or impossible calendar date
	ErrDuplicateName     = errors.New("countdown name already exists")           // Create collides with an existing name for the owner
	ErrCountdownNotFound = errors.New("countdown not found")                     // Lookup/mutate/delete on a nonexistent countdown
	ErrInvalidTimezone   = errors.New("invalid timezone")                        // Not an IANA zone name
	ErrInvalidConfig     = errors.New("invalid configuration")                   // Unparsable timezone or reminder time at startup (fatal)
	ErrDatabaseOperation = errors.New("database operation failed")               // Generic database error
	ErrDelivery          = errors.New("failed to deliver outbound notification") // Non-fatal, logged and skipped
)
