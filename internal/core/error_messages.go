package core

// # Error Codes Reference
//
// This file maps technical storage errors to short descriptions with codes.
// The description becomes the text of an "Error" outcome; the technical
// error is logged alongside the run ID so the two can be correlated.
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Duplicate key: A record with this ID already exists
//	        Patterns: "duplicate key"
//
//	DB002 - Unique constraint: This value must be unique but already exists
//	        Patterns: "unique constraint", "violates unique"
//
//	DB003 - Locked: Database was busy with conflicting operations
//	        Patterns: "database is locked", "sqlite_busy", "lock timeout", "deadlock"
//
//	DB004 - Connection refused: Unable to connect to database
//	        Patterns: "connection refused", "unable to open database"
//
//	DB005 - Connection reset: Database connection was interrupted
//	        Patterns: "connection reset"
//
//	DB006 - Timeout: Operation timed out
//	        Patterns: "timeout"
//
//	DB007 - Type mismatch: Value does not match the column type
//	        Patterns: "datatype mismatch", "invalid input syntax"
//
// # Table Errors (TBL001-TBL099)
//
//	TBL001 - Table not found: The table has not been created
//	         Patterns: "no such table", "does not exist"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Cancelled: Run was cancelled before the record was processed
//	         Patterns: "context canceled"
//
//	RUN002 - Deadline: Run deadline passed before the record was processed
//	         Patterns: "context deadline exceeded"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected storage error occurred
//
// Patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns come first.

import (
	"fmt"
	"strings"
)

// UserMessage provides a short error description with a support code.
type UserMessage struct {
	Message string // What happened
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgLocked   = UserMessage{Message: "Database was busy with conflicting operations", Code: "DB003"}
	msgConnect  = UserMessage{Message: "Unable to connect to database", Code: "DB004"}
	msgMismatch = UserMessage{Message: "Value does not match the column type", Code: "DB007"}
	msgNoTable  = UserMessage{Message: "Table has not been created", Code: "TBL001"}
)

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// Order matters: context errors come before the generic "timeout" pattern
// and lock errors come before both.
var errorPatterns = []errorPattern{
	// Constraint errors
	{pattern: "duplicate key", msg: UserMessage{Message: "A record with this ID already exists", Code: "DB001"}},
	{pattern: "unique constraint", msg: UserMessage{Message: "This value must be unique but already exists", Code: "DB002"}},
	{pattern: "violates unique", msg: UserMessage{Message: "This value must be unique but already exists", Code: "DB002"}},

	// Contention
	{pattern: "database is locked", msg: msgLocked},
	{pattern: "sqlite_busy", msg: msgLocked},
	{pattern: "lock timeout", msg: msgLocked},
	{pattern: "deadlock", msg: msgLocked},

	// Run lifecycle
	{pattern: "context canceled", msg: UserMessage{Message: "Run was cancelled", Code: "RUN001"}},
	{pattern: "context deadline exceeded", msg: UserMessage{Message: "Run deadline passed", Code: "RUN002"}},

	// Connectivity
	{pattern: "connection refused", msg: msgConnect},
	{pattern: "unable to open database", msg: msgConnect},
	{pattern: "connection reset", msg: UserMessage{Message: "Database connection was interrupted", Code: "DB005"}},
	{pattern: "timeout", msg: UserMessage{Message: "Operation timed out", Code: "DB006"}},

	// Schema and values
	{pattern: "no such table", msg: msgNoTable},
	{pattern: "does not exist", msg: msgNoTable},
	{pattern: "datatype mismatch", msg: msgMismatch},
	{pattern: "invalid input syntax", msg: msgMismatch},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected storage error occurred",
	Code:    "ERR000",
}

// MapError converts a technical error to a short description.
// If no pattern matches, the ERR000 fallback is returned.
//
// Example:
//
//	err := errors.New("database is locked (5) (SQLITE_BUSY)")
//	msg := MapError(err)
//	// msg.Code == "DB003"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatStoreError creates the description used in "Error" outcomes.
// The format is: "Message (Code: XXX)".
func FormatStoreError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s)", msg.Message, msg.Code)
}

// IsKnownError reports whether err matches a specific pattern rather than
// the ERR000 fallback.
func IsKnownError(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
