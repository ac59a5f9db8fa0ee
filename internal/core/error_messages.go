// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. When users encounter errors, they can quote the error code
// for faster diagnosis.
//
// Error codes are grouped by category:
//
// # Save Decode Errors (SAV001-SAV099)
//
//	SAV001 - Not recognized: The file is not a supported save format
//	         Patterns: "not recognized"
//	SAV002 - Truncated: The save file is incomplete
//	         Patterns: "truncated"
//	SAV003 - Corrupt: An integrity check inside the save failed
//	         Patterns: "checksum mismatch"
//	SAV004 - Unknown species: A creature record has no known species
//	         Patterns: "unknown species"
//	SAV005 - Bad field: A decoded field was outside its valid range
//	         Patterns: "out of range"
//	SAV006 - Game mismatch: The save belongs to a different game version
//	         Patterns: "not compatible"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Run not found: The requested run does not exist
//	         Patterns: "run not found"
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Duplicate key          Patterns: "duplicate key"
//	DB002 - Unique constraint      Patterns: "unique constraint", "violates unique"
//	DB003 - Foreign key            Patterns: "violates foreign key"
//	DB004 - Connection refused     Patterns: "connection refused"
//	DB005 - Connection reset       Patterns: "connection reset"
//	DB006 - Deadlock               Patterns: "deadlock"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large       Patterns: "request body too large"
//	FILE002 - No file              Patterns: "no file provided"
//	FILE003 - Empty file           Patterns: "empty file"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled     Patterns: "context canceled"
//	REQ002 - Request timeout       Patterns: "context deadline exceeded", "timeout"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests    Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: fallback when no pattern matches. Check the
//	         application logs for the original technical error.
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns are defined
// before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Matched with strings.Contains; first match wins, so specific
// patterns come before general ones.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Save Decode Errors (SAV001-SAV006)
	// Produced by the decode pipeline in internal/save.
	// =========================================================================
	{
		pattern: "not recognized",
		msg: UserMessage{
			Message: "This file is not a supported save format",
			Action:  "Upload a raw .sav file from a Generation 1-5 game",
			Code:    "SAV001",
		},
	},
	{
		pattern: "truncated",
		msg: UserMessage{
			Message: "The save file is incomplete",
			Action:  "Re-export the save from your cartridge or emulator",
			Code:    "SAV002",
		},
	},
	{
		pattern: "checksum mismatch",
		msg: UserMessage{
			Message: "The save file failed an integrity check",
			Action:  "The file may be corrupted; re-export and try again",
			Code:    "SAV003",
		},
	},
	{
		pattern: "unknown species",
		msg: UserMessage{
			Message: "The save contains a creature this tracker does not know",
			Action:  "The file may be corrupted or from an unsupported ROM hack",
			Code:    "SAV004",
		},
	},
	{
		pattern: "out of range",
		msg: UserMessage{
			Message: "The save contains an invalid value",
			Action:  "The file may be corrupted; re-export and try again",
			Code:    "SAV005",
		},
	},
	{
		pattern: "not compatible",
		msg: UserMessage{
			Message: "This save belongs to a different game than the run tracks",
			Action:  "Upload a save from the run's game version",
			Code:    "SAV006",
		},
	},

	// =========================================================================
	// Run Errors (RUN001)
	// =========================================================================
	{
		pattern: "run not found",
		msg: UserMessage{
			Message: "Run not found",
			Action:  "The run may have been deleted; refresh the run list",
			Code:    "RUN001",
		},
	},

	// =========================================================================
	// Database Constraint Errors (DB001-DB003)
	// =========================================================================
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A record with this ID already exists",
			Action:  "Please try again",
			Code:    "DB001",
		},
	},
	{
		pattern: "unique constraint",
		msg: UserMessage{
			Message: "This value must be unique but already exists",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "violates unique",
		msg: UserMessage{
			Message: "A duplicate value was found",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "violates foreign key",
		msg: UserMessage{
			Message: "Referenced record does not exist",
			Action:  "The run may have been deleted; refresh the run list",
			Code:    "DB003",
		},
	},

	// =========================================================================
	// Database Connection Errors (DB004-DB006)
	// =========================================================================
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB004",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB006",
		},
	},

	// =========================================================================
	// File Errors (FILE001-FILE003)
	// =========================================================================
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum size limit",
			Action:  "Save files are at most 1MB; upload a raw .sav file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select a .sav file to upload",
			Code:    "FILE002",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Please upload a raw .sav file",
			Code:    "FILE003",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ002)
	// =========================================================================
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again or check your connection",
			Code:    "REQ002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "REQ002",
		},
	},

	// =========================================================================
	// Rate Limiting (RATE001)
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
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

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error matches a known pattern and should be
// shown to users. Returns true for specific matches, false for the generic
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
