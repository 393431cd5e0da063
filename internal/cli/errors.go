// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Repository errors
	ErrRepoNotFound     = "REPO_NOT_FOUND"
	ErrRepoNotSpecified = "REPO_NOT_SPECIFIED"
	ErrConfigInvalid    = "CONFIG_INVALID"

	// Item errors
	ErrItemNotFound  = "ITEM_NOT_FOUND"
	ErrDuplicatePath = "DUPLICATE_PATH"

	// Query errors
	ErrQueryInvalid = "QUERY_INVALID"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
