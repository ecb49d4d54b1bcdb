package response

import "fmt"

// Error codes exposed to API, CLI and tool-protocol collaborators.
// Codes are stable: collaborators branch on them programmatically.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeAlreadyExists      = "ALREADY_EXISTS"
	ErrCodeWipLimitExceeded   = "WIP_LIMIT_EXCEEDED"
	ErrCodeColumnNotEmpty     = "COLUMN_NOT_EMPTY"
	ErrCodeInvalidColumnOrder = "INVALID_COLUMN_ORDER"
	ErrCodeVersionConflict    = "VERSION_CONFLICT"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// AppError is the error type crossing the service boundary. Every failure
// carries a stable machine-readable code, a human-readable message, and
// optional structured details (offending field, current count, limit, ...).
type AppError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError with the given code and message
func NewAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// WithDetails attaches structured details to the error
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// IsConflictCode reports whether the code belongs to the conflict category.
// VERSION_CONFLICT is the only retry-safe member: it signals a concurrent
// write, not a violated business rule.
func IsConflictCode(code string) bool {
	switch code {
	case ErrCodeAlreadyExists, ErrCodeWipLimitExceeded, ErrCodeColumnNotEmpty,
		ErrCodeVersionConflict:
		return true
	}
	return false
}

// IsValidationCode reports whether the code belongs to the validation category
func IsValidationCode(code string) bool {
	return code == ErrCodeValidation || code == ErrCodeInvalidColumnOrder
}

// CLI collaborator exit codes per error category
const (
	ExitGeneric      = 1
	ExitValidation   = 2
	ExitUnauthorized = 3
	ExitForbidden    = 4
	ExitNotFound     = 5
	ExitConflict     = 6
	ExitRateLimited  = 7
)

// ExitCode maps an error code to the process exit code used by the CLI layer
func ExitCode(code string) int {
	switch {
	case IsValidationCode(code):
		return ExitValidation
	case code == ErrCodeUnauthorized:
		return ExitUnauthorized
	case code == ErrCodeForbidden:
		return ExitForbidden
	case code == ErrCodeNotFound:
		return ExitNotFound
	case code == ErrCodeRateLimited:
		return ExitRateLimited
	case IsConflictCode(code):
		return ExitConflict
	}
	return ExitGeneric
}
