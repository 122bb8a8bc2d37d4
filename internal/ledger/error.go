package ledger

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// -- Resource State --
	ErrNotFound = errors.New("not found")

	// -- Validation & Input --
	ErrInvalidAmount = errors.New("invalid amount")
	ErrValidation    = errors.New("validation error")
)

// Kind returns the machine-readable error kind reported to clients.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrInvalidAmount):
		return "InvalidAmount"
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	default:
		return "Internal"
	}
}
