package device

import "errors"

var (
	// ErrNotFound: the device (or referenced user) does not exist.
	ErrNotFound = errors.New("device not found")
	// ErrTechnicianNotFound: the selected technician id resolves to nothing.
	ErrTechnicianNotFound = errors.New("technician not found")
	// ErrForbidden: the actor's role may never perform this action.
	// Distinct from ErrInvalidTransition so callers can render
	// "permission" vs "fix your input" differently.
	ErrForbidden = errors.New("action not allowed for this role")
	// ErrInvalidTransition: the action is not legal from the device's
	// current state.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrValidation: a required field is missing or empty.
	ErrValidation = errors.New("validation error")
)
