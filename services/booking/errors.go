package booking

import "errors"

var (
	// ErrInvalidID marks a path identifier that is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid booking ID format")
	// ErrMissingQuery marks a listing request with neither serviceId nor email.
	ErrMissingQuery = errors.New("missing serviceId or email")
)
