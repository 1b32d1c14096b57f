package catalog

import "errors"

var (
	// ErrInvalidID marks a path identifier that is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid service ID format")
	// ErrNotFound marks a well-formed identifier with no matching service.
	ErrNotFound = errors.New("service not found")
)
