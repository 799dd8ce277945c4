package app

import "fmt"

// PathInvalidError is returned when the requested root is missing or is not a
// directory.
type PathInvalidError struct {
	Path   string
	Reason string
	Err    error
}

func (e *PathInvalidError) Error() string {
	return fmt.Sprintf("invalid path %s: %s", e.Path, e.Reason)
}

func (e *PathInvalidError) Unwrap() error {
	return e.Err
}
