package classify

import "fmt"

// IOError is returned when the metadata of an entry cannot be read at all.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading metadata of %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when a name or link target is not valid UTF-8 and
// therefore cannot be displayed.
type EncodingError struct {
	Path  string
	Field string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s of %q is not valid UTF-8", e.Field, e.Path)
}
