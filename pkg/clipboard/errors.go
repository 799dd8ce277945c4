package clipboard

import "errors"

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")
