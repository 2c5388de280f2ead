package dmitype

import (
	"errors"
	"fmt"
)

// ErrInvalidType is matched by every InvalidTypeError
var ErrInvalidType = errors.New("invalid type")

// InvalidTypeError reports a --type argument that is neither a keyword nor
// a well-formed list of types in range. Numeric errors carry the parsed
// value, syntax errors carry the text remaining at the failure point.
type InvalidTypeError struct {
	Token   string
	Value   uint64
	Numeric bool
}

func (e *InvalidTypeError) Error() string {
	if e.Numeric {
		return fmt.Sprintf("%v: %d", ErrInvalidType, e.Value)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidType, e.Token)
}

func (e *InvalidTypeError) Unwrap() error {
	return ErrInvalidType
}
