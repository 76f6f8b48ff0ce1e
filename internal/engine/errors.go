package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is matched by every InvalidSizeError via errors.Is.
var ErrInvalidSize = errors.New("invalid size")

// InvalidSizeError reports a size parameter (bin size, shape, offset or
// buffer length) that violates a precondition. Param names the offender.
type InvalidSizeError struct {
	Param string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid size of %s", e.Param)
}

// Is reports whether target is ErrInvalidSize.
func (e *InvalidSizeError) Is(target error) bool {
	return target == ErrInvalidSize
}

func invalidSize(param string) error {
	return &InvalidSizeError{Param: param}
}
