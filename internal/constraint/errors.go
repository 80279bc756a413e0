package constraint

import "errors"

// ErrInvalidArgument matches every InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError signals that a validator was handed a value it
// cannot inspect. It is a programming error in the caller, never a
// validation result.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalidArgument) true.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument returns an InvalidArgumentError carrying msg verbatim.
func InvalidArgument(msg string) error {
	return &InvalidArgumentError{Message: msg}
}
