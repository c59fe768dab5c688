package ds1302

import "errors"

var (
	// ErrInvalidArgument is returned before any transfer starts when an
	// argument is out of range.
	ErrInvalidArgument = errors.New("ds1302: invalid argument")

	// ErrIO matches every error raised by a Line while driving the bus.
	ErrIO = errors.New("ds1302: line i/o failure")
)

// IOError reports the bus step that failed and the Line error behind it.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "ds1302: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match any IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }

func ioError(op string, err error) error {
	return &IOError{Op: op, Err: err}
}
