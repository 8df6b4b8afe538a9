package spreadsheet

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrTransport = errors.New("transport failure")
)

// TransportError wraps a failed Google Sheets API call with the name of the
// operation that issued it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v (%v)", e.Op, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func transport(op string, err error) error {
	return &TransportError{
		Op:  op,
		Err: err,
	}
}
