package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAllocation is returned when an arena cannot obtain a block of the
	// requested capacity. The container is left as it was before the call.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrNotCopyable is returned when a copy is requested for an element type
	// whose Traits mark it as not copyable.
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)

// Element lifecycle operations reported by ElementError.
const (
	OpConstruct = "construct"
	OpCopy      = "copy"
	OpMove      = "move"
)

// ElementError reports a failed element hook together with the slot it was
// operating on.
type ElementError struct {
	Op    string
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("vector: %s element %d: %v", e.Op, e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Cause is recognised by errors.Cause.
func (e *ElementError) Cause() error { return e.Err }

func elementError(op string, index int, err error) error {
	if err == nil {
		return nil
	}
	return &ElementError{Op: op, Index: index, Err: err}
}
