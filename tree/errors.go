package tree

import (
	"errors"
	"fmt"

	e "github.com/pkg/errors"
)

var (
	// ErrOccupied is returned when an insert addresses a slot that
	// already holds a node. Use Edit to change existing values.
	ErrOccupied = errors.New("slot is already occupied")

	// ErrRootOperation is returned when the root itself is addressed by
	// an operation that only works on child slots (Add, Delete).
	ErrRootOperation = errors.New("cannot add or delete the root by path")

	// ErrMissingNode is returned when an operation addresses a slot
	// that holds no node.
	ErrMissingNode = errors.New("no node at this path")

	// ErrNoTree is returned when a nil root was passed where an
	// existing tree is required.
	ErrNoTree = errors.New("no tree given")
)

// Reasons used by PathError.
const (
	ReasonInvalidChar = "invalid path character"
	ReasonBrokenPath  = "broken path"
)

// PathError is returned when a path string cannot be parsed or when the
// walk along it cannot be completed.
type PathError struct {
	// Reason is one of the Reason* constants above.
	Reason string

	// Pos is the zero based index of the offending step.
	Pos int
}

func (pe *PathError) Error() string {
	return fmt.Sprintf("%s at step %d", pe.Reason, pe.Pos)
}

// IsPathError asserts that `err` was caused by a bad or unwalkable path.
func IsPathError(err error) bool {
	_, ok := e.Cause(err).(*PathError)
	return ok
}

// FormatError is returned when a serialized document does not have the
// nested value/left/right shape.
type FormatError struct {
	Reason string
}

func (fe *FormatError) Error() string {
	return "bad tree document: " + fe.Reason
}

// IsFormatError asserts that `err` means a malformed tree document.
func IsFormatError(err error) bool {
	_, ok := e.Cause(err).(*FormatError)
	return ok
}
