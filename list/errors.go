package list

import (
	"strconv"

	"github.com/percona/percona-iulist/errors"
)

var (
	// ErrNotFound is returned when a value lookup finds nothing or an iterator
	// steps past either end.
	ErrNotFound = errors.New("no such element")
	// ErrOutOfBounds is returned for an index outside the valid range.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrEmpty is returned by RemoveFirst, RemoveLast, First and Last on an empty list.
	ErrEmpty = errors.New("empty list")
	// ErrConcurrentModification is returned by an iterator whose list was changed
	// through another handle.
	ErrConcurrentModification = errors.New("list modified outside of the iterator")
	// ErrIllegalState is returned by iterator Remove or Set without a preceding
	// Next or Previous.
	ErrIllegalState = errors.New("no element to act on")
)

// IndexError reports an index outside the valid range.
type IndexError struct {
	Index int
	// Size is the length of the list at the time of the call.
	Size int
}

func (e *IndexError) Error() string {
	return "index " + strconv.Itoa(e.Index) + " out of bounds for length " + strconv.Itoa(e.Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfBounds //nolint:errorlint,err113
}

func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Index: index, Size: size}
	}

	return nil
}

func checkPosition(index, size int) error {
	if index < 0 || index > size {
		return &IndexError{Index: index, Size: size}
	}

	return nil
}
