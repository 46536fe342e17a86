/*
Package list provides generic indexed unsorted lists.

Three backings implement the same List contract:

  - ArrayList: a growable contiguous buffer that doubles when full.

  - SingleLinkedList: forward-linked nodes with head and tail references.

  - DoubleLinkedList: nodes linked in both directions with head and tail references.

Elements keep the order chosen by the caller. Lookups by value use ==.

Every structural change bumps a version counter on the list. Iterators copy the counter
when created and fail with ErrConcurrentModification once the list was changed through
any other handle. Changes made through the iterator itself keep it valid.

Lists are not safe for concurrent use.
*/
package list

import (
	"iter"

	"github.com/percona/percona-iulist/config"
	"github.com/percona/percona-iulist/errors"
)

// NotFound is returned by IndexOf when no element is equal to the target.
const NotFound = -1

// Kind names a list backing.
type Kind string

const (
	// KindArray is the array-backed list.
	KindArray Kind = "array"
	// KindSingle is the singly-linked list.
	KindSingle Kind = "single"
	// KindDouble is the doubly-linked list.
	KindDouble Kind = "double"
)

// Kinds returns all known kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindArray, KindSingle, KindDouble}
}

// ParseKind converts s into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindArray, KindSingle, KindDouble:
		return k, nil
	}

	return "", errors.Errorf("unknown list kind %q", s)
}

// List is the indexed unsorted list contract shared by all backings.
type List[T comparable] interface {
	// AddToFront inserts element at index 0.
	AddToFront(element T)
	// AddToRear appends element.
	AddToRear(element T)
	// Add appends element. It is the same as AddToRear.
	Add(element T)
	// AddAfter inserts element right after the first element equal to target.
	AddAfter(element, target T) error
	// Insert inserts element at index. The index must be in [0, Len()].
	Insert(index int, element T) error

	// RemoveFirst removes and returns the first element.
	RemoveFirst() (T, error)
	// RemoveLast removes and returns the last element.
	RemoveLast() (T, error)
	// Remove removes and returns the first element equal to element.
	Remove(element T) (T, error)
	// RemoveAt removes and returns the element at index.
	RemoveAt(index int) (T, error)
	// Clear removes all elements.
	Clear()

	Set(index int, element T) error
	Get(index int) (T, error)
	// IndexOf returns the index of the first element equal to element or NotFound.
	IndexOf(element T) int
	First() (T, error)
	Last() (T, error)
	Contains(element T) bool
	IsEmpty() bool
	Len() int

	// String renders the list as "[a, b, c]".
	String() string
	// Slice returns a copy of the elements in order.
	Slice() []T
	// All returns a read-only iterator over the elements in order.
	// It panics with ErrConcurrentModification when the list changes during the range.
	All() iter.Seq[T]
	// Backward is like All in reverse order.
	Backward() iter.Seq[T]

	Iterator() Iterator[T]
	ListIterator() ListIterator[T]
	// ListIteratorAt returns a list iterator positioned before index.
	// The index must be in [0, Len()].
	ListIteratorAt(index int) (ListIterator[T], error)

	Kind() Kind
	// Snapshot describes the internal layout of the list.
	Snapshot() Snapshot
}

// Iterator is a forward cursor over a list.
type Iterator[T any] interface {
	HasNext() (bool, error)
	// Next returns the next element. It fails with ErrNotFound at the end.
	Next() (T, error)
	// Remove removes the element returned by the last Next.
	Remove() error
}

// ListIterator is a bidirectional cursor over a list.
// The cursor sits between two elements.
type ListIterator[T any] interface {
	Iterator[T]

	HasPrevious() (bool, error)
	// Previous returns the element before the cursor. It fails with ErrNotFound at the start.
	Previous() (T, error)
	NextIndex() (int, error)
	PreviousIndex() (int, error)
	// Set replaces the element returned by the last Next or Previous.
	Set(element T) error
	// Add inserts element before the cursor.
	Add(element T) error
}

// Option configures a list created by New.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial capacity of an array-backed list.
// Linked lists ignore it.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New creates an empty list of the given kind.
func New[T comparable](kind Kind, opts ...Option) (List[T], error) { //nolint:ireturn
	o := options{capacity: config.DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindArray:
		return NewArrayList[T](o.capacity), nil
	case KindSingle:
		return NewSingleLinkedList[T](), nil
	case KindDouble:
		return NewDoubleLinkedList[T](), nil
	}

	return nil, errors.Errorf("unknown list kind %q", kind)
}

// step records the direction of the last traversal made by an iterator.
type step int

const (
	// stepNone means there is no element Remove or Set may act on.
	stepNone step = iota
	stepForward
	stepBackward
)
