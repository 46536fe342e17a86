package list

import (
	"fmt"
	"iter"

	"github.com/percona/percona-iulist/config"
)

// ArrayList is a list backed by a contiguous buffer.
//
// The buffer doubles whenever an insertion does not fit and never shrinks.
// Front and middle updates shift the tail of the buffer.
// The zero value is an empty list with the default capacity.
type ArrayList[T comparable] struct {
	buf     []T // len(buf) is the capacity
	size    int
	version uint64
}

var _ List[int] = (*ArrayList[int])(nil)

// NewArrayList creates an empty list with room for capacity elements.
// A non-positive capacity falls back to config.DefaultCapacity.
func NewArrayList[T comparable](capacity int) *ArrayList[T] {
	if capacity < 1 {
		capacity = config.DefaultCapacity
	}

	return &ArrayList[T]{buf: make([]T, capacity)}
}

// Kind returns KindArray.
func (a *ArrayList[T]) Kind() Kind { return KindArray }

// Cap returns the capacity of the backing buffer.
func (a *ArrayList[T]) Cap() int { return len(a.buf) }

// grow makes room for one more element.
func (a *ArrayList[T]) grow() {
	if a.size < len(a.buf) {
		return
	}

	n := len(a.buf) * config.GrowthFactor
	if n == 0 {
		n = config.DefaultCapacity
	}

	buf := make([]T, n)
	copy(buf, a.buf[:a.size])
	a.buf = buf
}

func (a *ArrayList[T]) insertAt(index int, element T) {
	a.grow()
	copy(a.buf[index+1:a.size+1], a.buf[index:a.size])
	a.buf[index] = element
	a.size++
	a.version++
}

func (a *ArrayList[T]) removeAt(index int) T {
	val := a.buf[index]
	copy(a.buf[index:a.size-1], a.buf[index+1:a.size])
	a.size--

	var zero T
	a.buf[a.size] = zero
	a.version++

	return val
}

func (a *ArrayList[T]) AddToFront(element T) {
	a.insertAt(0, element)
}

func (a *ArrayList[T]) AddToRear(element T) {
	a.insertAt(a.size, element)
}

func (a *ArrayList[T]) Add(element T) {
	a.insertAt(a.size, element)
}

func (a *ArrayList[T]) AddAfter(element, target T) error {
	i := a.IndexOf(target)
	if i == NotFound {
		return ErrNotFound
	}

	a.insertAt(i+1, element)
	return nil
}

func (a *ArrayList[T]) Insert(index int, element T) error {
	if err := checkPosition(index, a.size); err != nil {
		return err
	}

	a.insertAt(index, element)
	return nil
}

func (a *ArrayList[T]) RemoveFirst() (T, error) { //nolint:ireturn
	if a.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return a.removeAt(0), nil
}

func (a *ArrayList[T]) RemoveLast() (T, error) { //nolint:ireturn
	if a.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return a.removeAt(a.size - 1), nil
}

func (a *ArrayList[T]) Remove(element T) (T, error) { //nolint:ireturn
	i := a.IndexOf(element)
	if i == NotFound {
		var zero T
		return zero, ErrNotFound
	}

	return a.removeAt(i), nil
}

func (a *ArrayList[T]) RemoveAt(index int) (T, error) { //nolint:ireturn
	if err := checkIndex(index, a.size); err != nil {
		var zero T
		return zero, err
	}

	return a.removeAt(index), nil
}

// Clear removes all elements and keeps the capacity.
func (a *ArrayList[T]) Clear() {
	clear(a.buf[:a.size])
	a.size = 0
	a.version++
}

func (a *ArrayList[T]) Set(index int, element T) error {
	if err := checkIndex(index, a.size); err != nil {
		return err
	}

	a.buf[index] = element
	a.version++
	return nil
}

func (a *ArrayList[T]) Get(index int) (T, error) { //nolint:ireturn
	if err := checkIndex(index, a.size); err != nil {
		var zero T
		return zero, err
	}

	return a.buf[index], nil
}

func (a *ArrayList[T]) IndexOf(element T) int {
	for i := range a.size {
		if a.buf[i] == element {
			return i
		}
	}

	return NotFound
}

func (a *ArrayList[T]) First() (T, error) { //nolint:ireturn
	if a.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return a.buf[0], nil
}

func (a *ArrayList[T]) Last() (T, error) { //nolint:ireturn
	if a.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return a.buf[a.size-1], nil
}

func (a *ArrayList[T]) Contains(element T) bool {
	return a.IndexOf(element) != NotFound
}

func (a *ArrayList[T]) IsEmpty() bool { return a.size == 0 }

func (a *ArrayList[T]) Len() int { return a.size }

func (a *ArrayList[T]) String() string {
	return formatSeq(a.All())
}

func (a *ArrayList[T]) Slice() []T {
	rv := make([]T, a.size)
	copy(rv, a.buf[:a.size])
	return rv
}

func (a *ArrayList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := a.version
		for i := 0; i < a.size; i++ {
			if !yield(a.buf[i]) {
				return
			}
			if a.version != version {
				panic(ErrConcurrentModification)
			}
		}
	}
}

func (a *ArrayList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := a.version
		for i := a.size - 1; i >= 0; i-- {
			if !yield(a.buf[i]) {
				return
			}
			if a.version != version {
				panic(ErrConcurrentModification)
			}
		}
	}
}

func (a *ArrayList[T]) Iterator() Iterator[T] { //nolint:ireturn
	return a.newIterator(0)
}

func (a *ArrayList[T]) ListIterator() ListIterator[T] { //nolint:ireturn
	return a.newIterator(0)
}

func (a *ArrayList[T]) ListIteratorAt(index int) (ListIterator[T], error) { //nolint:ireturn
	if err := checkPosition(index, a.size); err != nil {
		return nil, err
	}

	return a.newIterator(index), nil
}

func (a *ArrayList[T]) Snapshot() Snapshot {
	s := Snapshot{
		Kind:    KindArray,
		Len:     a.size,
		Cap:     len(a.buf),
		Version: a.version,
		Head:    -1,
		Tail:    -1,
		Cells:   make([]Cell, len(a.buf)),
	}

	for i := range a.buf {
		c := Cell{Slot: i, Used: i < a.size, Next: -1, Prev: -1}
		if c.Used {
			c.Value = fmt.Sprint(a.buf[i])
		}
		s.Cells[i] = c
	}

	return s
}
