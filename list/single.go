package list

import (
	"fmt"
	"iter"
)

// SingleLinkedList is a list of forward-linked nodes.
//
// Both ends are reachable in O(1) for insertion. Removing anything but the head
// walks to the predecessor, including removal of the tail.
// The zero value is an empty list.
type SingleLinkedList[T comparable] struct {
	head    *node[T]
	tail    *node[T]
	size    int
	version uint64
}

var _ List[int] = (*SingleLinkedList[int])(nil)

// NewSingleLinkedList creates an empty list.
func NewSingleLinkedList[T comparable]() *SingleLinkedList[T] {
	return &SingleLinkedList[T]{}
}

// Kind returns KindSingle.
func (l *SingleLinkedList[T]) Kind() Kind { return KindSingle }

// nodeAt walks to the node at index. The index must be valid.
func (l *SingleLinkedList[T]) nodeAt(index int) *node[T] {
	if index == l.size-1 {
		return l.tail
	}

	n := l.head
	for range index {
		n = n.next
	}

	return n
}

// insertAfter links a new node after prev, or at the head when prev is nil.
func (l *SingleLinkedList[T]) insertAfter(prev *node[T], element T) *node[T] {
	n := &node[T]{val: element}

	if prev == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}

	if n.next == nil {
		l.tail = n
	}

	l.size++
	l.version++

	return n
}

// unlinkAfter removes the node after prev, or the head when prev is nil.
func (l *SingleLinkedList[T]) unlinkAfter(prev *node[T]) T {
	var n *node[T]
	if prev == nil {
		n = l.head
		l.head = n.next
	} else {
		n = prev.next
		prev.next = n.next
	}

	if n == l.tail {
		l.tail = prev
	}

	n.next = nil
	l.size--
	l.version++

	return n.val
}

// find returns the first node equal to element and its predecessor.
func (l *SingleLinkedList[T]) find(element T) (*node[T], *node[T]) {
	var prev *node[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.val == element {
			return n, prev
		}
	}

	return nil, nil
}

func (l *SingleLinkedList[T]) AddToFront(element T) {
	l.insertAfter(nil, element)
}

func (l *SingleLinkedList[T]) AddToRear(element T) {
	l.insertAfter(l.tail, element)
}

func (l *SingleLinkedList[T]) Add(element T) {
	l.insertAfter(l.tail, element)
}

func (l *SingleLinkedList[T]) AddAfter(element, target T) error {
	n, _ := l.find(target)
	if n == nil {
		return ErrNotFound
	}

	l.insertAfter(n, element)
	return nil
}

func (l *SingleLinkedList[T]) Insert(index int, element T) error {
	if err := checkPosition(index, l.size); err != nil {
		return err
	}

	var prev *node[T]
	if index > 0 {
		prev = l.nodeAt(index - 1)
	}

	l.insertAfter(prev, element)
	return nil
}

func (l *SingleLinkedList[T]) RemoveFirst() (T, error) { //nolint:ireturn
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return l.unlinkAfter(nil), nil
}

func (l *SingleLinkedList[T]) RemoveLast() (T, error) { //nolint:ireturn
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	var prev *node[T]
	if l.size > 1 {
		prev = l.nodeAt(l.size - 2)
	}

	return l.unlinkAfter(prev), nil
}

func (l *SingleLinkedList[T]) Remove(element T) (T, error) { //nolint:ireturn
	n, prev := l.find(element)
	if n == nil {
		var zero T
		return zero, ErrNotFound
	}

	return l.unlinkAfter(prev), nil
}

func (l *SingleLinkedList[T]) RemoveAt(index int) (T, error) { //nolint:ireturn
	if err := checkIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}

	var prev *node[T]
	if index > 0 {
		prev = l.nodeAt(index - 1)
	}

	return l.unlinkAfter(prev), nil
}

func (l *SingleLinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
	l.version++
}

func (l *SingleLinkedList[T]) Set(index int, element T) error {
	if err := checkIndex(index, l.size); err != nil {
		return err
	}

	l.nodeAt(index).val = element
	l.version++
	return nil
}

func (l *SingleLinkedList[T]) Get(index int) (T, error) { //nolint:ireturn
	if err := checkIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}

	return l.nodeAt(index).val, nil
}

func (l *SingleLinkedList[T]) IndexOf(element T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.val == element {
			return i
		}
		i++
	}

	return NotFound
}

func (l *SingleLinkedList[T]) First() (T, error) { //nolint:ireturn
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.head.val, nil
}

func (l *SingleLinkedList[T]) Last() (T, error) { //nolint:ireturn
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.tail.val, nil
}

func (l *SingleLinkedList[T]) Contains(element T) bool {
	return l.IndexOf(element) != NotFound
}

func (l *SingleLinkedList[T]) IsEmpty() bool { return l.size == 0 }

func (l *SingleLinkedList[T]) Len() int { return l.size }

func (l *SingleLinkedList[T]) String() string {
	return formatSeq(l.All())
}

func (l *SingleLinkedList[T]) Slice() []T {
	rv := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		rv = append(rv, n.val)
	}

	return rv
}

func (l *SingleLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := l.version
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
			if l.version != version {
				panic(ErrConcurrentModification)
			}
		}
	}
}

// Backward has no backward links to follow, so it walks a copy of the elements.
func (l *SingleLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := l.version
		vals := l.Slice()
		for i := len(vals) - 1; i >= 0; i-- {
			if !yield(vals[i]) {
				return
			}
			if l.version != version {
				panic(ErrConcurrentModification)
			}
		}
	}
}

func (l *SingleLinkedList[T]) Iterator() Iterator[T] { //nolint:ireturn
	return l.newIterator(0)
}

func (l *SingleLinkedList[T]) ListIterator() ListIterator[T] { //nolint:ireturn
	return l.newIterator(0)
}

func (l *SingleLinkedList[T]) ListIteratorAt(index int) (ListIterator[T], error) { //nolint:ireturn
	if err := checkPosition(index, l.size); err != nil {
		return nil, err
	}

	return l.newIterator(index), nil
}

func (l *SingleLinkedList[T]) Snapshot() Snapshot {
	s := Snapshot{
		Kind:    KindSingle,
		Len:     l.size,
		Cap:     l.size,
		Version: l.version,
		Head:    -1,
		Tail:    -1,
	}

	slots := make(map[*node[T]]int, l.size)
	i := 0
	for n := l.head; n != nil; n = n.next {
		slots[n] = i
		i++
	}

	for n := l.head; n != nil; n = n.next {
		c := Cell{Slot: slots[n], Value: fmt.Sprint(n.val), Used: true, Next: -1, Prev: -1}
		if n.next != nil {
			c.Next = slots[n.next]
		}
		s.Cells = append(s.Cells, c)
	}

	if l.head != nil {
		s.Head = slots[l.head]
	}
	if slot, ok := slots[l.tail]; ok {
		s.Tail = slot
	}

	return s
}
