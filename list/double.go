package list

import (
	"fmt"
	"iter"
)

// DoubleLinkedList is a list of nodes linked in both directions.
//
// Once a node is located, insertion and removal next to it are O(1).
// Index lookups walk from whichever end is nearer.
// The zero value is an empty list.
type DoubleLinkedList[T comparable] struct {
	head    *doubleNode[T]
	tail    *doubleNode[T]
	size    int
	version uint64
}

var _ List[int] = (*DoubleLinkedList[int])(nil)

// NewDoubleLinkedList creates an empty list.
func NewDoubleLinkedList[T comparable]() *DoubleLinkedList[T] {
	return &DoubleLinkedList[T]{}
}

// Kind returns KindDouble.
func (l *DoubleLinkedList[T]) Kind() Kind { return KindDouble }

// nodeAt returns the node at index. The index must be valid.
func (l *DoubleLinkedList[T]) nodeAt(index int) *doubleNode[T] {
	if index < l.size/2 {
		n := l.head
		for range index {
			n = n.next
		}
		return n
	}

	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// linkBefore links a new node before mark, or at the tail when mark is nil.
func (l *DoubleLinkedList[T]) linkBefore(mark *doubleNode[T], element T) *doubleNode[T] {
	n := &doubleNode[T]{val: element, next: mark}

	if mark == nil {
		n.prev = l.tail
		l.tail = n
	} else {
		n.prev = mark.prev
		mark.prev = n
	}

	if n.prev == nil {
		l.head = n
	} else {
		n.prev.next = n
	}

	l.size++
	l.version++

	return n
}

func (l *DoubleLinkedList[T]) unlink(n *doubleNode[T]) T {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.prev = nil
	n.next = nil
	l.size--
	l.version++

	return n.val
}

func (l *DoubleLinkedList[T]) find(element T) *doubleNode[T] {
	for n := l.head; n != nil; n = n.next {
		if n.val == element {
			return n
		}
	}

	return nil
}

func (l *DoubleLinkedList[T]) AddToFront(element T) {
	l.linkBefore(l.head, element)
}

func (l *DoubleLinkedList[T]) AddToRear(element T) {
	l.linkBefore(nil, element)
}

func (l *DoubleLinkedList[T]) Add(element T) {
	l.linkBefore(nil, element)
}

func (l *DoubleLinkedList[T]) AddAfter(element, target T) error {
	n := l.find(target)
	if n == nil {
		return ErrNotFound
	}

	l.linkBefore(n.next, element)
	return nil
}

func (l *DoubleLinkedList[T]) Insert(index int, element T) error {
	if err := checkPosition(index, l.size); err != nil {
		return err
	}

	var mark *doubleNode[T]
	if index < l.size {
		mark = l.nodeAt(index)
	}

	l.linkBefore(mark, element)
	return nil
}

func (l *DoubleLinkedList[T]) RemoveFirst() (T, error) { //nolint:ireturn
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.unlink(l.head), nil
}

func (l *DoubleLinkedList[T]) RemoveLast() (T, error) { //nolint:ireturn
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.unlink(l.tail), nil
}

func (l *DoubleLinkedList[T]) Remove(element T) (T, error) { //nolint:ireturn
	n := l.find(element)
	if n == nil {
		var zero T
		return zero, ErrNotFound
	}

	return l.unlink(n), nil
}

func (l *DoubleLinkedList[T]) RemoveAt(index int) (T, error) { //nolint:ireturn
	if err := checkIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}

	return l.unlink(l.nodeAt(index)), nil
}

func (l *DoubleLinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
	l.version++
}

func (l *DoubleLinkedList[T]) Set(index int, element T) error {
	if err := checkIndex(index, l.size); err != nil {
		return err
	}

	l.nodeAt(index).val = element
	l.version++
	return nil
}

func (l *DoubleLinkedList[T]) Get(index int) (T, error) { //nolint:ireturn
	if err := checkIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}

	return l.nodeAt(index).val, nil
}

func (l *DoubleLinkedList[T]) IndexOf(element T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.val == element {
			return i
		}
		i++
	}

	return NotFound
}

func (l *DoubleLinkedList[T]) First() (T, error) { //nolint:ireturn
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.head.val, nil
}

func (l *DoubleLinkedList[T]) Last() (T, error) { //nolint:ireturn
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.tail.val, nil
}

func (l *DoubleLinkedList[T]) Contains(element T) bool {
	return l.find(element) != nil
}

func (l *DoubleLinkedList[T]) IsEmpty() bool { return l.size == 0 }

func (l *DoubleLinkedList[T]) Len() int { return l.size }

func (l *DoubleLinkedList[T]) String() string {
	return formatSeq(l.All())
}

func (l *DoubleLinkedList[T]) Slice() []T {
	rv := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		rv = append(rv, n.val)
	}

	return rv
}

// All returns an iterator for all elements in the list.
func (l *DoubleLinkedList[T]) All() iter.Seq[T] {
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

// Backward returns an iterator for all elements in the list in reverse order.
func (l *DoubleLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := l.version
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.val) {
				return
			}
			if l.version != version {
				panic(ErrConcurrentModification)
			}
		}
	}
}

func (l *DoubleLinkedList[T]) Iterator() Iterator[T] { //nolint:ireturn
	return l.newIterator(0)
}

func (l *DoubleLinkedList[T]) ListIterator() ListIterator[T] { //nolint:ireturn
	return l.newIterator(0)
}

func (l *DoubleLinkedList[T]) ListIteratorAt(index int) (ListIterator[T], error) { //nolint:ireturn
	if err := checkPosition(index, l.size); err != nil {
		return nil, err
	}

	return l.newIterator(index), nil
}

func (l *DoubleLinkedList[T]) Snapshot() Snapshot {
	s := Snapshot{
		Kind:    KindDouble,
		Len:     l.size,
		Cap:     l.size,
		Version: l.version,
		Head:    -1,
		Tail:    -1,
	}

	slots := make(map[*doubleNode[T]]int, l.size)
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
		if slot, ok := slots[n.prev]; ok {
			c.Prev = slot
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
