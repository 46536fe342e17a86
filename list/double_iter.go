package list

// doubleIterator walks a DoubleLinkedList in both directions.
//
// The cursor is tracked by the node a forward step would return (nil at the end)
// and by its logical index.
type doubleIterator[T comparable] struct {
	list *DoubleLinkedList[T]

	next      *doubleNode[T]
	nextIndex int

	last     *doubleNode[T] // node returned by the last step
	step     step
	expected uint64
}

func (l *DoubleLinkedList[T]) newIterator(index int) *doubleIterator[T] {
	it := &doubleIterator[T]{
		list:      l,
		nextIndex: index,
		expected:  l.version,
	}

	if index < l.size {
		it.next = l.nodeAt(index)
	}

	return it
}

func (it *doubleIterator[T]) check() error {
	if it.expected != it.list.version {
		return ErrConcurrentModification
	}

	return nil
}

func (it *doubleIterator[T]) HasNext() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}

	return it.next != nil, nil
}

func (it *doubleIterator[T]) Next() (T, error) { //nolint:ireturn
	var zero T

	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotFound
	}

	it.last = it.next
	it.next = it.next.next
	it.nextIndex++
	it.step = stepForward

	return it.last.val, nil
}

func (it *doubleIterator[T]) HasPrevious() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}

	return it.nextIndex > 0, nil
}

func (it *doubleIterator[T]) Previous() (T, error) { //nolint:ireturn
	var zero T

	ok, err := it.HasPrevious()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotFound
	}

	if it.next == nil {
		it.next = it.list.tail
	} else {
		it.next = it.next.prev
	}

	it.last = it.next
	it.nextIndex--
	it.step = stepBackward

	return it.last.val, nil
}

func (it *doubleIterator[T]) NextIndex() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}

	return it.nextIndex, nil
}

func (it *doubleIterator[T]) PreviousIndex() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}

	return it.nextIndex - 1, nil
}

func (it *doubleIterator[T]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}

	switch it.step {
	case stepNone:
		return ErrIllegalState
	case stepForward:
		// one element fewer before the cursor
		it.nextIndex--
	case stepBackward:
		// last is the cursor node: move past it before it is unlinked
		it.next = it.last.next
	}

	it.list.unlink(it.last)
	it.last = nil
	it.step = stepNone
	it.expected = it.list.version

	return nil
}

func (it *doubleIterator[T]) Set(element T) error {
	if err := it.check(); err != nil {
		return err
	}
	if it.step == stepNone {
		return ErrIllegalState
	}

	it.last.val = element
	it.list.version++
	it.expected = it.list.version

	return nil
}

func (it *doubleIterator[T]) Add(element T) error {
	if err := it.check(); err != nil {
		return err
	}

	it.list.linkBefore(it.next, element)
	it.nextIndex++
	it.last = nil
	it.step = stepNone
	it.expected = it.list.version

	return nil
}
