package list

// singleIterator walks a SingleLinkedList.
//
// It keeps the nodes on both sides of the cursor so that Remove and Add can
// relink without a walk. Previous has no backward link and walks from the head.
type singleIterator[T comparable] struct {
	list *SingleLinkedList[T]

	prev      *node[T] // node before the cursor, nil at the start
	next      *node[T] // node after the cursor, nil at the end
	nextIndex int

	last     *node[T] // node returned by the last step
	lastPrev *node[T] // predecessor of last
	step     step
	expected uint64
}

func (l *SingleLinkedList[T]) newIterator(index int) *singleIterator[T] {
	it := &singleIterator[T]{
		list:      l,
		next:      l.head,
		nextIndex: index,
		expected:  l.version,
	}

	if index > 0 {
		it.prev = l.nodeAt(index - 1)
		it.next = it.prev.next
	}

	return it
}

func (it *singleIterator[T]) check() error {
	if it.expected != it.list.version {
		return ErrConcurrentModification
	}

	return nil
}

func (it *singleIterator[T]) HasNext() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}

	return it.next != nil, nil
}

func (it *singleIterator[T]) Next() (T, error) { //nolint:ireturn
	var zero T

	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotFound
	}

	it.last = it.next
	it.lastPrev = it.prev
	it.prev = it.next
	it.next = it.next.next
	it.nextIndex++
	it.step = stepForward

	return it.last.val, nil
}

func (it *singleIterator[T]) HasPrevious() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}

	return it.prev != nil, nil
}

func (it *singleIterator[T]) Previous() (T, error) { //nolint:ireturn
	var zero T

	ok, err := it.HasPrevious()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotFound
	}

	it.next = it.prev
	it.nextIndex--
	it.prev = nil
	if it.nextIndex > 0 {
		it.prev = it.list.nodeAt(it.nextIndex - 1)
	}

	it.last = it.next
	it.lastPrev = it.prev
	it.step = stepBackward

	return it.last.val, nil
}

func (it *singleIterator[T]) NextIndex() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}

	return it.nextIndex, nil
}

func (it *singleIterator[T]) PreviousIndex() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}

	return it.nextIndex - 1, nil
}

func (it *singleIterator[T]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}

	switch it.step {
	case stepNone:
		return ErrIllegalState
	case stepForward:
		// last is it.prev: the cursor moves back onto its predecessor
		it.list.unlinkAfter(it.lastPrev)
		it.prev = it.lastPrev
		it.nextIndex--
	case stepBackward:
		// last is it.next: the cursor keeps its predecessor
		it.list.unlinkAfter(it.prev)
		if it.prev == nil {
			it.next = it.list.head
		} else {
			it.next = it.prev.next
		}
	}

	it.last = nil
	it.lastPrev = nil
	it.step = stepNone
	it.expected = it.list.version

	return nil
}

func (it *singleIterator[T]) Set(element T) error {
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

func (it *singleIterator[T]) Add(element T) error {
	if err := it.check(); err != nil {
		return err
	}

	it.prev = it.list.insertAfter(it.prev, element)
	it.nextIndex++
	it.last = nil
	it.lastPrev = nil
	it.step = stepNone
	it.expected = it.list.version

	return nil
}
