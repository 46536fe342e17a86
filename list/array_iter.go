package list

// arrayIterator walks an ArrayList by index.
type arrayIterator[T comparable] struct {
	list *ArrayList[T]

	cursor   int // index of the element returned by the next Next
	last     int // index of the element returned by the last step
	step     step
	expected uint64
}

func (a *ArrayList[T]) newIterator(index int) *arrayIterator[T] {
	return &arrayIterator[T]{
		list:     a,
		cursor:   index,
		last:     -1,
		expected: a.version,
	}
}

func (it *arrayIterator[T]) check() error {
	if it.expected != it.list.version {
		return ErrConcurrentModification
	}

	return nil
}

func (it *arrayIterator[T]) HasNext() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}

	return it.cursor < it.list.size, nil
}

func (it *arrayIterator[T]) Next() (T, error) { //nolint:ireturn
	var zero T

	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotFound
	}

	it.last = it.cursor
	it.cursor++
	it.step = stepForward

	return it.list.buf[it.last], nil
}

func (it *arrayIterator[T]) HasPrevious() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}

	return it.cursor > 0, nil
}

func (it *arrayIterator[T]) Previous() (T, error) { //nolint:ireturn
	var zero T

	ok, err := it.HasPrevious()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotFound
	}

	it.cursor--
	it.last = it.cursor
	it.step = stepBackward

	return it.list.buf[it.last], nil
}

func (it *arrayIterator[T]) NextIndex() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}

	return it.cursor, nil
}

func (it *arrayIterator[T]) PreviousIndex() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}

	return it.cursor - 1, nil
}

func (it *arrayIterator[T]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}

	switch it.step {
	case stepNone:
		return ErrIllegalState
	case stepForward:
		// the cursor was right after the removed element
		it.cursor--
	case stepBackward:
		// the cursor already points at the slot the next element shifts into
	}

	it.list.removeAt(it.last)
	it.last = -1
	it.step = stepNone
	it.expected = it.list.version

	return nil
}

func (it *arrayIterator[T]) Set(element T) error {
	if err := it.check(); err != nil {
		return err
	}
	if it.step == stepNone {
		return ErrIllegalState
	}

	it.list.buf[it.last] = element
	it.list.version++
	it.expected = it.list.version

	return nil
}

func (it *arrayIterator[T]) Add(element T) error {
	if err := it.check(); err != nil {
		return err
	}

	it.list.insertAt(it.cursor, element)
	it.cursor++
	it.last = -1
	it.step = stepNone
	it.expected = it.list.version

	return nil
}
