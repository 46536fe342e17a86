package scenario

import (
	"slices"
	"strconv"

	"github.com/percona/percona-iulist/errors"
	"github.com/percona/percona-iulist/list"
)

// Error reasons a step may expect.
const (
	ReasonNotFound               = "notFound"
	ReasonOutOfBounds            = "outOfBounds"
	ReasonEmpty                  = "empty"
	ReasonConcurrentModification = "concurrentModification"
	ReasonIllegalState           = "illegalState"
	ReasonOther                  = "other"
)

// Reasons returns the reasons a step may name in err.
func Reasons() []string {
	return []string{
		ReasonNotFound,
		ReasonOutOfBounds,
		ReasonEmpty,
		ReasonConcurrentModification,
		ReasonIllegalState,
		ReasonOther,
	}
}

// Reason classifies a list error.
func Reason(err error) string {
	switch {
	case errors.Is(err, list.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, list.ErrOutOfBounds):
		return ReasonOutOfBounds
	case errors.Is(err, list.ErrEmpty):
		return ReasonEmpty
	case errors.Is(err, list.ErrConcurrentModification):
		return ReasonConcurrentModification
	case errors.Is(err, list.ErrIllegalState):
		return ReasonIllegalState
	}

	return ReasonOther
}

type argSet int

const (
	argValue argSet = 1 << iota
	argTarget
	argIndex
	argIter
)

var (
	errUnknownIterator = errors.New("unknown iterator")
	errNotListIterator = errors.New("not a list iterator")
	errNoCapacity      = errors.New("capacity is defined for array lists only")
)

// cursor is a named iterator. lit is nil for a forward-only iterator.
type cursor struct {
	it  list.Iterator[string]
	lit list.ListIterator[string]
}

// state is the list and iterators of one running case.
type state struct {
	list    list.List[string]
	cursors map[string]cursor
}

func (s *state) iterator(name string) (list.Iterator[string], error) { //nolint:ireturn
	c, ok := s.cursors[name]
	if !ok {
		return nil, errors.Wrapf(errUnknownIterator, "%q", name)
	}

	return c.it, nil
}

func (s *state) listIterator(name string) (list.ListIterator[string], error) { //nolint:ireturn
	c, ok := s.cursors[name]
	if !ok {
		return nil, errors.Wrapf(errUnknownIterator, "%q", name)
	}
	if c.lit == nil {
		return nil, errors.Wrapf(errNotListIterator, "%q", name)
	}

	return c.lit, nil
}

// opFunc executes a step and returns its result in string form.
type opFunc func(s *state, st *Step) (string, error)

type opDef struct {
	args argSet
	fn   opFunc
}

//nolint:gochecknoglobals
var operations = map[string]opDef{
	"addToFront": {argValue, func(s *state, st *Step) (string, error) {
		s.list.AddToFront(*st.Value)
		return "", nil
	}},
	"addToRear": {argValue, func(s *state, st *Step) (string, error) {
		s.list.AddToRear(*st.Value)
		return "", nil
	}},
	"add": {argValue, func(s *state, st *Step) (string, error) {
		s.list.Add(*st.Value)
		return "", nil
	}},
	"addAfter": {argValue | argTarget, func(s *state, st *Step) (string, error) {
		return "", s.list.AddAfter(*st.Value, *st.Target)
	}},
	"insert": {argIndex | argValue, func(s *state, st *Step) (string, error) {
		return "", s.list.Insert(*st.Index, *st.Value)
	}},
	"removeFirst": {0, func(s *state, _ *Step) (string, error) {
		return s.list.RemoveFirst()
	}},
	"removeLast": {0, func(s *state, _ *Step) (string, error) {
		return s.list.RemoveLast()
	}},
	"remove": {argValue, func(s *state, st *Step) (string, error) {
		return s.list.Remove(*st.Value)
	}},
	"removeAt": {argIndex, func(s *state, st *Step) (string, error) {
		return s.list.RemoveAt(*st.Index)
	}},
	"clear": {0, func(s *state, _ *Step) (string, error) {
		s.list.Clear()
		return "", nil
	}},
	"set": {argIndex | argValue, func(s *state, st *Step) (string, error) {
		return "", s.list.Set(*st.Index, *st.Value)
	}},
	"get": {argIndex, func(s *state, st *Step) (string, error) {
		return s.list.Get(*st.Index)
	}},
	"indexOf": {argValue, func(s *state, st *Step) (string, error) {
		return strconv.Itoa(s.list.IndexOf(*st.Value)), nil
	}},
	"first": {0, func(s *state, _ *Step) (string, error) {
		return s.list.First()
	}},
	"last": {0, func(s *state, _ *Step) (string, error) {
		return s.list.Last()
	}},
	"contains": {argValue, func(s *state, st *Step) (string, error) {
		return strconv.FormatBool(s.list.Contains(*st.Value)), nil
	}},
	"isEmpty": {0, func(s *state, _ *Step) (string, error) {
		return strconv.FormatBool(s.list.IsEmpty()), nil
	}},
	"len": {0, func(s *state, _ *Step) (string, error) {
		return strconv.Itoa(s.list.Len()), nil
	}},
	"string": {0, func(s *state, _ *Step) (string, error) {
		return s.list.String(), nil
	}},
	"capacity": {0, func(s *state, _ *Step) (string, error) {
		a, ok := s.list.(*list.ArrayList[string])
		if !ok {
			return "", errNoCapacity
		}
		return strconv.Itoa(a.Cap()), nil
	}},

	"iterator": {argIter, func(s *state, st *Step) (string, error) {
		s.cursors[st.Iter] = cursor{it: s.list.Iterator()}
		return "", nil
	}},
	"listIterator": {argIter, func(s *state, st *Step) (string, error) {
		var it list.ListIterator[string]
		if st.Index == nil {
			it = s.list.ListIterator()
		} else {
			var err error
			it, err = s.list.ListIteratorAt(*st.Index)
			if err != nil {
				return "", err
			}
		}

		s.cursors[st.Iter] = cursor{it: it, lit: it}
		return "", nil
	}},
	"hasNext": {argIter, func(s *state, st *Step) (string, error) {
		it, err := s.iterator(st.Iter)
		if err != nil {
			return "", err
		}
		ok, err := it.HasNext()
		return strconv.FormatBool(ok), err
	}},
	"next": {argIter, func(s *state, st *Step) (string, error) {
		it, err := s.iterator(st.Iter)
		if err != nil {
			return "", err
		}
		return it.Next()
	}},
	"iterRemove": {argIter, func(s *state, st *Step) (string, error) {
		it, err := s.iterator(st.Iter)
		if err != nil {
			return "", err
		}
		return "", it.Remove()
	}},
	"hasPrevious": {argIter, func(s *state, st *Step) (string, error) {
		it, err := s.listIterator(st.Iter)
		if err != nil {
			return "", err
		}
		ok, err := it.HasPrevious()
		return strconv.FormatBool(ok), err
	}},
	"previous": {argIter, func(s *state, st *Step) (string, error) {
		it, err := s.listIterator(st.Iter)
		if err != nil {
			return "", err
		}
		return it.Previous()
	}},
	"nextIndex": {argIter, func(s *state, st *Step) (string, error) {
		it, err := s.listIterator(st.Iter)
		if err != nil {
			return "", err
		}
		i, err := it.NextIndex()
		return strconv.Itoa(i), err
	}},
	"previousIndex": {argIter, func(s *state, st *Step) (string, error) {
		it, err := s.listIterator(st.Iter)
		if err != nil {
			return "", err
		}
		i, err := it.PreviousIndex()
		return strconv.Itoa(i), err
	}},
	"iterSet": {argIter | argValue, func(s *state, st *Step) (string, error) {
		it, err := s.listIterator(st.Iter)
		if err != nil {
			return "", err
		}
		return "", it.Set(*st.Value)
	}},
	"iterAdd": {argIter | argValue, func(s *state, st *Step) (string, error) {
		it, err := s.listIterator(st.Iter)
		if err != nil {
			return "", err
		}
		return "", it.Add(*st.Value)
	}},
}

// Ops returns the names of all supported operations.
func Ops() []string {
	rv := make([]string, 0, len(operations))
	for name := range operations {
		rv = append(rv, name)
	}
	slices.Sort(rv)

	return rv
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func quote(s string) string {
	return strconv.Quote(s)
}
