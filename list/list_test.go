package list //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forEachKind runs fn against a fresh list of every kind filled with vals.
func forEachKind(t *testing.T, vals []string, fn func(t *testing.T, l List[string])) {
	t.Helper()

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			fn(t, build(t, kind, vals...))
		})
	}
}

func build(t *testing.T, kind Kind, vals ...string) List[string] { //nolint:ireturn
	t.Helper()

	l, err := New[string](kind)
	require.NoError(t, err)

	for _, v := range vals {
		l.AddToRear(v)
	}

	return l
}

// assertLayout checks the structural invariants exposed by Snapshot.
func assertLayout(t *testing.T, l List[string]) {
	t.Helper()

	s := l.Snapshot()
	require.Equal(t, l.Len(), s.Len)

	used := 0
	for _, c := range s.Cells {
		if c.Used {
			used++
		}
	}
	require.Equal(t, s.Len, used)

	switch s.Kind {
	case KindArray:
		assert.GreaterOrEqual(t, s.Cap, s.Len)
		for i, c := range s.Cells {
			assert.Equal(t, i < s.Len, c.Used, "slot %d", i)
		}

	case KindSingle, KindDouble:
		if s.Len == 0 {
			assert.Equal(t, -1, s.Head)
			assert.Equal(t, -1, s.Tail)
			return
		}

		assert.Equal(t, 0, s.Head)
		assert.Equal(t, s.Len-1, s.Tail)
		for i, c := range s.Cells {
			if i == s.Len-1 {
				assert.Equal(t, -1, c.Next, "tail next")
			} else {
				assert.Equal(t, i+1, c.Next, "slot %d next", i)
			}

			if s.Kind == KindDouble {
				assert.Equal(t, i-1, c.Prev, "slot %d prev", i)
			}
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		l, err := New[int](kind, WithCapacity(4))
		require.NoError(t, err)
		assert.Equal(t, kind, l.Kind())
		assert.True(t, l.IsEmpty())
	}

	_, err := New[int]("ring")
	require.Error(t, err)

	k, err := ParseKind("single")
	require.NoError(t, err)
	assert.Equal(t, KindSingle, k)

	_, err = ParseKind("")
	require.Error(t, err)
}

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("front and rear", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, nil, func(t *testing.T, l List[string]) {
			l.AddToRear("B")
			l.AddToFront("A")
			l.Add("C")
			l.AddToRear("D")
			l.AddToFront("0")

			assert.Equal(t, []string{"0", "A", "B", "C", "D"}, l.Slice())
			assertLayout(t, l)
		})
	})

	t.Run("after", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B", "C"}, func(t *testing.T, l List[string]) {
			require.NoError(t, l.AddAfter("X", "A"))
			require.NoError(t, l.AddAfter("Y", "C"))
			assert.Equal(t, []string{"A", "X", "B", "C", "Y"}, l.Slice())

			last, err := l.Last()
			require.NoError(t, err)
			assert.Equal(t, "Y", last)

			err = l.AddAfter("Z", "missing")
			require.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, 5, l.Len())
			assertLayout(t, l)
		})
	})

	t.Run("after duplicate", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B", "A"}, func(t *testing.T, l List[string]) {
			require.NoError(t, l.AddAfter("X", "A"))
			assert.Equal(t, []string{"A", "X", "B", "A"}, l.Slice())
		})
	})

	t.Run("after on empty", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, nil, func(t *testing.T, l List[string]) {
			require.ErrorIs(t, l.AddAfter("X", "A"), ErrNotFound)
			assert.True(t, l.IsEmpty())
		})
	})

	t.Run("insert", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, nil, func(t *testing.T, l List[string]) {
			require.NoError(t, l.Insert(0, "B"))
			require.NoError(t, l.Insert(0, "A"))
			require.NoError(t, l.Insert(2, "D"))
			require.NoError(t, l.Insert(2, "C"))
			require.NoError(t, l.Insert(1, "AB"))

			assert.Equal(t, []string{"A", "AB", "B", "C", "D"}, l.Slice())
			assertLayout(t, l)
		})
	})

	t.Run("insert out of bounds", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A"}, func(t *testing.T, l List[string]) {
			for _, i := range []int{-1, 2, 10} {
				err := l.Insert(i, "X")
				require.ErrorIs(t, err, ErrOutOfBounds)

				var idxErr *IndexError
				require.ErrorAs(t, err, &idxErr)
				assert.Equal(t, i, idxErr.Index)
				assert.Equal(t, 1, idxErr.Size)
			}

			assert.Equal(t, []string{"A"}, l.Slice())
		})
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("first and last", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B", "C"}, func(t *testing.T, l List[string]) {
			v, err := l.RemoveFirst()
			require.NoError(t, err)
			assert.Equal(t, "A", v)

			v, err = l.RemoveLast()
			require.NoError(t, err)
			assert.Equal(t, "C", v)
			assertLayout(t, l)

			v, err = l.RemoveLast()
			require.NoError(t, err)
			assert.Equal(t, "B", v)
			assertLayout(t, l)

			_, err = l.RemoveFirst()
			require.ErrorIs(t, err, ErrEmpty)
			_, err = l.RemoveLast()
			require.ErrorIs(t, err, ErrEmpty)
		})
	})

	t.Run("by value", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B", "C", "B"}, func(t *testing.T, l List[string]) {
			v, err := l.Remove("B")
			require.NoError(t, err)
			assert.Equal(t, "B", v)
			assert.Equal(t, []string{"A", "C", "B"}, l.Slice())

			_, err = l.Remove("Z")
			require.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, 3, l.Len())

			_, err = l.Remove("B")
			require.NoError(t, err)
			_, err = l.Remove("A")
			require.NoError(t, err)
			assert.Equal(t, []string{"C"}, l.Slice())
			assertLayout(t, l)

			_, err = l.Remove("C")
			require.NoError(t, err)
			assert.True(t, l.IsEmpty())
			assertLayout(t, l)
		})
	})

	t.Run("by index", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B", "C", "D"}, func(t *testing.T, l List[string]) {
			v, err := l.RemoveAt(3)
			require.NoError(t, err)
			assert.Equal(t, "D", v)

			v, err = l.RemoveAt(1)
			require.NoError(t, err)
			assert.Equal(t, "B", v)

			v, err = l.RemoveAt(0)
			require.NoError(t, err)
			assert.Equal(t, "A", v)
			assert.Equal(t, []string{"C"}, l.Slice())
			assertLayout(t, l)
		})
	})

	t.Run("by index out of bounds", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B"}, func(t *testing.T, l List[string]) {
			for _, i := range []int{-1, 2, 3} {
				_, err := l.RemoveAt(i)
				require.ErrorIs(t, err, ErrOutOfBounds)
			}
			assert.Equal(t, 2, l.Len())
		})
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B"}, func(t *testing.T, l List[string]) {
			l.Clear()
			assert.True(t, l.IsEmpty())
			assert.Equal(t, "[]", l.String())
			assertLayout(t, l)

			l.Add("C")
			assert.Equal(t, []string{"C"}, l.Slice())
		})
	})
}

func TestAccess(t *testing.T) {
	t.Parallel()

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B", "C"}, func(t *testing.T, l List[string]) {
			for i := range l.Len() {
				require.NoError(t, l.Set(i, "X"+string(rune('0'+i))))

				v, err := l.Get(i)
				require.NoError(t, err)
				assert.Equal(t, "X"+string(rune('0'+i)), v)
				assert.Equal(t, 3, l.Len())
			}
		})
	})

	t.Run("bounds", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A"}, func(t *testing.T, l List[string]) {
			_, err := l.Get(1)
			require.ErrorIs(t, err, ErrOutOfBounds)
			_, err = l.Get(-1)
			require.ErrorIs(t, err, ErrOutOfBounds)
			require.ErrorIs(t, l.Set(1, "X"), ErrOutOfBounds)
		})
	})

	t.Run("first and last", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, nil, func(t *testing.T, l List[string]) {
			_, err := l.First()
			require.ErrorIs(t, err, ErrEmpty)
			_, err = l.Last()
			require.ErrorIs(t, err, ErrEmpty)

			l.Add("A")
			l.Add("B")

			first, err := l.First()
			require.NoError(t, err)
			assert.Equal(t, "A", first)

			last, err := l.Last()
			require.NoError(t, err)
			assert.Equal(t, "B", last)
		})
	})

	t.Run("index of", func(t *testing.T) {
		t.Parallel()

		forEachKind(t, []string{"A", "B", "A"}, func(t *testing.T, l List[string]) {
			assert.Equal(t, 0, l.IndexOf("A"))
			assert.Equal(t, 1, l.IndexOf("B"))
			assert.Equal(t, NotFound, l.IndexOf("C"))

			for _, v := range []string{"A", "B", "C", ""} {
				assert.Equal(t, l.IndexOf(v) == NotFound, !l.Contains(v), v)
			}
		})
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	forEachKind(t, nil, func(t *testing.T, l List[string]) {
		assert.Equal(t, "[]", l.String())

		l.Add("A")
		assert.Equal(t, "[A]", l.String())

		l.Add("B")
		l.Add("C")
		assert.Equal(t, "[A, B, C]", l.String())
	})

	ints := NewDoubleLinkedList[int]()
	ints.Add(1)
	ints.Add(22)
	assert.Equal(t, "[1, 22]", ints.String())
}

func TestSize(t *testing.T) {
	t.Parallel()

	forEachKind(t, nil, func(t *testing.T, l List[string]) {
		for i := range 25 {
			l.Add(string(rune('a' + i)))
			assert.Equal(t, i+1, l.Len())
		}

		ops := []func() error{
			func() error { _, err := l.RemoveFirst(); return err },
			func() error { _, err := l.RemoveLast(); return err },
			func() error { _, err := l.RemoveAt(5); return err },
			func() error { _, err := l.Remove("k"); return err },
		}
		for _, op := range ops {
			n := l.Len()
			require.NoError(t, op())
			assert.Equal(t, n-1, l.Len())
		}
		assertLayout(t, l)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, start := range [][]string{nil, {"A"}, {"A", "B", "C"}} {
		forEachKind(t, start, func(t *testing.T, l List[string]) {
			n := l.Len()
			l.AddToRear("X")

			v, err := l.RemoveLast()
			require.NoError(t, err)
			assert.Equal(t, "X", v)
			assert.Equal(t, n, l.Len())
			assert.Equal(t, start, nilIfEmpty(l.Slice()))
			assertLayout(t, l)
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}

func TestRange(t *testing.T) {
	t.Parallel()

	forEachKind(t, []string{"A", "B", "C"}, func(t *testing.T, l List[string]) {
		var got []string
		for v := range l.All() {
			got = append(got, v)
		}
		assert.Equal(t, []string{"A", "B", "C"}, got)

		got = got[:0]
		for v := range l.Backward() {
			got = append(got, v)
		}
		assert.Equal(t, []string{"C", "B", "A"}, got)

		for v := range l.All() {
			if v == "B" {
				break
			}
		}

		assert.PanicsWithValue(t, ErrConcurrentModification, func() {
			for range l.All() {
				l.Add("D")
			}
		})
	})
}
