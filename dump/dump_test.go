package dump_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona/percona-iulist/dump"
	"github.com/percona/percona-iulist/list"
)

func TestTreeArray(t *testing.T) {
	t.Parallel()

	l := list.NewArrayList[string](3)
	l.Add("A")
	l.Add("B")

	tree := dump.Tree(l.Snapshot())
	assert.Equal(t, "array", tree.Label)
	assert.Equal(t, []string{"len: 2", "cap: 3", "version: 2"}, tree.Props)

	require.Len(t, tree.Children, 3)
	assert.Equal(t, dump.Node{Label: "#0 A"}, tree.Children[0])
	assert.Equal(t, dump.Node{Label: "#1 B"}, tree.Children[1])
	assert.Equal(t, dump.Node{Label: "#2", Props: []string{"free"}}, tree.Children[2])
}

func TestTreeLinked(t *testing.T) {
	t.Parallel()

	s := list.NewSingleLinkedList[string]()
	s.Add("A")
	s.Add("B")

	tree := dump.Tree(s.Snapshot())
	assert.Equal(t, "single", tree.Label)
	assert.Contains(t, tree.Props, "head: #0")
	assert.Contains(t, tree.Props, "tail: #1")
	assert.Equal(t, []dump.Node{
		{Label: "#0 A", Props: []string{"next: #1"}},
		{Label: "#1 B", Props: []string{"next: nil"}},
	}, tree.Children)

	d := list.NewDoubleLinkedList[string]()
	d.Add("A")
	d.Add("B")

	tree = dump.Tree(d.Snapshot())
	assert.Equal(t, []dump.Node{
		{Label: "#0 A", Props: []string{"prev: nil", "next: #1"}},
		{Label: "#1 B", Props: []string{"prev: #0", "next: nil"}},
	}, tree.Children)

	tree = dump.Tree(list.NewDoubleLinkedList[string]().Snapshot())
	assert.Contains(t, tree.Props, "head: nil")
	assert.Empty(t, tree.Children)
}

func TestTreeFollowsLinks(t *testing.T) {
	t.Parallel()

	snap := list.Snapshot{
		Kind: list.KindSingle,
		Len:  2,
		Cap:  2,
		Head: 1,
		Tail: 0,
		Cells: []list.Cell{
			{Slot: 0, Value: "B", Used: true, Next: -1, Prev: -1},
			{Slot: 1, Value: "A", Used: true, Next: 0, Prev: -1},
		},
	}

	tree := dump.Tree(snap)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, "#1 A", tree.Children[0].Label)
	assert.Equal(t, "#0 B", tree.Children[1].Label)
}

func TestRender(t *testing.T) {
	t.Parallel()

	l := list.NewDoubleLinkedList[int]()
	l.Add(7)
	l.Add(9)

	var buf bytes.Buffer
	require.NoError(t, dump.Render(&buf, l.Snapshot()))

	out := buf.String()
	assert.Contains(t, out, "double")
	assert.Contains(t, out, "#0 7")
	assert.Contains(t, out, "#1 9")
	assert.Contains(t, out, "prev: #0")
}
