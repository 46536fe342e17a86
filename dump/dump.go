// Package dump renders the internal layout of a list as an ASCII tree.
package dump

import (
	"fmt"
	"io"
	"strconv"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/percona/percona-iulist/list"
)

// Node is one line of the rendered tree.
type Node struct {
	Label    string   `asciitree:"label"`
	Props    []string `asciitree:"properties"`
	Children []Node   `asciitree:"children"`
}

// Tree converts a snapshot into a tree with one child per cell.
// Array slots are listed in slot order. Linked nodes are listed from the head.
func Tree(snap list.Snapshot) Node {
	root := Node{
		Label: string(snap.Kind),
		Props: []string{
			"len: " + strconv.Itoa(snap.Len),
			"cap: " + strconv.Itoa(snap.Cap),
			"version: " + strconv.FormatUint(snap.Version, 10),
		},
	}

	if snap.Kind != list.KindArray {
		root.Props = append(root.Props, "head: "+slot(snap.Head), "tail: "+slot(snap.Tail))
	}

	for _, c := range ordered(snap) {
		root.Children = append(root.Children, cellNode(snap.Kind, c))
	}

	return root
}

// Render writes the tree of snap to w.
func Render(w io.Writer, snap list.Snapshot) error {
	_, err := fmt.Fprint(w, asciitree.RenderFancy(Tree(snap)))
	return err //nolint:wrapcheck
}

func cellNode(kind list.Kind, c list.Cell) Node {
	n := Node{Label: fmt.Sprintf("#%d %s", c.Slot, c.Value)}

	switch kind {
	case list.KindArray:
		if !c.Used {
			n.Label = fmt.Sprintf("#%d", c.Slot)
			n.Props = []string{"free"}
		}
	case list.KindSingle:
		n.Props = []string{"next: " + slot(c.Next)}
	case list.KindDouble:
		n.Props = []string{"prev: " + slot(c.Prev), "next: " + slot(c.Next)}
	}

	return n
}

// ordered returns array cells as they are and linked cells in list order.
func ordered(snap list.Snapshot) []list.Cell {
	if snap.Kind == list.KindArray {
		return snap.Cells
	}

	bySlot := make(map[int]list.Cell, len(snap.Cells))
	for _, c := range snap.Cells {
		bySlot[c.Slot] = c
	}

	rv := make([]list.Cell, 0, len(snap.Cells))
	for s := snap.Head; s != -1 && len(rv) < len(snap.Cells); {
		c, ok := bySlot[s]
		if !ok {
			break
		}
		rv = append(rv, c)
		s = c.Next
	}

	return rv
}

func slot(s int) string {
	if s == -1 {
		return "nil"
	}

	return "#" + strconv.Itoa(s)
}
