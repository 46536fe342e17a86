package list

import (
	"fmt"
	"iter"
	"strings"
)

// Snapshot describes the internal layout of a list at one point in time.
type Snapshot struct {
	Kind Kind
	Len  int
	// Cap is the backing capacity. It equals Len for linked lists.
	Cap     int
	Version uint64

	// Head and Tail are cell slots. They are -1 when the list has no nodes
	// or for an array-backed list.
	Head int
	Tail int

	Cells []Cell
}

// Cell is one array slot or one node.
type Cell struct {
	Slot  int
	Value string
	// Used is false for array slots beyond the list length.
	Used bool
	// Next and Prev are the slots of linked neighbours, -1 when there is none.
	// Prev is always -1 for arrays and singly-linked lists.
	Next int
	Prev int
}

func formatSeq[T any](seq iter.Seq[T]) string {
	var sb strings.Builder

	sb.WriteByte('[')
	sep := ""
	for v := range seq {
		sb.WriteString(sep)
		fmt.Fprint(&sb, v)
		sep = ", "
	}
	sb.WriteByte(']')

	return sb.String()
}
