package list

// node is a singly-linked cell.
type node[T any] struct {
	next *node[T]
	val  T
}

// doubleNode is a doubly-linked cell.
//
// For adjacent nodes a and b with a.next == b, b.prev == a.
// The head's prev and the tail's next are nil.
type doubleNode[T any] struct {
	prev *doubleNode[T]
	next *doubleNode[T]
	val  T
}
