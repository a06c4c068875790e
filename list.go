// Package list implements a mutable doubly linked list with handle-based
// node access.
//
// Every insertion returns a *Node handle that stays valid until the node is
// removed. Removal invalidates the handle: its links, value, and list
// membership are cleared, so reusing it with a structural operation fails
// loudly instead of corrupting the chain.
//
// A List is not safe for concurrent use. Callers that share a list across
// goroutines must synchronize externally.
package list

// Node is a single cell of a List. Only Value is public; callers obtain
// nodes from insertion operations and accessors, never by constructing
// them directly.
type Node[T any] struct {
	Value      T
	next, prev *Node[T]
	list       *List[T]
}

// Next returns the node following n, or nil if n is the last node or has
// been removed from its list.
func (n *Node[T]) Next() *Node[T] {
	if n == nil || n.list == nil || n.next == n.list.root {
		return nil
	}
	return n.next
}

// Prev returns the node preceding n, or nil if n is the first node or has
// been removed from its list.
func (n *Node[T]) Prev() *Node[T] {
	if n == nil || n.list == nil || n.prev == n.list.root {
		return nil
	}
	return n.prev
}

// List is a doubly linked list. The zero value is not usable; create lists
// with New, From, or Of.
type List[T any] struct {
	// root is a sentinel: root.next is the first node and root.prev the
	// last, so every real node always has non-nil neighbors.
	root *Node[T]
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := new(List[T])
	root := new(Node[T])
	root.next = root
	root.prev = root
	l.root = root
	return l
}

// Of returns a list of the given values in argument order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int { return l.len }

// owned panics unless n is a live node of this list. Called before any
// relinking so a rejected handle leaves the chain untouched.
func (l *List[T]) owned(n *Node[T]) *Node[T] {
	if n == nil {
		panic("list: nil node handle")
	}
	if n.list != l {
		panic("list: node is not a member of this list")
	}
	return n
}

func (l *List[T]) insert(n, at *Node[T]) *Node[T] {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	n.list = l
	l.len++
	return n
}

// InsertAfter inserts v immediately after ref and returns the new node.
// It panics if ref is nil, belongs to another list, or was removed.
func (l *List[T]) InsertAfter(ref *Node[T], v T) *Node[T] {
	return l.insert(&Node[T]{Value: v}, l.owned(ref))
}

// InsertBefore inserts v immediately before ref and returns the new node.
// It panics if ref is nil, belongs to another list, or was removed.
func (l *List[T]) InsertBefore(ref *Node[T], v T) *Node[T] {
	return l.insert(&Node[T]{Value: v}, l.owned(ref).prev)
}

// Remove splices n out of the list and returns its value. The handle is
// invalidated: its links and value are cleared. Remove panics if n is nil,
// belongs to another list, or was already removed.
func (l *List[T]) Remove(n *Node[T]) T {
	l.owned(n)
	v := n.Value
	n.prev.next = n.next
	n.next.prev = n.prev
	l.len--
	*n = Node[T]{}
	return v
}

// Push appends v to the end of the list and returns the new node.
func (l *List[T]) Push(v T) *Node[T] {
	return l.insert(&Node[T]{Value: v}, l.root.prev)
}

// Unshift prepends v to the front of the list and returns the new node.
func (l *List[T]) Unshift(v T) *Node[T] {
	return l.insert(&Node[T]{Value: v}, l.root)
}

// Pop removes and returns the last value. The second return is false if
// the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.Remove(l.root.prev), true
}

// Shift removes and returns the first value. The second return is false if
// the list is empty.
func (l *List[T]) Shift() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.Remove(l.root.next), true
}

// First returns the first value. The second return is false if the list is
// empty.
func (l *List[T]) First() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.root.next.Value, true
}

// Last returns the last value. The second return is false if the list is
// empty.
func (l *List[T]) Last() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.root.prev.Value, true
}

// FirstNode returns the first node, or nil if the list is empty.
func (l *List[T]) FirstNode() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// LastNode returns the last node, or nil if the list is empty.
func (l *List[T]) LastNode() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// MoveToFront relinks n to the front of the list without reallocating it.
// It panics under the same conditions as Remove.
func (l *List[T]) MoveToFront(n *Node[T]) {
	l.owned(n)
	if l.root.next == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev

	n.prev = l.root
	n.next = l.root.next
	n.prev.next = n
	n.next.prev = n
}

// MoveToBack relinks n to the back of the list without reallocating it.
// It panics under the same conditions as Remove.
func (l *List[T]) MoveToBack(n *Node[T]) {
	l.owned(n)
	if l.root.prev == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev

	n.next = l.root
	n.prev = l.root.prev
	n.prev.next = n
	n.next.prev = n
}

// Clear removes every node, invalidating all outstanding handles, and
// resets the list to empty.
func (l *List[T]) Clear() {
	for n := l.root.next; n != l.root; {
		next := n.next
		*n = Node[T]{}
		n = next
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
}
