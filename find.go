package list

// Find walks the list front to back and returns the first node whose value
// satisfies pred, or nil if no node matches. The walk stops at the first
// match.
func (l *List[T]) Find(pred func(T) bool) *Node[T] {
	for n := l.root.next; n != l.root; n = n.next {
		if pred(n.Value) {
			return n
		}
	}
	return nil
}

// Slice returns a new list holding copies of the values from the node
// from up to but excluding until, with the same boundary semantics as
// Nodes. The
// result shares no nodes with the source; mutating one never affects the
// other.
func (l *List[T]) Slice(from, until *Node[T]) *List[T] {
	out := New[T]()
	for n := range l.Nodes(from, until) {
		out.Push(n.Value)
	}
	return out
}
