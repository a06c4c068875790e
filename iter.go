package list

import "iter"

// The sequences produced here follow live links rather than snapshotting
// the chain. Removing the node a sequence currently points at, or any node
// it has not yet reached, leaves further iteration unspecified; removing
// nodes strictly behind the cursor is safe.

// From builds a list by appending each element of seq in order.
func From[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

// Nodes returns a lazy forward sequence of node handles from the node
// from up to but excluding until. A nil from starts at the first node; a
// nil until runs through the end.
func (l *List[T]) Nodes(from, until *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		start := from
		if start == nil {
			start = l.root.next
		}
		stop := until
		if stop == nil {
			stop = l.root
		}
		for n := start; n != stop; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// NodesReversed returns a lazy backward sequence of node handles, from the
// last node to the first.
func (l *List[T]) NodesReversed() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.root.prev; n != l.root; n = n.prev {
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns a lazy forward sequence of values, with the same boundary
// semantics as Nodes.
func (l *List[T]) Values(from, until *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.Nodes(from, until) {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// ToSlice returns the list's values as a slice, in list order.
func (l *List[T]) ToSlice() []T {
	res := make([]T, 0, l.len)
	for v := range l.Values(nil, nil) {
		res = append(res, v)
	}
	return res
}
