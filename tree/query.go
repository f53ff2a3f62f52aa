package tree

import "iter"

// Descendants yields root and every node below it in depth-first pre-order.
// The sequence is lazy and can be ranged over any number of times; on an
// unchanged tree every pass yields the same nodes in the same order.
func Descendants(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(root, yield)
	}
}

func walk(n *Node, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// Find is the typed descendant query. pick inspects each node and returns
// the projected value plus whether the node matched.
func Find[T any](root *Node, pick func(*Node) (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range Descendants(root) {
			if v, ok := pick(n); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// OfKind yields every descendant of root tagged with kind.
func OfKind(root *Node, kind Kind) iter.Seq[*Node] {
	return Find(root, func(n *Node) (*Node, bool) {
		return n, n.Kind == kind
	})
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}
