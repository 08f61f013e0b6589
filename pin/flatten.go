// SPDX-License-Identifier: Unlicense OR MIT

package pin

// A Node is one element of a nested collection: either a single leaf
// value or a group of further nodes, to arbitrary depth. The zero Node
// is an empty group and flattens to nothing.
type Node[T any] struct {
	leaf   T
	group  []Node[T]
	isLeaf bool
}

// Leaf wraps a single value.
func Leaf[T any](v T) Node[T] {
	return Node[T]{leaf: v, isLeaf: true}
}

// Group nests nodes.
func Group[T any](nodes ...Node[T]) Node[T] {
	return Node[T]{group: nodes}
}

// Flatten returns the leaves of nodes in depth-first, left-to-right
// encounter order. The result is never nil.
func Flatten[T any](nodes []Node[T]) []T {
	return appendLeaves(make([]T, 0, len(nodes)), nodes)
}

func appendLeaves[T any](dst []T, nodes []Node[T]) []T {
	for _, n := range nodes {
		if n.isLeaf {
			dst = append(dst, n.leaf)
		} else {
			dst = appendLeaves(dst, n.group)
		}
	}
	return dst
}
