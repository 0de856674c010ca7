package seqtrie

import "fmt"

// WalkFunc is called once per node. path is the concatenation of the labels
// from the root down to and including n; it is reused between calls and must
// be copied if retained. Returning false stops the walk.
type WalkFunc[V any] func(path []uint32, n *Node[V]) bool

func walk[V any](n *Node[V], path []uint32, fn WalkFunc[V]) bool {
	for ; n != nil; n = n.sibling {
		p := append(path, n.label...)
		if !fn(p, n) {
			return false
		}
		if !walk(n.child, p, fn) {
			return false
		}
	}
	return true
}

// check verifies that every label is non-empty and that no two nodes of a
// sibling chain share a prefix. Labels are prefix-disjoint exactly when
// their first elements differ.
func check[V any](head *Node[V]) error {
	seen := make(map[uint32]struct{})
	for n := head; n != nil; n = n.sibling {
		if len(n.label) == 0 {
			return ErrEmptyLabel
		}
		first := n.label[0]
		if _, ok := seen[first]; ok {
			return fmt.Errorf("%w: element %d", ErrSharedPrefix, first)
		}
		seen[first] = struct{}{}
		if err := check(n.child); err != nil {
			return err
		}
	}
	return nil
}
