package seqtrie

// Node is one compressed edge of the trie.
//
// The trie is stored as a left-child, right-sibling binary tree: Child is
// the first edge extending this node's path, Sibling is the next alternative
// edge at the same depth. Siblings never share a common prefix.
type Node[V any] struct {
	label    []uint32
	value    V
	hasValue bool
	child    *Node[V]
	sibling  *Node[V]

	// id is zero for nodes of a mutable Tree. Persistent nodes get a unique
	// id which the element index uses as node identity.
	id uint64
}

// Label returns the compressed segment stored on this edge. The returned
// slice is shared with the trie and must not be modified.
func (n *Node[V]) Label() []uint32 { return n.label }

// Value returns the value at this node. ok is false for pure branch points.
func (n *Node[V]) Value() (v V, ok bool) { return n.value, n.hasValue }

// Child returns the first edge below this node, or nil.
func (n *Node[V]) Child() *Node[V] { return n.child }

// Sibling returns the next alternative edge at this depth, or nil.
func (n *Node[V]) Sibling() *Node[V] { return n.sibling }

// ID returns the persistent node identity (0 for mutable nodes).
func (n *Node[V]) ID() uint64 { return n.id }

// find walks the sibling chain headed by n looking for an exact match of key.
func find[V any](n *Node[V], key []uint32) (*Node[V], error) {
	if len(key) == 0 {
		return nil, ErrNotFound
	}
	for n != nil {
		p := CommonPrefixLength(n.label, key)
		switch {
		case p == 0:
			n = n.sibling
		case p < len(n.label):
			// diverges (or ends) inside this label
			return nil, ErrNotFound
		case p == len(key):
			return n, nil
		default:
			key = key[p:]
			n = n.child
		}
	}
	return nil, ErrNotFound
}
