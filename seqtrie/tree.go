package seqtrie

import (
	"fmt"
	"slices"
)

// Tree is the mutable compressed trie. Insert mutates the tree in place; the
// caller must serialise access if the tree is shared between goroutines.
type Tree[V any] struct {
	root   *Node[V]
	policy Policy[V]
	nodes  int
}

// NewTree returns an empty general trie: Insert overwrites the value of an
// existing key.
func NewTree[V any]() *Tree[V] {
	return NewTreeWithPolicy[V](Replace[V]{})
}

// NewTreeWithPolicy returns an empty trie whose values are combined by policy.
func NewTreeWithPolicy[V any](policy Policy[V]) *Tree[V] {
	return &Tree[V]{policy: policy}
}

// Root returns the head of the top level sibling chain, nil for an empty tree.
func (t *Tree[V]) Root() *Node[V] { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree[V]) Len() int { return t.nodes }

// Find returns the node whose path exactly equals key.
//
// Returns ErrNotFound if no such node exists, including when key is a strict
// prefix of a stored path or extends past a stored terminal. The empty key
// never matches.
func (t *Tree[V]) Find(key []uint32) (*Node[V], error) {
	return find(t.root, key)
}

type pendingValue[V any] struct {
	n     *Node[V]
	value V
	ok    bool
}

// Insert adds key to the tree, splitting edges where key diverges from a
// stored label.
//
// Values of the nodes on the path are computed before any of them is
// assigned, so an error from the policy leaves every value unchanged. A
// split performed before the error is kept; it does not change the set of
// stored keys.
func (t *Tree[V]) Insert(key []uint32, v V) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	var through []pendingValue[V]
	link := &t.root
	for {
		n := *link
		if n == nil {
			*link = t.leaf(key, v)
			break
		}

		p := CommonPrefixLength(n.label, key)
		if p == 0 {
			link = &n.sibling
			continue
		}
		if p < len(n.label) {
			if err := t.split(n, p); err != nil {
				return err
			}
		}

		if p == len(key) {
			value, err := t.policy.Terminal(n.value, n.hasValue, v)
			if err != nil {
				return err
			}
			n.value, n.hasValue = value, true
			break
		}

		value, ok, err := t.policy.Through(n.value, n.hasValue, v)
		if err != nil {
			return err
		}
		through = append(through, pendingValue[V]{n: n, value: value, ok: ok})
		key = key[p:]
		link = &n.child
	}

	for _, pv := range through {
		pv.n.value, pv.n.hasValue = pv.value, pv.ok
	}
	return nil
}

// Walk calls fn for every node in depth-first pre-order.
func (t *Tree[V]) Walk(fn WalkFunc[V]) {
	walk(t.root, nil, fn)
}

// Check verifies the structural invariants of the whole tree.
func (t *Tree[V]) Check() error {
	return check(t.root)
}

func (t *Tree[V]) leaf(key []uint32, v V) *Node[V] {
	t.nodes++
	return &Node[V]{label: slices.Clone(key), value: v, hasValue: true}
}

// split shortens n's label to its first p elements. The remainder moves,
// together with n's value and children, into a new first child.
func (t *Tree[V]) split(n *Node[V], p int) error {
	if p <= 0 || p >= len(n.label) {
		return fmt.Errorf("%w: split at %d of a %d element label", ErrInvariantViolation, p, len(n.label))
	}
	tail := &Node[V]{
		label:    n.label[p:],
		value:    n.value,
		hasValue: n.hasValue,
		child:    n.child,
	}
	value, ok := t.policy.Split(n.value, n.hasValue)
	*n = Node[V]{
		label:    n.label[:p:p],
		value:    value,
		hasValue: ok,
		child:    tail,
		sibling:  n.sibling,
	}
	t.nodes++
	return nil
}
