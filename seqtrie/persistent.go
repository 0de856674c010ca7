package seqtrie

import (
	"slices"
	"sync/atomic"

	iradix "github.com/hashicorp/go-immutable-radix"
)

// Persistent is an immutable snapshot of a compressed trie. Append returns a
// new snapshot that shares every subtree the insertion did not touch; the
// receiver stays valid and unchanged. Any number of goroutines may read any
// snapshot while another goroutine appends.
//
// Each snapshot carries an element index mapping every key element to the
// nodes of that snapshot whose label contains it.
type Persistent[V any] struct {
	root   *Node[V]
	policy Policy[V]
	index  *iradix.Tree
	nodes  int

	// seq is shared by every snapshot derived from the same empty tree so
	// that node ids stay unique across versions.
	seq *atomic.Uint64
}

// NewPersistent returns an empty persistent general trie.
func NewPersistent[V any]() *Persistent[V] {
	return NewPersistentWithPolicy[V](Replace[V]{})
}

func NewPersistentWithPolicy[V any](policy Policy[V]) *Persistent[V] {
	return &Persistent[V]{
		policy: policy,
		index:  iradix.New(),
		seq:    new(atomic.Uint64),
	}
}

func (t *Persistent[V]) Root() *Node[V] { return t.root }

// Len returns the number of nodes reachable from this snapshot.
func (t *Persistent[V]) Len() int { return t.nodes }

// Find returns the node whose path exactly equals key, or ErrNotFound.
func (t *Persistent[V]) Find(key []uint32) (*Node[V], error) {
	return find(t.root, key)
}

func (t *Persistent[V]) Walk(fn WalkFunc[V]) {
	walk(t.root, nil, fn)
}

func (t *Persistent[V]) Check() error {
	return check(t.root)
}

// NodesWithElement returns the nodes of this snapshot whose label contains
// e, ordered by node id (creation order).
func (t *Persistent[V]) NodesWithElement(e uint32) []*Node[V] {
	return nodesWithElement[V](t.index, e)
}

// Append returns a new snapshot with key inserted. Every node on the path
// from the root to the insertion point is rebuilt; the receiver is not
// modified.
func (t *Persistent[V]) Append(key []uint32, v V) (*Persistent[V], error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	b := pathBuilder[V]{
		policy: t.policy,
		seq:    t.seq,
		index:  newIndexTxn[V](t.index),
	}
	root, err := b.insert(t.root, key, v)
	if err != nil {
		return nil, err
	}
	return &Persistent[V]{
		root:   root,
		policy: t.policy,
		index:  b.index.commit(),
		nodes:  t.nodes + b.created - b.superseded,
		seq:    t.seq,
	}, nil
}

// pathBuilder accumulates the nodes created by one Append.
type pathBuilder[V any] struct {
	policy Policy[V]
	seq    *atomic.Uint64
	index  indexTxn[V]

	created    int
	superseded int
}

// node builds a new node and registers it in the index. The node is
// complete before anything links to it.
func (b *pathBuilder[V]) node(label []uint32, value V, ok bool, child, sibling *Node[V]) *Node[V] {
	n := &Node[V]{
		label:    label,
		value:    value,
		hasValue: ok,
		child:    child,
		sibling:  sibling,
		id:       b.seq.Add(1),
	}
	b.index.add(n)
	b.created++
	return n
}

// replace builds the copy of old that takes its place in the new snapshot.
func (b *pathBuilder[V]) replace(old *Node[V], label []uint32, value V, ok bool, child, sibling *Node[V]) *Node[V] {
	b.index.remove(old)
	b.superseded++
	return b.node(label, value, ok, child, sibling)
}

// insert returns the new head of the sibling chain headed by n.
func (b *pathBuilder[V]) insert(n *Node[V], key []uint32, v V) (*Node[V], error) {
	if n == nil {
		return b.node(slices.Clone(key), v, true, nil, nil), nil
	}

	p := CommonPrefixLength(n.label, key)
	if p == 0 {
		sibling, err := b.insert(n.sibling, key, v)
		if err != nil {
			return nil, err
		}
		return b.replace(n, n.label, n.value, n.hasValue, n.child, sibling), nil
	}

	label, value, ok, child := n.label, n.value, n.hasValue, n.child
	split := p < len(n.label)
	if split {
		// The remainder of the key, if any, becomes the sibling of the split
		// off tail: their first elements differ by construction.
		var rest *Node[V]
		if p < len(key) {
			rest = b.node(slices.Clone(key[p:]), v, true, nil, nil)
		}
		child = b.node(n.label[p:], n.value, n.hasValue, n.child, rest)
		label = n.label[:p:p]
		value, ok = b.policy.Split(n.value, n.hasValue)
	}

	if p == len(key) {
		terminal, err := b.policy.Terminal(value, ok, v)
		if err != nil {
			return nil, err
		}
		return b.replace(n, label, terminal, true, child, n.sibling), nil
	}

	value, ok, err := b.policy.Through(value, ok, v)
	if err != nil {
		return nil, err
	}
	if !split {
		if child, err = b.insert(child, key[p:], v); err != nil {
			return nil, err
		}
	}
	return b.replace(n, label, value, ok, child, n.sibling), nil
}

// PersistentCounter is a persistent counting trie.
type PersistentCounter struct {
	*Persistent[uint32]
}

func NewPersistentCounter() PersistentCounter {
	return PersistentCounter{NewPersistentWithPolicy[uint32](Count{})}
}

// AppendCount returns a new snapshot with one more occurrence of key.
func (c PersistentCounter) AppendCount(key []uint32) (PersistentCounter, error) {
	t, err := c.Append(key, 1)
	if err != nil {
		return PersistentCounter{}, err
	}
	return PersistentCounter{t}, nil
}
