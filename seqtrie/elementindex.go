package seqtrie

import (
	"encoding/binary"

	iradix "github.com/hashicorp/go-immutable-radix"
)

// indexKey encodes an element index entry. Entries of one element are
// contiguous and ordered by node id.
func indexKey(e uint32, id uint64) []byte {
	var k [indexEntryBytes]byte
	binary.BigEndian.PutUint32(k[:elementBytes], e)
	binary.BigEndian.PutUint64(k[elementBytes:], id)
	return k[:]
}

// indexTxn derives the element index of the next snapshot. The index it
// started from is never modified.
type indexTxn[V any] struct {
	txn *iradix.Txn
}

func newIndexTxn[V any](index *iradix.Tree) indexTxn[V] {
	return indexTxn[V]{txn: index.Txn()}
}

// add registers n under every element of its label.
func (x indexTxn[V]) add(n *Node[V]) {
	for _, e := range n.label {
		x.txn.Insert(indexKey(e, n.id), n)
	}
}

// remove drops a node the next snapshot no longer references.
func (x indexTxn[V]) remove(n *Node[V]) {
	for _, e := range n.label {
		x.txn.Delete(indexKey(e, n.id))
	}
}

func (x indexTxn[V]) commit() *iradix.Tree {
	return x.txn.Commit()
}

func nodesWithElement[V any](index *iradix.Tree, e uint32) []*Node[V] {
	var prefix [elementBytes]byte
	binary.BigEndian.PutUint32(prefix[:], e)

	var nodes []*Node[V]
	index.Root().WalkPrefix(prefix[:], func(_ []byte, v interface{}) bool {
		nodes = append(nodes, v.(*Node[V]))
		return false
	})
	return nodes
}
