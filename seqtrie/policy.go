package seqtrie

import (
	"fmt"
	"math"
)

// Policy decides how values flow through an insertion. The traversal and
// splitting algorithm is shared by every trie flavour; only the policy
// differs.
//
// A node created to hold the remainder of an inserted key always takes the
// inserted value unchanged.
type Policy[V any] interface {
	// Terminal returns the value for the node exactly matching the inserted
	// key. old/ok is the value currently stored there.
	Terminal(old V, ok bool, in V) (V, error)

	// Through returns the value for a node whose path is a strict prefix of
	// the inserted key.
	Through(old V, ok bool, in V) (V, bool, error)

	// Split returns the value kept by a node whose label is shortened. The
	// new child holding the rest of the label inherits old/ok unchanged.
	Split(old V, ok bool) (V, bool)
}

// Replace is the general trie policy: an exact match overwrites the stored
// value and branch points created by splitting carry no value.
type Replace[V any] struct{}

func (Replace[V]) Terminal(_ V, _ bool, in V) (V, error) { return in, nil }

func (Replace[V]) Through(old V, ok bool, _ V) (V, bool, error) { return old, ok, nil }

func (Replace[V]) Split(V, bool) (V, bool) {
	var zero V
	return zero, false
}

// Count is the counting trie policy. The count at a node is the number of
// inserted keys that have the node's full path as a prefix.
//
// Every node of a counting trie carries a value. Meeting one that does not
// means the trie was corrupted and the insertion is aborted.
type Count struct{}

func (Count) Terminal(old uint32, ok bool, in uint32) (uint32, error) {
	if !ok {
		return 0, fmt.Errorf("%w: %w at exact match", ErrInvariantViolation, ErrMissingValue)
	}
	return addCount(old, in)
}

func (Count) Through(old uint32, ok bool, in uint32) (uint32, bool, error) {
	if !ok {
		return 0, false, fmt.Errorf("%w: %w on path", ErrInvariantViolation, ErrMissingValue)
	}
	c, err := addCount(old, in)
	if err != nil {
		return 0, false, err
	}
	return c, true, nil
}

func (Count) Split(old uint32, ok bool) (uint32, bool) { return old, ok }

func addCount(old, in uint32) (uint32, error) {
	if old > math.MaxUint32-in {
		return 0, fmt.Errorf("%w: %d + %d", ErrCountOverflow, old, in)
	}
	return old + in, nil
}
