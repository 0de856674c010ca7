package seqtrie

import "errors"

// elementBytes and nodeIDBytes define the element index key layout:
//
//	element_be4 || nodeID_be8
const (
	elementBytes    = 4
	nodeIDBytes     = 8
	indexEntryBytes = elementBytes + nodeIDBytes
)

var (
	ErrNotFound           = errors.New("seqtrie: key not found")
	ErrEmptyKey           = errors.New("seqtrie: empty key")
	ErrInvariantViolation = errors.New("seqtrie: invariant violation")
	ErrMissingValue       = errors.New("seqtrie: node carries no value")
	ErrEmptyLabel         = errors.New("seqtrie: empty label")
	ErrSharedPrefix       = errors.New("seqtrie: siblings share a prefix")
	ErrCountOverflow      = errors.New("seqtrie: count overflow")
)
