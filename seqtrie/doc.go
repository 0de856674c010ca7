package seqtrie

/*

# Compressed tries over uint32 sequences

This package provides a radix (patricia) trie keyed by sequences of uint32,
in two designs sharing one traversal and edge splitting algorithm:

- Tree / Counter: mutable, in-place insertion. Use this for throughput.
- Persistent / PersistentCounter: every Append returns a new snapshot that
  shares all untouched subtrees with the previous one. Use this only when
  versioned snapshots must be retained.

What a stored value means is decided by a Policy: Replace gives a plain
key/value trie, Count turns the trie into a compressed prefix frequency
counter for itemset style counting.

## Layout

Each Node holds one compressed edge label and is linked as a left-child,
right-sibling binary tree:

	[3 137] ── child ──> [2] ── sibling ──> [99 22]
	   │
	 sibling
	   │
	   v
	[1 2 9]

## Core invariants

1. a linked node never has an empty label
2. no two nodes of one sibling chain share a common prefix (their first
   elements differ)
3. a label is split as soon as an inserted key shares only a proper prefix
   of it
4. for Count, the value at a node is the number of inserted keys that have
   the node's full path as a prefix

Lookups are exact: a key ending inside a label, or running past a stored
path, is ErrNotFound. The empty key is never stored and never found.

## Element index

Persistent snapshots carry an index from each element to the nodes of that
snapshot whose label contains it. The index is itself an immutable radix tree
keyed by element and node id, so deriving the next snapshot's index never
disturbs readers of older ones.

*/
