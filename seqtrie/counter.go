package seqtrie

// Counter is a counting trie. The count at each node is the number of
// inserted keys whose path passes through or ends at that node.
type Counter struct {
	Tree[uint32]
}

func NewCounter() *Counter {
	return &Counter{Tree: Tree[uint32]{policy: Count{}}}
}

// InsertAndCount records one occurrence of key.
func (c *Counter) InsertAndCount(key []uint32) error {
	return c.Insert(key, 1)
}

// Count returns the count stored at the node exactly matching key.
func (c *Counter) Count(key []uint32) (uint32, error) {
	n, err := c.Find(key)
	if err != nil {
		return 0, err
	}
	count, _ := n.Value()
	return count, nil
}
