package seqtrie

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterInsertIntoEmpty(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.InsertAndCount([]uint32{999}))

	root := c.Root()
	requireNode(t, root, []uint32{999}, uint32(1))
	assert.Nil(t, root.Child())
	assert.Nil(t, root.Sibling())
}

func TestCounterAppend(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.InsertAndCount([]uint32{3}))
	require.NoError(t, c.InsertAndCount([]uint32{3, 137}))
	require.NoError(t, c.InsertAndCount([]uint32{3, 137, 2}))

	foo := c.Root()
	requireNode(t, foo, []uint32{3}, uint32(3))
	assert.Nil(t, foo.Sibling())
	bar := foo.Child()
	requireNode(t, bar, []uint32{137}, uint32(2))
	assert.Nil(t, bar.Sibling())
	baz := bar.Child()
	requireNode(t, baz, []uint32{2}, uint32(1))
	assert.Nil(t, baz.Child())
	assert.Nil(t, baz.Sibling())
}

func TestCounterSibling(t *testing.T) {
	c := NewCounter()
	for _, key := range [][]uint32{{987}, {654}, {321}} {
		require.NoError(t, c.InsertAndCount(key))
	}
	n := c.Root()
	for _, label := range [][]uint32{{987}, {654}, {321}} {
		requireNode(t, n, label, uint32(1))
		assert.Nil(t, n.Child())
		n = n.Sibling()
	}
	assert.Nil(t, n)
}

func TestCounterSharedPrefix(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.InsertAndCount([]uint32{3, 137, 2}))
	require.NoError(t, c.InsertAndCount([]uint32{3, 137, 99, 2}))

	root := c.Root()
	requireNode(t, root, []uint32{3, 137}, uint32(2))
	assert.Nil(t, root.Sibling())
	foo := root.Child()
	requireNode(t, foo, []uint32{2}, uint32(1))
	assert.Nil(t, foo.Child())
	bar := foo.Sibling()
	requireNode(t, bar, []uint32{99, 2}, uint32(1))
	assert.Nil(t, bar.Child())
	assert.Nil(t, bar.Sibling())
}

func TestCounterTwice(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.InsertAndCount([]uint32{3, 137, 2}))
	require.NoError(t, c.InsertAndCount([]uint32{3, 137, 2}))

	root := c.Root()
	requireNode(t, root, []uint32{3, 137, 2}, uint32(2))
	assert.Nil(t, root.Sibling())
	assert.Nil(t, root.Child())
}

func TestCounterKeyEndingInsideLabel(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.InsertAndCount([]uint32{3, 137, 2}))
	require.NoError(t, c.InsertAndCount([]uint32{3, 137, 2}))
	require.NoError(t, c.InsertAndCount([]uint32{3}))

	root := c.Root()
	requireNode(t, root, []uint32{3}, uint32(3))
	requireNode(t, root.Child(), []uint32{137, 2}, uint32(2))
}

func TestCounterRepeatedKey(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		c := NewCounter()
		for i := 0; i < n; i++ {
			require.NoError(t, c.InsertAndCount([]uint32{4, 4, 2}))
		}
		count, err := c.Count([]uint32{4, 4, 2})
		require.NoError(t, err)
		assert.Equal(t, uint32(n), count)
	}
}

func TestCounterWeighted(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.Insert([]uint32{1, 2}, 5))
	require.NoError(t, c.Insert([]uint32{1, 3}, 2))

	count, err := c.Count([]uint32{1})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), count)
}

func TestCounterCountMissing(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.InsertAndCount([]uint32{1, 2}))
	_, err := c.Count([]uint32{1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCounterMissingValueAborts(t *testing.T) {
	c := NewCounter()
	c.root = &Node[uint32]{
		label: []uint32{3}, value: 5, hasValue: true,
		child: &Node[uint32]{label: []uint32{137}},
	}

	err := c.InsertAndCount([]uint32{3, 137, 1})
	require.ErrorIs(t, err, ErrInvariantViolation)
	require.ErrorIs(t, err, ErrMissingValue)
	v, _ := c.Root().Value()
	assert.Equal(t, uint32(5), v, "aborted insert changed a count")

	err = c.InsertAndCount([]uint32{3, 137})
	require.ErrorIs(t, err, ErrInvariantViolation)
	v, _ = c.Root().Value()
	assert.Equal(t, uint32(5), v)
}

func TestCounterOverflow(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.Insert([]uint32{1}, math.MaxUint32))
	require.ErrorIs(t, c.InsertAndCount([]uint32{1}), ErrCountOverflow)
	require.ErrorIs(t, c.InsertAndCount([]uint32{1, 2}), ErrCountOverflow)

	count, err := c.Count([]uint32{1})
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), count)
}

func TestCounterEmptyKey(t *testing.T) {
	c := NewCounter()
	require.ErrorIs(t, c.InsertAndCount(nil), ErrEmptyKey)
	assert.Nil(t, c.Root())
}

// aprioriTransactions are item lists already ordered by descending total
// item frequency:
//
//	8: 8 times, 6: 5 times, 2: 5 times, 9: 4 times, 5: 4 times,
//	4: 4 times, 1: 4 times, 0: 4 times, 7: 3 times, 3: 2 times
var aprioriTransactions = [][]uint32{
	{8, 5, 1, 3},
	{6, 2, 4, 7},
	{8, 6, 2, 5, 4, 1},
	{2, 8, 4, 0, 7},
	{8, 6, 2, 0},
	{6, 8, 4, 1},
	{8, 5, 0},
	{8, 6, 5, 0, 3},
	{8, 2},
	{1, 7},
}

type countShape struct {
	label   []uint32
	count   uint32
	child   *countShape
	sibling *countShape
}

var aprioriShape = &countShape{
	label: []uint32{8}, count: 6,
	child: &countShape{
		label: []uint32{5}, count: 2,
		child: &countShape{
			label: []uint32{1, 3}, count: 1,
			sibling: &countShape{label: []uint32{0}, count: 1},
		},
		sibling: &countShape{
			label: []uint32{6}, count: 3,
			child: &countShape{
				label: []uint32{2}, count: 2,
				child: &countShape{
					label: []uint32{5, 4, 1}, count: 1,
					sibling: &countShape{label: []uint32{0}, count: 1},
				},
				sibling: &countShape{label: []uint32{5, 0, 3}, count: 1},
			},
			sibling: &countShape{label: []uint32{2}, count: 1},
		},
	},
	sibling: &countShape{
		label: []uint32{6}, count: 2,
		child: &countShape{
			label: []uint32{2, 4, 7}, count: 1,
			sibling: &countShape{label: []uint32{8, 4, 1}, count: 1},
		},
		sibling: &countShape{
			label: []uint32{2, 8, 4, 0, 7}, count: 1,
			sibling: &countShape{label: []uint32{1, 7}, count: 1},
		},
	},
}

func requireShape(t *testing.T, want *countShape, n *Node[uint32]) {
	t.Helper()
	if want == nil {
		require.Nil(t, n)
		return
	}
	requireNode(t, n, want.label, want.count)
	requireShape(t, want.child, n.Child())
	requireShape(t, want.sibling, n.Sibling())
}

func TestCounterAprioriSample(t *testing.T) {
	c := NewCounter()
	for _, tx := range aprioriTransactions {
		require.NoError(t, c.InsertAndCount(tx))
	}
	requireShape(t, aprioriShape, c.Root())
	require.NoError(t, c.Check())
}

func hasPrefix(key, prefix []uint32) bool {
	return len(key) >= len(prefix) && slices.Equal(key[:len(prefix)], prefix)
}

// Every node counts exactly the inserted keys having its path as a prefix.
func TestCounterPrefixCountsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	keys := randomKeys(rng, 400, 7, 4)

	c := NewCounter()
	for _, key := range keys {
		require.NoError(t, c.InsertAndCount(key))
	}
	require.NoError(t, c.Check())

	c.Walk(func(path []uint32, n *Node[uint32]) bool {
		want := 0
		for _, key := range keys {
			if hasPrefix(key, path) {
				want++
			}
		}
		got, ok := n.Value()
		require.True(t, ok)
		require.Equal(t, uint32(want), got, "path %v", path)
		return true
	})
}
