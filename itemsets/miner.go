package itemsets

import (
	"cmp"
	"errors"
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/forestrie/go-seqforest/seqtrie"
)

var (
	ErrNoTransactions = errors.New("itemsets: no transactions added")
	ErrNoSnapshot     = errors.New("itemsets: result was not mined with snapshots")
)

// Itemset is an ordered prefix of frequent items. Support is the number of
// transactions whose ordered frequent items begin with Items.
type Itemset struct {
	Items   []uint32 `cbor:"1,keyasint"`
	Support uint32   `cbor:"2,keyasint"`
}

type Result struct {
	MinSupport   uint32    `cbor:"1,keyasint"`
	Transactions int       `cbor:"2,keyasint"`
	Itemsets     []Itemset `cbor:"3,keyasint"`

	snapshot *seqtrie.Persistent[uint32]
}

// ItemSupport returns the number of counted transactions containing item.
//
// Every transaction contains an item at most once, so it passes through
// exactly one node whose label holds the item. Summing the counts of the
// nodes the element index lists for item therefore gives the support.
func (r Result) ItemSupport(item uint32) (uint32, error) {
	if r.snapshot == nil {
		return 0, ErrNoSnapshot
	}
	var support uint32
	for _, n := range r.snapshot.NodesWithElement(item) {
		count, _ := n.Value()
		support += count
	}
	return support, nil
}

// Miner accumulates transactions and counts their frequent item prefixes.
// A Miner is not safe for concurrent use.
type Miner struct {
	log  logger.Logger
	opts Options

	transactions [][]uint32
	frequency    map[uint32]uint32
}

func NewMiner(log logger.Logger, opts ...Option) *Miner {
	return &Miner{
		log:       log,
		opts:      NewOptions(opts...),
		frequency: make(map[uint32]uint32),
	}
}

// Add records one transaction. Repeated items within a transaction count
// once.
func (m *Miner) Add(transaction []uint32) {
	items := mapset.NewThreadUnsafeSet[uint32](transaction...)
	distinct := items.ToSlice()
	for _, item := range distinct {
		m.frequency[item]++
	}
	m.transactions = append(m.transactions, distinct)
}

// Frequency returns the number of added transactions containing item.
func (m *Miner) Frequency(item uint32) uint32 {
	return m.frequency[item]
}

// Order reduces a transaction to its frequent items ordered by descending
// frequency, ties broken by ascending item.
func (m *Miner) Order(transaction []uint32) []uint32 {
	ordered := make([]uint32, 0, len(transaction))
	seen := mapset.NewThreadUnsafeSet[uint32]()
	for _, item := range transaction {
		if m.frequency[item] < m.opts.MinSupport || !seen.Add(item) {
			continue
		}
		ordered = append(ordered, item)
	}
	slices.SortFunc(ordered, func(a, b uint32) int {
		if c := cmp.Compare(m.frequency[b], m.frequency[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ordered
}

// Mine counts every added transaction into a fresh trie and reports the item
// prefixes meeting the minimum support, by descending support then
// lexicographically.
func (m *Miner) Mine() (Result, error) {
	if len(m.transactions) == 0 {
		return Result{}, ErrNoTransactions
	}

	r := Result{
		MinSupport:   m.opts.MinSupport,
		Transactions: len(m.transactions),
	}

	var walk func(seqtrie.WalkFunc[uint32])
	var nodes int
	if m.opts.Snapshots {
		snapshot, err := m.countSnapshot()
		if err != nil {
			return Result{}, err
		}
		r.snapshot = snapshot.Persistent
		walk, nodes = snapshot.Walk, snapshot.Len()
	} else {
		counter, err := m.count()
		if err != nil {
			return Result{}, err
		}
		walk, nodes = counter.Walk, counter.Len()
	}

	walk(func(path []uint32, n *seqtrie.Node[uint32]) bool {
		count, _ := n.Value()
		if count >= m.opts.MinSupport {
			r.Itemsets = append(r.Itemsets, Itemset{Items: slices.Clone(path), Support: count})
		}
		return true
	})
	slices.SortFunc(r.Itemsets, func(a, b Itemset) int {
		if c := cmp.Compare(b.Support, a.Support); c != 0 {
			return c
		}
		return slices.Compare(a.Items, b.Items)
	})

	m.log.Infof(
		"mined %d itemsets from %d transactions: minSupport=%d, nodes=%d, snapshots=%v",
		len(r.Itemsets), r.Transactions, r.MinSupport, nodes, m.opts.Snapshots)
	return r, nil
}

func (m *Miner) count() (*seqtrie.Counter, error) {
	c := seqtrie.NewCounter()
	for _, tx := range m.transactions {
		ordered := m.Order(tx)
		if len(ordered) == 0 {
			continue
		}
		if err := c.InsertAndCount(ordered); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (m *Miner) countSnapshot() (seqtrie.PersistentCounter, error) {
	c := seqtrie.NewPersistentCounter()
	for i, tx := range m.transactions {
		ordered := m.Order(tx)
		if len(ordered) == 0 {
			m.log.Debugf("transaction %d has no frequent items", i)
			continue
		}
		var err error
		if c, err = c.AppendCount(ordered); err != nil {
			return seqtrie.PersistentCounter{}, err
		}
	}
	return c, nil
}
