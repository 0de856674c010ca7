// Package itemsets counts frequent item prefixes over transactions using a
// counting seqtrie.
//
// Each transaction is reduced to its frequent items, ordered by descending
// global item frequency, and counted into a compressed prefix trie. Walking
// the finished trie yields every ordered item prefix together with the number
// of transactions that begin with it.
package itemsets
