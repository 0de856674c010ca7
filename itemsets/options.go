package itemsets

const (
	DefaultMinSupport = 1
)

type Options struct {
	// MinSupport is the minimum number of transactions an item, or an item
	// prefix, must occur in to be reported.
	MinSupport uint32

	// Snapshots selects the persistent trie. Each Mine then leaves the trie
	// snapshot it produced in the Result and later Adds never disturb it.
	Snapshots bool
}

type Option func(*Options)

func WithMinSupport(minSupport uint32) Option {
	return func(o *Options) {
		o.MinSupport = minSupport
	}
}

func WithSnapshots(snapshots bool) Option {
	return func(o *Options) {
		o.Snapshots = snapshots
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{MinSupport: DefaultMinSupport}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MinSupport == 0 {
		o.MinSupport = DefaultMinSupport
	}
	return o
}
