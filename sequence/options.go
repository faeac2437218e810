package sequence

import "github.com/rs/zerolog"

// A ShiftMode selects the behavior of Sequence.Shift.
type ShiftMode uint8

const (
	// ShiftCompat reads the first element, removes the last element and
	// returns the value read.
	ShiftCompat ShiftMode = iota
	// ShiftFront removes and returns the first element.
	ShiftFront
)

func (m ShiftMode) String() string {
	switch m {
	case ShiftCompat:
		return "compat"
	case ShiftFront:
		return "front"
	}
	return "unknown"
}

type config struct {
	shift    ShiftMode
	capacity int
}

// An Option configures a Sequence.
type Option func(c *config)

// WithShiftMode sets the behavior of Shift. Unknown modes are ignored.
func WithShiftMode(m ShiftMode) Option {
	return func(c *config) {
		if m == ShiftCompat || m == ShiftFront {
			c.shift = m
		}
	}
}

// WithCapacity preallocates room for n elements. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type storeConfig struct {
	logger  zerolog.Logger
	seqOpts []Option
}

// A StoreOption configures a Store.
type StoreOption func(c *storeConfig)

// WithLogger sets the logger used by the store. The store logs nothing by
// default.
func WithLogger(l zerolog.Logger) StoreOption {
	return func(c *storeConfig) {
		c.logger = l
	}
}

// WithSequenceOptions sets the options applied to every sequence the store
// creates, including sequences restored by Load.
func WithSequenceOptions(opts ...Option) StoreOption {
	return func(c *storeConfig) {
		c.seqOpts = append(c.seqOpts, opts...)
	}
}

func newStoreConfig(opts []StoreOption) storeConfig {
	c := storeConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
