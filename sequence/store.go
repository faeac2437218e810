package sequence

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// An Op identifies the operation run by a Statement.
type Op uint8

// Statement ops.
const (
	OpPush Op = iota
	OpPop
	OpShift
	OpUnshift
	OpInsert
	OpDelete
	opUnknown
)

var opNames = [...]string{"push", "pop", "shift", "unshift", "insert", "delete"}

// A Statement represents an operation to perform on a store. Index is used by
// OpInsert and OpDelete, Value by OpPush, OpUnshift and OpInsert.
type Statement[T any] struct {
	Key               string
	Op                Op
	Index             int
	Value             T
	CreateIfNotExists bool
}

// A Store represents a collection of Sequences. A Store can be used simultaneously
// from multiple goroutines.
type Store[T any] struct {
	m       map[string]*Sequence[T]
	mu      sync.RWMutex
	logger  zerolog.Logger
	seqOpts []Option
}

// NewStore creates and initializes a new Store.
func NewStore[T any](opts ...StoreOption) *Store[T] {
	c := newStoreConfig(opts)
	return &Store[T]{
		m:       make(map[string]*Sequence[T]),
		logger:  c.logger,
		seqOpts: c.seqOpts,
	}
}

// New creates and adds a new empty Sequence to the store using key as its
// identifier. If a Sequence already exists for the identifier it is silently
// replaced with the new Sequence.
func (s *Store[T]) New(key string) {
	s.mu.Lock()
	s.m[key] = New[T](s.seqOpts...)
	s.mu.Unlock()
}

// Add adds a copy of x to the store using key as its identifier.
// If a Sequence already exists for the identifier it is silently replaced with the new
// Sequence.
func (s *Store[T]) Add(key string, x *Sequence[T]) {
	s.mu.Lock()
	s.m[key] = x.Clone()
	s.mu.Unlock()
}

// Get returns a copy of the Sequence associated to key. The second return value is
// true if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (*Sequence[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.Clone(), true
}

// Delete removes the Sequence associated to key. It does nothing if the key does
// not exist.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed or if the underlying operation returned an error.
// The first return value holds the element produced by OpPop and OpShift.
func (s *Store[T]) Execute(statement Statement[T]) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store. Individual errors are non
// blocking but if one or more statements could not be executed or induced an error
// the method will return a global error and a slice holding information about each
// individual error.
func (s *Store[T]) Batch(statements []Statement[T]) (error, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var report []string
	for i, v := range statements {
		if _, err := s.executeUnsafe(v); err != nil {
			s.logger.Warn().Err(err).Str("key", v.Key).Stringer("op", v.Op).Int("index", i).Msg("batch statement failed")
			report = append(report, fmt.Sprintf("%s, at index %d", err, i))
		}
	}
	if len(report) > 0 {
		return errors.New("some operations could not be completed"), report
	}
	return nil, report
}

// Keys returns the identifiers known in the store in ascending order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dump exports the store as a JSON object mapping each key to its elements.
func (s *Store[T]) Dump() ([]byte, error) {
	s.mu.RLock()
	b, err := json.Marshal(s.m)
	n := len(s.m)
	s.mu.RUnlock()
	if err != nil {
		return nil, errors.Wrap(err, "cannot dump the store")
	}
	s.logger.Debug().Int("sequences", n).Int("bytes", len(b)).Msg("store dumped")
	return b, nil
}

// Load replaces the content of the store with data previously exported using the
// Dump method. On error the store is left unchanged.
func (s *Store[T]) Load(data []byte) error {
	var raw map[string][]T
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "cannot load the store")
	}
	m := make(map[string]*Sequence[T], len(raw))
	for k, v := range raw {
		x := New[T](s.seqOpts...)
		x.data = v
		m[k] = x
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
	s.logger.Debug().Int("sequences", len(m)).Msg("store loaded")
	return nil
}

// executeUnsafe executes a statement against the store, returning an error if the
// statement cannot be executed or if the underlying operation returned an error.
// This method is not goroutine-safe. The caller is responsible for properly
// acquiring / releasing the lock on the store.
func (s *Store[T]) executeUnsafe(statement Statement[T]) (T, error) {
	var zero T
	if statement.Op >= opUnknown {
		return zero, errors.Wrapf(ErrUnknownOp, "op %d", statement.Op)
	}
	x, ok := s.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return zero, errors.Wrapf(ErrKeyNotFound, "key %q", statement.Key)
		}
		x = New[T](s.seqOpts...)
	}
	v, err := apply(x, statement)
	if err != nil {
		return zero, err
	}
	if !ok {
		s.m[statement.Key] = x
	}
	return v, nil
}

// apply runs the operation of statement against x. The first return value holds
// the element produced by OpPop and OpShift.
func apply[T any](x *Sequence[T], statement Statement[T]) (T, error) {
	var zero T
	switch statement.Op {
	case OpPush:
		x.Push(statement.Value)
	case OpPop:
		return x.Pop()
	case OpShift:
		return x.Shift()
	case OpUnshift:
		x.Unshift(statement.Value)
	case OpInsert:
		return zero, x.Insert(statement.Index, statement.Value)
	case OpDelete:
		return zero, x.Delete(statement.Index)
	}
	return zero, nil
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}
