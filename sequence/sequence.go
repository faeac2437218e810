package sequence

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// A Sequence represents an ordered, 0-indexed, growable collection of elements.
// The zero value is an empty sequence using ShiftCompat.
type Sequence[T any] struct {
	data  []T
	shift ShiftMode
}

// New creates and initializes a new empty Sequence.
func New[T any](opts ...Option) *Sequence[T] {
	c := newConfig(opts)
	s := Sequence[T]{shift: c.shift}
	if c.capacity > 0 {
		s.data = make([]T, 0, c.capacity)
	}
	return &s
}

// NewFromValues creates a new Sequence using a copy of values as its initial
// content.
func NewFromValues[T any](values []T, opts ...Option) *Sequence[T] {
	s := New[T](opts...)
	s.data = append(s.data, values...)
	return s
}

// Push appends x to the end of the sequence.
func (s *Sequence[T]) Push(x T) {
	s.data = append(s.data, x)
}

// Pop removes and returns the last element of the sequence. It returns
// ErrEmptyContainer if the sequence is empty.
func (s *Sequence[T]) Pop() (T, error) {
	n := len(s.data)
	if n == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmptyContainer, "pop")
	}
	x := s.data[n-1]
	s.truncate(n - 1)
	return x, nil
}

// Shift removes an element and returns the first element of the sequence,
// according to the shift mode of the sequence. With ShiftCompat the removed
// element is the last one: on [1 2 3] Shift returns 1 and leaves [1 2]. With
// ShiftFront the removed element is the first one. It returns
// ErrEmptyContainer if the sequence is empty.
func (s *Sequence[T]) Shift() (T, error) {
	n := len(s.data)
	if n == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmptyContainer, "shift")
	}
	x := s.data[0]
	if s.shift == ShiftFront {
		copy(s.data, s.data[1:])
	}
	s.truncate(n - 1)
	return x, nil
}

// Unshift inserts x at the beginning of the sequence.
func (s *Sequence[T]) Unshift(x T) {
	s.data = slices.Insert(s.data, 0, x)
}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int {
	return len(s.data)
}

// Index returns the element at position i. It returns ErrIndexOutOfRange
// if i is outside [0, Len()).
func (s *Sequence[T]) Index(i int) (T, error) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, outOfRange("index", i, len(s.data))
	}
	return s.data[i], nil
}

// Insert inserts x at position i, shifting subsequent elements. i may be equal
// to Len(), in which case x is appended. Any other position outside the sequence
// returns ErrIndexOutOfRange.
func (s *Sequence[T]) Insert(i int, x T) error {
	if i < 0 || i > len(s.data) {
		return outOfRange("insert", i, len(s.data))
	}
	s.data = slices.Insert(s.data, i, x)
	return nil
}

// Delete removes the element at position i. The sequence is left untouched and
// ErrIndexOutOfRange is returned if i is outside [0, Len()).
func (s *Sequence[T]) Delete(i int) error {
	n := len(s.data)
	if i < 0 || i >= n {
		return outOfRange("delete", i, n)
	}
	copy(s.data[i:], s.data[i+1:])
	s.truncate(n - 1)
	return nil
}

// Values returns a copy of the elements of the sequence.
func (s *Sequence[T]) Values() []T {
	x := make([]T, len(s.data))
	copy(x, s.data)
	return x
}

// Clear removes all elements from the sequence.
func (s *Sequence[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
}

// Filter keeps the elements for which keep returns true, preserving their order.
func (s *Sequence[T]) Filter(keep func(x T) bool) {
	n := len(s.data)
	s.data = slices.DeleteFunc(s.data, func(x T) bool { return !keep(x) })
	clear(s.data[len(s.data):n])
}

// SortFunc sorts the sequence in place using cmp.
func (s *Sequence[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(s.data, cmp)
}

// ForEach calls fn for every element in order, stopping at the first error.
func (s *Sequence[T]) ForEach(fn func(i int, x T) error) error {
	for i, x := range s.data {
		if err := fn(i, x); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of s. Elements are copied by assignment.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{data: s.Values(), shift: s.shift}
}

// truncate shortens the backing slice to n elements, releasing references
// held by the dropped tail.
func (s *Sequence[T]) truncate(n int) {
	clear(s.data[n:])
	s.data = s.data[:n]
}

// IndexOf returns the position of the first element equal to x, or -1.
func IndexOf[T comparable](s *Sequence[T], x T) int {
	return slices.Index(s.data, x)
}

// Contains reports whether x is present in s.
func Contains[T comparable](s *Sequence[T], x T) bool {
	return IndexOf(s, x) >= 0
}

// Remove removes the first element equal to x. The second return value is false
// if no such element exists.
func Remove[T comparable](s *Sequence[T], x T) bool {
	i := IndexOf(s, x)
	if i < 0 {
		return false
	}
	return s.Delete(i) == nil
}

// Sort sorts s in ascending order.
func Sort[T constraints.Ordered](s *Sequence[T]) {
	slices.Sort(s.data)
}
