package sequence

import (
	"fmt"

	"github.com/pkg/errors"
)

// A RangeKind identifies the shape of a Range.
type RangeKind uint8

// Range kinds.
const (
	RangeAll RangeKind = iota
	RangeFrom
	RangeBetween
	RangeStep
)

// A Range selects the elements returned by Sequence.Slice. Use All, From,
// Between or BetweenStep to build one.
type Range struct {
	kind  RangeKind
	start int
	end   int
	step  int
}

// All selects every element.
func All() Range {
	return Range{kind: RangeAll}
}

// From selects the elements from start to the end of the sequence. A negative
// start counts from the end.
func From(start int) Range {
	return Range{kind: RangeFrom, start: start}
}

// Between selects the elements from start, inclusive, to end, exclusive. Negative
// bounds count from the end.
func Between(start, end int) Range {
	return Range{kind: RangeBetween, start: start, end: end}
}

// BetweenStep selects every step-th element from start, inclusive, towards end,
// exclusive. Negative bounds count from the end. A negative step walks the
// sequence backwards, so start must then be after end. A step of 0 is treated
// as 1.
func BetweenStep(start, end, step int) Range {
	if step == 0 {
		step = 1
	}
	return Range{kind: RangeStep, start: start, end: end, step: step}
}

// Kind returns the kind of the range.
func (r Range) Kind() RangeKind {
	return r.kind
}

func (r Range) String() string {
	switch r.kind {
	case RangeFrom:
		return fmt.Sprintf("[%d:]", r.start)
	case RangeBetween:
		return fmt.Sprintf("[%d:%d]", r.start, r.end)
	case RangeStep:
		return fmt.Sprintf("[%d:%d:%d]", r.start, r.end, r.step)
	}
	return "[:]"
}

// interval returns the positions selected by r on a sequence of length n,
// clamped to [0, n).
func (r Range) interval(n int) interval {
	x := interval{start: 0, end: n}
	switch r.kind {
	case RangeFrom:
		x.start = resolve(r.start, n)
	case RangeBetween, RangeStep:
		x.start = resolve(r.start, n)
		x.end = resolve(r.end, n)
	}
	x, _ = x.intersect(interval{start: 0, end: n})
	return x
}

// Slice returns a new sequence holding a copy of the elements selected by r.
// Bounds outside the sequence are clamped, and a range that selects nothing
// yields an empty sequence. The new sequence uses the shift mode of s.
func (s *Sequence[T]) Slice(r Range) *Sequence[T] {
	if r.kind == RangeStep && (r.step > 1 || r.step < 0) {
		return &Sequence[T]{data: s.stride(r), shift: s.shift}
	}
	x := r.interval(len(s.data))
	data := make([]T, x.end-x.start)
	copy(data, s.data[x.start:x.end])
	return &Sequence[T]{data: data, shift: s.shift}
}

// SliceArgs is the variadic form of Slice: no argument selects every element,
// one argument is a start position and two arguments are start and end
// positions. More than two arguments return ErrInvalidArgumentCount.
func (s *Sequence[T]) SliceArgs(args ...int) (*Sequence[T], error) {
	r, err := rangeOf(args)
	if err != nil {
		return nil, err
	}
	return s.Slice(r), nil
}

// stride collects the elements selected by a stepped range.
func (s *Sequence[T]) stride(r Range) []T {
	n := len(s.data)
	if r.step > 0 {
		x := r.interval(n)
		data := make([]T, 0, (x.end-x.start+r.step-1)/r.step)
		for i := x.start; i < x.end; i += r.step {
			data = append(data, s.data[i])
		}
		return data
	}
	// Walking backwards, both bounds are clamped to [-1, n-1].
	start := min(max(resolve(r.start, n), -1), n-1)
	end := min(max(resolve(r.end, n), -1), n-1)
	data := []T{}
	for i := start; i > end; i += r.step {
		data = append(data, s.data[i])
	}
	return data
}

// rangeOf converts variadic slice arguments into a Range.
func rangeOf(args []int) (Range, error) {
	switch len(args) {
	case 0:
		return All(), nil
	case 1:
		return From(args[0]), nil
	case 2:
		return Between(args[0], args[1]), nil
	}
	return Range{}, errors.Wrapf(ErrInvalidArgumentCount, "slice: got %d arguments, want at most 2", len(args))
}
