/*
Package sequence implements a growable, ordered sequence of elements of any type.
It defines the type Sequence, with methods for adding, removing, indexing and
slicing elements, and the type Store, with methods for interacting with a
collection of sequences.

A Sequence is 0-indexed and wraps a Go slice. Every operation that can fail
returns an error instead of panicking, and leaves the sequence unchanged when it
does:

	s := sequence.NewFromValues([]int{10, 20, 30, 40, 50})
	s.Push(60)
	x, err := s.Pop()               // 60, nil
	_, err = s.Index(9)             // ErrIndexOutOfRange
	t := s.Slice(sequence.From(-2)) // [40 50]

Slicing takes a Range, built with All, From, Between or BetweenStep. Negative
bounds count from the end of the sequence. SliceArgs accepts zero to two integers and
rejects more with ErrInvalidArgumentCount.

By default Shift reads the first element, removes the last one and returns the
value read, which keeps compatibility with existing callers of the historical
array wrapper. Use WithShiftMode(ShiftFront) for a conventional shift.

A Sequence is not safe for concurrent use. A Store is essentially a wrapper around
a map of sequences that provides convenience methods safe to use from multiple
goroutines.
*/
package sequence
