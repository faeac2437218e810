package sequence

import "github.com/pkg/errors"

var (
	ErrEmptyContainer       = errors.New("sequence is empty")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	ErrKeyNotFound          = errors.New("key does not exist")
	ErrUnknownOp            = errors.New("unknown statement op")
)

// outOfRange wraps ErrIndexOutOfRange with the offending index and the
// length of the sequence at the time of the call.
func outOfRange(op string, i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s: index %d, length %d", op, i, n)
}
