package sequence

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MarshalJSON encodes the sequence as a JSON array of its elements. An empty
// sequence is encoded as [].
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if len(s.data) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.data)
}

// UnmarshalJSON replaces the content of the sequence with the elements of a JSON
// array. The shift mode is kept. On error the sequence is left unchanged.
func (s *Sequence[T]) UnmarshalJSON(b []byte) error {
	var data []T
	if err := json.Unmarshal(b, &data); err != nil {
		return errors.Wrap(err, "cannot decode the sequence")
	}
	s.data = data
	return nil
}

// String returns the elements of the sequence formatted as [x0 x1 ...].
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.data)
}
