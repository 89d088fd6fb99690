package partition

import (
	"fmt"
	"math/big"

	"keysplit/pkg/tuple"
)

// RangeOverflowError reports that advancing a tuple by an offset would carry
// past the most significant column, exceeding the upper bound of the range
// being partitioned. It indicates either a caller bug (asking for more
// partitions than the key space holds) or an inconsistent cardinality model.
//
// The error is a distinct type so callers can pick it out of an error chain
// with errors.As and tell "range exhausted" apart from other failures.
type RangeOverflowError struct {
	// Range is the range whose upper bound would be exceeded.
	Range *tuple.TupleRange

	// Tuple is the position at the point of failure.
	Tuple *tuple.Tuple

	// Inc is the offset that triggered the overflow.
	Inc *big.Int
}

func (e *RangeOverflowError) Error() string {
	return fmt.Sprintf("range overflow: advancing %v by %v exceeds range %v",
		e.Tuple, e.Inc, e.Range)
}
