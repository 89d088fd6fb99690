// Package partition splits a multi-column key range into contiguous,
// non-overlapping sub-ranges of approximately equal cardinality, so a query
// planner can spread a sort/partition key domain across worker tasks.
//
// The composite key space is treated as a mixed-radix (odometer) number:
// each column is a digit whose base is that column's cardinality within the
// range, with column 0 the most significant digit. Splitting then reduces to
// exact integer arithmetic over digit weights, and advancing a boundary
// tuple is digit-wise addition with carry, where a digit that overflows its
// column's sub-range wraps around to the range's start value for that column
// rather than the type's zero.
package partition

import "keysplit/pkg/tuple"

// Error codes reported by this package.
const (
	codeInvalidPartitionCount       = "INVALID_PARTITION_COUNT"
	codePartitionExceedsCardinality = "PARTITION_EXCEEDS_CARDINALITY"
	codeInvalidRange                = "INVALID_RANGE"
	codeUnsupportedType             = "UNSUPPORTED_TYPE"
)

// RangePartitioner is the strategy contract for splitting a tuple range.
//
// Partition returns at most partNum sub-ranges, in ascending composite key
// order, whose union exactly covers the partitioner's range: each sub-range
// begins where the previous one ended, intermediate sub-ranges are
// end-exclusive, and the final sub-range carries the original range's end
// bound. Fewer than partNum sub-ranges are returned only when an earlier
// chunk already reaches the range's end exactly.
//
// Alternate implementations of this contract (for example skew-aware
// splitting) plug into the same planner surface.
type RangePartitioner interface {
	Partition(partNum int) ([]*tuple.TupleRange, error)
}
