package tuple

import "fmt"

// TupleRange is a contiguous slice of the composite key space bounded by a
// start tuple and an end tuple. The start is always inclusive; EndInclusive
// reports whether the end bound itself belongs to the range.
//
// The bounds are ordered under composite key ordering (start ≤ end). A
// sub-range produced by a carry during range arithmetic may legitimately
// have start > end in an individual less-significant column, so per-column
// ordering is not required here.
type TupleRange struct {
	schema       *Schema
	start        *Tuple
	end          *Tuple
	endInclusive bool
}

// NewTupleRange creates a range over schema from start to end, validating
// composite key ordering of the bounds.
func NewTupleRange(schema *Schema, start, end *Tuple, endInclusive bool) (*TupleRange, error) {
	if schema == nil || start == nil || end == nil {
		return nil, fmt.Errorf("schema, start and end must be non-nil")
	}
	if !schema.Equals(start.Schema) || !schema.Equals(end.Schema) {
		return nil, fmt.Errorf("start and end tuples must match the range schema")
	}

	cmp, err := start.Compare(end)
	if err != nil {
		return nil, err
	}
	if cmp > 0 {
		return nil, fmt.Errorf("range start %v exceeds end %v", start, end)
	}

	return &TupleRange{
		schema:       schema,
		start:        start,
		end:          end,
		endInclusive: endInclusive,
	}, nil
}

func (r *TupleRange) Schema() *Schema {
	return r.schema
}

func (r *TupleRange) Start() *Tuple {
	return r.start
}

func (r *TupleRange) End() *Tuple {
	return r.end
}

// EndInclusive reports whether the end tuple belongs to the range.
func (r *TupleRange) EndInclusive() bool {
	return r.endInclusive
}

// String renders the range in interval notation, e.g. "[(0, 0), (1, 6))".
func (r *TupleRange) String() string {
	closing := ")"
	if r.endInclusive {
		closing = "]"
	}
	return fmt.Sprintf("[%v, %v%s", r.start, r.end, closing)
}
