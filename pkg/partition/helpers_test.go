package partition

import (
	"testing"

	"keysplit/pkg/tuple"
	"keysplit/pkg/types"
)

func mustSchema(t *testing.T, colTypes []types.Type) *tuple.Schema {
	t.Helper()
	s, err := tuple.NewSchema(colTypes, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	return s
}

func mustTuple(t *testing.T, schema *tuple.Schema, fields ...types.Field) *tuple.Tuple {
	t.Helper()
	tup := tuple.NewTuple(schema)
	for i, f := range fields {
		if err := tup.SetField(i, f); err != nil {
			t.Fatalf("SetField(%d) failed: %v", i, err)
		}
	}
	return tup
}

func mustRange(t *testing.T, schema *tuple.Schema, start, end *tuple.Tuple, inclusive bool) *tuple.TupleRange {
	t.Helper()
	r, err := tuple.NewTupleRange(schema, start, end, inclusive)
	if err != nil {
		t.Fatalf("NewTupleRange failed: %v", err)
	}
	return r
}

// int32Range builds a single-column int32 range.
func int32Range(t *testing.T, start, end int32, inclusive bool) *tuple.TupleRange {
	t.Helper()
	schema := mustSchema(t, []types.Type{types.Int32Type})
	return mustRange(t, schema,
		mustTuple(t, schema, types.NewInt32Field(start)),
		mustTuple(t, schema, types.NewInt32Field(end)),
		inclusive)
}

// int32Range2 builds a two-column int32 range.
func int32Range2(t *testing.T, start0, start1, end0, end1 int32, inclusive bool) *tuple.TupleRange {
	t.Helper()
	schema := mustSchema(t, []types.Type{types.Int32Type, types.Int32Type})
	return mustRange(t, schema,
		mustTuple(t, schema, types.NewInt32Field(start0), types.NewInt32Field(start1)),
		mustTuple(t, schema, types.NewInt32Field(end0), types.NewInt32Field(end1)),
		inclusive)
}

func mustPartitioner(t *testing.T, r *tuple.TupleRange) *UniformRangePartitioner {
	t.Helper()
	p, err := NewUniformRangePartitioner(r)
	if err != nil {
		t.Fatalf("NewUniformRangePartitioner failed: %v", err)
	}
	return p
}

func int32At(t *testing.T, tup *tuple.Tuple, i int) int32 {
	t.Helper()
	f, err := tup.GetField(i)
	if err != nil {
		t.Fatalf("GetField(%d) failed: %v", i, err)
	}
	v, ok := f.(*types.Int32Field)
	if !ok {
		t.Fatalf("expected Int32Field at %d, got %T", i, f)
	}
	return v.Value
}
