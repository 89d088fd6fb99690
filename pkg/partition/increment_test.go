package partition

import (
	"errors"
	"math/big"
	"testing"

	"keysplit/pkg/types"
)

func TestIncrementWithinColumn(t *testing.T) {
	p := mustPartitioner(t, int32Range(t, 0, 99, true))
	start := mustTuple(t, mustSchema(t, []types.Type{types.Int32Type}), types.NewInt32Field(10))

	next, err := p.Increment(start, big.NewInt(15), 0)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	if got := int32At(t, next, 0); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
}

func TestIncrementOdometerDecomposition(t *testing.T) {
	// Columns [0,2] x [0,9]: position p in the composite space maps to
	// digits (p/10, p%10). Advancing the start by p must land exactly there,
	// for every position, which exercises the mixed-radix decomposition
	// without losing or duplicating units.
	p := mustPartitioner(t, int32Range2(t, 0, 0, 2, 9, true))
	schema := mustSchema(t, []types.Type{types.Int32Type, types.Int32Type})
	start := mustTuple(t, schema, types.NewInt32Field(0), types.NewInt32Field(0))

	for pos := int64(1); pos < 30; pos++ {
		next, err := p.Increment(start, big.NewInt(pos), 1)
		if err != nil {
			t.Fatalf("Increment(%d) failed: %v", pos, err)
		}

		wantHi, wantLo := int32(pos/10), int32(pos%10)
		if got := int32At(t, next, 0); got != wantHi {
			t.Errorf("offset %d: expected column 0 = %d, got %d", pos, wantHi, got)
		}
		if got := int32At(t, next, 1); got != wantLo {
			t.Errorf("offset %d: expected column 1 = %d, got %d", pos, wantLo, got)
		}
	}
}

func TestIncrementMonotonic(t *testing.T) {
	p := mustPartitioner(t, int32Range2(t, 0, 0, 9, 9, true))
	schema := mustSchema(t, []types.Type{types.Int32Type, types.Int32Type})

	positions := []*big.Int{
		big.NewInt(1), big.NewInt(3), big.NewInt(9), big.NewInt(10),
		big.NewInt(11), big.NewInt(25), big.NewInt(77),
	}

	last := mustTuple(t, schema, types.NewInt32Field(0), types.NewInt32Field(0))
	for _, inc := range positions {
		next, err := p.Increment(last, inc, 1)
		if err != nil {
			t.Fatalf("Increment(%v) failed: %v", inc, err)
		}

		cmp, err := next.Compare(last)
		if err != nil {
			t.Fatalf("Compare failed: %v", err)
		}
		if cmp <= 0 {
			t.Errorf("Increment(%v) produced %v, not greater than %v", inc, next, last)
		}
	}
}

func TestIncrementCarryWrapsToRangeStart(t *testing.T) {
	// The second column spans [3,9]; exhausting it must wrap its value back
	// to 3 (the range's start value, not zero) and carry into the first.
	p := mustPartitioner(t, int32Range2(t, 0, 3, 5, 9, true))
	schema := mustSchema(t, []types.Type{types.Int32Type, types.Int32Type})
	last := mustTuple(t, schema, types.NewInt32Field(0), types.NewInt32Field(9))

	next, err := p.Increment(last, big.NewInt(1), 1)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	if got := int32At(t, next, 0); got != 1 {
		t.Errorf("expected carry into column 0 (value 1), got %d", got)
	}
	if got := int32At(t, next, 1); got != 3 {
		t.Errorf("expected column 1 to wrap to range start 3, got %d", got)
	}
}

func TestIncrementOverflowError(t *testing.T) {
	p := mustPartitioner(t, int32Range2(t, 0, 0, 2, 9, true))
	schema := mustSchema(t, []types.Type{types.Int32Type, types.Int32Type})
	last := mustTuple(t, schema, types.NewInt32Field(2), types.NewInt32Field(9))

	_, err := p.Increment(last, big.NewInt(1), 1)
	if err == nil {
		t.Fatal("Increment past the range end should fail")
	}

	var overflow *RangeOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected a *RangeOverflowError, got %T", err)
	}
	if overflow.Inc.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("expected offending offset 1, got %v", overflow.Inc)
	}
	if !overflow.Tuple.Equals(last) {
		t.Errorf("expected the tuple at the point of failure, got %v", overflow.Tuple)
	}
	if overflow.Range == nil {
		t.Error("expected the offending range to be attached")
	}
}

func TestIncrementCharColumn(t *testing.T) {
	schema := mustSchema(t, []types.Type{types.CharType})
	rng := mustRange(t, schema,
		mustTuple(t, schema, types.NewCharField('a')),
		mustTuple(t, schema, types.NewCharField('z')),
		true)
	p := mustPartitioner(t, rng)

	next, err := p.Increment(mustTuple(t, schema, types.NewCharField('a')), big.NewInt(13), 0)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	f, _ := next.GetField(0)
	cf, ok := f.(*types.CharField)
	if !ok {
		t.Fatalf("expected CharField, got %T", f)
	}
	if cf.Value != 'n' {
		t.Errorf("expected 'n', got %q", cf.Value)
	}
}

func TestIncrementBitColumn(t *testing.T) {
	schema := mustSchema(t, []types.Type{types.BitType})
	rng := mustRange(t, schema,
		mustTuple(t, schema, types.NewBitField(10)),
		mustTuple(t, schema, types.NewBitField(200)),
		true)
	p := mustPartitioner(t, rng)

	next, err := p.Increment(mustTuple(t, schema, types.NewBitField(10)), big.NewInt(100), 0)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	f, _ := next.GetField(0)
	bf, ok := f.(*types.BitField)
	if !ok {
		t.Fatalf("expected BitField, got %T", f)
	}
	if bf.Value != 110 {
		t.Errorf("expected 110, got %d", bf.Value)
	}
}

func TestIncrementTextFirstCharacterOnly(t *testing.T) {
	schema := mustSchema(t, []types.Type{types.TextType})
	rng := mustRange(t, schema,
		mustTuple(t, schema, types.NewTextField("apple")),
		mustTuple(t, schema, types.NewTextField("zebra")),
		true)
	p := mustPartitioner(t, rng)

	// Only the first character participates: "apple" + 1 yields "b", a
	// single-character value, regardless of the remaining characters.
	next, err := p.Increment(mustTuple(t, schema, types.NewTextField("apple")), big.NewInt(1), 0)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	f, _ := next.GetField(0)
	if f.String() != "b" {
		t.Errorf("expected \"b\", got %q", f.String())
	}
}

func TestIncrementFloatColumn(t *testing.T) {
	schema := mustSchema(t, []types.Type{types.Float64Type})
	rng := mustRange(t, schema,
		mustTuple(t, schema, types.NewFloat64Field(0)),
		mustTuple(t, schema, types.NewFloat64Field(99)),
		true)
	p := mustPartitioner(t, rng)

	next, err := p.Increment(mustTuple(t, schema, types.NewFloat64Field(0)), big.NewInt(25), 0)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	f, _ := next.GetField(0)
	v, ok := f.(*types.Float64Field)
	if !ok {
		t.Fatalf("expected Float64Field, got %T", f)
	}
	if v.Value != 25 {
		t.Errorf("expected 25.0, got %v", v.Value)
	}
}

func TestIncrementInvalidBaseDigit(t *testing.T) {
	p := mustPartitioner(t, int32Range(t, 0, 99, true))
	schema := mustSchema(t, []types.Type{types.Int32Type})
	last := mustTuple(t, schema, types.NewInt32Field(0))

	for _, baseDigit := range []int{-1, 1, 5} {
		if _, err := p.Increment(last, big.NewInt(1), baseDigit); err == nil {
			t.Errorf("Increment with base digit %d should fail", baseDigit)
		}
	}
}
