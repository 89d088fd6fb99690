package partition

import (
	"fmt"
	"math"
	"math/big"

	"keysplit/pkg/qerr"
	"keysplit/pkg/types"
)

// numericDomain bundles the typed operations range arithmetic needs for one
// column type: counting distinct values, overflow detection against an end
// bound, the wrapped remainder after an overflow, and advancing a value by
// an offset in the type's native width.
type numericDomain struct {
	// cardinality counts the distinct representable values between start and
	// end, optionally including end itself.
	cardinality func(start, end types.Field, inclusive bool) (*big.Int, error)

	// overflows reports whether last advanced by inc exceeds end. The
	// comparison is exact for integral types and native-width for floats.
	overflows func(last types.Field, inc *big.Int, end types.Field) (bool, error)

	// distance computes (last + inc) - end in the type's native width.
	distance func(last types.Field, inc int64, end types.Field) (int64, error)

	// advance returns a new field holding base + inc, truncated to the
	// type's native width.
	advance func(base types.Field, inc int64) (types.Field, error)
}

// integralDomain builds a numericDomain for a type whose values map exactly
// onto integers: extract pulls the native value out of a field, construct
// builds a new field from a native value. Truncation to the native width
// happens in the T conversion.
func integralDomain[T int16 | int32 | int64 | byte](
	extract func(types.Field) (T, error),
	construct func(T) types.Field,
) numericDomain {
	return numericDomain{
		cardinality: func(start, end types.Field, inclusive bool) (*big.Int, error) {
			s, err := extract(start)
			if err != nil {
				return nil, err
			}
			e, err := extract(end)
			if err != nil {
				return nil, err
			}
			card := new(big.Int).Sub(big.NewInt(int64(e)), big.NewInt(int64(s)))
			if inclusive {
				card.Add(card, bigOne)
			}
			return card, nil
		},

		overflows: func(last types.Field, inc *big.Int, end types.Field) (bool, error) {
			l, err := extract(last)
			if err != nil {
				return false, err
			}
			e, err := extract(end)
			if err != nil {
				return false, err
			}
			candidate := new(big.Int).Add(big.NewInt(int64(l)), inc)
			return candidate.Cmp(big.NewInt(int64(e))) > 0, nil
		},

		distance: func(last types.Field, inc int64, end types.Field) (int64, error) {
			l, err := extract(last)
			if err != nil {
				return 0, err
			}
			e, err := extract(end)
			if err != nil {
				return 0, err
			}
			candidate := T(int64(l) + inc)
			return int64(candidate) - int64(e), nil
		},

		advance: func(base types.Field, inc int64) (types.Field, error) {
			b, err := extract(base)
			if err != nil {
				return nil, err
			}
			return construct(T(int64(b) + inc)), nil
		},
	}
}

// floatDomain builds a numericDomain for a floating-point type. Values are
// counted in unit steps; overflow checks and remainders are computed in the
// type's native float width, accepting its precision characteristics.
// NaN and infinities are out of scope.
func floatDomain[T float32 | float64](
	extract func(types.Field) (T, error),
	construct func(T) types.Field,
) numericDomain {
	return numericDomain{
		cardinality: func(start, end types.Field, inclusive bool) (*big.Int, error) {
			s, err := extract(start)
			if err != nil {
				return nil, err
			}
			e, err := extract(end)
			if err != nil {
				return nil, err
			}
			card := big.NewInt(int64(e - s))
			if inclusive {
				card.Add(card, bigOne)
			}
			return card, nil
		},

		overflows: func(last types.Field, inc *big.Int, end types.Field) (bool, error) {
			l, err := extract(last)
			if err != nil {
				return false, err
			}
			e, err := extract(end)
			if err != nil {
				return false, err
			}
			if !inc.IsInt64() {
				// Any offset beyond int64 dwarfs a representable float range.
				return true, nil
			}
			candidate := l + T(inc.Int64())
			return candidate > e, nil
		},

		distance: func(last types.Field, inc int64, end types.Field) (int64, error) {
			l, err := extract(last)
			if err != nil {
				return 0, err
			}
			e, err := extract(end)
			if err != nil {
				return 0, err
			}
			candidate := l + T(inc)
			return int64(math.Ceil(float64(candidate - e))), nil
		},

		advance: func(base types.Field, inc int64) (types.Field, error) {
			b, err := extract(base)
			if err != nil {
				return nil, err
			}
			return construct(b + T(inc)), nil
		},
	}
}

func extractBit(f types.Field) (byte, error) {
	bf, ok := f.(*types.BitField)
	if !ok {
		return 0, fmt.Errorf("expected BitField, got %T", f)
	}
	return bf.Value, nil
}

func extractChar(f types.Field) (int32, error) {
	cf, ok := f.(*types.CharField)
	if !ok {
		return 0, fmt.Errorf("expected CharField, got %T", f)
	}
	return cf.Value, nil
}

func extractInt16(f types.Field) (int16, error) {
	v, ok := f.(*types.Int16Field)
	if !ok {
		return 0, fmt.Errorf("expected Int16Field, got %T", f)
	}
	return v.Value, nil
}

func extractInt32(f types.Field) (int32, error) {
	v, ok := f.(*types.Int32Field)
	if !ok {
		return 0, fmt.Errorf("expected Int32Field, got %T", f)
	}
	return v.Value, nil
}

func extractInt64(f types.Field) (int64, error) {
	v, ok := f.(*types.Int64Field)
	if !ok {
		return 0, fmt.Errorf("expected Int64Field, got %T", f)
	}
	return v.Value, nil
}

func extractFloat32(f types.Field) (float32, error) {
	v, ok := f.(*types.Float32Field)
	if !ok {
		return 0, fmt.Errorf("expected Float32Field, got %T", f)
	}
	return v.Value, nil
}

func extractFloat64(f types.Field) (float64, error) {
	v, ok := f.(*types.Float64Field)
	if !ok {
		return 0, fmt.Errorf("expected Float64Field, got %T", f)
	}
	return v.Value, nil
}

// extractTextFirst pulls the first character of a text field. Text columns
// participate in range arithmetic through their first character only.
func extractTextFirst(f types.Field) (int32, error) {
	v, ok := f.(*types.TextField)
	if !ok {
		return 0, fmt.Errorf("expected TextField, got %T", f)
	}
	if v.Value == "" {
		return 0, fmt.Errorf("text field must not be empty")
	}
	return v.FirstChar(), nil
}

// domains maps every supported column type to its numeric domain. A type
// absent from this table cannot take part in cardinality computation or
// range arithmetic.
var domains = map[types.Type]numericDomain{
	types.BitType:  integralDomain(extractBit, func(v byte) types.Field { return types.NewBitField(v) }),
	types.CharType: integralDomain(extractChar, func(v int32) types.Field { return types.NewCharField(v) }),

	types.Int16Type: integralDomain(extractInt16, func(v int16) types.Field { return types.NewInt16Field(v) }),
	types.Int32Type: integralDomain(extractInt32, func(v int32) types.Field { return types.NewInt32Field(v) }),
	types.Int64Type: integralDomain(extractInt64, func(v int64) types.Field { return types.NewInt64Field(v) }),

	types.Float32Type: floatDomain(extractFloat32, func(v float32) types.Field { return types.NewFloat32Field(v) }),
	types.Float64Type: floatDomain(extractFloat64, func(v float64) types.Field { return types.NewFloat64Field(v) }),

	types.TextType: integralDomain(extractTextFirst, func(v int32) types.Field { return types.NewTextField(string(v)) }),
}

func domainFor(t types.Type) (numericDomain, error) {
	d, ok := domains[t]
	if !ok {
		return numericDomain{}, qerr.New(qerr.CategoryContract, codeUnsupportedType,
			"column type is not supported by range arithmetic").WithDetail("type %v", t)
	}
	return d, nil
}
