package types

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// CreateFieldFromConstant parses a string constant into a field of the given
// type. This is how boundary values from job specs become typed fields.
func CreateFieldFromConstant(t Type, constant string) (Field, error) {
	switch t {
	case BitType:
		v, err := strconv.ParseUint(constant, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid bit constant %q: %w", constant, err)
		}
		return NewBitField(byte(v)), nil

	case CharType:
		if utf8.RuneCountInString(constant) != 1 {
			return nil, fmt.Errorf("char constant must be a single character, got %q", constant)
		}
		r, _ := utf8.DecodeRuneInString(constant)
		return NewCharField(r), nil

	case Int16Type:
		v, err := strconv.ParseInt(constant, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid int16 constant %q: %w", constant, err)
		}
		return NewInt16Field(int16(v)), nil

	case Int32Type:
		v, err := strconv.ParseInt(constant, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid int32 constant %q: %w", constant, err)
		}
		return NewInt32Field(int32(v)), nil

	case Int64Type:
		v, err := strconv.ParseInt(constant, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int64 constant %q: %w", constant, err)
		}
		return NewInt64Field(v), nil

	case Float32Type:
		v, err := strconv.ParseFloat(constant, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float32 constant %q: %w", constant, err)
		}
		return NewFloat32Field(float32(v)), nil

	case Float64Type:
		v, err := strconv.ParseFloat(constant, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float64 constant %q: %w", constant, err)
		}
		return NewFloat64Field(v), nil

	case TextType:
		if constant == "" {
			return nil, fmt.Errorf("text constant must not be empty")
		}
		return NewTextField(constant), nil

	default:
		return nil, fmt.Errorf("unsupported field type: %v", t)
	}
}
