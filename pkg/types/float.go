package types

import (
	"fmt"
	"strconv"

	"keysplit/pkg/primitives"
)

// Float32Field represents a 32-bit floating-point field
type Float32Field struct {
	Value float32
}

func NewFloat32Field(value float32) *Float32Field {
	return &Float32Field{Value: value}
}

func (f *Float32Field) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*Float32Field)
	if !ok {
		return false, fmt.Errorf("cannot compare Float32Field with %T", other)
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *Float32Field) Type() Type {
	return Float32Type
}

func (f *Float32Field) String() string {
	return strconv.FormatFloat(float64(f.Value), 'f', -1, 32)
}

func (f *Float32Field) Equals(other Field) bool {
	otherField, ok := other.(*Float32Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

// Float64Field represents a 64-bit floating-point field
type Float64Field struct {
	Value float64
}

func NewFloat64Field(value float64) *Float64Field {
	return &Float64Field{Value: value}
}

func (f *Float64Field) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false, fmt.Errorf("cannot compare Float64Field with %T", other)
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *Float64Field) Type() Type {
	return Float64Type
}

func (f *Float64Field) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

func (f *Float64Field) Equals(other Field) bool {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}
