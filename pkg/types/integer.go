package types

import (
	"fmt"
	"strconv"

	"keysplit/pkg/primitives"
)

// Int16Field represents a 16-bit signed integer field
type Int16Field struct {
	Value int16
}

func NewInt16Field(value int16) *Int16Field {
	return &Int16Field{Value: value}
}

func (f *Int16Field) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*Int16Field)
	if !ok {
		return false, fmt.Errorf("cannot compare Int16Field with %T", other)
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *Int16Field) Type() Type {
	return Int16Type
}

func (f *Int16Field) String() string {
	return strconv.FormatInt(int64(f.Value), 10)
}

func (f *Int16Field) Equals(other Field) bool {
	otherField, ok := other.(*Int16Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

// Int32Field represents a 32-bit signed integer field
type Int32Field struct {
	Value int32
}

func NewInt32Field(value int32) *Int32Field {
	return &Int32Field{Value: value}
}

func (f *Int32Field) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*Int32Field)
	if !ok {
		return false, fmt.Errorf("cannot compare Int32Field with %T", other)
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *Int32Field) Type() Type {
	return Int32Type
}

func (f *Int32Field) String() string {
	return strconv.FormatInt(int64(f.Value), 10)
}

func (f *Int32Field) Equals(other Field) bool {
	otherField, ok := other.(*Int32Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

// Int64Field represents a 64-bit signed integer field
type Int64Field struct {
	Value int64
}

func NewInt64Field(value int64) *Int64Field {
	return &Int64Field{Value: value}
}

func (f *Int64Field) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*Int64Field)
	if !ok {
		return false, fmt.Errorf("cannot compare Int64Field with %T", other)
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *Int64Field) Type() Type {
	return Int64Type
}

func (f *Int64Field) String() string {
	return strconv.FormatInt(f.Value, 10)
}

func (f *Int64Field) Equals(other Field) bool {
	otherField, ok := other.(*Int64Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}
