package types

import (
	"fmt"
	"strconv"

	"keysplit/pkg/primitives"
)

// BitField represents a single-byte field
type BitField struct {
	Value byte
}

func NewBitField(value byte) *BitField {
	return &BitField{Value: value}
}

func (f *BitField) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*BitField)
	if !ok {
		return false, fmt.Errorf("cannot compare BitField with %T", other)
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *BitField) Type() Type {
	return BitType
}

func (f *BitField) String() string {
	return strconv.FormatUint(uint64(f.Value), 10)
}

func (f *BitField) Equals(other Field) bool {
	otherField, ok := other.(*BitField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

// CharField represents a single-character field
type CharField struct {
	Value rune
}

func NewCharField(value rune) *CharField {
	return &CharField{Value: value}
}

func (f *CharField) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*CharField)
	if !ok {
		return false, fmt.Errorf("cannot compare CharField with %T", other)
	}
	return compareOrdered(f.Value, otherField.Value, op)
}

func (f *CharField) Type() Type {
	return CharType
}

func (f *CharField) String() string {
	return string(f.Value)
}

func (f *CharField) Equals(other Field) bool {
	otherField, ok := other.(*CharField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}
