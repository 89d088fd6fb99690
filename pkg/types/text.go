package types

import (
	"fmt"
	"strings"

	"keysplit/pkg/primitives"
)

// TextField represents a variable-length string field.
//
// Range arithmetic over text columns operates on the first character only:
// ordering for partitioning purposes is decided by FirstChar, and
// incrementing a text value produces a new single-character value. Full
// lexicographic partitioning of multi-character strings is not supported.
type TextField struct {
	Value string
}

func NewTextField(value string) *TextField {
	return &TextField{Value: value}
}

// FirstChar returns the first character of the value, which is the only part
// of a text field that participates in range arithmetic.
func (s *TextField) FirstChar() rune {
	for _, r := range s.Value {
		return r
	}
	return 0
}

// Compare performs a full lexicographic comparison.
func (s *TextField) Compare(op primitives.Predicate, other Field) (bool, error) {
	otherField, ok := other.(*TextField)
	if !ok {
		return false, fmt.Errorf("cannot compare TextField with %T", other)
	}

	cmp := strings.Compare(s.Value, otherField.Value)

	switch op {
	case primitives.Equals:
		return cmp == 0, nil
	case primitives.LessThan:
		return cmp < 0, nil
	case primitives.GreaterThan:
		return cmp > 0, nil
	case primitives.LessThanOrEqual:
		return cmp <= 0, nil
	case primitives.GreaterThanOrEqual:
		return cmp >= 0, nil
	case primitives.NotEqual:
		return cmp != 0, nil
	default:
		return false, fmt.Errorf("unsupported predicate for TextField: %v", op)
	}
}

func (s *TextField) Type() Type {
	return TextType
}

func (s *TextField) String() string {
	return s.Value
}

func (s *TextField) Equals(other Field) bool {
	otherField, ok := other.(*TextField)
	if !ok {
		return false
	}
	return s.Value == otherField.Value
}
