package tuple

import (
	"fmt"
	"strings"

	"keysplit/pkg/primitives"
	"keysplit/pkg/types"
)

// Tuple is an ordered sequence of fields matching a schema, one field per
// column by position. Tuples are value objects: range arithmetic always
// produces a new tuple rather than mutating one that might be referenced
// elsewhere.
type Tuple struct {
	Schema *Schema       // Schema of this tuple
	fields []types.Field // The actual field values
}

// NewTuple creates a new tuple with the given schema and no field values set.
func NewTuple(schema *Schema) *Tuple {
	return &Tuple{
		Schema: schema,
		fields: make([]types.Field, schema.NumColumns()),
	}
}

func (t *Tuple) SetField(i int, field types.Field) error {
	if i < 0 || i >= len(t.fields) {
		return fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}

	expectedType, _ := t.Schema.TypeAtIndex(i)
	if field.Type() != expectedType {
		return fmt.Errorf("field type mismatch: expected %v, got %v",
			expectedType, field.Type())
	}

	t.fields[i] = field
	return nil
}

// GetField returns the value of the ith field
func (t *Tuple) GetField(i int) (types.Field, error) {
	if i < 0 || i >= len(t.fields) {
		return nil, fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	return t.fields[i], nil
}

// Equals reports whether both tuples hold equal field values under the same schema.
func (t *Tuple) Equals(other *Tuple) bool {
	if other == nil || !t.Schema.Equals(other.Schema) {
		return false
	}
	for i, f := range t.fields {
		if f == nil || other.fields[i] == nil {
			if f != other.fields[i] {
				return false
			}
			continue
		}
		if !f.Equals(other.fields[i]) {
			return false
		}
	}
	return true
}

// Compare orders t against other under composite key ordering: column 0 is
// the most significant, and the first column whose values differ decides.
// Returns -1, 0, or 1.
func (t *Tuple) Compare(other *Tuple) (int, error) {
	if other == nil || !t.Schema.Equals(other.Schema) {
		return 0, fmt.Errorf("cannot compare tuples with different schemas")
	}

	for i, f := range t.fields {
		o := other.fields[i]
		if f == nil || o == nil {
			return 0, fmt.Errorf("cannot compare tuples with null fields at column %d", i)
		}

		less, err := f.Compare(primitives.LessThan, o)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", i, err)
		}
		if less {
			return -1, nil
		}

		greater, err := f.Compare(primitives.GreaterThan, o)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", i, err)
		}
		if greater {
			return 1, nil
		}
	}

	return 0, nil
}

// Clone creates a copy of this tuple with all field values.
func (t *Tuple) Clone() *Tuple {
	newTup := NewTuple(t.Schema)
	copy(newTup.fields, t.fields)
	return newTup
}

// String returns a string representation of this tuple.
// Format: (field1, field2, ..., fieldN)
func (t *Tuple) String() string {
	var parts []string
	for _, field := range t.fields {
		if field != nil {
			parts = append(parts, field.String())
		} else {
			parts = append(parts, "null")
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
