package tuple

import (
	"fmt"
	"strings"

	"keysplit/pkg/types"
)

// Schema describes the ordered, typed columns of a tuple. Column order
// defines digit significance for range arithmetic: index 0 is the most
// significant column.
type Schema struct {
	// Types contains the data type of each column in order
	Types []types.Type
	// ColumnNames contains the name of each column (optional, may be nil)
	ColumnNames []string
}

// NewSchema creates a new Schema given column types and optional column names.
// If columnNames is nil, columns have no names.
//
// Returns an error if columnTypes is empty or columnNames length does not
// match columnTypes length.
func NewSchema(columnTypes []types.Type, columnNames []string) (*Schema, error) {
	if len(columnTypes) < 1 {
		return nil, fmt.Errorf("must provide at least one column type")
	}

	typesCopy := make([]types.Type, len(columnTypes))
	copy(typesCopy, columnTypes)

	var namesCopy []string
	if columnNames != nil {
		if len(columnNames) != len(columnTypes) {
			return nil, fmt.Errorf("column names length (%d) must match column types length (%d)",
				len(columnNames), len(columnTypes))
		}
		namesCopy = make([]string, len(columnNames))
		copy(namesCopy, columnNames)
	}

	return &Schema{
		Types:       typesCopy,
		ColumnNames: namesCopy,
	}, nil
}

// NumColumns returns the number of columns in this schema.
func (s *Schema) NumColumns() int {
	return len(s.Types)
}

// TypeAtIndex returns the type of the ith column.
func (s *Schema) TypeAtIndex(i int) (types.Type, error) {
	if i < 0 || i >= len(s.Types) {
		return 0, fmt.Errorf("column index %d out of bounds [0, %d)", i, len(s.Types))
	}
	return s.Types[i], nil
}

// ColumnName returns the name of the ith column, or "" if no names were provided.
func (s *Schema) ColumnName(i int) (string, error) {
	if i < 0 || i >= len(s.Types) {
		return "", fmt.Errorf("column index %d out of bounds [0, %d)", i, len(s.Types))
	}

	if s.ColumnNames == nil {
		return "", nil
	}

	return s.ColumnNames[i], nil
}

// Equals checks if two schemas have the same column types in the same order.
// Column names are not compared.
func (s *Schema) Equals(other *Schema) bool {
	if other == nil {
		return false
	}

	if len(s.Types) != len(other.Types) {
		return false
	}

	for i, t := range s.Types {
		if t != other.Types[i] {
			return false
		}
	}

	return true
}

// String returns a string representation like "id(INT32_TYPE), name(TEXT_TYPE)".
func (s *Schema) String() string {
	var parts []string
	for i, t := range s.Types {
		name := ""
		if s.ColumnNames != nil {
			name = s.ColumnNames[i]
		}
		if name != "" {
			parts = append(parts, fmt.Sprintf("%s(%v)", name, t))
		} else {
			parts = append(parts, fmt.Sprintf("%v", t))
		}
	}
	return strings.Join(parts, ", ")
}
