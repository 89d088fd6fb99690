package tuple

import (
	"fmt"

	"keysplit/pkg/types"
)

// ParseBoundary builds a tuple from one string constant per column, parsed
// according to the schema's column types. Used to turn the textual start/end
// boundaries of a job spec into typed tuples.
func ParseBoundary(schema *Schema, constants []string) (*Tuple, error) {
	if len(constants) != schema.NumColumns() {
		return nil, fmt.Errorf("boundary has %d values, schema has %d columns",
			len(constants), schema.NumColumns())
	}

	t := NewTuple(schema)
	for i, constant := range constants {
		colType, err := schema.TypeAtIndex(i)
		if err != nil {
			return nil, err
		}

		field, err := types.CreateFieldFromConstant(colType, constant)
		if err != nil {
			name, _ := schema.ColumnName(i)
			if name == "" {
				name = fmt.Sprintf("column %d", i)
			}
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		if err := t.SetField(i, field); err != nil {
			return nil, err
		}
	}

	return t, nil
}
