package cli

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"keysplit/pkg/tuple"
	"keysplit/pkg/types"
)

// ColumnSpec names one key column and its type. Supported type names:
// bit, char, int16, int32, int64, float32, float64, text.
type ColumnSpec struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required"`
}

// JobSpec is the YAML description of one partitioning job: the key schema,
// the range boundaries as string constants, and the requested partition
// count. Workers, when given, receive the resulting sub-ranges round-robin.
type JobSpec struct {
	Columns    []ColumnSpec `yaml:"columns" validate:"required,min=1,dive"`
	Start      []string     `yaml:"start" validate:"required"`
	End        []string     `yaml:"end" validate:"required"`
	Inclusive  bool         `yaml:"inclusive"`
	Partitions int          `yaml:"partitions" validate:"required,gt=0"`
	Workers    []string     `yaml:"workers"`
}

var validate = validator.New()

// LoadJobSpec reads and validates a job spec from a YAML file.
func LoadJobSpec(path string) (*JobSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job spec: %w", err)
	}
	return ParseJobSpec(raw)
}

// ParseJobSpec parses and validates a job spec from YAML bytes.
func ParseJobSpec(raw []byte) (*JobSpec, error) {
	var spec JobSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing job spec: %w", err)
	}

	if err := validate.Struct(&spec); err != nil {
		return nil, fmt.Errorf("invalid job spec: %w", err)
	}

	if len(spec.Start) != len(spec.Columns) {
		return nil, fmt.Errorf("start has %d values, schema has %d columns",
			len(spec.Start), len(spec.Columns))
	}
	if len(spec.End) != len(spec.Columns) {
		return nil, fmt.Errorf("end has %d values, schema has %d columns",
			len(spec.End), len(spec.Columns))
	}

	return &spec, nil
}

// BuildRange turns the job spec into a typed tuple range.
func (j *JobSpec) BuildRange() (*tuple.TupleRange, error) {
	colTypes := make([]types.Type, len(j.Columns))
	colNames := make([]string, len(j.Columns))
	for i, c := range j.Columns {
		t, err := types.ParseType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		colTypes[i] = t
		colNames[i] = c.Name
	}

	schema, err := tuple.NewSchema(colTypes, colNames)
	if err != nil {
		return nil, err
	}

	start, err := tuple.ParseBoundary(schema, j.Start)
	if err != nil {
		return nil, fmt.Errorf("start boundary: %w", err)
	}
	end, err := tuple.ParseBoundary(schema, j.End)
	if err != nil {
		return nil, fmt.Errorf("end boundary: %w", err)
	}

	return tuple.NewTupleRange(schema, start, end, j.Inclusive)
}
