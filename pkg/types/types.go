package types

import "fmt"

// Type identifies the primitive kind of a field value.
type Type int

const (
	BitType Type = iota
	CharType
	Int16Type
	Int32Type
	Int64Type
	Float32Type
	Float64Type
	TextType
)

// String returns a string representation of the type
func (t Type) String() string {
	switch t {
	case BitType:
		return "BIT_TYPE"
	case CharType:
		return "CHAR_TYPE"
	case Int16Type:
		return "INT16_TYPE"
	case Int32Type:
		return "INT32_TYPE"
	case Int64Type:
		return "INT64_TYPE"
	case Float32Type:
		return "FLOAT32_TYPE"
	case Float64Type:
		return "FLOAT64_TYPE"
	case TextType:
		return "TEXT_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}

// ParseType resolves a lower-case type name (as used in job specs) to a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "bit":
		return BitType, nil
	case "char":
		return CharType, nil
	case "int16":
		return Int16Type, nil
	case "int32":
		return Int32Type, nil
	case "int64":
		return Int64Type, nil
	case "float32":
		return Float32Type, nil
	case "float64":
		return Float64Type, nil
	case "text":
		return TextType, nil
	default:
		return 0, fmt.Errorf("unknown type name: %q", name)
	}
}
