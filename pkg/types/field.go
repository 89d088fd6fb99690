package types

import "keysplit/pkg/primitives"

// Field is a single typed scalar value held by one column of a tuple.
type Field interface {
	Compare(op primitives.Predicate, other Field) (bool, error)

	Type() Type

	String() string

	Equals(other Field) bool
}
