package partition

import (
	"math/big"

	"keysplit/pkg/qerr"
	"keysplit/pkg/tuple"
	"keysplit/pkg/types"
)

var bigOne = big.NewInt(1)

// ColumnCardinality returns the exact count of distinct representable values
// between start and end for a column of type t, including end itself when
// inclusive is true. The count is exact: no floating approximation, so chunk
// sizes derived from products of column cardinalities do not drift across
// many partitions.
func ColumnCardinality(t types.Type, start, end types.Field, inclusive bool) (*big.Int, error) {
	d, err := domainFor(t)
	if err != nil {
		return nil, qerr.Wrap(err, codeUnsupportedType, "ColumnCardinality", "CardinalityProvider")
	}

	card, err := d.cardinality(start, end, inclusive)
	if err != nil {
		return nil, qerr.Wrap(err, codeUnsupportedType, "ColumnCardinality", "CardinalityProvider")
	}
	return card, nil
}

// TotalCardinality returns the cardinality of the full composite range: the
// product of the per-column cardinalities, honoring the range's end
// inclusivity.
func TotalCardinality(r *tuple.TupleRange) (*big.Int, error) {
	schema := r.Schema()
	total := big.NewInt(1)

	for i := 0; i < schema.NumColumns(); i++ {
		colType, err := schema.TypeAtIndex(i)
		if err != nil {
			return nil, err
		}
		start, err := r.Start().GetField(i)
		if err != nil {
			return nil, err
		}
		end, err := r.End().GetField(i)
		if err != nil {
			return nil, err
		}

		card, err := ColumnCardinality(colType, start, end, r.EndInclusive())
		if err != nil {
			return nil, err
		}
		total.Mul(total, card)
	}

	return total, nil
}
