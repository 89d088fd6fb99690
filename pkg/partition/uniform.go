package partition

import (
	"math/big"

	"keysplit/pkg/qerr"
	"keysplit/pkg/tuple"
	"keysplit/pkg/types"
)

// UniformRangePartitioner splits a tuple range into sub-ranges of
// approximately equal cardinality, assuming values are uniformly distributed
// across every column's sub-range.
//
// Construction precomputes the per-column cardinalities and their prefix
// products; after that the partitioner is immutable, so one instance may
// serve concurrent Partition calls. All per-call state (the granularity
// column, reverse digit weights, loop counters) is local to the call.
type UniformRangePartitioner struct {
	schema *tuple.Schema
	rng    *tuple.TupleRange

	// colCards[i] is the cardinality of column i's sub-range in isolation.
	colCards []*big.Int

	// cardForEachDigit[i] is the product colCards[0] * ... * colCards[i]:
	// the cardinality reachable by varying columns 0..i jointly.
	cardForEachDigit []*big.Int

	// totalCard is the cardinality of the full composite range.
	totalCard *big.Int
}

var _ RangePartitioner = (*UniformRangePartitioner)(nil)

// NewUniformRangePartitioner computes the cardinality vectors for the given
// range. Fails if a column's type is unsupported for cardinality counting or
// a column's start exceeds its end.
func NewUniformRangePartitioner(rng *tuple.TupleRange) (*UniformRangePartitioner, error) {
	schema := rng.Schema()
	n := schema.NumColumns()

	colCards := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		colType, err := schema.TypeAtIndex(i)
		if err != nil {
			return nil, err
		}
		start, err := rng.Start().GetField(i)
		if err != nil {
			return nil, err
		}
		end, err := rng.End().GetField(i)
		if err != nil {
			return nil, err
		}

		card, err := ColumnCardinality(colType, start, end, rng.EndInclusive())
		if err != nil {
			return nil, err
		}
		if card.Sign() < 0 {
			return nil, qerr.New(qerr.CategoryUser, codeInvalidRange,
				"column start value exceeds its end value").
				WithDetail("column %d has negative cardinality %v", i, card).
				WithContext("NewUniformRangePartitioner", "UniformRangePartitioner")
		}
		colCards[i] = card
	}

	cardForEachDigit := make([]*big.Int, n)
	for i := range colCards {
		if i == 0 {
			cardForEachDigit[i] = new(big.Int).Set(colCards[i])
		} else {
			cardForEachDigit[i] = new(big.Int).Mul(cardForEachDigit[i-1], colCards[i])
		}
	}

	return &UniformRangePartitioner{
		schema:           schema,
		rng:              rng,
		colCards:         colCards,
		cardForEachDigit: cardForEachDigit,
		totalCard:        new(big.Int).Set(cardForEachDigit[n-1]),
	}, nil
}

// TotalCard returns the cardinality of the full composite range.
func (p *UniformRangePartitioner) TotalCard() *big.Int {
	return new(big.Int).Set(p.totalCard)
}

// Partition implements RangePartitioner.
func (p *UniformRangePartitioner) Partition(partNum int) ([]*tuple.TupleRange, error) {
	ranges, _, err := p.PartitionWithDetail(partNum)
	return ranges, err
}

// PartitionWithDetail behaves like Partition and additionally reports the
// granularity column: the least significant column whose cumulative
// cardinality is fine enough to realize partNum distinct steps. More
// significant columns stay effectively fixed across most sub-ranges; less
// significant columns are folded into the per-step increment.
func (p *UniformRangePartitioner) PartitionWithDetail(partNum int) ([]*tuple.TupleRange, int, error) {
	if partNum <= 0 {
		return nil, 0, qerr.New(qerr.CategoryUser, codeInvalidPartitionCount,
			"the number of partitions must be positive").
			WithDetail("got %d", partNum).
			WithContext("Partition", "UniformRangePartitioner")
	}

	bigPartNum := big.NewInt(int64(partNum))
	if p.totalCard.Cmp(bigPartNum) < 0 {
		return nil, 0, qerr.New(qerr.CategoryUser, codePartitionExceedsCardinality,
			"the number of partitions cannot exceed the total cardinality").
			WithDetail("partitions %d, total cardinality %v", partNum, p.totalCard).
			WithContext("Partition", "UniformRangePartitioner")
	}

	variableID := 0
	for p.cardForEachDigit[variableID].Cmp(bigPartNum) < 0 {
		variableID++
	}

	reverse := p.reverseCards(variableID)

	// Elementary composite units per sub-range. Ceiling division makes the
	// final sub-range absorb the remainder instead of under-producing ranges.
	term := ceilDiv(reverse[0], bigPartNum)

	remainder := new(big.Int).Set(reverse[0])
	last := p.rng.Start()
	var ranges []*tuple.TupleRange

	for remainder.Sign() > 0 {
		if remainder.Cmp(term) <= 0 {
			// Final sub-range: close on the original end bound so the upper
			// boundary is covered exactly, free of rounding drift.
			r, err := tuple.NewTupleRange(p.schema, last, p.rng.End(), p.rng.EndInclusive())
			if err != nil {
				return nil, 0, err
			}
			ranges = append(ranges, r)
			last = p.rng.End()
		} else {
			next, err := p.Increment(last, term, variableID)
			if err != nil {
				return nil, 0, err
			}
			r, err := tuple.NewTupleRange(p.schema, last, next, false)
			if err != nil {
				return nil, 0, err
			}
			ranges = append(ranges, r)
			last = next
		}
		remainder.Sub(remainder, term)
	}

	return ranges, variableID, nil
}

// Increment returns the tuple that is inc composite units greater than last.
// baseDigit is the least significant column taking part: the offset is
// decomposed into per-column digit magnitudes over columns 0..baseDigit,
// which are applied with per-type overflow detection and carry. A column
// that overflows its sub-range wraps around to the range's start value for
// that column and carries one unit into the next more significant column;
// overflow past column 0 fails with RangeOverflowError and produces no
// partial result.
func (p *UniformRangePartitioner) Increment(last *tuple.Tuple, inc *big.Int, baseDigit int) (*tuple.Tuple, error) {
	n := p.schema.NumColumns()
	if baseDigit < 0 || baseDigit >= n {
		return nil, qerr.New(qerr.CategoryUser, codeInvalidRange,
			"base digit out of range").
			WithDetail("base digit %d, columns %d", baseDigit, n).
			WithContext("Increment", "UniformRangePartitioner")
	}

	incs := make([]*big.Int, n)
	for i := range incs {
		incs[i] = new(big.Int)
	}
	wrapped := make([]bool, n)

	reverse := p.reverseCards(baseDigit)

	// Mixed-radix decomposition of the offset into per-digit magnitudes.
	// Each digit i carries the weight reverse[i+1]; after the division chain
	// every digit is below its column's cardinality.
	value := new(big.Int).Set(inc)
	for i := 0; i < baseDigit; i++ {
		q, r := new(big.Int).QuoRem(value, reverse[i+1], new(big.Int))
		incs[i] = q
		value = r
	}
	incs[baseDigit] = value

	// Carry propagation from the least significant affected digit upward.
	for i := baseDigit; i >= 0; i-- {
		d, lastField, endField, err := p.columnArith(last, i)
		if err != nil {
			return nil, err
		}

		over, err := d.overflows(lastField, incs[i], endField)
		if err != nil {
			return nil, qerr.Wrap(err, codeUnsupportedType, "Increment", "UniformRangePartitioner")
		}
		if !over {
			if i > 0 {
				// No carry needed; more significant digits keep their
				// decomposed values.
				break
			}
			continue
		}

		if i == 0 {
			return nil, &RangeOverflowError{
				Range: p.rng,
				Tuple: last,
				Inc:   new(big.Int).Set(inc),
			}
		}

		dist, err := d.distance(lastField, incs[i].Int64(), endField)
		if err != nil {
			return nil, qerr.Wrap(err, codeUnsupportedType, "Increment", "UniformRangePartitioner")
		}
		// The wrapped remainder counts from zero: a remainder of zero still
		// represents one wrapped unit, hence the -1.
		incs[i] = big.NewInt(dist - 1)
		incs[i-1].Add(incs[i-1], bigOne)
		wrapped[i] = true
	}

	// Rebuild the tuple column by column. Wrapped digits restart from the
	// range's start value for that column, not the type's zero; the rest
	// advance from their previous value. All arithmetic truncates in the
	// column's native width.
	result := tuple.NewTuple(p.schema)
	for i := 0; i < n; i++ {
		d, lastField, _, err := p.columnArith(last, i)
		if err != nil {
			return nil, err
		}

		base := lastField
		if wrapped[i] {
			startField, err := p.rng.Start().GetField(i)
			if err != nil {
				return nil, err
			}
			base = startField
		}

		next, err := d.advance(base, incs[i].Int64())
		if err != nil {
			return nil, qerr.Wrap(err, codeUnsupportedType, "Increment", "UniformRangePartitioner")
		}
		if err := result.SetField(i, next); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// columnArith resolves the numeric domain and the boundary fields of column i.
func (p *UniformRangePartitioner) columnArith(last *tuple.Tuple, i int) (numericDomain, types.Field, types.Field, error) {
	colType, err := p.schema.TypeAtIndex(i)
	if err != nil {
		return numericDomain{}, nil, nil, err
	}
	d, err := domainFor(colType)
	if err != nil {
		return numericDomain{}, nil, nil, qerr.Wrap(err, codeUnsupportedType, "Increment", "UniformRangePartitioner")
	}
	lastField, err := last.GetField(i)
	if err != nil {
		return numericDomain{}, nil, nil, err
	}
	endField, err := p.rng.End().GetField(i)
	if err != nil {
		return numericDomain{}, nil, nil, err
	}
	return d, lastField, endField, nil
}

// reverseCards computes the reverse prefix products over digits 0..baseDigit:
// reverseCards[baseDigit] = colCards[baseDigit], and going toward the most
// significant digit each entry multiplies in that column's cardinality.
// reverseCards[0] is the sub-total cardinality spanned by columns
// 0..baseDigit jointly.
func (p *UniformRangePartitioner) reverseCards(baseDigit int) []*big.Int {
	reverse := make([]*big.Int, baseDigit+1)
	for i := baseDigit; i >= 0; i-- {
		if i == baseDigit {
			reverse[i] = new(big.Int).Set(p.colCards[i])
		} else {
			reverse[i] = new(big.Int).Mul(reverse[i+1], p.colCards[i])
		}
	}
	return reverse
}

func ceilDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, bigOne)
	}
	return q
}
