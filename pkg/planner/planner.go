// Package planner maps the sub-ranges produced by a range partitioner onto
// downstream worker tasks. Each task receives a contiguous, non-overlapping
// slice of the key space.
package planner

import (
	"github.com/google/uuid"

	"keysplit/pkg/partition"
	"keysplit/pkg/tuple"
)

// TaskSpan is one unit of work handed to the scheduler: a contiguous slice
// of the key space, an identifier for the task, and the worker it is
// assigned to (empty when no worker list was supplied).
type TaskSpan struct {
	TaskID uuid.UUID
	Seq    int
	Worker string
	Range  *tuple.TupleRange
}

// RangePlanner turns a partitioning strategy's output into scheduled task
// spans. It is stateless apart from the strategy it wraps.
type RangePlanner struct {
	algo partition.RangePartitioner
}

func NewRangePlanner(algo partition.RangePartitioner) *RangePlanner {
	return &RangePlanner{algo: algo}
}

// PlanTasks splits the planner's range into at most partNum task spans and
// assigns them to workers round-robin. Assignment is deterministic given the
// worker order; only the task IDs are freshly generated. An empty worker
// list leaves every span unassigned.
func (p *RangePlanner) PlanTasks(partNum int, workers []string) ([]TaskSpan, error) {
	ranges, err := p.algo.Partition(partNum)
	if err != nil {
		return nil, err
	}
	return Assign(ranges, workers), nil
}

// Assign wraps already-computed sub-ranges into task spans, distributing
// them across workers round-robin.
func Assign(ranges []*tuple.TupleRange, workers []string) []TaskSpan {
	spans := make([]TaskSpan, len(ranges))
	for i, r := range ranges {
		worker := ""
		if len(workers) > 0 {
			worker = workers[i%len(workers)]
		}
		spans[i] = TaskSpan{
			TaskID: uuid.New(),
			Seq:    i,
			Worker: worker,
			Range:  r,
		}
	}
	return spans
}
