package structcompile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkQueueOrdersByKey(t *testing.T) {
	var q WorkQueue
	q.Push(WorkItem{Key: OrderKey{EntityID: 5, TypeID: 1}, CostUnits: 1})
	q.Push(WorkItem{Key: OrderKey{EntityID: 1, TypeID: 9}, CostUnits: 1})
	q.Push(WorkItem{Key: OrderKey{EntityID: 1, TypeID: 0}, CostUnits: 1})

	first, ok := q.PopNext()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), first.Key.EntityID)
	assert.Equal(t, uint64(0), first.Key.TypeID)

	second, _ := q.PopNext()
	assert.Equal(t, uint64(1), second.Key.EntityID)
	assert.Equal(t, uint64(9), second.Key.TypeID)

	third, _ := q.PopNext()
	assert.Equal(t, uint64(5), third.Key.EntityID)

	_, ok = q.PopNext()
	assert.False(t, ok)
}

func TestWorkQueueStableForEqualKeys(t *testing.T) {
	var q WorkQueue
	q.Push(WorkItem{Key: OrderKey{EntityID: 1}, WorkTypeID: WorkOccupancy})
	q.Push(WorkItem{Key: OrderKey{EntityID: 1}, WorkTypeID: WorkCarrier})

	first, _ := q.PopNext()
	second, _ := q.PopNext()
	assert.Equal(t, WorkOccupancy, first.WorkTypeID)
	assert.Equal(t, WorkCarrier, second.WorkTypeID)
}

// oneProcessCall pops items while their cost fits within budget, consuming
// the budget as it goes and leaving any item that overflows it at the head
// — mirroring Compiler.Process's carryover semantics.
func oneProcessCall(q *WorkQueue, budget uint32) []ID {
	var order []ID
	remaining := budget
	for {
		item, ok := q.PeekNext()
		if !ok || item.CostUnits > remaining {
			break
		}
		popped, _ := q.PopNext()
		remaining -= popped.CostUnits
		order = append(order, popped.Key.EntityID)
	}
	return order
}

func TestWorkQueueBudgetSlicingMatchesUnboundedDrain(t *testing.T) {
	build := func() *WorkQueue {
		q := &WorkQueue{}
		q.Push(WorkItem{Key: OrderKey{EntityID: 3}, CostUnits: 5})
		q.Push(WorkItem{Key: OrderKey{EntityID: 1}, CostUnits: 3})
		q.Push(WorkItem{Key: OrderKey{EntityID: 2}, CostUnits: 4})
		return q
	}

	unbounded := oneProcessCall(build(), 1<<30)

	q := build()
	var sliced []ID
	for q.Len() > 0 {
		sliced = append(sliced, oneProcessCall(q, 5)...)
	}
	assert.Equal(t, unbounded, sliced)
}
