package structcompile

// WorkItem is one unit of queued compilation work.
type WorkItem struct {
	Key         OrderKey
	WorkTypeID  WorkType
	CostUnits   uint32
	EnqueueTick uint64
}

// WorkQueue is a dense array kept in ascending OrderKey order at all times.
// Push performs a stable binary-search insert; PeekNext/PopNext always act
// on index 0. Ordering is purely a function of OrderKey — EnqueueTick is
// payload, never a tie-breaker — so the sequence of pops under any fixed
// budget is a pure function of the sequence of pushes.
type WorkQueue struct {
	items []WorkItem
}

// Reserve pre-grows the backing array to capacity, avoiding reallocation
// churn during a large enqueue burst. It never shrinks below the current
// length.
func (q *WorkQueue) Reserve(capacity int) {
	if capacity <= len(q.items) {
		return
	}
	grown := make([]WorkItem, len(q.items), capacity)
	copy(grown, q.items)
	q.items = grown
}

// Push inserts item at its sorted position, stable among equal keys (new
// items with a key already present land after the existing ones).
func (q *WorkQueue) Push(item WorkItem) {
	lo, hi := 0, len(q.items)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if item.Key.Less(q.items[mid].Key) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	q.items = append(q.items, WorkItem{})
	copy(q.items[lo+1:], q.items[lo:len(q.items)-1])
	q.items[lo] = item
}

// PeekNext returns the head item without removing it.
func (q *WorkQueue) PeekNext() (WorkItem, bool) {
	if len(q.items) == 0 {
		return WorkItem{}, false
	}
	return q.items[0], true
}

// PopNext removes and returns the head item.
func (q *WorkQueue) PopNext() (WorkItem, bool) {
	item, ok := q.PeekNext()
	if !ok {
		return WorkItem{}, false
	}
	q.items = q.items[1:]
	return item, true
}

// Len returns the current queue depth.
func (q *WorkQueue) Len() int { return len(q.items) }
