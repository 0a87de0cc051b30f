package queue

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/outofforest/sandbox/alloc"
	"github.com/outofforest/sandbox/types"
)

// CircularCapacity is the capacity of circular queue.
const CircularCapacity = 10

// Config stores queue configuration.
type Config struct {
	Variant types.Variant
}

// New creates new queue.
func New(config Config) (*Queue, error) {
	q := &Queue{
		config: config,
	}
	switch config.Variant {
	case types.VariantArrayBased, types.VariantPriority, types.VariantDeque:
	case types.VariantCircular:
		q.ring = alloc.NewRing[types.Value](CircularCapacity)
	default:
		return nil, errors.Errorf("unsupported queue variant %q", config.Variant)
	}
	return q, nil
}

// Queue simulates array-based, circular, priority and double-ended queues.
type Queue struct {
	config Config

	data     []types.Value
	ring     *alloc.Ring[types.Value]
	priority []types.PriorityItem
}

// Variant returns the variant of the queue.
func (q *Queue) Variant() types.Variant {
	return q.config.Variant
}

// Enqueue appends value to the queue. Priority is used by priority queue only.
// Full circular queue evicts its oldest value. Deque ignores this operation.
func (q *Queue) Enqueue(value types.Value, priority float64) types.Snapshot {
	switch q.config.Variant {
	case types.VariantArrayBased:
		q.data = append(q.data, value)
	case types.VariantCircular:
		q.ring.Put(value)
	case types.VariantPriority:
		q.priority = append(q.priority, types.PriorityItem{
			Value:    value,
			Priority: priority,
		})
		sort.SliceStable(q.priority, func(i, j int) bool {
			return q.priority[i].Priority > q.priority[j].Priority
		})
	}
	return q.Snapshot()
}

// Dequeue removes and returns the value from the front. Deque ignores this operation.
func (q *Queue) Dequeue() (types.Value, bool) {
	switch q.config.Variant {
	case types.VariantArrayBased:
		return q.popFront()
	case types.VariantCircular:
		return q.ring.Get()
	case types.VariantPriority:
		if len(q.priority) == 0 {
			return nil, false
		}
		item := q.priority[0]
		q.priority[0] = types.PriorityItem{}
		q.priority = q.priority[1:]
		return item.Value, true
	default:
		return nil, false
	}
}

// PushFront inserts value at the front of deque.
func (q *Queue) PushFront(value types.Value) types.Snapshot {
	if q.config.Variant == types.VariantDeque {
		q.data = append(q.data, nil)
		copy(q.data[1:], q.data)
		q.data[0] = value
	}
	return q.Snapshot()
}

// PushBack inserts value at the back of deque.
func (q *Queue) PushBack(value types.Value) types.Snapshot {
	if q.config.Variant == types.VariantDeque {
		q.data = append(q.data, value)
	}
	return q.Snapshot()
}

// PopFront removes and returns value from the front of deque.
func (q *Queue) PopFront() (types.Value, bool) {
	if q.config.Variant != types.VariantDeque {
		return nil, false
	}
	return q.popFront()
}

// PopBack removes and returns value from the back of deque.
func (q *Queue) PopBack() (types.Value, bool) {
	if q.config.Variant != types.VariantDeque || len(q.data) == 0 {
		return nil, false
	}
	value := q.data[len(q.data)-1]
	q.data[len(q.data)-1] = nil
	q.data = q.data[:len(q.data)-1]
	return value, true
}

// Len returns the number of values in the queue.
func (q *Queue) Len() int {
	switch q.config.Variant {
	case types.VariantCircular:
		return int(q.ring.Len())
	case types.VariantPriority:
		return len(q.priority)
	default:
		return len(q.data)
	}
}

func (q *Queue) popFront() (types.Value, bool) {
	if len(q.data) == 0 {
		return nil, false
	}
	value := q.data[0]
	q.data[0] = nil
	q.data = q.data[1:]
	return value, true
}

// Snapshot returns the copy of current state.
func (q *Queue) Snapshot() types.Snapshot {
	return Extract(q)
}

// Extract extracts snapshot of the queue. Values are ordered from front to back.
func Extract(q *Queue) types.Snapshot {
	s := types.Snapshot{
		Family:  types.FamilyQueue,
		Variant: q.config.Variant,
	}
	switch q.config.Variant {
	case types.VariantCircular:
		s.Data = types.Sequence(q.ring.Items())
	case types.VariantPriority:
		s.Data = append(types.PriorityItems{}, q.priority...)
	default:
		s.Data = append(types.Sequence{}, q.data...)
	}
	return s
}
