package alloc

// NewRing creates ring holding up to capacity items.
func NewRing[T any](capacity uint64) *Ring[T] {
	if capacity == 0 {
		panic("ring capacity must be positive")
	}
	return &Ring[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
}

// Ring is the fixed-size FIFO buffer. Putting into full ring evicts the oldest item.
type Ring[T any] struct {
	items []T

	capacity       uint64
	getPtr, putPtr uint64
	count          uint64
}

// Put appends item. If ring is full, the oldest item is evicted and returned.
func (r *Ring[T]) Put(item T) (T, bool) {
	var evicted T
	var wasEvicted bool
	if r.count == r.capacity {
		evicted, wasEvicted = r.Get()
	}

	r.items[r.putPtr] = item
	r.putPtr++
	if r.putPtr == r.capacity {
		r.putPtr = 0
	}
	r.count++

	return evicted, wasEvicted
}

// Get removes and returns the oldest item.
func (r *Ring[T]) Get() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}

	item := r.items[r.getPtr]
	r.items[r.getPtr] = zero
	r.getPtr++
	if r.getPtr == r.capacity {
		r.getPtr = 0
	}
	r.count--

	return item, true
}

// Len returns number of items stored in the ring.
func (r *Ring[T]) Len() uint64 {
	return r.count
}

// Capacity returns the maximum number of items.
func (r *Ring[T]) Capacity() uint64 {
	return r.capacity
}

// Items returns copy of the items from the oldest to the newest.
func (r *Ring[T]) Items() []T {
	items := make([]T, 0, r.count)
	for i, ptr := uint64(0), r.getPtr; i < r.count; i++ {
		items = append(items, r.items[ptr])
		ptr++
		if ptr == r.capacity {
			ptr = 0
		}
	}
	return items
}
