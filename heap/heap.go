package heap

import (
	"github.com/pkg/errors"

	"github.com/outofforest/sandbox/types"
)

// Config stores heap configuration.
type Config struct {
	Variant types.Variant
}

// New creates new heap.
func New(config Config) (*Heap, error) {
	switch config.Variant {
	case types.VariantMinHeap, types.VariantMaxHeap, types.VariantBinomial:
	default:
		return nil, errors.Errorf("unsupported heap variant %q", config.Variant)
	}
	return &Heap{
		config: config,
	}, nil
}

// Heap simulates array-backed binary min and max heaps. Binomial variant is kept as a flat multiset
// with linear minimum extraction.
type Heap struct {
	config Config
	data   []types.Value
}

// Variant returns the variant of the heap.
func (h *Heap) Variant() types.Variant {
	return h.config.Variant
}

// PushToHeap inserts value into binary heap. Binomial heap ignores this operation.
func (h *Heap) PushToHeap(value types.Value) types.Snapshot {
	if !h.binary() {
		return h.Snapshot()
	}

	h.data = append(h.data, value)
	h.siftUp(len(h.data) - 1)

	return h.Snapshot()
}

// PopFromHeap removes and returns the root of binary heap. False is returned if heap is empty or
// it is binomial heap.
func (h *Heap) PopFromHeap() (types.Value, bool) {
	if !h.binary() || len(h.data) == 0 {
		return nil, false
	}

	root := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data[last] = nil
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return root, true
}

// Insert appends value to binomial heap. Binary heaps ignore this operation.
func (h *Heap) Insert(value types.Value) types.Snapshot {
	if h.config.Variant == types.VariantBinomial {
		h.data = append(h.data, value)
	}
	return h.Snapshot()
}

// ExtractMin removes one occurrence of the minimum from binomial heap and returns it.
// Other copies of the minimum stay in the heap, so duplicates are extracted one call at a time.
// Binary heaps ignore this operation.
func (h *Heap) ExtractMin() (types.Value, bool) {
	if h.config.Variant != types.VariantBinomial || len(h.data) == 0 {
		return nil, false
	}

	minIndex := 0
	for i := 1; i < len(h.data); i++ {
		if types.Less(h.data[i], h.data[minIndex]) {
			minIndex = i
		}
	}

	value := h.data[minIndex]
	copy(h.data[minIndex:], h.data[minIndex+1:])
	h.data[len(h.data)-1] = nil
	h.data = h.data[:len(h.data)-1]

	return value, true
}

// Peek returns the root of binary heap or the minimum of binomial heap.
func (h *Heap) Peek() (types.Value, bool) {
	if len(h.data) == 0 {
		return nil, false
	}
	if h.binary() {
		return h.data[0], true
	}

	minValue := h.data[0]
	for _, v := range h.data[1:] {
		if types.Less(v, minValue) {
			minValue = v
		}
	}
	return minValue, true
}

// Len returns the number of values in the heap.
func (h *Heap) Len() int {
	return len(h.data)
}

// Snapshot returns the copy of current state.
func (h *Heap) Snapshot() types.Snapshot {
	return Extract(h)
}

// Extract extracts snapshot of the heap.
func Extract(h *Heap) types.Snapshot {
	return types.Snapshot{
		Family:  types.FamilyHeap,
		Variant: h.config.Variant,
		Data:    append(types.Sequence{}, h.data...),
	}
}

func (h *Heap) binary() bool {
	return h.config.Variant == types.VariantMinHeap || h.config.Variant == types.VariantMaxHeap
}

// before reports whether value at index i must be placed above value at index j.
func (h *Heap) before(i, j int) bool {
	if h.config.Variant == types.VariantMaxHeap {
		return types.Compare(h.data[i], h.data[j]) > 0
	}
	return types.Compare(h.data[i], h.data[j]) < 0
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(i, parent) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	for {
		extreme := i
		if left := 2*i + 1; left < len(h.data) && h.before(left, extreme) {
			extreme = left
		}
		if right := 2*i + 2; right < len(h.data) && h.before(right, extreme) {
			extreme = right
		}
		if extreme == i {
			return
		}
		h.data[i], h.data[extreme] = h.data[extreme], h.data[i]
		i = extreme
	}
}
