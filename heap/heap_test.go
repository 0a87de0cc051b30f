package heap_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/sandbox/heap"
	"github.com/outofforest/sandbox/test"
	"github.com/outofforest/sandbox/types"
)

func newHeap(requireT *require.Assertions, variant types.Variant) *heap.Heap {
	h, err := heap.New(heap.Config{Variant: variant})
	requireT.NoError(err)
	return h
}

func TestMaxHeapExample(t *testing.T) {
	requireT := require.New(t)
	h := newHeap(requireT, types.VariantMaxHeap)

	h.PushToHeap(10)
	h.PushToHeap(20)
	s := h.PushToHeap(5)
	requireT.Equal(types.Sequence{20, 10, 5}, s.Data)

	v, ok := h.PopFromHeap()
	requireT.True(ok)
	requireT.Equal(20, v)
	requireT.Equal(types.Sequence{10, 5}, h.Snapshot().Data)
}

func TestMinHeapExample(t *testing.T) {
	requireT := require.New(t)
	h := newHeap(requireT, types.VariantMinHeap)

	h.PushToHeap(10)
	h.PushToHeap(20)
	s := h.PushToHeap(5)
	requireT.Equal(types.Sequence{5, 20, 10}, s.Data)

	v, ok := h.PopFromHeap()
	requireT.True(ok)
	requireT.Equal(5, v)
	requireT.Equal(types.Sequence{10, 20}, h.Snapshot().Data)
}

func TestHeapOrdering(t *testing.T) {
	for _, variant := range []types.Variant{types.VariantMinHeap, types.VariantMaxHeap} {
		t.Run(string(variant), func(t *testing.T) {
			requireT := require.New(t)
			r := rand.New(rand.NewPCG(5, 6))
			maxHeap := variant == types.VariantMaxHeap
			h := newHeap(requireT, variant)

			values := make([]int, 0, 200)
			for range cap(values) {
				v := r.IntN(100)
				values = append(values, v)
				s := h.PushToHeap(v)
				requireT.NoError(test.CheckHeapOrder(s.Data.(types.Sequence), maxHeap))
			}

			sort.Ints(values)
			if maxHeap {
				sort.Sort(sort.Reverse(sort.IntSlice(values)))
			}

			for _, expected := range values {
				v, ok := h.PopFromHeap()
				requireT.True(ok)
				requireT.Equal(expected, v)
				requireT.NoError(test.CheckHeapOrder(h.Snapshot().Data.(types.Sequence), maxHeap))
			}

			_, ok := h.PopFromHeap()
			requireT.False(ok)
		})
	}
}

func TestBinomial(t *testing.T) {
	requireT := require.New(t)
	h := newHeap(requireT, types.VariantBinomial)

	h.Insert(10)
	h.Insert(3)
	h.Insert(20)
	s := h.Insert(3)
	requireT.Equal(types.Sequence{10, 3, 20, 3}, s.Data)

	m, ok := h.Peek()
	requireT.True(ok)
	requireT.Equal(3, m)

	v, ok := h.ExtractMin()
	requireT.True(ok)
	requireT.Equal(3, v)
	requireT.Equal(types.Sequence{10, 20, 3}, h.Snapshot().Data)

	v, ok = h.ExtractMin()
	requireT.True(ok)
	requireT.Equal(3, v)
	v, ok = h.ExtractMin()
	requireT.True(ok)
	requireT.Equal(10, v)
	h.ExtractMin()

	_, ok = h.ExtractMin()
	requireT.False(ok)
	requireT.Zero(h.Len())
}

func TestCrossVariantCallsAreNoOps(t *testing.T) {
	requireT := require.New(t)

	b := newHeap(requireT, types.VariantMaxHeap)
	b.PushToHeap(1)
	requireT.Equal(types.Sequence{1}, b.Insert(2).Data)
	_, ok := b.ExtractMin()
	requireT.False(ok)

	n := newHeap(requireT, types.VariantBinomial)
	n.Insert(1)
	requireT.Equal(types.Sequence{1}, n.PushToHeap(2).Data)
	_, ok = n.PopFromHeap()
	requireT.False(ok)
}

func TestUnsupportedVariant(t *testing.T) {
	_, err := heap.New(heap.Config{Variant: types.VariantBST})
	require.Error(t, err)
}
