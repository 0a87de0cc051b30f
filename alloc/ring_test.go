package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const ringCapacity = 10

func TestRingFIFO(t *testing.T) {
	requireT := require.New(t)
	r := NewRing[int](ringCapacity)

	for i := range ringCapacity {
		_, evicted := r.Put(i)
		requireT.False(evicted)
	}
	requireT.EqualValues(ringCapacity, r.Len())

	for i := range ringCapacity {
		item, ok := r.Get()
		requireT.True(ok)
		requireT.Equal(i, item)
	}

	item, ok := r.Get()
	requireT.False(ok)
	requireT.Equal(0, item)
}

func TestRingEvictsOldest(t *testing.T) {
	requireT := require.New(t)
	r := NewRing[int](ringCapacity)

	for i := range ringCapacity {
		r.Put(i)
	}

	evictedItem, evicted := r.Put(ringCapacity)
	requireT.True(evicted)
	requireT.Equal(0, evictedItem)
	requireT.EqualValues(ringCapacity, r.Len())
	requireT.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, r.Items())
}

func TestRingWrapAround(t *testing.T) {
	requireT := require.New(t)
	r := NewRing[int](3)

	for round := range 10 {
		r.Put(round)
		r.Put(round + 100)
		item, ok := r.Get()
		requireT.True(ok)
		requireT.Equal(round, item)
		item, ok = r.Get()
		requireT.True(ok)
		requireT.Equal(round+100, item)
	}
	requireT.Empty(r.Items())
	requireT.EqualValues(3, r.Capacity())
}

func TestRingItemsIsCopy(t *testing.T) {
	requireT := require.New(t)
	r := NewRing[int](ringCapacity)
	r.Put(1)

	items := r.Items()
	items[0] = 100
	requireT.Equal([]int{1}, r.Items())
}

func TestRingZeroCapacityPanics(t *testing.T) {
	require.Panics(t, func() {
		NewRing[int](0)
	})
}
