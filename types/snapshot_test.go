package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFamilyKey(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("array", FamilyArray.Key())
	requireT.Equal("list", FamilyLinkedList.Key())
	requireT.Equal("hash", FamilyHashTable.Key())
	requireT.Equal("graph", FamilyGraph.Key())
}

func TestSnapshotMarshalJSON(t *testing.T) {
	requireT := require.New(t)

	b, err := json.Marshal(Snapshot{
		Family:  FamilyStack,
		Variant: VariantArrayBased,
		Data:    Sequence{int64(1), "a", nil},
	})
	requireT.NoError(err)
	requireT.JSONEq(`{"stack":[1,"a",null]}`, string(b))

	b, err = json.Marshal(Snapshot{
		Family:  FamilyLinkedList,
		Variant: VariantCircular,
		Data: Chain{
			Nodes: []ChainNode{{Value: int64(1), Next: 0, Prev: NoLink}},
			Head:  0,
			Tail:  0,
		},
		IsCircular: true,
	})
	requireT.NoError(err)
	requireT.JSONEq(`{"list":{"nodes":[{"value":1,"next":0,"prev":-1}],"head":0,"tail":0},"isCircular":true}`,
		string(b))
}

func TestSnapshotMarshalGraphWeights(t *testing.T) {
	requireT := require.New(t)

	weight := 2.5
	b, err := json.Marshal(Snapshot{
		Family:  FamilyGraph,
		Variant: VariantWeighted,
		Data: Vertices{
			{ID: "a", Neighbors: []Edge{{ID: "b", Weight: &weight}, {ID: "c"}}},
		},
	})
	requireT.NoError(err)
	requireT.JSONEq(`{"graph":[{"id":"a","neighbors":[{"id":"b","weight":2.5},{"id":"c"}]}]}`, string(b))
}

func TestSnapshotFingerprint(t *testing.T) {
	requireT := require.New(t)

	s1 := Snapshot{Family: FamilyHeap, Variant: VariantMinHeap, Data: Sequence{int64(1), int64(2)}}
	s2 := Snapshot{Family: FamilyHeap, Variant: VariantMinHeap, Data: Sequence{int64(1), int64(2)}}
	s3 := Snapshot{Family: FamilyHeap, Variant: VariantMinHeap, Data: Sequence{int64(2), int64(1)}}

	h1, err := s1.Fingerprint()
	requireT.NoError(err)
	h2, err := s2.Fingerprint()
	requireT.NoError(err)
	h3, err := s3.Fingerprint()
	requireT.NoError(err)

	requireT.Equal(h1, h2)
	requireT.NotEqual(h1, h3)
	requireT.NotEqual(Hash{}, h1)
}

func TestChainValues(t *testing.T) {
	requireT := require.New(t)

	c := Chain{
		Nodes: []ChainNode{
			{Value: "a", Next: 1, Prev: NoLink},
			{Value: "b", Next: NoLink, Prev: NoLink},
		},
		Head: 0,
		Tail: 1,
	}
	requireT.Equal([]Value{"a", "b"}, c.Values())
}
