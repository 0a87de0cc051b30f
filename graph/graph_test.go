package graph_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/sandbox/graph"
	"github.com/outofforest/sandbox/types"
)

func newGraph(requireT *require.Assertions, variant types.Variant) *graph.Graph {
	g, err := graph.New(graph.Config{Variant: variant})
	requireT.NoError(err)
	return g
}

func TestUndirectedEdgeMirroring(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantUndirected)

	g.AddVertex(1)
	g.AddVertex(2)
	s := g.AddEdge(1, 2, 7)

	requireT.Equal([]types.Value{int64(2)}, g.Neighbors(1))
	requireT.Equal([]types.Value{int64(1)}, g.Neighbors(2))
	requireT.Equal(types.Vertices{
		{ID: int64(1), Neighbors: []types.Edge{{ID: int64(2)}}},
		{ID: int64(2), Neighbors: []types.Edge{{ID: int64(1)}}},
	}, s.Data)
}

func TestDirectedEdge(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantDirected)

	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(1, 2, 7)

	requireT.Equal([]types.Value{int64(2)}, g.Neighbors(1))
	requireT.Empty(g.Neighbors(2))
	requireT.Nil(g.Snapshot().Data.(types.Vertices)[0].Neighbors[0].Weight)
}

func TestWeightedEdge(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantWeighted)

	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(1, 2, 5)
	s := g.AddEdge(2, 1)

	requireT.Equal(types.Vertices{
		{ID: int64(1), Neighbors: []types.Edge{{ID: int64(2), Weight: lo.ToPtr[float64](5)}}},
		{ID: int64(2), Neighbors: []types.Edge{{ID: int64(1)}}},
	}, s.Data)
}

func TestIdempotentVertexAdd(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantDirected)

	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(1, 2)
	before := g.Snapshot()

	s := g.AddVertex(1)
	requireT.Equal(before, s)
	requireT.Equal(2, g.Order())
	requireT.Equal([]types.Value{int64(2)}, g.Neighbors(1))
}

func TestEdgeToMissingVertexIsIgnored(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantUndirected)

	g.AddVertex(1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 1)

	requireT.Empty(g.Neighbors(1))
	requireT.False(g.HasVertex(2))
	requireT.Nil(g.Neighbors(3))
}

func TestVerticesKeepInsertionOrder(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantDirected)

	for _, id := range []types.Value{"c", "a", "b"} {
		g.AddVertex(id)
	}
	ids := lo.Map(g.Snapshot().Data.(types.Vertices), func(v types.Vertex, _ int) types.Value {
		return v.ID
	})
	requireT.Equal([]types.Value{"c", "a", "b"}, ids)
}

func TestSnapshotIsCopy(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantWeighted)

	g.AddVertex(1)
	g.AddVertex(2)
	s := g.AddEdge(1, 2, 3)
	*s.Data.(types.Vertices)[0].Neighbors[0].Weight = 100
	s.Data.(types.Vertices)[0].Neighbors[0].ID = 9

	requireT.Equal(types.Vertices{
		{ID: int64(1), Neighbors: []types.Edge{{ID: int64(2), Weight: lo.ToPtr[float64](3)}}},
		{ID: int64(2), Neighbors: []types.Edge{}},
	}, g.Snapshot().Data)
}

func TestNumericIDsAreNormalized(t *testing.T) {
	requireT := require.New(t)
	g := newGraph(requireT, types.VariantUndirected)

	g.AddVertex(1)
	g.AddVertex(int64(1))
	g.AddVertex(1.0)
	g.AddVertex(uint8(2))
	g.AddEdge(1.0, int32(2))

	requireT.Equal(2, g.Order())
	requireT.True(g.HasVertex(int16(1)))
	requireT.Equal([]types.Value{int64(2)}, g.Neighbors(1))
	requireT.Equal([]types.Value{int64(1)}, g.Neighbors(2.0))
	requireT.Equal(types.Vertices{
		{ID: int64(1), Neighbors: []types.Edge{{ID: int64(2)}}},
		{ID: int64(2), Neighbors: []types.Edge{{ID: int64(1)}}},
	}, g.Snapshot().Data)
}

func TestUnsupportedVariant(t *testing.T) {
	_, err := graph.New(graph.Config{Variant: types.VariantBST})
	require.Error(t, err)
}
