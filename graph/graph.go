package graph

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/sandbox/types"
)

// Config stores graph configuration.
type Config struct {
	Variant types.Variant
}

// New creates new graph.
func New(config Config) (*Graph, error) {
	switch config.Variant {
	case types.VariantDirected, types.VariantUndirected, types.VariantWeighted:
	default:
		return nil, errors.Errorf("unsupported graph variant %q", config.Variant)
	}
	return &Graph{
		config:   config,
		vertices: map[types.Value]*vertex{},
	}, nil
}

type edge struct {
	To        types.Value
	Weight    float64
	HasWeight bool
}

type vertex struct {
	ID        types.Value
	Neighbors []edge
}

// Graph simulates directed, undirected and weighted graphs stored as adjacency lists.
type Graph struct {
	config Config

	vertices map[types.Value]*vertex
	order    []types.Value
}

// Variant returns the variant of the graph.
func (g *Graph) Variant() types.Variant {
	return g.config.Variant
}

// AddVertex adds vertex with empty adjacency list. Adding existing vertex changes nothing.
// Numeric ids are normalized, so 1 and 1.0 refer to the same vertex.
func (g *Graph) AddVertex(id types.Value) types.Snapshot {
	id = types.Normalize(id)
	if _, exists := g.vertices[id]; !exists {
		g.vertices[id] = &vertex{ID: id}
		g.order = append(g.order, id)
	}
	return g.Snapshot()
}

// AddEdge adds edge between existing vertices. Weight is recorded by weighted graph only, undirected
// graph adds the reverse edge too. If any of the vertices does not exist, nothing is changed.
func (g *Graph) AddEdge(from, to types.Value, weight ...float64) types.Snapshot {
	from, to = types.Normalize(from), types.Normalize(to)
	fromVertex, exists := g.vertices[from]
	if !exists {
		return g.Snapshot()
	}
	toVertex, exists := g.vertices[to]
	if !exists {
		return g.Snapshot()
	}

	e := edge{To: to}
	if g.config.Variant == types.VariantWeighted && len(weight) > 0 {
		e.Weight = weight[0]
		e.HasWeight = true
	}
	fromVertex.Neighbors = append(fromVertex.Neighbors, e)

	if g.config.Variant == types.VariantUndirected {
		toVertex.Neighbors = append(toVertex.Neighbors, edge{To: from})
	}

	return g.Snapshot()
}

// HasVertex reports whether vertex exists.
func (g *Graph) HasVertex(id types.Value) bool {
	_, exists := g.vertices[types.Normalize(id)]
	return exists
}

// Neighbors returns ids of the vertices reachable from vertex by single edge, in insertion order.
func (g *Graph) Neighbors(id types.Value) []types.Value {
	v, exists := g.vertices[types.Normalize(id)]
	if !exists {
		return nil
	}
	return lo.Map(v.Neighbors, func(e edge, _ int) types.Value {
		return e.To
	})
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.order)
}

// Snapshot returns the copy of current state.
func (g *Graph) Snapshot() types.Snapshot {
	return Extract(g)
}

// Extract extracts snapshot of the graph. Vertices are ordered by insertion.
func Extract(g *Graph) types.Snapshot {
	return types.Snapshot{
		Family:  types.FamilyGraph,
		Variant: g.config.Variant,
		Data: types.Vertices(lo.Map(g.order, func(id types.Value, _ int) types.Vertex {
			v := g.vertices[id]
			return types.Vertex{
				ID: v.ID,
				Neighbors: lo.Map(v.Neighbors, func(e edge, _ int) types.Edge {
					te := types.Edge{ID: e.To}
					if e.HasWeight {
						te.Weight = lo.ToPtr(e.Weight)
					}
					return te
				}),
			}
		})),
	}
}
