package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/sandbox/list"
	"github.com/outofforest/sandbox/types"
)

func newList(requireT *require.Assertions, variant types.Variant) *list.List {
	l, err := list.New(list.Config{Variant: variant})
	requireT.NoError(err)
	return l
}

func TestSinglyAppend(t *testing.T) {
	requireT := require.New(t)
	l := newList(requireT, types.VariantSingly)

	l.Append(10)
	l.Append(20)
	s := l.Append(5)

	requireT.False(s.IsCircular)
	requireT.Equal(types.Chain{
		Nodes: []types.ChainNode{
			{Value: 10, Next: 1, Prev: types.NoLink},
			{Value: 20, Next: 2, Prev: types.NoLink},
			{Value: 5, Next: types.NoLink, Prev: types.NoLink},
		},
		Head: 0,
		Tail: 2,
	}, s.Data)
	requireT.Equal([]types.Value{10, 20, 5}, l.Values())
	requireT.Equal(3, l.Len())
	requireT.Zero(l.Node(l.Tail()).Next)
}

func TestDoublyLinksAreConsistent(t *testing.T) {
	requireT := require.New(t)
	l := newList(requireT, types.VariantDoubly)

	for i := range 5 {
		l.Append(i)
	}

	var prev types.NodeAddress
	for nodeAddress, node := range l.Iterator() {
		requireT.Equal(prev, node.Prev)
		if node.Next != 0 {
			requireT.Equal(nodeAddress, l.Node(node.Next).Prev)
		}
		prev = nodeAddress
	}
	requireT.Equal(l.Tail(), prev)

	chain := l.Snapshot().Data.(types.Chain)
	for i, n := range chain.Nodes {
		requireT.Equal(i-1, n.Prev)
	}
}

func TestCircularClosure(t *testing.T) {
	requireT := require.New(t)

	for n := 1; n <= 6; n++ {
		l := newList(requireT, types.VariantCircular)
		for i := range n {
			l.Append(i)
		}

		nodeAddress := l.Head()
		for range n {
			nodeAddress = l.Node(nodeAddress).Next
		}
		requireT.Equal(l.Head(), nodeAddress)
		requireT.Equal(l.Head(), l.Node(l.Tail()).Next)

		s := l.Snapshot()
		requireT.True(s.IsCircular)
		chain := s.Data.(types.Chain)
		requireT.Len(chain.Nodes, n)
		requireT.Equal(0, chain.Nodes[n-1].Next)
		requireT.Len(l.Values(), n)
	}
}

func TestCircularSingleNodePointsToItself(t *testing.T) {
	requireT := require.New(t)
	l := newList(requireT, types.VariantCircular)

	l.Append(1)
	requireT.Equal(l.Head(), l.Node(l.Head()).Next)
	requireT.Equal([]types.Value{1}, l.Values())
}

func TestEmptyList(t *testing.T) {
	requireT := require.New(t)
	l := newList(requireT, types.VariantSingly)

	s := l.Snapshot()
	requireT.Equal(types.Chain{
		Nodes: []types.ChainNode{},
		Head:  types.NoLink,
		Tail:  types.NoLink,
	}, s.Data)
	requireT.Empty(l.Values())
}

func TestSnapshotsAreIndependent(t *testing.T) {
	requireT := require.New(t)
	l := newList(requireT, types.VariantSingly)

	s1 := l.Append(1)
	l.Append(2)

	requireT.Len(s1.Data.(types.Chain).Nodes, 1)
	requireT.Len(l.Snapshot().Data.(types.Chain).Nodes, 2)
}

func TestUnsupportedVariant(t *testing.T) {
	_, err := list.New(list.Config{Variant: types.VariantBST})
	require.Error(t, err)
}
