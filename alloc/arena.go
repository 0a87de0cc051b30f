package alloc

import (
	"github.com/outofforest/sandbox/types"
)

// NewArena creates arena storing nodes of type T.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{
		// Node at address 0 is never used so zero address means nil link.
		nodes: make([]T, 1),
	}
}

// Arena stores nodes of pointer-based structures and hands out stable addresses to them.
// Pointers returned by Node are valid until the next call to Allocate.
type Arena[T any] struct {
	nodes []T
	free  []types.NodeAddress
	live  uint64
}

// Allocate allocates zeroed node and returns its address.
func (a *Arena[T]) Allocate() (types.NodeAddress, *T) {
	a.live++
	if n := len(a.free); n > 0 {
		nodeAddress := a.free[n-1]
		a.free = a.free[:n-1]
		return nodeAddress, &a.nodes[nodeAddress]
	}

	var zero T
	a.nodes = append(a.nodes, zero)
	nodeAddress := types.NodeAddress(len(a.nodes) - 1)
	return nodeAddress, &a.nodes[nodeAddress]
}

// Node returns node stored under the address.
func (a *Arena[T]) Node(nodeAddress types.NodeAddress) *T {
	if nodeAddress == 0 || uint64(nodeAddress) >= uint64(len(a.nodes)) {
		panic("invalid node address")
	}
	return &a.nodes[nodeAddress]
}

// Deallocate zeroes the node and returns its address to the free list.
func (a *Arena[T]) Deallocate(nodeAddress types.NodeAddress) {
	if nodeAddress == 0 {
		return
	}

	var zero T
	a.nodes[nodeAddress] = zero
	a.free = append(a.free, nodeAddress)
	a.live--
}

// Len returns the number of allocated nodes.
func (a *Arena[T]) Len() uint64 {
	return a.live
}

// Walk iterates over addresses reachable by following links returned by next, starting from the
// provided address. Iteration stops on zero address or on the first address visited before, so it
// terminates on cyclic structures.
func (a *Arena[T]) Walk(start types.NodeAddress, next func(*T) types.NodeAddress) func(func(types.NodeAddress, *T) bool) {
	return func(yield func(types.NodeAddress, *T) bool) {
		visited := map[types.NodeAddress]struct{}{}
		for nodeAddress := start; nodeAddress != 0; {
			if _, exists := visited[nodeAddress]; exists {
				return
			}
			visited[nodeAddress] = struct{}{}

			node := a.Node(nodeAddress)
			if !yield(nodeAddress, node) {
				return
			}
			nodeAddress = next(node)
		}
	}
}
