package list

import (
	"github.com/pkg/errors"

	"github.com/outofforest/sandbox/alloc"
	"github.com/outofforest/sandbox/types"
)

// Config stores list configuration.
type Config struct {
	Variant types.Variant
}

// New creates new linked list.
func New(config Config) (*List, error) {
	switch config.Variant {
	case types.VariantSingly, types.VariantDoubly, types.VariantCircular:
	default:
		return nil, errors.Errorf("unsupported linked list variant %q", config.Variant)
	}
	return &List{
		config: config,
		arena:  alloc.NewArena[Node](),
	}, nil
}

// Node is the node of linked list.
type Node struct {
	Value types.Value
	Next  types.NodeAddress
	Prev  types.NodeAddress
}

// List simulates singly, doubly and circular linked lists.
type List struct {
	config Config
	arena  *alloc.Arena[Node]

	head, tail types.NodeAddress
}

// Variant returns the variant of the list.
func (l *List) Variant() types.Variant {
	return l.config.Variant
}

// Append adds value at the tail of the list.
func (l *List) Append(value types.Value) types.Snapshot {
	nodeAddress, node := l.arena.Allocate()
	node.Value = value

	switch {
	case l.head == 0:
		l.head = nodeAddress
		if l.config.Variant == types.VariantCircular {
			node.Next = nodeAddress
		}
	case l.config.Variant == types.VariantCircular:
		node.Next = l.head
		l.arena.Node(l.tail).Next = nodeAddress
	case l.config.Variant == types.VariantDoubly:
		node.Prev = l.tail
		l.arena.Node(l.tail).Next = nodeAddress
	default:
		l.arena.Node(l.tail).Next = nodeAddress
	}
	l.tail = nodeAddress

	return l.Snapshot()
}

// Head returns address of the head node.
func (l *List) Head() types.NodeAddress {
	return l.head
}

// Tail returns address of the tail node.
func (l *List) Tail() types.NodeAddress {
	return l.tail
}

// Node returns node stored under the address.
func (l *List) Node(nodeAddress types.NodeAddress) Node {
	return *l.arena.Node(nodeAddress)
}

// Len returns the number of nodes.
func (l *List) Len() int {
	return int(l.arena.Len())
}

// Iterator iterates over nodes starting from head. It stops after one full pass of circular list.
func (l *List) Iterator() func(func(types.NodeAddress, Node) bool) {
	return func(yield func(types.NodeAddress, Node) bool) {
		for nodeAddress, node := range l.arena.Walk(l.head, next) {
			if !yield(nodeAddress, *node) {
				return
			}
		}
	}
}

// Values returns values stored in the list from head to tail.
func (l *List) Values() []types.Value {
	values := make([]types.Value, 0, l.Len())
	for _, node := range l.Iterator() {
		values = append(values, node.Value)
	}
	return values
}

// Snapshot returns the copy of current state.
func (l *List) Snapshot() types.Snapshot {
	return Extract(l)
}

// Extract extracts snapshot of the list.
func Extract(l *List) types.Snapshot {
	indices := map[types.NodeAddress]int{}
	addresses := []types.NodeAddress{}
	for nodeAddress := range l.Iterator() {
		indices[nodeAddress] = len(addresses)
		addresses = append(addresses, nodeAddress)
	}

	index := func(nodeAddress types.NodeAddress) int {
		if i, exists := indices[nodeAddress]; exists {
			return i
		}
		return types.NoLink
	}

	chain := types.Chain{
		Nodes: make([]types.ChainNode, 0, len(addresses)),
		Head:  index(l.head),
		Tail:  index(l.tail),
	}
	for _, nodeAddress := range addresses {
		node := l.arena.Node(nodeAddress)
		chainNode := types.ChainNode{
			Value: node.Value,
			Next:  index(node.Next),
			Prev:  types.NoLink,
		}
		if l.config.Variant == types.VariantDoubly {
			chainNode.Prev = index(node.Prev)
		}
		chain.Nodes = append(chain.Nodes, chainNode)
	}

	return types.Snapshot{
		Family:     types.FamilyLinkedList,
		Variant:    l.config.Variant,
		Data:       chain,
		IsCircular: l.config.Variant == types.VariantCircular,
	}
}

func next(node *Node) types.NodeAddress {
	return node.Next
}
