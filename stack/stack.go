package stack

import (
	"github.com/pkg/errors"

	"github.com/outofforest/sandbox/alloc"
	"github.com/outofforest/sandbox/types"
)

// Config stores stack configuration.
type Config struct {
	Variant types.Variant
}

// New creates new stack.
func New(config Config) (*Stack, error) {
	switch config.Variant {
	case types.VariantArrayBased, types.VariantLinkedListBased:
	default:
		return nil, errors.Errorf("unsupported stack variant %q", config.Variant)
	}
	return &Stack{
		config: config,
		arena:  alloc.NewArena[node](),
	}, nil
}

type node struct {
	Value types.Value
	Next  types.NodeAddress
}

// Stack simulates array-based and linked-list-based stacks.
type Stack struct {
	config Config

	data  []types.Value
	arena *alloc.Arena[node]
	head  types.NodeAddress
}

// Variant returns the variant of the stack.
func (s *Stack) Variant() types.Variant {
	return s.config.Variant
}

// Push puts value on top of the stack.
func (s *Stack) Push(value types.Value) types.Snapshot {
	if s.config.Variant == types.VariantArrayBased {
		s.data = append(s.data, value)
		return s.Snapshot()
	}

	nodeAddress, n := s.arena.Allocate()
	n.Value = value
	n.Next = s.head
	s.head = nodeAddress

	return s.Snapshot()
}

// Pop removes and returns the value from the top of the stack. False is returned if stack is empty.
func (s *Stack) Pop() (types.Value, bool) {
	if s.config.Variant == types.VariantArrayBased {
		if len(s.data) == 0 {
			return nil, false
		}
		value := s.data[len(s.data)-1]
		s.data[len(s.data)-1] = nil
		s.data = s.data[:len(s.data)-1]
		return value, true
	}

	if s.head == 0 {
		return nil, false
	}
	nodeAddress := s.head
	n := s.arena.Node(nodeAddress)
	value := n.Value
	s.head = n.Next
	s.arena.Deallocate(nodeAddress)

	return value, true
}

// Peek returns the value from the top of the stack without removing it.
func (s *Stack) Peek() (types.Value, bool) {
	if s.config.Variant == types.VariantArrayBased {
		if len(s.data) == 0 {
			return nil, false
		}
		return s.data[len(s.data)-1], true
	}

	if s.head == 0 {
		return nil, false
	}
	return s.arena.Node(s.head).Value, true
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	if s.config.Variant == types.VariantArrayBased {
		return len(s.data)
	}
	return int(s.arena.Len())
}

// Snapshot returns the copy of current state.
func (s *Stack) Snapshot() types.Snapshot {
	return Extract(s)
}

// Extract extracts snapshot of the stack. Array-based stack is published as sequence with top at the
// end, linked stack as chain starting from the top.
func Extract(s *Stack) types.Snapshot {
	snapshot := types.Snapshot{
		Family:  types.FamilyStack,
		Variant: s.config.Variant,
	}
	if s.config.Variant == types.VariantArrayBased {
		snapshot.Data = append(types.Sequence{}, s.data...)
		return snapshot
	}

	chain := types.Chain{
		Nodes: []types.ChainNode{},
		Head:  types.NoLink,
		Tail:  types.NoLink,
	}
	for _, n := range s.arena.Walk(s.head, func(n *node) types.NodeAddress { return n.Next }) {
		if len(chain.Nodes) > 0 {
			chain.Nodes[len(chain.Nodes)-1].Next = len(chain.Nodes)
		}
		chain.Nodes = append(chain.Nodes, types.ChainNode{
			Value: n.Value,
			Next:  types.NoLink,
			Prev:  types.NoLink,
		})
	}
	if len(chain.Nodes) > 0 {
		chain.Head = 0
		chain.Tail = len(chain.Nodes) - 1
	}
	snapshot.Data = chain

	return snapshot
}
