package tree

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/outofforest/sandbox/alloc"
	"github.com/outofforest/sandbox/types"
)

// Config stores tree configuration.
type Config struct {
	Variant types.Variant

	// Rand chooses the direction taken by binary tree insertion. If nil, randomly seeded source is used.
	Rand *rand.Rand
}

// New creates new tree.
func New(config Config) (*Tree, error) {
	switch config.Variant {
	case types.VariantBinary, types.VariantBST, types.VariantAVL:
	default:
		return nil, errors.Errorf("unsupported tree variant %q", config.Variant)
	}
	if config.Rand == nil {
		config.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Tree{
		config: config,
		arena:  alloc.NewArena[Node](),
	}, nil
}

// Node is the node of the tree.
type Node struct {
	Value types.Value
	Left  types.NodeAddress
	Right types.NodeAddress
}

// Tree simulates binary, binary-search and AVL-labelled trees.
// AVL variant uses plain binary-search insertion without rebalancing.
type Tree struct {
	config Config
	arena  *alloc.Arena[Node]
	root   types.NodeAddress
}

// Variant returns the variant of the tree.
func (t *Tree) Variant() types.Variant {
	return t.config.Variant
}

// Insert inserts value into the first open child slot found on the path chosen by the variant.
func (t *Tree) Insert(value types.Value) types.Snapshot {
	nodeAddress, n := t.arena.Allocate()
	n.Value = value

	if t.root == 0 {
		t.root = nodeAddress
		return t.Snapshot()
	}

	current := t.root
	for {
		parent := t.arena.Node(current)

		var goLeft bool
		if t.config.Variant == types.VariantBinary {
			goLeft = t.config.Rand.IntN(2) == 0
		} else {
			goLeft = types.Less(value, parent.Value)
		}

		child := &parent.Right
		if goLeft {
			child = &parent.Left
		}
		if *child == 0 {
			*child = nodeAddress
			return t.Snapshot()
		}
		current = *child
	}
}

// Root returns address of the root node.
func (t *Tree) Root() types.NodeAddress {
	return t.root
}

// Node returns node stored under the address.
func (t *Tree) Node(nodeAddress types.NodeAddress) Node {
	return *t.arena.Node(nodeAddress)
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return int(t.arena.Len())
}

// Height returns the number of nodes on the longest path from root to leaf.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(nodeAddress types.NodeAddress) int {
	if nodeAddress == 0 {
		return 0
	}
	n := t.arena.Node(nodeAddress)
	return 1 + max(t.height(n.Left), t.height(n.Right))
}

// InOrder returns values in left-node-right order. For binary-search trees they are sorted.
func (t *Tree) InOrder() []types.Value {
	values := make([]types.Value, 0, t.Len())
	stack := []types.NodeAddress{}
	current := t.root
	for current != 0 || len(stack) > 0 {
		for current != 0 {
			stack = append(stack, current)
			current = t.arena.Node(current).Left
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.arena.Node(current)
		values = append(values, n.Value)
		current = n.Right
	}
	return values
}

// Snapshot returns the copy of current state.
func (t *Tree) Snapshot() types.Snapshot {
	return Extract(t)
}

// Extract extracts snapshot of the tree.
func Extract(t *Tree) types.Snapshot {
	return types.Snapshot{
		Family:  types.FamilyTree,
		Variant: t.config.Variant,
		Data:    t.copyNode(t.root),
	}
}

func (t *Tree) copyNode(nodeAddress types.NodeAddress) *types.TreeNode {
	if nodeAddress == 0 {
		return nil
	}
	n := t.arena.Node(nodeAddress)
	return &types.TreeNode{
		Value: n.Value,
		Left:  t.copyNode(n.Left),
		Right: t.copyNode(n.Right),
	}
}
