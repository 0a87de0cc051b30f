package types

// Family identifies the data-structure family simulated by a sandbox.
type Family string

// Family constants.
const (
	FamilyArray      Family = "array"
	FamilyLinkedList Family = "linkedlist"
	FamilyStack      Family = "stack"
	FamilyQueue      Family = "queue"
	FamilyTree       Family = "tree"
	FamilyHeap       Family = "heap"
	FamilyGraph      Family = "graph"
	FamilyHashTable  Family = "hashtable"
)

// Key returns the name under which snapshots and scripts refer to the structure of the family.
func (f Family) Key() string {
	switch f {
	case FamilyLinkedList:
		return "list"
	case FamilyHashTable:
		return "hash"
	default:
		return string(f)
	}
}

// Variant identifies the algorithmic policy used inside a family.
type Variant string

// Variant constants.
const (
	VariantStatic           Variant = "static"
	VariantDynamic          Variant = "dynamic"
	VariantMultiDimensional Variant = "multi-dimensional"
	VariantSingly           Variant = "singly"
	VariantDoubly           Variant = "doubly"
	VariantCircular         Variant = "circular"
	VariantArrayBased       Variant = "array-based"
	VariantLinkedListBased  Variant = "linkedlist-based"
	VariantPriority         Variant = "priority"
	VariantDeque            Variant = "deque"
	VariantBinary           Variant = "binary"
	VariantBST              Variant = "bst"
	VariantAVL              Variant = "avl"
	VariantMinHeap          Variant = "min-heap"
	VariantMaxHeap          Variant = "max-heap"
	VariantBinomial         Variant = "binomial"
	VariantDirected         Variant = "directed"
	VariantUndirected       Variant = "undirected"
	VariantWeighted         Variant = "weighted"
	VariantSeparateChaining Variant = "separate-chaining"
	VariantLinearProbing    Variant = "linear-probing"
)

// NodeAddress is the address of a node stored in an arena. Zero address means "no node".
type NodeAddress uint64

// NoLink marks the absence of a link between chain nodes in a snapshot.
const NoLink = -1
