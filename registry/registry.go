package registry

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/sandbox/types"
)

// ErrUnsupportedFamily is returned when family is not known.
var ErrUnsupportedFamily = errors.New("unsupported family")

var families = []types.Family{
	types.FamilyArray,
	types.FamilyLinkedList,
	types.FamilyStack,
	types.FamilyQueue,
	types.FamilyTree,
	types.FamilyHeap,
	types.FamilyGraph,
	types.FamilyHashTable,
}

var variants = map[types.Family][]types.Variant{
	types.FamilyArray:      {types.VariantStatic, types.VariantDynamic, types.VariantMultiDimensional},
	types.FamilyLinkedList: {types.VariantSingly, types.VariantDoubly, types.VariantCircular},
	types.FamilyStack:      {types.VariantArrayBased, types.VariantLinkedListBased},
	types.FamilyQueue: {
		types.VariantArrayBased, types.VariantCircular, types.VariantPriority, types.VariantDeque,
	},
	types.FamilyTree:      {types.VariantBinary, types.VariantBST, types.VariantAVL},
	types.FamilyHeap:      {types.VariantMinHeap, types.VariantMaxHeap, types.VariantBinomial},
	types.FamilyGraph:     {types.VariantDirected, types.VariantUndirected, types.VariantWeighted},
	types.FamilyHashTable: {types.VariantSeparateChaining, types.VariantLinearProbing},
}

var defaultScripts = map[types.Family]map[types.Variant]string{
	types.FamilyArray: {
		types.VariantStatic:           "array.push(10);\narray.push(20);\narray.pop();",
		types.VariantDynamic:          "array.push(10);\narray.push(20);\narray.pop();",
		types.VariantMultiDimensional: "array.set(0, 0, 10);\narray.set(0, 1, 20);\narray.set(1, 0, 30);",
	},
	types.FamilyLinkedList: {
		types.VariantSingly:   "list.append(10);\nlist.append(20);\nlist.append(5);",
		types.VariantDoubly:   "list.append(10);\nlist.append(20);\nlist.append(5);",
		types.VariantCircular: "list.append(10);\nlist.append(20);\nlist.append(5);",
	},
	types.FamilyStack: {
		types.VariantArrayBased:      "stack.push(10);\nstack.push(20);\nstack.pop();",
		types.VariantLinkedListBased: "stack.push(10);\nstack.push(20);\nstack.pop();",
	},
	types.FamilyQueue: {
		types.VariantArrayBased: "queue.enqueue(10);\nqueue.enqueue(20);\nqueue.dequeue();",
		types.VariantCircular:   "queue.enqueue(10);\nqueue.enqueue(20);\nqueue.dequeue();",
		types.VariantPriority:   "queue.enqueue(10, 1);\nqueue.enqueue(20, 2);\nqueue.dequeue();",
		types.VariantDeque:      "queue.pushBack(10);\nqueue.pushFront(20);\nqueue.popFront();",
	},
	types.FamilyTree: {
		types.VariantBinary: "tree.insert(10);\ntree.insert(5);\ntree.insert(15);",
		types.VariantBST:    "tree.insert(10);\ntree.insert(5);\ntree.insert(15);",
		types.VariantAVL:    "tree.insert(10);\ntree.insert(5);\ntree.insert(15);",
	},
	types.FamilyHeap: {
		types.VariantMinHeap:  "heap.pushToHeap(10);\nheap.pushToHeap(20);\nheap.pushToHeap(5);\nheap.popFromHeap();",
		types.VariantMaxHeap:  "heap.pushToHeap(10);\nheap.pushToHeap(20);\nheap.pushToHeap(5);\nheap.popFromHeap();",
		types.VariantBinomial: "heap.insert(10);\nheap.insert(20);\nheap.extractMin();",
	},
	types.FamilyGraph: {
		types.VariantDirected:   "graph.addVertex(1);\ngraph.addVertex(2);\ngraph.addEdge(1, 2);",
		types.VariantUndirected: "graph.addVertex(1);\ngraph.addVertex(2);\ngraph.addEdge(1, 2);",
		types.VariantWeighted:   "graph.addVertex(1);\ngraph.addVertex(2);\ngraph.addEdge(1, 2, 5);",
	},
	types.FamilyHashTable: {
		types.VariantSeparateChaining: "hash.put(1, \"one\");\nhash.put(2, \"two\");\nhash.get(1);",
		types.VariantLinearProbing:    "hash.put(1, \"one\");\nhash.put(2, \"two\");\nhash.get(1);",
	},
}

// Families returns all the supported families in presentation order.
func Families() []types.Family {
	return append([]types.Family{}, families...)
}

// Variants returns variants of the family in presentation order. Nil is returned for unknown family.
func Variants(family types.Family) []types.Variant {
	vs, exists := variants[family]
	if !exists {
		return nil
	}
	return append([]types.Variant{}, vs...)
}

// DefaultVariant returns the variant selected when family is chosen for the first time.
func DefaultVariant(family types.Family) (types.Variant, error) {
	vs, exists := variants[family]
	if !exists {
		return "", errors.Wrapf(ErrUnsupportedFamily, "family %q", family)
	}
	return vs[0], nil
}

// Supports reports whether variant belongs to the family.
func Supports(family types.Family, variant types.Variant) bool {
	return lo.Contains(variants[family], variant)
}

// ParseFamily converts identifier to family.
func ParseFamily(name string) (types.Family, error) {
	family := types.Family(name)
	if _, exists := variants[family]; !exists {
		return "", errors.Wrapf(ErrUnsupportedFamily, "family %q", name)
	}
	return family, nil
}

// DefaultScript returns the example script presented for the variant when it is selected.
// Empty variant selects the default variant of the family.
func DefaultScript(family types.Family, variant types.Variant) (string, error) {
	if variant == "" {
		v, err := DefaultVariant(family)
		if err != nil {
			return "", err
		}
		variant = v
	}
	if !Supports(family, variant) {
		if _, exists := variants[family]; !exists {
			return "", errors.Wrapf(ErrUnsupportedFamily, "family %q", family)
		}
		return "", errors.Errorf("variant %q does not belong to family %q", variant, family)
	}
	return defaultScripts[family][variant], nil
}
