package test

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/sandbox/types"
)

// ToValues converts slice of any type to slice of values.
func ToValues[T any](items []T) []types.Value {
	return lo.Map(items, func(item T, _ int) types.Value {
		return item
	})
}

// CollectTreeValues collects values of the tree in pre-order.
func CollectTreeValues(root *types.TreeNode) []types.Value {
	values := []types.Value{}
	stack := []*types.TreeNode{}
	if root != nil {
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		values = append(values, n.Value)

		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return values
}

// CheckBSTOrder verifies that every left descendant is strictly smaller than its ancestor and every right
// descendant is greater or equal.
func CheckBSTOrder(root *types.TreeNode) error {
	if root == nil {
		return nil
	}
	for _, v := range CollectTreeValues(root.Left) {
		if !types.Less(v, root.Value) {
			return errors.Errorf("left descendant %v of %v is not smaller", v, root.Value)
		}
	}
	for _, v := range CollectTreeValues(root.Right) {
		if types.Less(v, root.Value) {
			return errors.Errorf("right descendant %v of %v is smaller", v, root.Value)
		}
	}
	if err := CheckBSTOrder(root.Left); err != nil {
		return err
	}
	return CheckBSTOrder(root.Right)
}

// CheckHeapOrder verifies binary heap property of the sequence. For max heap every parent must be
// greater or equal to its children, for min heap smaller or equal.
func CheckHeapOrder(data []types.Value, maxHeap bool) error {
	for i := range data {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child >= len(data) {
				continue
			}
			c := types.Compare(data[i], data[child])
			if (maxHeap && c < 0) || (!maxHeap && c > 0) {
				return errors.Errorf("heap property violated between index %d (%v) and %d (%v)",
					i, data[i], child, data[child])
			}
		}
	}
	return nil
}
