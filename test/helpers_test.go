package test_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/sandbox/test"
	"github.com/outofforest/sandbox/types"
)

func TestCheckHeapOrder(t *testing.T) {
	requireT := require.New(t)

	requireT.NoError(test.CheckHeapOrder(test.ToValues([]int{20, 10, 5}), true))
	requireT.Error(test.CheckHeapOrder(test.ToValues([]int{10, 20, 5}), true))
	requireT.NoError(test.CheckHeapOrder(test.ToValues([]int{5, 20, 10}), false))
	requireT.Error(test.CheckHeapOrder(test.ToValues([]int{20, 5, 10}), false))
	requireT.NoError(test.CheckHeapOrder(nil, true))
}

func TestCheckBSTOrder(t *testing.T) {
	requireT := require.New(t)

	requireT.NoError(test.CheckBSTOrder(&types.TreeNode{
		Value: 10,
		Left:  &types.TreeNode{Value: 5},
		Right: &types.TreeNode{Value: 15, Left: &types.TreeNode{Value: 10}},
	}))
	requireT.Error(test.CheckBSTOrder(&types.TreeNode{
		Value: 10,
		Left:  &types.TreeNode{Value: 5, Right: &types.TreeNode{Value: 12}},
	}))
	requireT.Equal([]types.Value{10, 5, 15}, test.CollectTreeValues(&types.TreeNode{
		Value: 10,
		Left:  &types.TreeNode{Value: 5},
		Right: &types.TreeNode{Value: 15},
	}))
}
