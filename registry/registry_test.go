package registry_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/sandbox/registry"
	"github.com/outofforest/sandbox/types"
)

func TestEveryFamilyHasVariants(t *testing.T) {
	requireT := require.New(t)

	families := registry.Families()
	requireT.Len(families, 8)
	for _, f := range families {
		vs := registry.Variants(f)
		requireT.NotEmpty(vs, f)
		requireT.GreaterOrEqual(len(vs), 2)
		requireT.LessOrEqual(len(vs), 4)

		def, err := registry.DefaultVariant(f)
		requireT.NoError(err)
		requireT.Equal(vs[0], def)
		requireT.True(registry.Supports(f, def))
	}
}

func TestVariantsOrder(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal([]types.Variant{
		types.VariantArrayBased,
		types.VariantCircular,
		types.VariantPriority,
		types.VariantDeque,
	}, registry.Variants(types.FamilyQueue))
	requireT.Equal([]types.Variant{
		types.VariantMinHeap,
		types.VariantMaxHeap,
		types.VariantBinomial,
	}, registry.Variants(types.FamilyHeap))
}

func TestVariantsReturnsCopy(t *testing.T) {
	requireT := require.New(t)

	vs := registry.Variants(types.FamilyTree)
	vs[0] = "broken"
	requireT.Equal(types.VariantBinary, registry.Variants(types.FamilyTree)[0])
}

func TestUnknownFamily(t *testing.T) {
	requireT := require.New(t)

	requireT.Nil(registry.Variants("trie"))
	requireT.False(registry.Supports("trie", types.VariantBinary))
	requireT.False(registry.Supports(types.FamilyTree, types.VariantDeque))

	_, err := registry.DefaultVariant("trie")
	requireT.True(errors.Is(err, registry.ErrUnsupportedFamily))
	requireT.Contains(err.Error(), "trie")

	_, err = registry.ParseFamily("trie")
	requireT.ErrorIs(err, registry.ErrUnsupportedFamily)

	f, err := registry.ParseFamily("hashtable")
	requireT.NoError(err)
	requireT.Equal(types.FamilyHashTable, f)
}

func TestEveryVariantHasDefaultScript(t *testing.T) {
	requireT := require.New(t)

	for _, f := range registry.Families() {
		for _, v := range registry.Variants(f) {
			text, err := registry.DefaultScript(f, v)
			requireT.NoError(err)
			requireT.True(strings.HasPrefix(text, f.Key()+"."), "%s/%s", f, v)
		}
	}
}

func TestDefaultScriptOfDefaultVariant(t *testing.T) {
	requireT := require.New(t)

	text, err := registry.DefaultScript(types.FamilyHeap, "")
	requireT.NoError(err)
	requireT.Equal("heap.pushToHeap(10);\nheap.pushToHeap(20);\nheap.pushToHeap(5);\nheap.popFromHeap();", text)

	_, err = registry.DefaultScript("trie", "")
	requireT.ErrorIs(err, registry.ErrUnsupportedFamily)

	_, err = registry.DefaultScript("trie", types.VariantBST)
	requireT.ErrorIs(err, registry.ErrUnsupportedFamily)

	_, err = registry.DefaultScript(types.FamilyTree, types.VariantDeque)
	requireT.Error(err)
}
