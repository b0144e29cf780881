package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantum/pkg/types"
)

func TestInventory(t *testing.T) {
	inv := NewInventory()
	assert.Equal(t, 0, inv.Len())
	assert.Empty(t, inv.All())

	_, ok := inv.Find("missing")
	assert.False(t, ok)

	a, err := types.NewEntity("A", types.KindDataPacket)
	require.NoError(t, err)
	b, err := types.NewEntity("B", types.KindDarkMatter)
	require.NoError(t, err)
	dup, err := types.NewEntity("A", types.KindAntiMatter)
	require.NoError(t, err)

	inv.Add(a)
	inv.Add(b)
	inv.Add(dup)

	assert.Equal(t, 3, inv.Len())
	got, ok := inv.Find("A")
	require.True(t, ok)
	assert.Same(t, a, got, "Find returns the first match")

	all := inv.All()
	assert.Equal(t, []*types.Entity{a, b, dup}, all)

	// Mutating the returned slice does not affect the inventory.
	all[0] = nil
	assert.Same(t, a, inv.All()[0])
}
