package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantum/pkg/types"
)

func TestPickKindUniformIndex(t *testing.T) {
	src := &scriptedSource{values: []int{0, 1, 2, 3}}
	assert.Equal(t, types.KindDataPacket, PickKind(src))
	assert.Equal(t, types.KindDarkMatter, PickKind(src))
	assert.Equal(t, types.KindAntiMatter, PickKind(src))
	assert.Equal(t, types.KindDataPacket, PickKind(src))
}

func TestNewSourceSeeded(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSourceCoversAllKinds(t *testing.T) {
	src := NewSource(7)
	seen := map[types.Kind]bool{}
	for i := 0; i < 300; i++ {
		seen[PickKind(src)] = true
	}
	assert.Len(t, seen, len(types.Kinds))
}

func TestRandomIDs(t *testing.T) {
	g := RandomIDs{Prefix: "Q-OBJ", Source: &scriptedSource{values: []int{0, 899, 42}}}
	assert.Equal(t, "Q-OBJ-100", g.NextID())
	assert.Equal(t, "Q-OBJ-999", g.NextID())
	assert.Equal(t, "Q-OBJ-142", g.NextID())
}

func TestUUIDs(t *testing.T) {
	g := UUIDs{Prefix: "Q"}
	a, b := g.NextID(), g.NextID()
	assert.True(t, strings.HasPrefix(a, "Q-"))
	assert.Len(t, a, len("Q-")+36)
	assert.NotEqual(t, a, b)
}

func TestNewIDGenerator(t *testing.T) {
	src := NewSource(1)

	tests := []struct {
		name    string
		scheme  string
		want    any
		wantErr error
	}{
		{name: "default is random", scheme: "", want: RandomIDs{}},
		{name: "random", scheme: types.IDSchemeRandom, want: RandomIDs{}},
		{name: "uuid", scheme: types.IDSchemeUUID, want: UUIDs{}},
		{name: "unknown", scheme: "sequential", wantErr: types.ErrIDSchemeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewIDGenerator(types.Config{IDScheme: tt.scheme, IDPrefix: "Q"}, src)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, g)
		})
	}
}
