package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntity(t *testing.T, id string, kind Kind) *Entity {
	t.Helper()
	e, err := NewEntity(id, kind)
	require.NoError(t, err)
	return e
}

func TestNewEntity(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		kind       Kind
		wantErr    error
		wantDanger int
	}{
		{name: "data packet", id: "a", kind: KindDataPacket, wantDanger: 1},
		{name: "dark matter", id: "b", kind: KindDarkMatter, wantDanger: 5},
		{name: "anti matter", id: "c", kind: KindAntiMatter, wantDanger: 10},
		{name: "unknown kind rejected", id: "d", kind: Kind("strange_matter"), wantErr: ErrUnknownKind},
		{name: "empty id rejected", id: "", kind: KindDataPacket, wantErr: ErrEmptyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntity(tt.id, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, e.ID)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.wantDanger, e.DangerLevel)
			assert.Equal(t, MaxStability, e.Stability())
		})
	}
}

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		delta        float64
		want         float64
		wantCollapse bool
	}{
		{name: "decrease", current: 100, delta: -5, want: 95},
		{name: "increase clamped to max", current: 100, delta: 50, want: 100},
		{name: "increase below max", current: 40, delta: 50, want: 90},
		{name: "exact max", current: 50, delta: 50, want: 100},
		{name: "just above zero", current: 5.5, delta: -5, want: 0.5},
		{name: "exactly zero collapses", current: 25, delta: -25, wantCollapse: true},
		{name: "below zero collapses", current: 10, delta: -15, wantCollapse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyDelta("X-1", tt.current, tt.delta)
			if tt.wantCollapse {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrStabilityCollapse)
				id, ok := CollapsedEntity(err)
				assert.True(t, ok)
				assert.Equal(t, "X-1", id)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEntityAnalyzeDataPacketSequence(t *testing.T) {
	e := mustEntity(t, "DP-1", KindDataPacket)

	for n := 1; n < 20; n++ {
		msg, err := e.Analyze()
		require.NoError(t, err, "analysis %d", n)
		assert.Contains(t, msg, "[DP-1]")
		assert.Equal(t, 100-5*float64(n), e.Stability())
	}

	// The 20th analysis reaches zero.
	_, err := e.Analyze()
	require.Error(t, err)
	id, ok := CollapsedEntity(err)
	assert.True(t, ok)
	assert.Equal(t, "DP-1", id)
	assert.Equal(t, 5.0, e.Stability(), "collapsed value must not be stored")
}

func TestEntityAnalyzeOnceDisplaysTwoDecimals(t *testing.T) {
	e := mustEntity(t, "DP-7", KindDataPacket)

	_, err := e.Analyze()
	require.NoError(t, err)
	assert.Equal(t, 95.0, e.Stability())
	assert.Contains(t, e.Describe(), "%95.00")
}

func TestEntityAnalyzeAntiMatterCollapsesOnFourth(t *testing.T) {
	e := mustEntity(t, "AM-9", KindAntiMatter)

	for _, want := range []float64{75, 50, 25} {
		_, err := e.Analyze()
		require.NoError(t, err)
		assert.Equal(t, want, e.Stability())
	}

	_, err := e.Analyze()
	var collapse *StabilityCollapseError
	require.True(t, errors.As(err, &collapse))
	assert.Equal(t, "AM-9", collapse.EntityID)
	assert.Equal(t, 0.0, collapse.Value)
	assert.Contains(t, err.Error(), "AM-9")
}

func TestEntityCoolerCapability(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindDataPacket, false},
		{KindDarkMatter, true},
		{KindAntiMatter, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := mustEntity(t, "id", tt.kind)
			c, ok := e.Cooler()
			assert.Equal(t, tt.want, ok)
			if !tt.want {
				assert.Nil(t, c)
			}
		})
	}
}

func TestEntityCooldownClampsAtMax(t *testing.T) {
	e := mustEntity(t, "DM-3", KindDarkMatter)
	c, ok := e.Cooler()
	require.True(t, ok)

	msg, err := c.Cooldown()
	require.NoError(t, err)
	assert.Contains(t, msg, "[DM-3]")
	assert.Equal(t, 100.0, e.Stability())
	assert.Contains(t, e.Describe(), "%100.00")
}

func TestEntityCooldownRestores(t *testing.T) {
	e := mustEntity(t, "AM-2", KindAntiMatter)
	for i := 0; i < 3; i++ {
		_, err := e.Analyze()
		require.NoError(t, err)
	}
	require.Equal(t, 25.0, e.Stability())

	c, ok := e.Cooler()
	require.True(t, ok)
	_, err := c.Cooldown()
	require.NoError(t, err)
	assert.Equal(t, 75.0, e.Stability())

	_, err = c.Cooldown()
	require.NoError(t, err)
	assert.Equal(t, 100.0, e.Stability())
}

func TestEntityStabilityNeverExceedsMax(t *testing.T) {
	e := mustEntity(t, "DM-8", KindDarkMatter)
	c, _ := e.Cooler()

	// Alternate actions; stability must stay within (0, 100].
	for i := 0; i < 30; i++ {
		var err error
		if i%3 == 2 {
			_, err = c.Cooldown()
		} else {
			_, err = e.Analyze()
		}
		if err != nil {
			assert.ErrorIs(t, err, ErrStabilityCollapse)
			return
		}
		assert.LessOrEqual(t, e.Stability(), MaxStability)
		assert.Greater(t, e.Stability(), CollapseThreshold)
	}
}

func TestEntityDescribe(t *testing.T) {
	e := mustEntity(t, "Q-OBJ-512", KindAntiMatter)
	assert.Equal(t, "ID: Q-OBJ-512 | Stability: %100.00 | Danger: 10", e.Describe())
}

func TestKindSpec(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.Valid())
		spec, err := k.Spec()
		require.NoError(t, err)
		assert.NotEmpty(t, spec.Name)
		assert.Less(t, spec.AnalyzeDelta, 0.0)
	}

	_, err := Kind("").Spec()
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.False(t, Kind("").Valid())
}
