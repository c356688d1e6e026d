package negotiation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNetValue(t *testing.T) {
	tests := []struct {
		name   string
		option BatnaOption
		want   float64
	}{
		{
			name:   "all components",
			option: BatnaOption{Gain: 10, DirectCost: 2, RiskPenalty: 3, SwitchCost: 1},
			want:   4,
		},
		{
			name:   "zero option",
			option: BatnaOption{},
			want:   0,
		},
		{
			name:   "negative result",
			option: BatnaOption{Gain: 1, DirectCost: 5},
			want:   -4,
		},
		{
			name:   "negative cost raises net value",
			option: BatnaOption{Gain: 5, DirectCost: -2},
			want:   7,
		},
		{
			name:   "fractional components",
			option: BatnaOption{Gain: 5, DirectCost: 0.5, RiskPenalty: 2, SwitchCost: 0.5},
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeNetValue(tt.option), 1e-9)
		})
	}
}

func TestComputeNetValueIgnoresStoredField(t *testing.T) {
	// The stored NetValue must never influence the derivation.
	o := BatnaOption{Gain: 10, DirectCost: 1, NetValue: 999}
	assert.InDelta(t, 9.0, ComputeNetValue(o), 1e-9)
}

func TestSelectBest(t *testing.T) {
	t.Run("empty returns nil", func(t *testing.T) {
		assert.Nil(t, SelectBest(nil))
		assert.Nil(t, SelectBest([]BatnaOption{}))
	})

	t.Run("single option", func(t *testing.T) {
		got := SelectBest([]BatnaOption{{ID: "a", NetValue: -3}})
		require.NotNil(t, got)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("picks strictly maximal net value", func(t *testing.T) {
		got := SelectBest([]BatnaOption{
			{ID: "a", NetValue: 4},
			{ID: "b", NetValue: 6},
			{ID: "c", NetValue: 2},
		})
		require.NotNil(t, got)
		assert.Equal(t, "b", got.ID)
	})

	t.Run("tie keeps earliest", func(t *testing.T) {
		got := SelectBest([]BatnaOption{
			{ID: "a", NetValue: 5},
			{ID: "b", NetValue: 5},
		})
		require.NotNil(t, got)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("result does not alias the input slice", func(t *testing.T) {
		options := []BatnaOption{{ID: "a", NetValue: 1}}
		got := SelectBest(options)
		require.NotNil(t, got)
		got.NetValue = 42
		assert.InDelta(t, 1.0, options[0].NetValue, 1e-9)
	})
}

func TestComputeFloor(t *testing.T) {
	tests := []struct {
		name   string
		best   *BatnaOption
		buffer float64
		want   float64
	}{
		{name: "no best option", best: nil, buffer: 3, want: 0},
		{name: "positive buffer", best: &BatnaOption{NetValue: 6}, buffer: 3, want: 3},
		{name: "zero buffer", best: &BatnaOption{NetValue: 6}, buffer: 0, want: 6},
		{name: "negative buffer raises floor", best: &BatnaOption{NetValue: 6}, buffer: -2, want: 8},
		{name: "buffer exceeds net value", best: &BatnaOption{NetValue: 2}, buffer: 5, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeFloor(tt.best, tt.buffer), 1e-9)
		})
	}
}
