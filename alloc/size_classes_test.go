package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeClassTable_Boundaries(t *testing.T) {
	table := newSizeClassTable(ConfigBalanced)

	require.Equal(t, []int{8, 16, 24, 32, 40, 48, 56, 64}, table.boundaries[:8])
	assert.Equal(t, 127, table.boundaries[8], "first geometric class")
	for i := 1; i < table.NumClasses(); i++ {
		assert.Greater(t, table.boundaries[i], table.boundaries[i-1], "boundaries must ascend")
	}
	assert.Equal(t, "Balanced", table.String())
}

func TestSizeClassTable_GetSizeClass(t *testing.T) {
	table := newSizeClassTable(ConfigBalanced)

	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{8, 0},
		{9, 1},
		{64, 7},
		{65, 8},
		{127, 8},
		{128, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.getSizeClass(tt.n), "n=%d", tt.n)
	}
	assert.Equal(t, table.NumClasses(), table.getSizeClass(1<<20), "beyond the table is large")
}

func TestSizeClassTable_EveryClassFitsItsRequests(t *testing.T) {
	for name, cfg := range Presets {
		table := newSizeClassTable(cfg)
		for n := 1; n <= cfg.MediumMax; n++ {
			sc := table.getSizeClass(n)
			if sc == table.NumClasses() {
				continue
			}
			require.GreaterOrEqual(t, table.capacity(sc), n, "%s: class %d too small for %d", name, sc, n)
		}
	}
}

func TestSizeClassConfig_Validate(t *testing.T) {
	for name, cfg := range Presets {
		assert.NoError(t, cfg.Validate(), name)
	}

	bad := ConfigBalanced
	bad.GrowthFactor = 1
	assert.ErrorIs(t, bad.Validate(), ErrBadConfig)

	bad = ConfigBalanced
	bad.MediumMax = 4
	assert.ErrorIs(t, bad.Validate(), ErrBadConfig)

	bad = ConfigBalanced
	bad.SmallMin = 0
	assert.ErrorIs(t, bad.Validate(), ErrBadConfig)
}
