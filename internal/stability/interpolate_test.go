package stability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrostatic_ExactNode(t *testing.T) {
	ts := fixtureStore(t)

	// Tabulated drafts return the tabulated value with no floating drift.
	tests := []struct {
		col   HydroColumn
		draft float64
		want  float64
	}{
		{ColDisplacement, 1.0, 1000},
		{ColDisplacement, 2.0, 2000},
		{ColDisplacement, 3.0, 3000},
		{ColTPC, 2.0, 11},
		{ColMTC, 3.0, 120},
		{ColLCB, 1.0, 50.0},
		{ColLCF, 2.0, 47.0},
		{ColKB, 2.0, 1.0},
		{ColTKM, 1.0, 10.0},
	}
	for _, tt := range tests {
		got, err := ts.Hydrostatic(tt.col, tt.draft)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestHydrostatic_Between(t *testing.T) {
	ts := fixtureStore(t)

	got, err := ts.Hydrostatic(ColDisplacement, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, got, 1e-12)

	got, err = ts.Hydrostatic(ColTKM, 2.25)
	require.NoError(t, err)
	assert.InDelta(t, 7.75, got, 1e-12)

	// Interpolated values stay between the bracketing table values.
	for _, draft := range []float64{1.1, 1.6, 2.3, 2.9} {
		got, err := ts.Hydrostatic(ColKB, draft)
		require.NoError(t, err)
		assert.Greater(t, got, 0.5)
		assert.Less(t, got, 1.5)
	}
}

func TestHydrostatic_OutOfRange(t *testing.T) {
	ts := fixtureStore(t)

	_, err := ts.Hydrostatic(ColDisplacement, 0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "draft", rangeErr.Quantity)
	assert.Equal(t, 0.5, rangeErr.Value)
	assert.Equal(t, 1.0, rangeErr.Min)
	assert.Equal(t, 3.0, rangeErr.Max)

	_, err = ts.Hydrostatic(ColDisplacement, 3.2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHydrostatic_EpsilonBoundary(t *testing.T) {
	ts := fixtureStore(t)

	// Within epsilon of the boundary clamps instead of failing.
	got, err := ts.Hydrostatic(ColDisplacement, 1.0-1e-12)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	got, err = ts.Hydrostatic(ColDisplacement, 3.0+1e-12)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got)
}

func TestKN_ExactAngleAndDisplacement(t *testing.T) {
	ts := fixtureStore(t)

	got, err := ts.KN(2000, 30)
	require.NoError(t, err)
	assert.Equal(t, 3.6, got)

	got, err = ts.KN(1000, 90)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestKN_DisplacementBetween(t *testing.T) {
	ts := fixtureStore(t)

	// Halfway between 2000 (3.6) and 3000 (3.4).
	got, err := ts.KN(2500, 30)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got, 1e-12)
}

func TestKN_AngleBetween(t *testing.T) {
	ts := fixtureStore(t)

	// Halfway between the 20° (2.8) and 30° (3.6) series at an exact
	// displacement node.
	got, err := ts.KN(2000, 25)
	require.NoError(t, err)
	assert.InDelta(t, 3.2, got, 1e-12)
}

func TestKN_ZeroAngleConvention(t *testing.T) {
	ts := fixtureStore(t)

	got, err := ts.KN(2000, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestKN_BelowLowestAngle(t *testing.T) {
	ts := fixtureStore(t)

	// 5° sits between the 0° convention value and the 10° series (1.5 at
	// displacement 2000).
	got, err := ts.KN(2000, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-12)
}

func TestKN_AboveHighestAngleClamps(t *testing.T) {
	ts := fixtureStore(t)

	at90, err := ts.KN(2000, 90)
	require.NoError(t, err)
	got, err := ts.KN(2000, 95)
	require.NoError(t, err)
	assert.Equal(t, at90, got)
}

func TestKN_OutOfRange(t *testing.T) {
	ts := fixtureStore(t)

	_, err := ts.KN(2000, -5)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ts.KN(500, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "displacement", rangeErr.Quantity)

	_, err = ts.KN(3500, 30)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
