package stability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCurve_Fixture(t *testing.T) {
	ts := fixtureStore(t)

	res, err := ComputeCurve(ts, StabilityInput{Draft: 2.0, KG: 5.0})
	require.NoError(t, err)

	assert.Equal(t, 2000.0, res.Displacement)
	assert.Equal(t, 1.0, res.KB)
	assert.Equal(t, 8.0, res.TKM)
	assert.Equal(t, 9.0, res.KM)
	assert.Equal(t, 4.0, res.GM)

	// 0..90 in 5° steps; every fixture angle is already on that grid.
	require.Len(t, res.Curve, 19)
	assert.Equal(t, 0.0, res.Curve[0].Angle)
	assert.Equal(t, 90.0, res.Curve[18].Angle)

	assert.InDelta(t, 1.1, res.MaxGZ, 1e-9)
	assert.Equal(t, 30.0, res.MaxGZAngle)

	require.True(t, res.VanishingReached)
	assert.InDelta(t, 55.953693944515166, res.VanishingAngle, 1e-9)

	assert.InDelta(t, 0.39520303114547717, res.Area030, 1e-9)
	assert.InDelta(t, 0.5588406332484619, res.Area040, 1e-9)
	assert.InDelta(t, 0.16363760210298472, res.Area3040, 1e-9)
}

func TestComputeCurve_GZAtZeroIsZero(t *testing.T) {
	ts := fixtureStore(t)

	for _, kg := range []float64{3.0, 5.0, 9.5} {
		res, err := ComputeCurve(ts, StabilityInput{Draft: 2.0, KG: kg})
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Curve[0].GZ, "GZ(0°) must be zero for KG=%v", kg)
	}
}

func TestComputeCurve_MaxIsGlobal(t *testing.T) {
	ts := fixtureStore(t)

	res, err := ComputeCurve(ts, StabilityInput{Draft: 2.4, KG: 4.8})
	require.NoError(t, err)
	for _, p := range res.Curve {
		assert.GreaterOrEqual(t, res.MaxGZ, p.GZ)
	}
}

func TestComputeCurve_AreasPartition(t *testing.T) {
	ts := fixtureStore(t)

	inputs := []StabilityInput{
		{Draft: 2.0, KG: 5.0},
		{Draft: 1.5, KG: 4.0},
		{Draft: 2.75, KG: 6.2},
	}
	for _, in := range inputs {
		res, err := ComputeCurve(ts, in)
		require.NoError(t, err)
		assert.InDelta(t, res.Area040, res.Area030+res.Area3040, 1e-6,
			"sub-areas must partition for draft=%v kg=%v", in.Draft, in.KG)
	}
}

func TestComputeCurve_DraftOutOfRange(t *testing.T) {
	ts := fixtureStore(t)

	_, err := ComputeCurve(ts, StabilityInput{Draft: 0.5, KG: 5.0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputRange)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "draft", rangeErr.Quantity)
	assert.Equal(t, 1.0, rangeErr.Min)
	assert.Equal(t, 3.0, rangeErr.Max)

	_, err = ComputeCurve(ts, StabilityInput{Draft: 3.5, KG: 5.0})
	assert.ErrorIs(t, err, ErrInputRange)
}

func TestComputeCurve_DisplacementOutsideKNCoverage(t *testing.T) {
	// Hydrostatic table reaches displacements the KN table does not cover.
	hydro := append(fixtureHydro(), HydrostaticRow{
		Draft: 4.0, Displacement: 4000, TPC: 13, MTC: 130, LCB: 48.5, LCF: 45.0, KB: 2.0, TKM: 6.5,
	})
	ts, err := NewTableStore(hydro, fixtureKN())
	require.NoError(t, err)

	_, err = ComputeCurve(ts, StabilityInput{Draft: 3.8, KG: 5.0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputRange)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "displacement", rangeErr.Quantity)
}

func TestComputeCurve_VanishingNotReached(t *testing.T) {
	ts := fixtureStore(t)

	// A very low KG keeps the curve positive through 90°.
	res, err := ComputeCurve(ts, StabilityInput{Draft: 2.0, KG: 2.0})
	require.NoError(t, err)
	assert.False(t, res.VanishingReached)
	assert.Greater(t, res.Curve[len(res.Curve)-1].GZ, 0.0)
}

func TestGZAt(t *testing.T) {
	ts := fixtureStore(t)

	res, err := ComputeCurve(ts, StabilityInput{Draft: 2.0, KG: 5.0})
	require.NoError(t, err)

	// Grid point: exact curve value.
	want := res.Curve[6].GZ // 30°
	assert.Equal(t, want, res.GZAt(30))

	// Between grid points: bounded by the neighbours.
	g := res.GZAt(32.5)
	lo := math.Min(res.Curve[6].GZ, res.Curve[7].GZ)
	hi := math.Max(res.Curve[6].GZ, res.Curve[7].GZ)
	assert.GreaterOrEqual(t, g, lo)
	assert.LessOrEqual(t, g, hi)
}

func TestAngleGrid_IncludesTabulatedAngles(t *testing.T) {
	grid := angleGrid([]float64{5, 10, 12, 15, 20, 25, 30, 35, 40, 50, 60, 75, 90})

	require.Len(t, grid, 20)
	assert.Equal(t, 0.0, grid[0])
	assert.Contains(t, grid, 12.0)
	assert.Contains(t, grid, 45.0)
	for i := 1; i < len(grid); i++ {
		assert.Greater(t, grid[i], grid[i-1])
	}
}
