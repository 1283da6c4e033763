package stability

import (
	"fmt"
	"math"
	"sort"
)

// rangeEpsilon is the tolerance for treating a value as inside a tabulated
// domain. Inputs outside a domain by no more than this are clamped to the
// boundary; anything further out is an error.
const rangeEpsilon = 1e-9

// HydroColumn selects a hydrostatic property for interpolation.
type HydroColumn int

const (
	ColDisplacement HydroColumn = iota
	ColTPC
	ColMTC
	ColLCB
	ColLCF
	ColKB
	ColTKM
)

func (c HydroColumn) value(row HydrostaticRow) float64 {
	switch c {
	case ColDisplacement:
		return row.Displacement
	case ColTPC:
		return row.TPC
	case ColMTC:
		return row.MTC
	case ColLCB:
		return row.LCB
	case ColLCF:
		return row.LCF
	case ColKB:
		return row.KB
	case ColTKM:
		return row.TKM
	}
	panic(fmt.Sprintf("stability: unknown hydrostatic column %d", c))
}

// Hydrostatic linearly interpolates the given hydrostatic column at the
// given draft. A draft outside the tabulated domain by more than
// rangeEpsilon fails with an error wrapping ErrOutOfRange.
func (ts *TableStore) Hydrostatic(col HydroColumn, draft float64) (float64, error) {
	ys := make([]float64, len(ts.hydro))
	for i, row := range ts.hydro {
		ys[i] = col.value(row)
	}
	return lerp1D(ts.drafts, ys, draft, "draft", "m")
}

// KN interpolates the cross-curve value at the given displacement and heel
// angle (degrees). The interpolation is two-stage: each bracketing angle
// series is first interpolated at the displacement, then the two results
// are interpolated across angle. An exact tabulated angle skips the second
// stage.
//
// Boundary policy: KN at 0° is 0 by convention; an angle between 0° and the
// lowest tabulated angle interpolates between that convention value and the
// lowest series; an angle above the highest tabulated angle clamps to the
// highest series. A negative angle, or a displacement outside any required
// series, fails with an error wrapping ErrOutOfRange.
func (ts *TableStore) KN(displacement, angle float64) (float64, error) {
	last := len(ts.series) - 1
	if angle < -rangeEpsilon {
		return 0, outOfRangeError("heel angle", "°", angle, 0, ts.series[last].Angle)
	}
	if angle <= rangeEpsilon {
		return 0, nil
	}

	// Exact tabulated angle: interpolate in displacement only, avoiding
	// a needless second lerp.
	for i := range ts.series {
		if math.Abs(ts.series[i].Angle-angle) <= rangeEpsilon {
			return ts.knInSeries(i, displacement)
		}
	}

	if angle > ts.series[last].Angle {
		// Clamp to the boundary series.
		return ts.knInSeries(last, displacement)
	}
	if angle < ts.series[0].Angle {
		// Anchor at the 0° convention value.
		hi, err := ts.knInSeries(0, displacement)
		if err != nil {
			return 0, err
		}
		return angle * hi / ts.series[0].Angle, nil
	}

	j := sort.Search(len(ts.series), func(i int) bool { return ts.series[i].Angle >= angle })
	kLo, err := ts.knInSeries(j-1, displacement)
	if err != nil {
		return 0, err
	}
	kHi, err := ts.knInSeries(j, displacement)
	if err != nil {
		return 0, err
	}
	a0, a1 := ts.series[j-1].Angle, ts.series[j].Angle
	return kLo + (angle-a0)*(kHi-kLo)/(a1-a0), nil
}

// knInSeries interpolates series i at the given displacement.
func (ts *TableStore) knInSeries(i int, displacement float64) (float64, error) {
	pts := ts.series[i].Points
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for j, p := range pts {
		xs[j] = p.Displacement
		ys[j] = p.KN
	}
	return lerp1D(xs, ys, displacement, "displacement", "t")
}

// lerp1D performs bracket-search linear interpolation over xs/ys. xs must be
// strictly increasing, which NewTableStore guarantees for every sequence
// that reaches here.
func lerp1D(xs, ys []float64, x float64, quantity, unit string) (float64, error) {
	min, max := xs[0], xs[len(xs)-1]
	if x < min-rangeEpsilon || x > max+rangeEpsilon {
		return 0, outOfRangeError(quantity, unit, x, min, max)
	}
	if x <= min {
		return ys[0], nil
	}
	if x >= max {
		return ys[len(ys)-1], nil
	}

	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i], nil
	}
	x0, x1 := xs[i-1], xs[i]
	if x1 == x0 {
		// Unreachable post-validation; fail fast rather than divide by zero.
		panic(fmt.Sprintf("stability: duplicate %s %v in table", quantity, x0))
	}
	y0, y1 := ys[i-1], ys[i]
	return y0 + (x-x0)*(y1-y0)/(x1-x0), nil
}
