// Package stability computes intact-stability (GZ) curves for a single
// vessel from tabulated hydrostatic and cross-curve (KN) data and checks
// the result against the IMO Intact Stability Code.
//
// The entry points are NewTableStore (validate and hold the two source
// tables), ComputeCurve (derive the GZ curve and scalar stability
// parameters for a draft/KG pair) and EvaluateCompliance (apply the six
// fixed IMO thresholds). A TableStore is immutable after construction and
// safe to share between calculations.
package stability

import (
	"fmt"
	"sort"
)

// HydrostaticRow holds the tabulated hydrostatic properties at one draft.
type HydrostaticRow struct {
	Draft        float64 // m
	Displacement float64 // tonnes
	TPC          float64 // tonnes per cm immersion
	MTC          float64 // tonne-metres per cm trim
	LCB          float64 // m from aft perpendicular
	LCF          float64 // m from aft perpendicular
	KB           float64 // m above keel
	TKM          float64 // m, transverse metacentric radius (KM = KB + TKM)
}

// KNPoint is a single tabulated cross-curve sample.
type KNPoint struct {
	Displacement float64 // tonnes
	KN           float64 // m
}

// KNSeries is the cross curve of stability for one heel angle: KN tabulated
// against displacement.
type KNSeries struct {
	Angle  float64   // degrees
	Points []KNPoint // ordered by displacement, strictly increasing
}

// TableStore is the immutable, validated in-memory form of the two source
// tables. Construction enforces the invariants (sorted, non-degenerate
// sequences) that the interpolation routines rely on, so downstream bracket
// searches never re-validate.
type TableStore struct {
	hydro  []HydrostaticRow
	drafts []float64  // hydro drafts, kept separate for bracket search
	series []KNSeries // ordered by angle
	angles []float64  // series angles

	// Displacement coverage common to every KN series.
	minDisp float64
	maxDisp float64
}

// NewTableStore validates the two source tables and returns an immutable
// store. It fails with an error wrapping ErrDataIntegrity if the hydrostatic
// table has fewer than 2 rows or a non-increasing draft sequence, if fewer
// than 2 KN series are present, or if any series has fewer than 2 points or
// a non-increasing displacement sequence.
func NewTableStore(hydro []HydrostaticRow, series []KNSeries) (*TableStore, error) {
	if len(hydro) < 2 {
		return nil, fmt.Errorf("%w: hydrostatic table needs at least 2 rows, got %d", ErrDataIntegrity, len(hydro))
	}

	ts := &TableStore{
		hydro:  append([]HydrostaticRow(nil), hydro...),
		series: make([]KNSeries, 0, len(series)),
	}

	ts.drafts = make([]float64, len(ts.hydro))
	for i, row := range ts.hydro {
		if i > 0 && row.Draft <= ts.hydro[i-1].Draft {
			return nil, fmt.Errorf("%w: hydrostatic drafts must be strictly increasing (row %d: %.3f after %.3f)",
				ErrDataIntegrity, i, row.Draft, ts.hydro[i-1].Draft)
		}
		ts.drafts[i] = row.Draft
	}

	if len(series) < 2 {
		return nil, fmt.Errorf("%w: KN table needs at least 2 heel-angle series, got %d", ErrDataIntegrity, len(series))
	}

	for _, s := range series {
		cp := KNSeries{Angle: s.Angle, Points: append([]KNPoint(nil), s.Points...)}
		ts.series = append(ts.series, cp)
	}
	sort.Slice(ts.series, func(i, j int) bool { return ts.series[i].Angle < ts.series[j].Angle })

	ts.angles = make([]float64, len(ts.series))
	for i, s := range ts.series {
		if i > 0 && s.Angle == ts.series[i-1].Angle {
			return nil, fmt.Errorf("%w: duplicate KN series for heel angle %.1f°", ErrDataIntegrity, s.Angle)
		}
		if len(s.Points) < 2 {
			return nil, fmt.Errorf("%w: KN series at %.1f° needs at least 2 points, got %d",
				ErrDataIntegrity, s.Angle, len(s.Points))
		}
		for j := 1; j < len(s.Points); j++ {
			if s.Points[j].Displacement <= s.Points[j-1].Displacement {
				return nil, fmt.Errorf("%w: KN series at %.1f° has non-increasing displacement (point %d: %.1f after %.1f)",
					ErrDataIntegrity, s.Angle, j, s.Points[j].Displacement, s.Points[j-1].Displacement)
			}
		}
		ts.angles[i] = s.Angle

		lo := s.Points[0].Displacement
		hi := s.Points[len(s.Points)-1].Displacement
		if i == 0 || lo > ts.minDisp {
			ts.minDisp = lo
		}
		if i == 0 || hi < ts.maxDisp {
			ts.maxDisp = hi
		}
	}

	if ts.minDisp >= ts.maxDisp {
		return nil, fmt.Errorf("%w: KN series share no common displacement coverage", ErrDataIntegrity)
	}

	return ts, nil
}

// DraftRange returns the tabulated draft domain in metres.
func (ts *TableStore) DraftRange() (min, max float64) {
	return ts.drafts[0], ts.drafts[len(ts.drafts)-1]
}

// DisplacementRange returns the displacement domain in tonnes covered by
// every KN series (the intersection across series).
func (ts *TableStore) DisplacementRange() (min, max float64) {
	return ts.minDisp, ts.maxDisp
}

// Angles returns the tabulated heel angles in degrees, ascending.
func (ts *TableStore) Angles() []float64 {
	return append([]float64(nil), ts.angles...)
}
