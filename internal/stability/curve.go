package stability

import (
	"math"
	"sort"
)

// StabilityInput is one loading condition to evaluate.
type StabilityInput struct {
	Draft float64 // m, at perpendiculars
	KG    float64 // m, vertical centre of gravity above keel
}

// GZPoint is one sample of the righting-arm curve.
type GZPoint struct {
	Angle float64 // degrees
	KN    float64 // m
	GZ    float64 // m, KN - KG*sin(angle)
}

// StabilityResult is the complete outcome of one curve computation. It is a
// value object with no back-reference to the TableStore it came from.
type StabilityResult struct {
	Input StabilityInput

	Displacement float64 // tonnes
	KB           float64 // m
	TKM          float64 // m
	KM           float64 // m, KB + TKM
	GM           float64 // m, KM - KG

	Curve []GZPoint // ordered by angle, starting at 0°

	MaxGZ      float64 // m
	MaxGZAngle float64 // degrees

	// VanishingAngle is the first angle at or after the GZ maximum where the
	// curve crosses back to zero, linearly interpolated between grid points.
	// VanishingReached is false when GZ stays positive through the last
	// swept angle, a valid (if concerning) physical outcome.
	VanishingAngle   float64
	VanishingReached bool

	Area030  float64 // m·rad, area under GZ from 0° to 30°
	Area040  float64 // m·rad, area under GZ from 0° to 40°
	Area3040 float64 // m·rad, area under GZ from 30° to 40°
}

// GZAt returns the righting arm at the given angle, linearly interpolated
// from the computed curve.
func (r *StabilityResult) GZAt(angle float64) float64 {
	return gzAt(r.Curve, angle)
}

// ComputeCurve derives the full GZ curve and scalar stability parameters
// for one loading condition. The draft must lie within the hydrostatic
// table's domain and the derived displacement within the KN table's
// domain; either violation fails with an error wrapping ErrInputRange
// before any interpolation runs.
func ComputeCurve(ts *TableStore, in StabilityInput) (*StabilityResult, error) {
	minDraft, maxDraft := ts.DraftRange()
	if in.Draft < minDraft-rangeEpsilon || in.Draft > maxDraft+rangeEpsilon {
		return nil, inputRangeError("draft", "m", in.Draft, minDraft, maxDraft)
	}

	displacement, err := ts.Hydrostatic(ColDisplacement, in.Draft)
	if err != nil {
		return nil, err
	}
	kb, err := ts.Hydrostatic(ColKB, in.Draft)
	if err != nil {
		return nil, err
	}
	tkm, err := ts.Hydrostatic(ColTKM, in.Draft)
	if err != nil {
		return nil, err
	}

	res := &StabilityResult{
		Input:        in,
		Displacement: displacement,
		KB:           kb,
		TKM:          tkm,
		KM:           kb + tkm,
	}
	res.GM = res.KM - in.KG

	minDisp, maxDisp := ts.DisplacementRange()
	if displacement < minDisp-rangeEpsilon || displacement > maxDisp+rangeEpsilon {
		return nil, inputRangeError("displacement", "t", displacement, minDisp, maxDisp)
	}

	grid := angleGrid(ts.angles)
	res.Curve = make([]GZPoint, 0, len(grid))
	for _, angle := range grid {
		kn, err := ts.KN(displacement, angle)
		if err != nil {
			return nil, err
		}
		gz := kn - in.KG*math.Sin(angle*math.Pi/180)
		res.Curve = append(res.Curve, GZPoint{Angle: angle, KN: kn, GZ: gz})
	}

	maxIdx := 0
	for i, p := range res.Curve {
		if p.GZ > res.Curve[maxIdx].GZ {
			maxIdx = i
		}
	}
	res.MaxGZ = res.Curve[maxIdx].GZ
	res.MaxGZAngle = res.Curve[maxIdx].Angle

	for j := maxIdx + 1; j < len(res.Curve); j++ {
		if res.Curve[j].GZ <= 0 {
			p0, p1 := res.Curve[j-1], res.Curve[j]
			res.VanishingAngle = p0.Angle - p0.GZ*(p1.Angle-p0.Angle)/(p1.GZ-p0.GZ)
			res.VanishingReached = true
			break
		}
	}

	res.Area030 = areaUnder(res.Curve, 0, 30)
	res.Area040 = areaUnder(res.Curve, 0, 40)
	res.Area3040 = areaUnder(res.Curve, 30, 40)

	return res, nil
}

// angleGrid builds the heel-angle sweep: every 5° from 0° to 90°, plus any
// tabulated angle not already present.
func angleGrid(tabulated []float64) []float64 {
	grid := make([]float64, 0, 19+len(tabulated))
	for a := 0; a <= 90; a += 5 {
		grid = append(grid, float64(a))
	}
	for _, t := range tabulated {
		present := false
		for _, g := range grid {
			if math.Abs(g-t) <= rangeEpsilon {
				present = true
				break
			}
		}
		if !present {
			grid = append(grid, t)
		}
	}
	sort.Float64s(grid)
	return grid
}

// gzAt linearly interpolates GZ from the curve at the given angle. The
// curve always spans 0°..90°, so callers inside that range never miss.
func gzAt(curve []GZPoint, angle float64) float64 {
	if angle <= curve[0].Angle {
		return curve[0].GZ
	}
	for i := 1; i < len(curve); i++ {
		if math.Abs(curve[i].Angle-angle) <= rangeEpsilon {
			return curve[i].GZ
		}
		if curve[i].Angle > angle {
			p0, p1 := curve[i-1], curve[i]
			return p0.GZ + (angle-p0.Angle)*(p1.GZ-p0.GZ)/(p1.Angle-p0.Angle)
		}
	}
	return curve[len(curve)-1].GZ
}

// areaUnder integrates GZ over [from, to] degrees by the trapezoidal rule,
// with angles in radians so the result is in m·rad. If a boundary is not an
// exact grid point, GZ is interpolated there first so sub-areas partition
// consistently (area 0-30 + area 30-40 = area 0-40 within floating
// tolerance).
func areaUnder(curve []GZPoint, from, to float64) float64 {
	type sample struct{ angle, gz float64 }
	var sub []sample

	for _, p := range curve {
		if p.Angle >= from-rangeEpsilon && p.Angle <= to+rangeEpsilon {
			sub = append(sub, sample{p.Angle, p.GZ})
		}
	}
	if len(sub) == 0 {
		return 0
	}
	if sub[0].angle > from+rangeEpsilon && from >= curve[0].Angle {
		sub = append([]sample{{from, gzAt(curve, from)}}, sub...)
	}
	if sub[len(sub)-1].angle < to-rangeEpsilon && to <= curve[len(curve)-1].Angle {
		sub = append(sub, sample{to, gzAt(curve, to)})
	}
	if len(sub) < 2 {
		return 0
	}

	var area float64
	for i := 0; i < len(sub)-1; i++ {
		dTheta := (sub[i+1].angle - sub[i].angle) * math.Pi / 180
		area += 0.5 * (sub[i].gz + sub[i+1].gz) * dTheta
	}
	return area
}
