package stability

// IMO Intact Stability Code (2008 IS Code, Part A, §2.2) minimums for the
// general intact-stability criteria.
const (
	MinGM         = 0.15  // m
	MinArea030    = 0.055 // m·rad
	MinArea040    = 0.090 // m·rad
	MinArea3040   = 0.030 // m·rad
	MinGZAt30     = 0.20  // m
	MinMaxGZAngle = 25.0  // degrees
)

// Criterion pairs one measured stability value with its IMO threshold.
type Criterion struct {
	Name        string  // short identifier, e.g. "GM"
	Requirement string  // human-readable rule, e.g. "GM ≥ 0.15 m"
	Value       float64 // measured value
	Limit       float64 // minimum required
	Pass        bool
}

// ComplianceVerdict is the outcome of checking a StabilityResult against
// the six IMO intact-stability criteria. AllPass is the logical AND of the
// individual flags.
type ComplianceVerdict struct {
	GM         Criterion
	Area030    Criterion
	Area040    Criterion
	Area3040   Criterion
	GZAt30     Criterion
	MaxGZAngle Criterion

	AllPass bool
}

// Criteria returns the six criteria in report order.
func (v ComplianceVerdict) Criteria() []Criterion {
	return []Criterion{v.GM, v.Area030, v.Area040, v.Area3040, v.GZAt30, v.MaxGZAngle}
}

// EvaluateCompliance applies the six fixed IMO thresholds to a computed
// stability result. The checks are independent and order-free; the function
// has no failure mode because every input it needs (including GZ at 30°) is
// derivable from the result's dense angle grid.
func EvaluateCompliance(res *StabilityResult) ComplianceVerdict {
	criterion := func(name, requirement string, value, limit float64) Criterion {
		return Criterion{
			Name:        name,
			Requirement: requirement,
			Value:       value,
			Limit:       limit,
			Pass:        value >= limit,
		}
	}

	v := ComplianceVerdict{
		GM:         criterion("GM", "GM ≥ 0.15 m", res.GM, MinGM),
		Area030:    criterion("Area 0-30°", "Area 0-30° ≥ 0.055 m·rad", res.Area030, MinArea030),
		Area040:    criterion("Area 0-40°", "Area 0-40° ≥ 0.090 m·rad", res.Area040, MinArea040),
		Area3040:   criterion("Area 30-40°", "Area 30-40° ≥ 0.030 m·rad", res.Area3040, MinArea3040),
		GZAt30:     criterion("GZ at 30°", "GZ at 30° ≥ 0.20 m", res.GZAt(30), MinGZAt30),
		MaxGZAngle: criterion("Angle of max GZ", "Angle of max GZ ≥ 25°", res.MaxGZAngle, MinMaxGZAngle),
	}

	v.AllPass = true
	for _, c := range v.Criteria() {
		v.AllPass = v.AllPass && c.Pass
	}
	return v
}
