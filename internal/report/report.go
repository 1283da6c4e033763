// Package report renders stability results as a plain-text report for
// terminal output or file export.
package report

import (
	"fmt"
	"strings"

	"github.com/jmorneau/loadicator/internal/stability"
)

const lineWidth = 72

// Render produces the full text report for one calculation: input echo,
// derived hydrostatic values, stability parameters, the GZ curve table and
// the IMO compliance verdict.
func Render(vessel string, res *stability.StabilityResult, v stability.ComplianceVerdict) string {
	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "STABILITY CALCULATION REPORT")
	if vessel != "" {
		fmt.Fprintln(&b, vessel)
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "INPUT:")
	fmt.Fprintf(&b, "  Draft at perpendiculars: %.2f m\n", res.Input.Draft)
	fmt.Fprintf(&b, "  KG (centre of gravity):  %.2f m\n", res.Input.KG)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DERIVED VALUES:")
	fmt.Fprintf(&b, "  Displacement: %.0f t\n", res.Displacement)
	fmt.Fprintf(&b, "  KB:           %.3f m\n", res.KB)
	fmt.Fprintf(&b, "  KM:           %.3f m\n", res.KM)
	fmt.Fprintf(&b, "  GM:           %.3f m\n", res.GM)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "STABILITY PARAMETERS:")
	fmt.Fprintf(&b, "  Maximum GZ:           %.3f m at %.1f°\n", res.MaxGZ, res.MaxGZAngle)
	if res.VanishingReached {
		fmt.Fprintf(&b, "  Vanishing stability:  %.1f°\n", res.VanishingAngle)
	} else {
		fmt.Fprintln(&b, "  Vanishing stability:  not reached through 90°")
	}
	fmt.Fprintf(&b, "  GZ at 30°:            %.3f m\n", res.GZAt(30))
	fmt.Fprintf(&b, "  Area 0-30°:           %.4f m·rad\n", res.Area030)
	fmt.Fprintf(&b, "  Area 0-40°:           %.4f m·rad\n", res.Area040)
	fmt.Fprintf(&b, "  Area 30-40°:          %.4f m·rad\n", res.Area3040)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "GZ CURVE:")
	fmt.Fprintln(&b, "  Heel (°)    KN (m)    GZ (m)")
	fmt.Fprintln(&b, "  "+strings.Repeat("-", 30))
	for _, p := range res.Curve {
		fmt.Fprintf(&b, "  %7.1f   %7.3f   %7.3f\n", p.Angle, p.KN, p.GZ)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "IMO INTACT STABILITY CODE COMPLIANCE")
	fmt.Fprintln(&b, rule)
	for _, c := range v.Criteria() {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  %-28s value %8.4f   limit %7.4f   %s\n", c.Requirement, c.Value, c.Limit, status)
	}
	fmt.Fprintln(&b, thin)
	if v.AllPass {
		fmt.Fprintln(&b, "OVERALL: COMPLIANT")
		fmt.Fprintln(&b, "The vessel meets all IMO Intact Stability Code requirements.")
	} else {
		fmt.Fprintln(&b, "OVERALL: NON-COMPLIANT")
		fmt.Fprintln(&b, "The vessel does NOT meet all IMO Intact Stability Code requirements.")
		fmt.Fprintln(&b, "Review failed criteria and adjust the loading condition.")
	}
	fmt.Fprintln(&b, rule)

	return b.String()
}

// RenderRanges formats the valid input domains for operator guidance before
// any calculation is attempted.
func RenderRanges(ts *stability.TableStore) string {
	minDraft, maxDraft := ts.DraftRange()
	minDisp, maxDisp := ts.DisplacementRange()
	return fmt.Sprintf("Valid draft range: %.2f m to %.2f m\nKN displacement coverage: %.0f t to %.0f t\n",
		minDraft, maxDraft, minDisp, maxDisp)
}
