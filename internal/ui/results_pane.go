package ui

import (
	"fmt"
	"strings"

	"github.com/jmorneau/loadicator/internal/stability"
)

// renderResultsPane renders the derived values and stability parameters.
func renderResultsPane(res *stability.StabilityResult, vessel string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Stability Results"))
	b.WriteString("\n")
	if vessel != "" {
		b.WriteString(mutedStyle.Render(vessel))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row := func(label string, format string, args ...any) {
		b.WriteString(labelStyle.Width(22).Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		b.WriteString("\n")
	}

	row("Draft", "%.2f m", res.Input.Draft)
	row("KG", "%.2f m", res.Input.KG)
	b.WriteString("\n")
	row("Displacement", "%.0f t", res.Displacement)
	row("KB", "%.3f m", res.KB)
	row("KM", "%.3f m", res.KM)
	row("GM", "%.3f m", res.GM)
	b.WriteString("\n")
	row("Max GZ", "%.3f m at %.1f°", res.MaxGZ, res.MaxGZAngle)
	if res.VanishingReached {
		row("Vanishing angle", "%.1f°", res.VanishingAngle)
	} else {
		row("Vanishing angle", "not reached through 90°")
	}
	row("GZ at 30°", "%.3f m", res.GZAt(30))
	row("Area 0-30°", "%.4f m·rad", res.Area030)
	row("Area 0-40°", "%.4f m·rad", res.Area040)
	row("Area 30-40°", "%.4f m·rad", res.Area3040)

	return paneStyle.Render(b.String())
}

// renderCriteriaPane renders the IMO compliance verdict.
func renderCriteriaPane(v stability.ComplianceVerdict) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IMO Intact Stability Code"))
	b.WriteString("\n\n")

	for _, c := range v.Criteria() {
		status := passStyle.Render("PASS")
		if !c.Pass {
			status = failStyle.Render("FAIL")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", status, valueStyle.Render(c.Requirement)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("      value %.4f, limit %.4f", c.Value, c.Limit)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.AllPass {
		b.WriteString(passStyle.Render("✓ COMPLIANT"))
	} else {
		b.WriteString(failStyle.Render("✗ NON-COMPLIANT"))
	}

	return paneStyle.Render(b.String())
}
