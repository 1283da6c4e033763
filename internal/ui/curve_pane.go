package ui

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/jmorneau/loadicator/internal/stability"
)

// renderCurvePane plots the GZ curve with braille lines. The Y domain is
// padded so a flat or negative curve still renders with a visible axis.
func renderCurvePane(res *stability.StabilityResult, width, height int) string {
	minY, maxY := 0.0, 0.0
	for _, p := range res.Curve {
		if p.GZ < minY {
			minY = p.GZ
		}
		if p.GZ > maxY {
			maxY = p.GZ
		}
	}
	if maxY-minY < 0.1 {
		maxY = minY + 0.1
	}

	maxX := res.Curve[len(res.Curve)-1].Angle
	lc := linechart.New(width, height, 0, maxX, minY, maxY,
		linechart.WithXYSteps(9, 4))
	lc.DrawXYAxisAndLabel()

	for i := 1; i < len(res.Curve); i++ {
		lc.DrawBrailleLine(
			canvas.Float64Point{X: res.Curve[i-1].Angle, Y: res.Curve[i-1].GZ},
			canvas.Float64Point{X: res.Curve[i].Angle, Y: res.Curve[i].GZ},
		)
	}

	return paneStyle.Render(titleStyle.Render("GZ Curve (m vs °)") + "\n" + lc.View())
}
