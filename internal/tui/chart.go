package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/orrery/internal/diag"
)

// renderEnergyChart plots total mechanical energy against simulated days.
// A short history or a tiny viewport renders nothing rather than a broken
// axis.
func renderEnergyChart(samples []diag.Sample, width, height int) string {
	if width < 16 || height < 4 || len(samples) < 2 {
		return ""
	}

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorPeach))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	start := dayInstant(samples[0].Days)
	end := dayInstant(samples[len(samples)-1].Days)
	if !end.After(start) {
		end = start.Add(time.Second)
	}
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)

	minV, maxV := samples[0].Total, samples[0].Total
	for _, s := range samples[1:] {
		minV = math.Min(minV, s.Total)
		maxV = math.Max(maxV, s.Total)
	}
	pad := (maxV - minV) * 0.1
	if pad == 0 {
		pad = math.Abs(maxV)*0.01 + 1
	}
	chart.SetYRange(minV-pad, maxV+pad)
	chart.SetViewYRange(minV-pad, maxV+pad)
	chart.Model.XLabelFormatter = dayLabelFormatter()
	chart.Model.YLabelFormatter = energyLabelFormatter()

	for _, s := range samples {
		chart.Push(tslc.TimePoint{Time: dayInstant(s.Days), Value: s.Total})
	}
	chart.DrawBraille()
	return chart.View()
}

// dayInstant converts simulated days to an instant on the chart's time axis,
// anchored at the unix epoch so axis values round-trip through seconds.
func dayInstant(days float64) time.Time {
	return time.Unix(int64(days*86400), 0).UTC()
}

func dayLabelFormatter() linechart.LabelFormatter {
	return func(_ int, v float64) string {
		return fmt.Sprintf("%.1fd", v/86400)
	}
}

func energyLabelFormatter() linechart.LabelFormatter {
	return func(_ int, v float64) string {
		return fmt.Sprintf("%.3g", v)
	}
}
