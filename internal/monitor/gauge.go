package monitor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tandem-cli/tandem/internal/config"
)

// Gauge glyphs. Filled segments use ▰, empty segments use ▱.
const (
	gaugeFilled = "▰"
	gaugeEmpty  = "▱"
)

// ParsePercent converts a raw percentage string from a telemetry source into
// a float. Telemetry output may be empty or garbage when a source is
// unavailable; anything unparseable reads as 0 so a bad sample degrades to an
// empty gauge instead of an error.
func ParsePercent(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// clampPercent clamps a percentage into [0,100]. Sampling artifacts can
// produce values slightly above 100; negatives mean a failed sample.
func clampPercent(percent float64) float64 {
	if percent < 0 || math.IsNaN(percent) {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// gaugeFill returns the number of filled segments for a percentage,
// floor(percent*width/100) clamped to [0,width].
func gaugeFill(width int, percent float64) int {
	filled := int(clampPercent(percent) / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}

// gaugeParams resolves the bar width and color thresholds from a monitor
// config, falling back to the package defaults for unset values.
func gaugeParams(cfg config.MonitorConfig) (width, warning, critical int) {
	width = cfg.BarWidth
	if width <= 0 {
		width = config.DefaultBarWidth
	}
	warning = int(cfg.Thresholds.Warning)
	if warning <= 0 {
		warning = int(WarningThreshold)
	}
	critical = int(cfg.Thresholds.Critical)
	if critical <= 0 {
		critical = int(CriticalThreshold)
	}
	return width, warning, critical
}

// Gauge renders a fixed-width bar with a right-aligned percentage suffix,
// colored by the default thresholds.
//
//	▰▰▰▰▱▱▱▱▱▱  42%
func Gauge(width int, percent float64) string {
	return GaugeWithThresholds(width, percent, int(WarningThreshold), int(CriticalThreshold))
}

// GaugeWithThresholds renders a gauge using custom warning/critical
// thresholds for coloring.
func GaugeWithThresholds(width int, percent float64, warning, critical int) string {
	if width < 1 {
		width = 1
	}

	percent = clampPercent(percent)
	filled := gaugeFill(width, percent)

	bar := strings.Repeat(gaugeFilled, filled) + strings.Repeat(gaugeEmpty, width-filled)
	text := fmt.Sprintf("%s %3.0f%%", bar, percent)

	style := lipgloss.NewStyle().Foreground(MetricColorWithThresholds(percent, warning, critical))
	return style.Render(text)
}

// ThinBar renders a minimal line-based bar using thin characters,
// ━ for filled segments and ─ for empty ones. The dashboard draws one
// under each sparkline as a baseline for the current value.
func ThinBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}

	percent = clampPercent(percent)
	filled := gaugeFill(width, percent)

	bar := strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
	return lipgloss.NewStyle().Foreground(MetricColor(percent)).Render(bar)
}
