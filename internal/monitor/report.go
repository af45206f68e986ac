package monitor

import (
	"fmt"
	"os"
	"strings"

	"github.com/tandem-cli/tandem/internal/config"
)

// Composer renders a Snapshot as the plain multi-line report shown in the
// tmux monitor pane: one gauge line per percentage metric, plus load average
// as text. A zeroed Snapshot renders 0% gauges rather than failing, and a
// Snapshot without GPU data carries no GPU lines.
type Composer struct {
	cfg  config.MonitorConfig
	host string

	// width is the pane width in columns, probed by the Runner each tick.
	// Zero means unknown; the report then skips the separator rule.
	width int
}

// NewComposer creates a report composer for the given monitor settings.
func NewComposer(cfg config.MonitorConfig) *Composer {
	host, _ := os.Hostname()
	return &Composer{cfg: cfg, host: host}
}

// Render produces the full report for one tick.
func (c *Composer) Render(s *Snapshot) string {
	var b strings.Builder

	b.WriteString(c.renderHeader(s))
	b.WriteString("\n")
	if c.width > 0 {
		b.WriteString(MutedStyle.Render(strings.Repeat("─", c.width)))
	}
	b.WriteString("\n")

	cpuDetail := ""
	if s.CPU.Cores > 0 {
		cpuDetail = fmt.Sprintf("%d cores", s.CPU.Cores)
	}
	b.WriteString(c.metricLine("CPU", s.CPU.Percent, cpuDetail))
	b.WriteString("\n")

	memDetail := ""
	if s.RAM.TotalBytes > 0 {
		memDetail = formatGBPair(s.RAM.UsedBytes, s.RAM.TotalBytes)
	}
	b.WriteString(c.metricLine("MEM", s.RAM.Percent(), memDetail))
	b.WriteString("\n")

	b.WriteString(c.renderGPULines(s.GPUs))

	diskDetail := ""
	if s.Disk.TotalBytes > 0 {
		diskDetail = formatGBPair(s.Disk.UsedBytes, s.Disk.TotalBytes)
		if s.Disk.Path != "" {
			diskDetail += "  " + s.Disk.Path
		}
	}
	b.WriteString(c.metricLine("DISK", s.Disk.Percent(), diskDetail))
	b.WriteString("\n")

	load := fmt.Sprintf("%.2f  %.2f  %.2f", s.CPU.LoadAvg[0], s.CPU.LoadAvg[1], s.CPU.LoadAvg[2])
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-5s", "LOAD")) + " " + ValueStyle.Render(load))
	b.WriteString("\n")

	return b.String()
}

// renderHeader renders the title line and timestamp.
func (c *Composer) renderHeader(s *Snapshot) string {
	title := HeaderStyle.Render("tandem")

	info := " " + c.host
	if s.Uptime > 0 {
		info += "  up " + FormatUptime(s.Uptime)
	}

	return title + MutedStyle.Render(info) + "\n" +
		MutedStyle.Render(s.Timestamp.Format("2006-01-02 15:04:05"))
}

// renderGPULines renders one line per GPU device plus an aggregate line when
// there is more than one device. No devices means no lines at all.
func (c *Composer) renderGPULines(gpus []GPUMetrics) string {
	if len(gpus) == 0 {
		return ""
	}

	var b strings.Builder

	if len(gpus) == 1 {
		b.WriteString(c.metricLine("GPU", gpus[0].Percent, gpuDetail(gpus[0].MemoryUsed, gpus[0].MemoryTotal, gpus[0].Temperature)))
		b.WriteString("\n")
		return b.String()
	}

	for _, g := range gpus {
		label := fmt.Sprintf("GPU%d", g.Index)
		b.WriteString(c.metricLine(label, g.Percent, gpuDetail(g.MemoryUsed, g.MemoryTotal, g.Temperature)))
		b.WriteString("\n")
	}

	agg := AggregateGPUs(gpus)
	b.WriteString(c.metricLine("GPU", agg.Percent, gpuDetail(agg.MemoryUsed, agg.MemoryTotal, agg.Temperature)))
	b.WriteString("\n")

	return b.String()
}

// metricLine renders a labeled gauge with an optional detail suffix.
func (c *Composer) metricLine(label string, percent float64, detail string) string {
	width, warning, critical := gaugeParams(c.cfg)

	line := LabelStyle.Render(fmt.Sprintf("%-5s", label)) + " " +
		GaugeWithThresholds(width, percent, warning, critical)
	if detail != "" {
		line += "  " + MutedStyle.Render(detail)
	}
	return line
}

// gpuDetail formats memory and temperature for a GPU line.
func gpuDetail(memUsed, memTotal int64, temp int) string {
	var parts []string
	if memTotal > 0 {
		parts = append(parts, formatGBPair(memUsed, memTotal))
	}
	if temp > 0 {
		parts = append(parts, fmt.Sprintf("%d°C", temp))
	}
	return strings.Join(parts, "  ")
}

// formatGBPair formats a used/total byte pair as gigabytes.
func formatGBPair(used, total int64) string {
	const gb = 1 << 30
	return fmt.Sprintf("%.1f/%.1f GB", float64(used)/gb, float64(total)/gb)
}
