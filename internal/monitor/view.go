package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.snapshot == nil {
		b.WriteString(LabelStyle.Render("Collecting first sample..."))
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter())
		return b.String()
	}

	width := m.contentWidth()

	sections := []string{
		m.renderCPUSection(width),
		m.renderMemorySection(width),
	}
	if gpu := m.renderGPUSection(width); gpu != "" {
		sections = append(sections, gpu)
	}
	sections = append(sections, m.renderDiskSection(width))
	if procs := m.renderProcessSection(width); procs != "" {
		sections = append(sections, procs)
	}

	b.WriteString(strings.Join(sections, "\n"))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard header with host and freshness info.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("tandem monitor")

	var parts []string
	if m.host != "" {
		parts = append(parts, m.host)
	}
	if m.snapshot != nil && m.snapshot.Uptime > 0 {
		parts = append(parts, "up "+FormatUptime(m.snapshot.Uptime))
	}

	lastUpdate := m.SecondsSinceUpdate()
	var updateText string
	switch lastUpdate {
	case 0:
		updateText = "just now"
	case 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", lastUpdate)
	}
	parts = append(parts, "updated "+updateText)

	if m.paused {
		parts = append(parts, "paused")
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + strings.Join(parts, " | "))

	header := HeaderStyle.Render(title + stats)

	if m.lastErr != "" {
		errLine := lipgloss.NewStyle().
			Foreground(ColorCritical).
			Render("collect error: " + m.lastErr)
		header += "\n" + errLine
	}

	return header
}

// renderCPUSection renders the CPU gauge, load average, and usage history.
func (m Model) renderCPUSection(width int) string {
	cpu := m.snapshot.CPU
	barWidth, warning, critical := gaugeParams(m.cfg)

	var lines []string
	lines = append(lines, SectionHeader("CPU", fmt.Sprintf("%3.0f%%", cpu.Percent), width))

	gauge := GaugeWithThresholds(barWidth, cpu.Percent, warning, critical)
	if cpu.Cores > 0 {
		gauge += "  " + MutedStyle.Render(fmt.Sprintf("%d cores", cpu.Cores))
	}
	lines = append(lines, SectionContentLine(gauge, width))

	load := LabelStyle.Render("load ") + ValueStyle.Render(
		fmt.Sprintf("%.2f  %.2f  %.2f", cpu.LoadAvg[0], cpu.LoadAvg[1], cpu.LoadAvg[2]))
	lines = append(lines, SectionContentLine(load, width))

	if history := m.history.CPU(DefaultHistorySize); len(history) > 1 {
		graph := RenderBrailleSparkline(history, width-6, 2, ColorGraph)
		for _, row := range strings.Split(graph, "\n") {
			lines = append(lines, SectionContentLine(row, width))
		}
		lines = append(lines, SectionContentLine(ThinBar(width-6, cpu.Percent), width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderMemorySection renders the memory gauge with a usage sparkline.
func (m Model) renderMemorySection(width int) string {
	ram := m.snapshot.RAM
	percent := ram.Percent()
	barWidth, warning, critical := gaugeParams(m.cfg)

	var lines []string
	lines = append(lines, SectionHeader("Memory", fmt.Sprintf("%3.0f%%", percent), width))

	gauge := GaugeWithThresholds(barWidth, percent, warning, critical)
	if ram.TotalBytes > 0 {
		gauge += "  " + MutedStyle.Render(
			fmt.Sprintf("%s / %s", formatBytes(ram.UsedBytes), formatBytes(ram.TotalBytes)))
	}
	lines = append(lines, SectionContentLine(gauge, width))

	if ram.Available > 0 {
		avail := LabelStyle.Render("free ") + ValueStyle.Render(formatBytes(ram.Available))
		lines = append(lines, SectionContentLine(avail, width))
	}

	if history := m.history.RAM(DefaultHistorySize); len(history) > 1 {
		spark := RenderCleanSparkline(history, width-6, ColorGraph)
		lines = append(lines, SectionContentLine(spark, width))
		lines = append(lines, SectionContentLine(ThinBar(width-6, percent), width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderGPUSection renders one gauge per GPU device. Hosts with no GPU tool
// produce no devices and the section is omitted entirely.
func (m Model) renderGPUSection(width int) string {
	gpus := m.snapshot.GPUs
	if len(gpus) == 0 {
		return ""
	}

	agg := AggregateGPUs(gpus)
	barWidth, warning, critical := gaugeParams(m.cfg)

	var lines []string
	lines = append(lines, SectionHeader("GPU", fmt.Sprintf("%3.0f%%", agg.Percent), width))

	for _, gpu := range gpus {
		gauge := GaugeWithThresholds(barWidth, gpu.Percent, warning, critical)
		detail := gpuDetail(gpu.MemoryUsed, gpu.MemoryTotal, gpu.Temperature)
		if detail != "" {
			gauge += "  " + MutedStyle.Render(detail)
		}

		label := gpu.Name
		if label == "" {
			label = fmt.Sprintf("GPU%d", gpu.Index)
		}
		if len(gpus) > 1 {
			gauge = LabelStyle.Render(fmt.Sprintf("%d ", gpu.Index)) + gauge
		}
		lines = append(lines, SectionContentLine(gauge, width))
		if label != "" && len(gpus) == 1 {
			lines = append(lines, SectionContentLine(MutedStyle.Render(label), width))
		}
	}

	if history := m.history.GPU(DefaultHistorySize); len(history) > 1 {
		spark := RenderCleanSparkline(history, width-6, ColorGraph)
		lines = append(lines, SectionContentLine(spark, width))
		lines = append(lines, SectionContentLine(ThinBar(width-6, agg.Percent), width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderDiskSection renders the disk usage gauge for the configured path.
func (m Model) renderDiskSection(width int) string {
	disk := m.snapshot.Disk
	percent := disk.Percent()
	barWidth, warning, critical := gaugeParams(m.cfg)

	var lines []string
	lines = append(lines, SectionHeader("Disk", fmt.Sprintf("%3.0f%%", percent), width))

	gauge := GaugeWithThresholds(barWidth, percent, warning, critical)
	if disk.TotalBytes > 0 {
		detail := fmt.Sprintf("%s / %s", formatBytes(disk.UsedBytes), formatBytes(disk.TotalBytes))
		if disk.Path != "" {
			detail += "  " + disk.Path
		}
		gauge += "  " + MutedStyle.Render(detail)
	}
	lines = append(lines, SectionContentLine(gauge, width))

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderProcessSection renders the top processes table.
func (m Model) renderProcessSection(width int) string {
	if !m.tableReady {
		return ""
	}

	var lines []string
	lines = append(lines, SectionHeader("Processes", fmt.Sprintf("top %d", len(m.snapshot.Processes)), width))

	for _, row := range strings.Split(m.procTable.View(), "\n") {
		lines = append(lines, SectionContentLine(row, width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"space pause",
		"↑↓ scroll",
		"? help",
	}

	return FooterStyle.Render(strings.Join(hints, " | "))
}

// FormatUptime formats an uptime duration as a compact human-readable string,
// e.g. "3d 4h" or "2h 15m" or "42m".
func FormatUptime(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
