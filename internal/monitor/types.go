package monitor

import "time"

// Snapshot contains all metrics collected in one polling tick.
type Snapshot struct {
	Timestamp time.Time
	CPU       CPUMetrics
	RAM       RAMMetrics
	GPUs      []GPUMetrics // nil when no GPU telemetry is available
	Disk      DiskMetrics
	Uptime    time.Duration
	Processes []ProcessInfo
}

// CPUMetrics contains CPU usage information.
type CPUMetrics struct {
	Percent float64
	Cores   int
	LoadAvg [3]float64
}

// RAMMetrics contains memory usage information.
type RAMMetrics struct {
	UsedBytes  int64
	TotalBytes int64
	Cached     int64
	Available  int64
}

// Percent returns memory usage as a percentage of total, 0 when total is unknown.
func (r RAMMetrics) Percent() float64 {
	if r.TotalBytes <= 0 {
		return 0
	}
	return float64(r.UsedBytes) / float64(r.TotalBytes) * 100
}

// GPUMetrics contains usage information for a single GPU device.
type GPUMetrics struct {
	Index       int
	Name        string
	Percent     float64
	MemoryUsed  int64
	MemoryTotal int64
	Temperature int
	PowerWatts  int
}

// MemoryPercent returns GPU memory usage as a percentage of total.
func (g GPUMetrics) MemoryPercent() float64 {
	if g.MemoryTotal <= 0 {
		return 0
	}
	return float64(g.MemoryUsed) / float64(g.MemoryTotal) * 100
}

// GPUAggregate summarizes all GPU devices: mean utilization, summed memory,
// and the hottest temperature.
type GPUAggregate struct {
	Count       int
	Percent     float64
	MemoryUsed  int64
	MemoryTotal int64
	Temperature int
}

// MemoryPercent returns combined GPU memory usage as a percentage of total.
func (a GPUAggregate) MemoryPercent() float64 {
	if a.MemoryTotal <= 0 {
		return 0
	}
	return float64(a.MemoryUsed) / float64(a.MemoryTotal) * 100
}

// AggregateGPUs combines per-device metrics into a single summary.
func AggregateGPUs(gpus []GPUMetrics) GPUAggregate {
	agg := GPUAggregate{Count: len(gpus)}
	if len(gpus) == 0 {
		return agg
	}

	for _, g := range gpus {
		agg.Percent += g.Percent
		agg.MemoryUsed += g.MemoryUsed
		agg.MemoryTotal += g.MemoryTotal
		if g.Temperature > agg.Temperature {
			agg.Temperature = g.Temperature
		}
	}
	agg.Percent /= float64(len(gpus))

	return agg
}

// DiskMetrics contains filesystem usage for the monitored path.
type DiskMetrics struct {
	Path       string
	UsedBytes  int64
	TotalBytes int64
}

// Percent returns disk usage as a percentage of total, 0 when total is unknown.
func (d DiskMetrics) Percent() float64 {
	if d.TotalBytes <= 0 {
		return 0
	}
	return float64(d.UsedBytes) / float64(d.TotalBytes) * 100
}

// ProcessInfo describes one process from the ps listing.
type ProcessInfo struct {
	PID     int
	User    string
	CPU     float64
	Memory  float64
	Time    string
	Command string
}
