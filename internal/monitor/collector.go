package monitor

import (
	"bufio"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/exec"
	"github.com/tandem-cli/tandem/internal/logger"
)

// cpuJiffies stores CPU jiffies for delta calculation.
type cpuJiffies struct {
	total int64
	idle  int64
}

// Collector gathers system metrics from the local machine. Each Collect call
// spawns one batched shell command and parses its sectioned output into a
// Snapshot. Sections that fail to parse leave their metric zeroed; Collect
// itself only fails when the command cannot run at all.
type Collector struct {
	platform Platform
	command  string

	mu      sync.Mutex // protects prev/hasPrev
	prev    cpuJiffies
	hasPrev bool

	log logger.Logger

	// run executes the batched command. Replaced in tests.
	run func(ctx context.Context, command string) (string, error)
}

// NewCollector creates a metrics collector for the local machine.
func NewCollector(cfg config.MonitorConfig) *Collector {
	platform := HostPlatform()
	c := &Collector{
		platform: platform,
		command:  BuildMetricsCommand(platform, cfg.DiskPath, cfg.GPU),
		log:      logger.NewEnvLogger("[monitor]"),
		run:      runBatched,
	}
	c.log.Debug("platform=%s command=%s", platform, c.command)
	return c
}

// runBatched executes the batched metrics command through the shell.
func runBatched(ctx context.Context, command string) (string, error) {
	stdout, _, err := exec.Capture(ctx, command)
	return string(stdout), err
}

// Platform returns the platform this collector targets.
func (c *Collector) Platform() Platform {
	return c.platform
}

// Collect runs the batched command and parses the output into a Snapshot.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	output, err := c.run(ctx, c.command)
	if err != nil {
		return nil, err
	}
	return c.parseOutput(output), nil
}

// parseOutput parses the batched command output into a Snapshot.
func (c *Collector) parseOutput(output string) *Snapshot {
	snap := &Snapshot{Timestamp: time.Now()}

	sections := strings.Split(output, OutputSeparator+"\n")

	switch c.platform {
	case PlatformDarwin:
		c.parseDarwinSections(snap, sections)
	default:
		c.parseLinuxSections(snap, sections)
	}

	return snap
}

// parseLinuxSections fills a Snapshot from Linux command output.
// Sections: 0=/proc/stat, 1=/proc/loadavg, 2=/proc/meminfo, 3=nvidia-smi,
// 4=df, 5=/proc/uptime, 6=ps aux
func (c *Collector) parseLinuxSections(snap *Snapshot, sections []string) {
	if len(sections) >= 2 {
		cpu, err := c.parseLinuxCPUDelta(strings.TrimSpace(sections[0]), strings.TrimSpace(sections[1]))
		if err == nil && cpu != nil {
			snap.CPU = *cpu
		}
	}

	if len(sections) >= 3 {
		ram, err := parseLinuxMemory(strings.TrimSpace(sections[2]))
		if err == nil && ram != nil {
			snap.RAM = *ram
		}
	}

	if len(sections) >= 4 {
		gpus, err := parseNvidiaSMI(strings.TrimSpace(sections[3]))
		if err == nil {
			snap.GPUs = gpus
		}
	}

	if len(sections) >= 5 {
		disk, err := parseDiskUsage(strings.TrimSpace(sections[4]))
		if err == nil && disk != nil {
			snap.Disk = *disk
		}
	}

	if len(sections) >= 6 {
		uptime, err := parseLinuxUptime(strings.TrimSpace(sections[5]))
		if err == nil {
			snap.Uptime = uptime
		}
	}

	if len(sections) >= 7 {
		procs, err := parseProcesses(strings.TrimSpace(sections[6]))
		if err == nil {
			snap.Processes = procs
		}
	}
}

// parseDarwinSections fills a Snapshot from macOS command output.
// Sections: 0=top, 1=vm_stat+hw.memsize, 2=ioreg GPU, 3=df,
// 4=kern.boottime, 5=ps aux
func (c *Collector) parseDarwinSections(snap *Snapshot, sections []string) {
	if len(sections) >= 1 {
		cpu, err := parseDarwinCPU(strings.TrimSpace(sections[0]))
		if err == nil && cpu != nil {
			snap.CPU = *cpu
		}
	}

	if len(sections) >= 2 {
		ram, err := parseDarwinMemory(strings.TrimSpace(sections[1]))
		if err == nil && ram != nil {
			snap.RAM = *ram
		}
	}

	if len(sections) >= 3 {
		if gpu := parseAppleGPU(strings.TrimSpace(sections[2])); gpu != nil {
			snap.GPUs = []GPUMetrics{*gpu}
		}
	}

	if len(sections) >= 4 {
		disk, err := parseDiskUsage(strings.TrimSpace(sections[3]))
		if err == nil && disk != nil {
			snap.Disk = *disk
		}
	}

	if len(sections) >= 5 {
		uptime, err := parseDarwinUptime(strings.TrimSpace(sections[4]), snap.Timestamp)
		if err == nil {
			snap.Uptime = uptime
		}
	}

	if len(sections) >= 6 {
		procs, err := parseProcesses(strings.TrimSpace(sections[5]))
		if err == nil {
			snap.Processes = procs
		}
	}
}

// scanProcStat extracts the core count and aggregate jiffy counters from
// /proc/stat output.
func scanProcStat(procStat string) (cores int, totalJiffies, idleJiffies int64, err error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()

		// Count individual CPU cores (cpu0, cpu1, etc.)
		if strings.HasPrefix(line, "cpu") && len(line) > 3 && line[3] >= '0' && line[3] <= '9' {
			cores++
			continue
		}

		// Aggregate CPU line
		if strings.HasPrefix(line, "cpu ") {
			fields := strings.Fields(line)
			if len(fields) < 5 {
				return 0, 0, 0, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
			}

			// Fields: cpu user nice system idle iowait irq softirq steal guest guest_nice
			for i := 1; i < len(fields); i++ {
				val, perr := strconv.ParseInt(fields[i], 10, 64)
				if perr != nil {
					return 0, 0, 0, fmt.Errorf("failed to parse cpu field %d: %w", i, perr)
				}
				totalJiffies += val

				// idle is field 4, iowait is field 5
				if i == 4 || i == 5 {
					idleJiffies += val
				}
			}
		}
	}

	if serr := scanner.Err(); serr != nil {
		return 0, 0, 0, fmt.Errorf("error scanning /proc/stat: %w", serr)
	}

	return cores, totalJiffies, idleJiffies, nil
}

// parseLoadAvg extracts the three load averages from /proc/loadavg style
// output. Unparseable fields read as 0.
func parseLoadAvg(procLoadavg string) [3]float64 {
	var loadAvg [3]float64

	fields := strings.Fields(strings.TrimSpace(procLoadavg))
	for i := 0; i < 3 && i < len(fields); i++ {
		val, err := strconv.ParseFloat(fields[i], 64)
		if err == nil {
			loadAvg[i] = val
		}
	}

	return loadAvg
}

// parseLinuxCPUDelta calculates CPU usage from the delta between this reading
// and the previous one. This gives instantaneous usage rather than
// average-since-boot; the first reading has no delta and reports 0%.
func (c *Collector) parseLinuxCPUDelta(procStat, procLoadavg string) (*CPUMetrics, error) {
	cores, totalJiffies, idleJiffies, err := scanProcStat(procStat)
	if err != nil {
		return nil, err
	}

	metrics := &CPUMetrics{
		Cores:   cores,
		LoadAvg: parseLoadAvg(procLoadavg),
	}

	c.mu.Lock()
	prev, hasPrev := c.prev, c.hasPrev
	c.prev = cpuJiffies{total: totalJiffies, idle: idleJiffies}
	c.hasPrev = true
	c.mu.Unlock()

	if hasPrev && totalJiffies > prev.total {
		totalDelta := totalJiffies - prev.total
		idleDelta := idleJiffies - prev.idle
		if totalDelta > 0 {
			metrics.Percent = float64(totalDelta-idleDelta) / float64(totalDelta) * 100
		}
	}

	return metrics, nil
}

// parseLinuxMemory parses memory metrics from /proc/meminfo output.
func parseLinuxMemory(procMeminfo string) (*RAMMetrics, error) {
	metrics := &RAMMetrics{}
	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))

	var memTotal, memFree, memAvailable, buffers, cached int64
	foundFields := 0

	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		// Values in /proc/meminfo are in kB
		key := strings.TrimSuffix(parts[0], ":")
		val, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}

		valBytes := val * 1024

		switch key {
		case "MemTotal":
			memTotal = valBytes
			foundFields++
		case "MemFree":
			memFree = valBytes
			foundFields++
		case "MemAvailable":
			memAvailable = valBytes
			foundFields++
		case "Buffers":
			buffers = valBytes
			foundFields++
		case "Cached":
			cached = valBytes
			foundFields++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}

	if foundFields < 3 {
		return nil, fmt.Errorf("insufficient memory info found in /proc/meminfo")
	}

	metrics.TotalBytes = memTotal
	metrics.Available = memAvailable
	metrics.Cached = cached + buffers
	metrics.UsedBytes = memTotal - memFree - buffers - cached

	return metrics, nil
}

// parseNvidiaSMI parses per-device GPU metrics from nvidia-smi CSV output.
// Expected input is one line per device from:
//
//	nvidia-smi --query-gpu=index,name,utilization.gpu,memory.used,memory.total,temperature.gpu,power.draw --format=csv,noheader,nounits
//
// Returns nil, nil when no GPU is available (empty output or an error
// indicator instead of CSV).
func parseNvidiaSMI(output string) ([]GPUMetrics, error) {
	output = strings.TrimSpace(output)

	if output == "" {
		return nil, nil
	}

	// Common error indicators instead of CSV rows
	lowerOutput := strings.ToLower(output)
	if strings.Contains(lowerOutput, "no devices") ||
		strings.Contains(lowerOutput, "not found") ||
		strings.Contains(lowerOutput, "failed") ||
		strings.Contains(lowerOutput, "error") ||
		strings.Contains(lowerOutput, "command not found") {
		return nil, nil
	}

	var gpus []GPUMetrics
	var lastErr error

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		gpu, err := parseNvidiaLine(line)
		if err != nil {
			lastErr = err
			continue
		}
		gpus = append(gpus, gpu)
	}

	if len(gpus) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return gpus, nil
}

// parseNvidiaLine parses a single device row of nvidia-smi CSV output.
// Example: "0, NVIDIA GeForce RTX 3080, 45, 2048, 10240, 65, 220"
func parseNvidiaLine(line string) (GPUMetrics, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 7 {
		return GPUMetrics{}, fmt.Errorf("nvidia-smi row has insufficient fields: expected 7, got %d", len(fields))
	}

	var metrics GPUMetrics

	idxStr := strings.TrimSpace(fields[0])
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return GPUMetrics{}, fmt.Errorf("failed to parse GPU index '%s': %w", idxStr, err)
	}
	metrics.Index = idx

	metrics.Name = strings.TrimSpace(fields[1])

	// Utilization may be "[N/A]" or garbage on driver hiccups; read as 0
	metrics.Percent = ParsePercent(fields[2])

	memUsedStr := strings.TrimSpace(fields[3])
	if memUsedStr != "" && memUsedStr != "[N/A]" {
		memUsed, err := strconv.ParseInt(memUsedStr, 10, 64)
		if err != nil {
			return GPUMetrics{}, fmt.Errorf("failed to parse GPU memory used '%s': %w", memUsedStr, err)
		}
		metrics.MemoryUsed = memUsed * 1024 * 1024
	}

	memTotalStr := strings.TrimSpace(fields[4])
	if memTotalStr != "" && memTotalStr != "[N/A]" {
		memTotal, err := strconv.ParseInt(memTotalStr, 10, 64)
		if err != nil {
			return GPUMetrics{}, fmt.Errorf("failed to parse GPU memory total '%s': %w", memTotalStr, err)
		}
		metrics.MemoryTotal = memTotal * 1024 * 1024
	}

	tempStr := strings.TrimSpace(fields[5])
	if tempStr != "" && tempStr != "[N/A]" {
		temp, err := strconv.Atoi(tempStr)
		if err != nil {
			return GPUMetrics{}, fmt.Errorf("failed to parse GPU temperature '%s': %w", tempStr, err)
		}
		metrics.Temperature = temp
	}

	powerStr := strings.TrimSpace(fields[6])
	if powerStr != "" && powerStr != "[N/A]" {
		// Power has decimal places, parse as float and truncate
		power, err := strconv.ParseFloat(powerStr, 64)
		if err != nil {
			return GPUMetrics{}, fmt.Errorf("failed to parse GPU power '%s': %w", powerStr, err)
		}
		metrics.PowerWatts = int(power)
	}

	return metrics, nil
}

// parseAppleGPU parses GPU metrics from Apple Silicon ioreg output.
// Expected input format (filtered grep output):
//
//	"PerformanceStatistics" = {"Device Utilization %"=0,"In use system memory"=123456,...}
//	"model" = "Apple M4"
//	"gpu-core-count" = 10
//
// Returns nil if no GPU data is available or parsing fails.
func parseAppleGPU(output string) *GPUMetrics {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil
	}

	metrics := &GPUMetrics{}

	modelRe := regexp.MustCompile(`"model"\s*=\s*"([^"]+)"`)
	if match := modelRe.FindStringSubmatch(output); len(match) > 1 {
		metrics.Name = match[1]
	}

	perfRe := regexp.MustCompile(`"PerformanceStatistics"\s*=\s*\{([^}]+)\}`)
	if match := perfRe.FindStringSubmatch(output); len(match) > 1 {
		stats := match[1]

		// Device Utilization % is the main GPU utilization metric
		if val := extractAppleGPUStat(stats, "Device Utilization %"); val >= 0 {
			metrics.Percent = val
		}

		if val := extractAppleGPUStatInt(stats, "In use system memory"); val >= 0 {
			metrics.MemoryUsed = val
		}

		// Alloc system memory is the closest thing to a total
		if val := extractAppleGPUStatInt(stats, "Alloc system memory"); val >= 0 {
			metrics.MemoryTotal = val
		}
	}

	if metrics.Name == "" && metrics.Percent == 0 && metrics.MemoryUsed == 0 {
		return nil
	}

	return metrics
}

// extractAppleGPUStat extracts a float value from the PerformanceStatistics string.
func extractAppleGPUStat(stats, key string) float64 {
	escapedKey := regexp.QuoteMeta(key)
	re := regexp.MustCompile(`"` + escapedKey + `"\s*=\s*([\d.]+)`)
	if match := re.FindStringSubmatch(stats); len(match) > 1 {
		val, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return val
		}
	}
	return -1
}

// extractAppleGPUStatInt extracts an int64 value from the PerformanceStatistics string.
func extractAppleGPUStatInt(stats, key string) int64 {
	escapedKey := regexp.QuoteMeta(key)
	re := regexp.MustCompile(`"` + escapedKey + `"\s*=\s*(\d+)`)
	if match := re.FindStringSubmatch(stats); len(match) > 1 {
		val, err := strconv.ParseInt(match[1], 10, 64)
		if err == nil {
			return val
		}
	}
	return -1
}

// parseDarwinCPU parses CPU metrics from macOS top command output.
func parseDarwinCPU(topOutput string) (*CPUMetrics, error) {
	metrics := &CPUMetrics{}
	scanner := bufio.NewScanner(strings.NewReader(topOutput))

	for scanner.Scan() {
		line := scanner.Text()

		// "CPU usage: 5.26% user, 10.52% sys, 84.21% idle"
		if strings.HasPrefix(line, "CPU usage:") {
			metrics.Percent = parseDarwinCPUUsage(line)
		}

		// "Load Avg: 1.23, 2.34, 3.45"
		if strings.HasPrefix(line, "Load Avg:") {
			metrics.LoadAvg = parseDarwinLoadAvg(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning top output: %w", err)
	}

	return metrics, nil
}

// parseDarwinCPUUsage extracts total CPU usage (100 - idle) from top's CPU usage line.
func parseDarwinCPUUsage(line string) float64 {
	parts := strings.Split(line, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "idle") {
			fields := strings.Fields(part)
			if len(fields) >= 1 {
				pctStr := strings.TrimSuffix(fields[0], "%")
				idle, err := strconv.ParseFloat(pctStr, 64)
				if err == nil {
					return 100 - idle
				}
			}
		}
	}
	return 0
}

// parseDarwinLoadAvg extracts load averages from top's Load Avg line.
func parseDarwinLoadAvg(line string) [3]float64 {
	var loadAvg [3]float64

	colonIdx := strings.Index(line, ":")
	if colonIdx < 0 {
		return loadAvg
	}

	valuesStr := strings.TrimSpace(line[colonIdx+1:])
	parts := strings.Split(valuesStr, ",")

	for i := 0; i < 3 && i < len(parts); i++ {
		val, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err == nil {
			loadAvg[i] = val
		}
	}

	return loadAvg
}

// parseDarwinMemory parses memory metrics from macOS vm_stat and sysctl hw.memsize output.
func parseDarwinMemory(vmStatOutput string) (*RAMMetrics, error) {
	metrics := &RAMMetrics{}
	scanner := bufio.NewScanner(strings.NewReader(vmStatOutput))

	// Default page size: 16KB on Apple Silicon, 4KB on Intel
	pageSize := int64(16384)

	var pagesActive, pagesWired, pagesInactive, pagesSpeculative, pagesFree int64
	var pagesCompressed, pagesPurgeable, pagesCached int64
	var totalMemBytes int64

	for scanner.Scan() {
		line := scanner.Text()

		// "Mach Virtual Memory Statistics: (page size of 16384 bytes)"
		if strings.Contains(line, "page size of") {
			start := strings.Index(line, "page size of")
			if start >= 0 {
				rest := strings.TrimSpace(line[start+len("page size of"):])
				fields := strings.Fields(rest)
				if len(fields) >= 1 {
					size, err := strconv.ParseInt(fields[0], 10, 64)
					if err == nil {
						pageSize = size
					}
				}
			}
			continue
		}

		// "hw.memsize: 17179869184"
		if strings.HasPrefix(line, "hw.memsize:") {
			parts := strings.Split(line, ":")
			if len(parts) == 2 {
				val, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
				if err == nil {
					totalMemBytes = val
				}
			}
			continue
		}

		// Key-value pairs like "Pages active:    123456."
		colonIdx := strings.Index(line, ":")
		if colonIdx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:colonIdx])
		valStr := strings.TrimSuffix(strings.TrimSpace(line[colonIdx+1:]), ".")

		val, err := strconv.ParseInt(valStr, 10, 64)
		if err != nil {
			continue
		}

		switch key {
		case "Pages active":
			pagesActive = val
		case "Pages wired down":
			pagesWired = val
		case "Pages inactive":
			pagesInactive = val
		case "Pages speculative":
			pagesSpeculative = val
		case "Pages free":
			pagesFree = val
		case "Pages occupied by compressor":
			pagesCompressed = val
		case "Pages purgeable":
			pagesPurgeable = val
		case "File-backed pages":
			pagesCached = val
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning vm_stat output: %w", err)
	}

	// Used = active + wired + compressed (speculative is part of free)
	usedPages := pagesActive + pagesWired + pagesCompressed
	// Available = memory that can be reclaimed
	availablePages := pagesFree + pagesInactive + pagesPurgeable + pagesSpeculative

	metrics.UsedBytes = usedPages * pageSize
	metrics.Available = availablePages * pageSize
	metrics.Cached = pagesCached * pageSize

	// sysctl hw.memsize is authoritative; estimate from pages when missing
	if totalMemBytes > 0 {
		metrics.TotalBytes = totalMemBytes
	} else {
		metrics.TotalBytes = (usedPages + availablePages) * pageSize
	}

	return metrics, nil
}

// parseDiskUsage parses POSIX df -Pk output for a single filesystem.
// Expected format:
//
//	Filesystem 1024-blocks    Used Available Capacity Mounted on
//	/dev/sda1    498876416 1234567 497641849       1% /
func parseDiskUsage(output string) (*DiskMetrics, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, fmt.Errorf("empty df output")
	}

	lines := strings.Split(output, "\n")

	// Use the last data line; df can wrap long device names onto two lines
	// but -P guarantees one line per filesystem.
	var fields []string
	for i := len(lines) - 1; i >= 0; i-- {
		f := strings.Fields(lines[i])
		if len(f) >= 6 && !strings.HasPrefix(lines[i], "Filesystem") {
			fields = f
			break
		}
	}
	if fields == nil {
		return nil, fmt.Errorf("no filesystem line in df output")
	}

	total, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse df total blocks '%s': %w", fields[1], err)
	}

	used, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse df used blocks '%s': %w", fields[2], err)
	}

	// Mount point is the last field; "Mounted on" header splits into two
	// tokens so the data row's final field lines up with the mount path.
	return &DiskMetrics{
		Path:       fields[len(fields)-1],
		UsedBytes:  used * 1024,
		TotalBytes: total * 1024,
	}, nil
}

// parseLinuxUptime parses /proc/uptime output ("123456.78 901234.56"),
// returning the first value as a duration.
func parseLinuxUptime(output string) (time.Duration, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 1 {
		return 0, fmt.Errorf("empty /proc/uptime output")
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse uptime '%s': %w", fields[0], err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

var boottimeRe = regexp.MustCompile(`sec\s*=\s*(\d+)`)

// parseDarwinUptime parses sysctl kern.boottime output,
// e.g. "{ sec = 1700000000, usec = 123456 } Tue Nov 14 ...".
func parseDarwinUptime(output string, now time.Time) (time.Duration, error) {
	match := boottimeRe.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("no boot time in kern.boottime output %q", output)
	}

	sec, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse boot time '%s': %w", match[1], err)
	}

	uptime := now.Sub(time.Unix(sec, 0))
	if uptime < 0 {
		uptime = 0
	}
	return uptime, nil
}

// parseProcesses parses ps aux output into a slice of ProcessInfo.
// Works for both Linux and macOS ps aux output formats.
// ps aux columns: USER PID %CPU %MEM VSZ RSS TTY STAT START TIME COMMAND
func parseProcesses(output string) ([]ProcessInfo, error) {
	var procs []ProcessInfo
	scanner := bufio.NewScanner(strings.NewReader(output))

	// Skip header line (USER PID %CPU %MEM ...)
	scanner.Scan()

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) < 11 {
			continue
		}

		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		cpu, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			cpu = 0
		}

		mem, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			mem = 0
		}

		// TIME is at index 9, COMMAND starts at index 10
		timeStr := fields[9]
		command := strings.Join(fields[10:], " ")

		if len(command) > 50 {
			command = command[:47] + "..."
		}

		procs = append(procs, ProcessInfo{
			PID:     pid,
			User:    fields[0],
			CPU:     cpu,
			Memory:  mem,
			Time:    timeStr,
			Command: command,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning ps output: %w", err)
	}

	return procs, nil
}
