package monitor

import (
	"fmt"
	"runtime"

	"github.com/tandem-cli/tandem/internal/util"
)

// Platform represents the operating system being monitored.
type Platform string

const (
	// PlatformLinux indicates a Linux machine.
	PlatformLinux Platform = "linux"
	// PlatformDarwin indicates a macOS machine.
	PlatformDarwin Platform = "darwin"
	// PlatformUnknown indicates an unrecognized platform.
	PlatformUnknown Platform = "unknown"
)

// Separator used to split batched command output.
const OutputSeparator = "---"

// HostPlatform returns the platform of the machine this process runs on.
func HostPlatform() Platform {
	switch runtime.GOOS {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformUnknown
	}
}

// nvidiaSMIQuery is the per-device CSV query. The index field keeps rows
// stable when a machine has several GPUs.
const nvidiaSMIQuery = `nvidia-smi --query-gpu=index,name,utilization.gpu,memory.used,memory.total,temperature.gpu,power.draw --format=csv,noheader,nounits 2>/dev/null || true`

// BuildMetricsCommand returns a single batched command that collects all
// metrics for the specified platform in one process spawn. diskPath is the
// filesystem to report on; gpu disables the GPU query when false.
func BuildMetricsCommand(platform Platform, diskPath string, gpu bool) string {
	switch platform {
	case PlatformDarwin:
		return buildDarwinCommand(diskPath, gpu)
	default:
		// Linux command fails gracefully elsewhere
		return buildLinuxCommand(diskPath, gpu)
	}
}

// buildLinuxCommand returns the batched metrics command for Linux.
// Output sections are separated by "---" and include:
// 0. /proc/stat - CPU statistics
// 1. /proc/loadavg - Load averages
// 2. /proc/meminfo - Memory information
// 3. nvidia-smi output - per-GPU metrics (optional, fails silently if not available)
// 4. df -Pk - disk usage for the monitored path
// 5. /proc/uptime - seconds since boot
// 6. ps aux - process list sorted by CPU (top 16 including header)
func buildLinuxCommand(diskPath string, gpu bool) string {
	gpuCmd := "true"
	if gpu {
		gpuCmd = nvidiaSMIQuery
	}
	return fmt.Sprintf(`cat /proc/stat; echo "---"; cat /proc/loadavg; echo "---"; cat /proc/meminfo; echo "---"; %s; echo "---"; df -Pk %s 2>/dev/null || true; echo "---"; cat /proc/uptime; echo "---"; ps aux --sort=-%%cpu 2>/dev/null | head -16 || ps aux 2>/dev/null | head -16`,
		gpuCmd, util.ShellQuote(diskPath))
}

// buildDarwinCommand returns the batched metrics command for macOS.
// Output sections are separated by "---" and include:
// 0. top output - CPU usage and load averages
// 1. vm_stat + sysctl hw.memsize - Memory statistics with total memory
// 2. ioreg GPU output - Apple Silicon GPU metrics (optional, fails silently)
// 3. df -Pk - disk usage for the monitored path
// 4. sysctl kern.boottime - boot time for uptime calculation
// 5. ps aux - process list sorted by CPU (top 16 including header)
func buildDarwinCommand(diskPath string, gpu bool) string {
	gpuCmd := "true"
	if gpu {
		gpuCmd = `ioreg -r -c AGXAccelerator 2>/dev/null | grep -E '"(model|gpu-core-count|PerformanceStatistics)"' || true`
	}
	return fmt.Sprintf(`top -l 1 -n 0 2>/dev/null; echo "---"; vm_stat; sysctl hw.memsize 2>/dev/null; echo "---"; %s; echo "---"; df -Pk %s 2>/dev/null || true; echo "---"; sysctl -n kern.boottime 2>/dev/null; echo "---"; ps aux -r 2>/dev/null | head -16`,
		gpuCmd, util.ShellQuote(diskPath))
}
