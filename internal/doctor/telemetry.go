package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// TelemetrySourceCheck verifies the sources the monitor's batched telemetry
// command reads from every tick.
type TelemetrySourceCheck struct {
	Platform string // overrides runtime.GOOS, for tests
	ProcStat string // overrides /proc/stat, for tests
}

func (c *TelemetrySourceCheck) Name() string     { return "telemetry_source" }
func (c *TelemetrySourceCheck) Category() string { return "TELEMETRY" }

func (c *TelemetrySourceCheck) Run() CheckResult {
	platform := c.Platform
	if platform == "" {
		platform = runtime.GOOS
	}

	switch platform {
	case "darwin":
		return c.runDarwin()
	case "linux":
		return c.runLinux()
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("untested platform %s", platform),
			Suggestion: "The monitor will try the Linux command set; gauges may read 0%",
		}
	}
}

func (c *TelemetrySourceCheck) runLinux() CheckResult {
	procStat := c.ProcStat
	if procStat == "" {
		procStat = "/proc/stat"
	}

	data, err := os.ReadFile(procStat)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not readable", procStat),
			Suggestion: "CPU and load telemetry comes from /proc; check the mount",
		}
	}

	if !strings.HasPrefix(string(data), "cpu") {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s has no cpu line", procStat),
			Suggestion: "CPU and load telemetry comes from /proc; check the mount",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "/proc readable",
	}
}

func (c *TelemetrySourceCheck) runDarwin() CheckResult {
	for _, tool := range []string{"top", "vm_stat", "sysctl"} {
		if _, err := exec.LookPath(tool); err != nil {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusFail,
				Message:    fmt.Sprintf("%s not found", tool),
				Suggestion: "CPU and memory telemetry needs the standard macOS tools",
			}
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "top, vm_stat, sysctl found",
	}
}

func (c *TelemetrySourceCheck) Fix() error {
	return nil
}

// NewTelemetryChecks creates the telemetry source checks.
func NewTelemetryChecks() []Check {
	return []Check{
		&TelemetrySourceCheck{},
	}
}
