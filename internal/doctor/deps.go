package doctor

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/tandem-cli/tandem/internal/tmux"
)

// Minimum tmux version: percent splits (-p) and -F format strings both work
// from 1.8 on.
const (
	minTmuxMajor = 1
	minTmuxMinor = 8
)

// TmuxCheck verifies tmux is installed and recent enough.
type TmuxCheck struct{}

func (c *TmuxCheck) Name() string     { return "tmux" }
func (c *TmuxCheck) Category() string { return "DEPENDENCIES" }

func (c *TmuxCheck) Run() CheckResult {
	if !tmux.Available() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "tmux not found",
			Suggestion: "Install tmux: brew install tmux (macOS) or apt install tmux (Linux)",
		}
	}

	version, err := tmux.ServerVersion()
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "tmux found (version unknown)",
		}
	}

	major, minor, err := tmux.ParseVersion(version)
	if err != nil {
		// Unversioned builds ("tmux master") are assumed current
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: version,
		}
	}

	if major < minTmuxMajor || (major == minTmuxMajor && minor < minTmuxMinor) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s is too old", version),
			Suggestion: fmt.Sprintf("tandem needs tmux %d.%d or newer", minTmuxMajor, minTmuxMinor),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: version,
	}
}

func (c *TmuxCheck) Fix() error {
	return nil // System package installation is out of scope
}

// GPUToolCheck reports whether a GPU query tool is present. Absence is a
// warning, not a failure: the monitor skips the GPU section without one.
type GPUToolCheck struct {
	Platform string // overrides runtime.GOOS, for tests
}

func (c *GPUToolCheck) Name() string     { return "gpu_tool" }
func (c *GPUToolCheck) Category() string { return "DEPENDENCIES" }

// gpuTool returns the tool the collector queries on this platform.
func (c *GPUToolCheck) gpuTool() string {
	platform := c.Platform
	if platform == "" {
		platform = runtime.GOOS
	}
	if platform == "darwin" {
		return "ioreg"
	}
	return "nvidia-smi"
}

func (c *GPUToolCheck) Run() CheckResult {
	tool := c.gpuTool()

	if _, err := exec.LookPath(tool); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s not found", tool),
			Suggestion: "GPU gauges will be skipped",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s found", tool),
	}
}

func (c *GPUToolCheck) Fix() error {
	return nil
}

// NewDepsChecks creates all dependency checks.
func NewDepsChecks() []Check {
	return []Check{
		&TmuxCheck{},
		&GPUToolCheck{},
	}
}
