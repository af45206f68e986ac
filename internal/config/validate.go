package config

import (
	"fmt"
	"strings"

	"github.com/tandem-cli/tandem/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but tandem only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest tandem: https://github.com/tandem-cli/tandem/releases")
	}

	if err := ValidateSessionName(cfg.Session); err != nil {
		return err
	}

	switch cfg.Split {
	case SplitHorizontal, SplitVertical:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown split mode '%s'", cfg.Split),
			"Use 'horizontal' (monitor beside the work pane) or 'vertical' (monitor below).")
	}

	if cfg.MonitorSize < 10 || cfg.MonitorSize > 90 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("monitor_size %d%% is out of range", cfg.MonitorSize),
			"Pick a value between 10 and 90 so both panes stay usable.")
	}

	if err := validateMonitor(cfg.Monitor); err != nil {
		return err
	}

	return nil
}

// ValidateSessionName checks that a name is acceptable to tmux.
// tmux target syntax reserves '.' and ':', and names must be non-empty.
func ValidateSessionName(name string) error {
	if name == "" {
		return errors.New(errors.ErrConfig,
			"Session name is empty",
			"Set 'session' in .tandem.yaml or pass --session.")
	}
	if strings.ContainsAny(name, ".:") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Session name '%s' contains '.' or ':'", name),
			"tmux reserves those characters for pane targets. Pick another name.")
	}
	if strings.ContainsAny(name, " \t\n") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Session name '%s' contains whitespace", name),
			"Use a single word, e.g. 'tandem' or 'train-run'.")
	}
	if strings.HasPrefix(name, "-") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Session name '%s' starts with a dash", name),
			"tmux would parse it as a flag. Pick another name.")
	}
	return nil
}

// validateMonitor checks the monitor section.
func validateMonitor(m MonitorConfig) error {
	if m.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Monitor interval %s is below the minimum %s", m.Interval, MinInterval),
			"Each tick spawns telemetry commands; intervals under 500ms burn CPU for no benefit.")
	}

	if m.BarWidth < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("bar_width %d leaves no room for glyphs", m.BarWidth),
			"Use at least 1; the default is 10.")
	}
	if m.BarWidth > 200 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("bar_width %d is wider than any terminal", m.BarWidth),
			"Use something that fits a pane; the default is 10.")
	}

	if m.DiskPath == "" {
		return errors.New(errors.ErrConfig,
			"monitor.disk_path is empty",
			"Point it at a mounted filesystem, e.g. '/'.")
	}

	t := m.Thresholds
	if t.Warning <= 0 || t.Warning > 100 || t.Critical <= 0 || t.Critical > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Thresholds must be percentages in (0,100], got warning=%g critical=%g", t.Warning, t.Critical),
			"The defaults are warning: 70, critical: 90.")
	}
	if t.Warning >= t.Critical {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Warning threshold %g is not below critical %g", t.Warning, t.Critical),
			"Warning must trip before critical, e.g. warning: 70, critical: 90.")
	}

	return nil
}
