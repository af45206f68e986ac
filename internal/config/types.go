package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Split modes for the monitor pane placement.
const (
	// SplitHorizontal puts the monitor pane beside the work pane.
	SplitHorizontal = "horizontal"
	// SplitVertical puts the monitor pane below the work pane.
	SplitVertical = "vertical"
)

// MinInterval is the lowest polling interval the monitor accepts.
const MinInterval = 500 * time.Millisecond

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = 2 * time.Second

// DefaultBarWidth is the number of glyph positions in a gauge.
const DefaultBarWidth = 10

// Config represents the complete .tandem.yaml configuration file.
type Config struct {
	Version     int           `yaml:"version" mapstructure:"version"`
	Session     string        `yaml:"session" mapstructure:"session"`
	Attach      bool          `yaml:"attach" mapstructure:"attach"`
	Split       string        `yaml:"split" mapstructure:"split"`
	MonitorSize int           `yaml:"monitor_size" mapstructure:"monitor_size"`
	Monitor     MonitorConfig `yaml:"monitor" mapstructure:"monitor"`
}

// MonitorConfig controls the resource monitor pane.
type MonitorConfig struct {
	// Command is an external monitor command to run in the monitor pane.
	// Empty means the built-in `tandem monitor` loop.
	Command string `yaml:"command" mapstructure:"command"`

	// Interval between polling ticks. Minimum 500ms.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// BarWidth is the number of glyph positions in each gauge.
	BarWidth int `yaml:"bar_width" mapstructure:"bar_width"`

	// DiskPath is the filesystem whose usage is reported.
	DiskPath string `yaml:"disk_path" mapstructure:"disk_path"`

	// GPU toggles querying the GPU tool when present.
	GPU bool `yaml:"gpu" mapstructure:"gpu"`

	// Thresholds color gauges as they fill.
	Thresholds Thresholds `yaml:"thresholds" mapstructure:"thresholds"`
}

// Thresholds define the percentages where gauges change color.
type Thresholds struct {
	Warning  float64 `yaml:"warning" mapstructure:"warning"`
	Critical float64 `yaml:"critical" mapstructure:"critical"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		Session:     "tandem",
		Attach:      true,
		Split:       SplitHorizontal,
		MonitorSize: 35,
		Monitor: MonitorConfig{
			Command:  "",
			Interval: DefaultInterval,
			BarWidth: DefaultBarWidth,
			DiskPath: "/",
			GPU:      true,
			Thresholds: Thresholds{
				Warning:  70,
				Critical: 90,
			},
		},
	}
}
