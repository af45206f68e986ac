package cli

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandem-cli/tandem/internal/config"
)

func TestLoadMonitorConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := loadMonitorConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultInterval, cfg.Monitor.Interval)
	assert.Equal(t, config.DefaultBarWidth, cfg.Monitor.BarWidth)
}

func TestLoadMonitorConfig_FlagOverridesInterval(t *testing.T) {
	chdirTemp(t)

	cfg, err := loadMonitorConfig("5s")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Monitor.Interval)
}

func TestLoadMonitorConfig_BadFlag(t *testing.T) {
	chdirTemp(t)

	_, err := loadMonitorConfig("yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid interval")
}

func TestLoadMonitorConfig_ReadsConfigFile(t *testing.T) {
	chdirTemp(t)

	content := "version: 1\nsession: test\nmonitor:\n  interval: 3s\n"
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte(content), 0644))

	cfg, err := loadMonitorConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Monitor.Interval)

	// The flag still wins over the file.
	cfg, err = loadMonitorConfig("10s")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Monitor.Interval)
}
