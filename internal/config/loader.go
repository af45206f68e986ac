package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tandem-cli/tandem/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".tandem.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/tandem"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'tandem init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .tandem.yaml in current directory
// 3. .tandem.yaml in parent directories (stops at git root or home)
// 4. ~/.config/tandem/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if not
// found. Commands like 'tandem init' and the monitor loop work without a
// config file.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// Expand ~ and variables in the session name, paths, and commands
	cfg.Session = Expand(cfg.Session)
	cfg.Monitor.DiskPath = Expand(cfg.Monitor.DiskPath)
	cfg.Monitor.Command = Expand(cfg.Monitor.Command)

	return cfg, nil
}

// setDefaults seeds viper so keys absent from the file keep their defaults
// after Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("session", "tandem")
	v.SetDefault("attach", true)
	v.SetDefault("split", SplitHorizontal)
	v.SetDefault("monitor_size", 35)
	v.SetDefault("monitor.command", "")
	v.SetDefault("monitor.interval", "2s")
	v.SetDefault("monitor.bar_width", DefaultBarWidth)
	v.SetDefault("monitor.disk_path", "/")
	v.SetDefault("monitor.gpu", true)
	v.SetDefault("monitor.thresholds.warning", 70)
	v.SetDefault("monitor.thresholds.critical", 90)
}
