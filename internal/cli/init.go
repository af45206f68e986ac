package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/errors"
	"github.com/tandem-cli/tandem/internal/tmux"
	"github.com/tandem-cli/tandem/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Session        string // Pre-specified session name (skips the prompt)
	Overwrite      bool   // Overwrite an existing config without asking
	NonInteractive bool   // Write defaults without prompting
}

// initFile mirrors Config with a string interval so the generated YAML reads
// as written ("2s", not nanoseconds).
type initFile struct {
	Version     int             `yaml:"version"`
	Session     string          `yaml:"session"`
	Attach      bool            `yaml:"attach"`
	Split       string          `yaml:"split"`
	MonitorSize int             `yaml:"monitor_size"`
	Monitor     initFileMonitor `yaml:"monitor"`
}

type initFileMonitor struct {
	Command    string            `yaml:"command"`
	Interval   string            `yaml:"interval"`
	BarWidth   int               `yaml:"bar_width"`
	DiskPath   string            `yaml:"disk_path"`
	GPU        bool              `yaml:"gpu"`
	Thresholds config.Thresholds `yaml:"thresholds"`
}

// initCommand applies environment overrides before running Init. CI and a
// piped stdin both force the non-interactive path so init never hangs in
// scripts.
func initCommand(opts InitOptions) error {
	if os.Getenv("CI") != "" || !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.NonInteractive = true
	}
	return Init(opts)
}

// Init writes a .tandem.yaml in the current directory, prompting for the
// values worth choosing and writing defaults for the rest.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	proceed, err := checkExistingConfig(configPath, opts)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Println("Cancelled.")
		return nil
	}

	session := opts.Session
	if session == "" {
		session = defaultSessionName()
	}
	interval := "2s"
	attach := true
	gpu := true

	if !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Session name").
					Description("The tmux session tandem will create").
					Value(&session).
					Validate(config.ValidateSessionName),
				huh.NewInput().
					Title("Poll interval").
					Description("Time between monitor updates (minimum 500ms)").
					Value(&interval).
					Validate(func(s string) error {
						_, err := ParseInterval(s)
						return err
					}),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Attach after launch?").
					Description("Switch your terminal into the session once it's up").
					Value(&attach),
				huh.NewConfirm().
					Title("Monitor the GPU?").
					Description("Query the GPU tool each tick when one is installed").
					Value(&gpu),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't read your answers",
				"Check terminal compatibility, or rerun with --non-interactive.")
		}
	}

	if err := writeInitConfig(configPath, session, interval, attach, gpu); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  tandem 'make test'   - launch a monitored session")
	fmt.Println("  tandem doctor        - check the environment")
	fmt.Println("  tandem sessions      - list what's running")

	return nil
}

// checkExistingConfig decides whether an existing file blocks the write.
// Returns false with a nil error when the user declined to overwrite.
func checkExistingConfig(path string, opts InitOptions) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return true, nil
	}
	if opts.Overwrite {
		return true, nil
	}
	if opts.NonInteractive {
		return false, errors.New(errors.ErrConfig,
			fmt.Sprintf("There's already a config file at %s", path),
			"Use --force to overwrite it.")
	}

	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("'%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read your answer",
			"Use --force to overwrite without asking.")
	}
	return overwrite, nil
}

// writeInitConfig validates the collected values and writes the YAML file.
func writeInitConfig(path, session, interval string, attach, gpu bool) error {
	if interval == "" {
		interval = "2s"
	}
	if err := config.ValidateSessionName(session); err != nil {
		return err
	}
	if _, err := ParseInterval(interval); err != nil {
		return err
	}

	defaults := config.DefaultConfig()
	file := initFile{
		Version:     config.CurrentConfigVersion,
		Session:     session,
		Attach:      attach,
		Split:       defaults.Split,
		MonitorSize: defaults.MonitorSize,
		Monitor: initFileMonitor{
			Command:    "",
			Interval:   interval,
			BarWidth:   defaults.Monitor.BarWidth,
			DiskPath:   defaults.Monitor.DiskPath,
			GPU:        gpu,
			Thresholds: defaults.Monitor.Thresholds,
		},
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't generate the config", "")
	}

	header := `# tandem configuration
# Run 'tandem <command>' to launch a monitored session.
# See https://github.com/tandem-cli/tandem for all options.

`

	if err := os.WriteFile(path, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't write %s", path),
			"Check directory permissions.")
	}
	return nil
}

// defaultSessionName derives a session name from the working directory.
func defaultSessionName() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "tandem"
	}
	return tmux.SanitizeName(filepath.Base(cwd))
}
