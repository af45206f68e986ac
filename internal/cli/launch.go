package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	osexec "os/exec"

	"golang.org/x/term"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/errors"
	"github.com/tandem-cli/tandem/internal/logger"
	"github.com/tandem-cli/tandem/internal/tmux"
	"github.com/tandem-cli/tandem/internal/ui"
	"github.com/tandem-cli/tandem/internal/util"
)

var clog = logger.NewEnvLogger("[cli]")

// LaunchOptions holds options for the launch workflow.
type LaunchOptions struct {
	Command        string // Work command, already joined into one shell line
	Session        string // Session name override (empty means config value)
	MonitorCommand string // Monitor pane command override (empty means config value or built-in)
	ConfigPath     string // Explicit config path from --config
	NoAttach       bool   // Create the session but stay detached
}

// Launch creates the session the root command promises: work command in the
// first pane, monitor in the second, focus on the work pane, then attach.
func Launch(opts LaunchOptions) error {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	name := resolveSessionName(opts.Session, cfg)
	if err := config.ValidateSessionName(name); err != nil {
		return err
	}

	if !tmux.Available() {
		return tmuxMissingError()
	}

	if tmux.HasSession(name) {
		return errors.New(errors.ErrTmux,
			fmt.Sprintf("Session '%s' already exists", name),
			fmt.Sprintf("Attach to it with 'tandem attach %s', or pick another name with --session.", name))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Cannot determine the working directory",
			"Check directory permissions.")
	}

	sess, err := tmux.NewSession(name, cwd)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTmux,
			fmt.Sprintf("Couldn't create session '%s'", name),
			"Run 'tandem doctor' to check the tmux setup.")
	}
	clog.Debug("created session %s, work pane %s", sess.Name, sess.WorkPane)

	monitorPane, err := sess.Split(splitDirection(cfg.Split), cfg.MonitorSize)
	if err != nil {
		_ = sess.Kill()
		return errors.WrapWithCode(err, errors.ErrTmux,
			"Couldn't split off the monitor pane",
			"Run 'tandem doctor'; percent splits need tmux 1.8 or newer.")
	}
	clog.Debug("monitor pane %s (%s, %d%%)", monitorPane, cfg.Split, cfg.MonitorSize)

	if err := sess.SendKeys(sess.WorkPane, opts.Command); err != nil {
		_ = sess.Kill()
		return errors.Wrap(err, "Couldn't start the work command")
	}

	monitorCmd := resolveMonitorCommand(opts.MonitorCommand, cfg, opts.ConfigPath)
	if err := sess.SendKeys(monitorPane, monitorCmd); err != nil {
		_ = sess.Kill()
		return errors.Wrap(err, "Couldn't start the monitor")
	}

	if err := sess.SelectPane(sess.WorkPane); err != nil {
		clog.Debug("select-pane: %v", err)
	}

	if opts.NoAttach || !cfg.Attach || !stdoutIsTerminal() {
		fmt.Printf("%s Session '%s' ready\n", ui.SuccessStyle().Render(ui.SymbolSuccess), name)
		fmt.Printf("  Attach with: tandem attach %s\n", name)
		return nil
	}

	return attachSession(name)
}

// attachSession hands the terminal to tmux. A finished attach that carried a
// non-zero status is mirrored rather than reported as a tandem failure.
func attachSession(name string) error {
	if err := tmux.Attach(name); err != nil {
		var exitErr *osexec.ExitError
		if stderrors.As(err, &exitErr) {
			return errors.NewExitError(exitErr.ExitCode())
		}
		return errors.WrapWithCode(err, errors.ErrTmux,
			fmt.Sprintf("Couldn't attach to session '%s'", name),
			fmt.Sprintf("The session is still running; try 'tandem attach %s'.", name))
	}
	return nil
}

// resolveSessionName prefers the --session flag over the config value.
func resolveSessionName(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Session
}

// resolveMonitorCommand picks what runs in the monitor pane: the --monitor
// flag, then the configured command, then the built-in monitor.
func resolveMonitorCommand(flag string, cfg *config.Config, configPath string) string {
	if flag != "" {
		return flag
	}
	if cfg.Monitor.Command != "" {
		return cfg.Monitor.Command
	}
	return builtinMonitorCommand(executablePath(), configPath)
}

// splitDirection maps the config split mode onto a tmux direction. The
// default horizontal mode puts the monitor beside the work pane.
func splitDirection(mode string) tmux.SplitDirection {
	if mode == config.SplitVertical {
		return tmux.Below
	}
	return tmux.Beside
}

// builtinMonitorCommand builds the monitor pane command line, carrying an
// explicit --config through to the child process.
func builtinMonitorCommand(exe, configPath string) string {
	args := []string{exe, "monitor"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	return util.ShellJoin(args)
}

// executablePath returns this binary's path, falling back to the bare name
// when the OS won't say. The pane shell resolves the fallback via PATH.
func executablePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "tandem"
	}
	return exe
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tmuxMissingError is the shared failure for a machine without tmux.
func tmuxMissingError() error {
	return errors.New(errors.ErrTmux,
		"tmux is not installed",
		"Install it first: 'brew install tmux' on macOS, 'apt install tmux' on Debian/Ubuntu.")
}
