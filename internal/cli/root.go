package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tandem-cli/tandem/internal/errors"
	"github.com/tandem-cli/tandem/internal/ui"
	"github.com/tandem-cli/tandem/internal/util"
)

// Global flags available to all commands.
var (
	configFlag  string
	noColorFlag bool
)

// Launch flags, root command only.
var (
	sessionFlag string
	monitorFlag string
	noAttach    bool
)

// rootCmd wraps a work command in a two-pane tmux session.
var rootCmd = &cobra.Command{
	Use:   "tandem [flags] <command> [args...]",
	Short: "Run a command in tmux with a live resource monitor beside it",
	Long: `Tandem launches a tmux session with two panes: the first runs your work
command, the second runs a live system resource monitor (CPU, memory, GPU,
load average, disk).

Everything after the flags is the work command. Multiple arguments are
joined into a single shell line, so quoting is only needed when the shell
would otherwise eat the syntax.

Examples:
  tandem 'cargo build --release'
  tandem make test
  tandem --session train 'python train.py'
  tandem --monitor htop 'make test'
  tandem --no-attach 'npm run build'`,
	Args:          requireWorkCommand,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Launch(LaunchOptions{
			Command:        util.ShellJoin(args),
			Session:        sessionFlag,
			MonitorCommand: monitorFlag,
			ConfigPath:     configFlag,
			NoAttach:       noAttach,
		})
	},
}

// requireWorkCommand rejects invocations without a work command. Subcommand
// dispatch happens before argument validation, so `tandem monitor` and
// friends never reach this.
func requireWorkCommand(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("no work command given; pass the command to run, e.g. tandem 'make test'")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to config file (default: search for .tandem.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVarP(&sessionFlag, "session", "s", "", "session name (overrides config)")
	rootCmd.Flags().StringVarP(&monitorFlag, "monitor", "m", "", "monitor pane command (default: built-in monitor)")
	rootCmd.Flags().BoolVar(&noAttach, "no-attach", false, "create the session without attaching")

	// Flags stop at the first positional so work-command flags pass through
	// untouched: `tandem cargo build --release` keeps --release.
	rootCmd.Flags().SetInterspersed(false)

	// Usage helps with bad arguments and flags, not with runtime failures.
	// Argument validation runs before this hook, so it still prints usage.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
		if noColorFlag {
			ui.DisableColors()
		}
	}
}

// Config returns the value of the --config flag.
func Config() string {
	return configFlag
}

// Execute runs the root command and exits non-zero on failure. Errors that
// carry an exit status (a finished attach, a --json failure that already
// wrote its report) exit silently with that status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		var terr *errors.Error
		if stderrors.As(err, &terr) {
			fmt.Fprintln(os.Stderr, terr.Error())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
