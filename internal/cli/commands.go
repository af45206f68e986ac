package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	monitorIntervalFlag   string
	dashboardIntervalFlag string
	sessionsJSON          bool
	doctorJSON            bool
	initSessionFlag       string
	initForce             bool
	initNonInteractive    bool
)

// monitorCmd is the polling loop that lives in the monitor pane.
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the resource monitor loop in the current terminal",
	Long: `Poll CPU, memory, GPU, load average and disk metrics and redraw one
gauge per metric on a fixed interval until interrupted.

This is the loop tandem starts in the monitor pane. Run it directly for a
plain single-pane monitor.

Examples:
  tandem monitor
  tandem monitor --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(monitorIntervalFlag)
	},
}

// dashboardCmd is the interactive full-screen variant of the monitor.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Full-screen dashboard with history and top processes",
	Long: `Open an interactive full-screen dashboard over the same metrics as
'tandem monitor', with sparkline history and a top-process table.

Keyboard shortcuts:
  q, Ctrl+C     quit
  p, space      pause or resume polling
  r             refresh now
  up/down, j/k  scroll the process table
  ?             toggle help

Examples:
  tandem dashboard
  tandem dashboard --interval 1s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardIntervalFlag)
	},
}

// sessionsCmd lists what is running on the tmux server.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List tmux sessions",
	Long: `List the sessions on the tmux server, marking the configured one.

Examples:
  tandem sessions
  tandem sessions --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionsCommand(sessionsJSON)
	},
}

// killCmd tears a session down.
var killCmd = &cobra.Command{
	Use:   "kill [session]",
	Short: "Kill a tmux session",
	Long: `Kill the named session, or the configured session when no name is given.

Examples:
  tandem kill
  tandem kill train`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return killCommand(args)
	},
}

// attachCmd reconnects the terminal to a session.
var attachCmd = &cobra.Command{
	Use:   "attach [session]",
	Short: "Attach to a tmux session",
	Long: `Attach to the named session, or the configured session when no name is
given. Inside tmux this switches the current client instead of nesting.

Examples:
  tandem attach
  tandem attach train`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return attachCommand(args)
	},
}

// doctorCmd checks the environment tandem depends on.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check tmux, telemetry sources, and config health",
	Long: `Run diagnostic checks over everything tandem needs at runtime: the tmux
binary and its version, the GPU tool, the platform telemetry sources, and
the config file.

Exits non-zero when any check fails.

Examples:
  tandem doctor
  tandem doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

// initCmd writes a starter config.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .tandem.yaml in the current directory",
	Long: `Interactively create a .tandem.yaml config file in the current directory.

Prompts for the session name, poll interval, and attach behavior. With
--non-interactive (or when stdin is not a terminal) it writes defaults
without asking.

Examples:
  tandem init
  tandem init --session train
  tandem init --non-interactive --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(InitOptions{
			Session:        initSessionFlag,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate a completion script for the given shell.

Examples:
  # bash (add to ~/.bashrc)
  source <(tandem completion bash)

  # zsh
  tandem completion zsh > "${fpath[1]}/_tandem"

  # fish
  tandem completion fish | source`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		}
		return nil
	},
}

func init() {
	monitorCmd.Flags().StringVar(&monitorIntervalFlag, "interval", "", "poll interval, e.g. 2s or 500ms (overrides config)")
	dashboardCmd.Flags().StringVar(&dashboardIntervalFlag, "interval", "", "poll interval, e.g. 2s or 500ms (overrides config)")
	sessionsCmd.Flags().BoolVar(&sessionsJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	initCmd.Flags().StringVar(&initSessionFlag, "session", "", "session name to write (skips the prompt)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "write defaults without prompting")

	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
