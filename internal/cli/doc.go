// Package cli implements the tandem command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a workflow function that does the actual work:
//
//	tandem <command>   - launch the two-pane session (the root command)
//	tandem monitor     - the polling loop that runs in the monitor pane
//	tandem dashboard   - full-screen TUI over the same metrics
//	tandem sessions    - list tmux sessions
//	tandem attach      - reconnect to a session
//	tandem kill        - tear a session down
//	tandem doctor      - environment checks
//	tandem init        - write a starter .tandem.yaml
//	tandem version     - build information
//	tandem completion  - shell completion scripts
//
// The root command treats every positional argument as part of the work
// command, so `tandem make test` and `tandem 'make test'` are equivalent.
// Flag parsing stops at the first positional, which lets the work command
// keep flags of its own.
//
// # Error handling
//
// Workflow functions return *errors.Error values carrying a suggestion;
// Execute renders them without cobra's usage block. Argument and flag
// mistakes keep the usage output. Errors that carry their own exit status
// (a finished attach, a --json failure that already wrote its report) exit
// with that status and print nothing.
package cli
