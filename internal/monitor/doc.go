// Package monitor collects local system metrics and renders them two ways:
// a plain refreshing report for the tmux monitor pane, and an interactive
// Bubble Tea dashboard.
//
// # Collection
//
// All metrics for one tick come from a single batched shell command whose
// sections are separated by "---" markers (see command.go). One process spawn
// per tick keeps the monitor cheap enough to run forever in a pane. The
// Collector parses each section independently; a section that fails to parse
// leaves its metric at zero rather than failing the tick.
//
// GPU telemetry is optional. The nvidia-smi query is guarded so a machine
// without the tool produces an empty section, and an empty section means the
// report carries no GPU lines at all.
//
// CPU usage on Linux is computed from the jiffies delta between consecutive
// reads of /proc/stat, so the first tick reports 0% and settles from the
// second tick on.
//
// # Pane report
//
// The Runner drives the monitor pane: clear the screen, collect, render one
// gauge line per metric through the Composer, sleep the configured interval,
// repeat. The loop only stops when its context is canceled. See report.go
// and loop.go.
//
// # Dashboard
//
// Model is a Bubble Tea model following the Elm architecture
// (Model-Update-View):
//
//  1. tickMsg fires at the configured interval
//  2. collectCmd runs the batched command off the UI goroutine
//  3. snapshotMsg arrives with the parsed Snapshot
//  4. View re-renders gauges, sparklines, and the process table
//
// History keeps ring buffers of CPU/RAM/GPU percentages for the sparkline
// graphs (60 samples by default, two minutes at the 2s interval).
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	r           - Force refresh
//	space       - Pause/resume polling
//	j/k, ↑/↓    - Scroll process table
//	?           - Toggle help overlay
package monitor
