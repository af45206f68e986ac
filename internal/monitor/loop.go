package monitor

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/logger"
)

// Sampler produces one metrics snapshot per tick.
type Sampler interface {
	Collect(ctx context.Context) (*Snapshot, error)
}

// Runner drives the monitor pane: clear the screen, collect, render, sleep,
// repeat until the context is canceled. A failed collection renders a zeroed
// report for that tick; the loop itself never stops on a bad sample.
type Runner struct {
	sampler  Sampler
	composer *Composer
	out      *termenv.Output
	tty      *os.File // nil when the writer is not a terminal
	interval time.Duration
	log      logger.Logger
}

// NewRunner creates a runner writing to w at the configured interval. When w
// is a terminal the screen is cleared before each report and the report is
// sized to the terminal width; plain writers just get appended reports.
func NewRunner(sampler Sampler, cfg config.MonitorConfig, w io.Writer) *Runner {
	interval := cfg.Interval
	if interval < config.MinInterval {
		interval = config.DefaultInterval
	}

	r := &Runner{
		sampler:  sampler,
		composer: NewComposer(cfg),
		out:      termenv.NewOutput(w),
		interval: interval,
		log:      logger.NewEnvLogger("[monitor]"),
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.tty = f
	}
	return r
}

// Run executes the polling loop until ctx is canceled, rendering one report
// immediately and then one per interval. Returns the context's error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick runs one collect-and-render cycle.
func (r *Runner) tick(ctx context.Context) {
	snap, err := r.sampler.Collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.log.Debug("collect failed: %v", err)
		snap = &Snapshot{Timestamp: time.Now()}
	}

	if r.tty != nil {
		if cols, _, err := term.GetSize(int(r.tty.Fd())); err == nil {
			r.composer.width = cols
		}
		r.out.ClearScreen()
	}
	_, _ = r.out.WriteString(r.composer.Render(snap))
}
