package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/monitor"
)

// monitorCommand runs the plain polling loop on stdout until SIGINT or
// SIGTERM. Inside the monitor pane that means until the session dies.
func monitorCommand(intervalFlag string) error {
	cfg, err := loadMonitorConfig(intervalFlag)
	if err != nil {
		return err
	}

	runner := monitor.NewRunner(monitor.NewCollector(cfg.Monitor), cfg.Monitor, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadMonitorConfig loads the config and applies the --interval override
// shared by the monitor and dashboard commands.
func loadMonitorConfig(intervalFlag string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	interval, err := ParseInterval(intervalFlag)
	if err != nil {
		return nil, err
	}
	if interval > 0 {
		cfg.Monitor.Interval = interval
	}
	return cfg, nil
}
