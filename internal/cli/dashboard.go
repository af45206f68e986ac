package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tandem-cli/tandem/internal/errors"
	"github.com/tandem-cli/tandem/internal/monitor"
)

// dashboardCommand runs the full-screen dashboard in the alternate screen
// buffer, leaving the terminal as it was on exit.
func dashboardCommand(intervalFlag string) error {
	cfg, err := loadMonitorConfig(intervalFlag)
	if err != nil {
		return err
	}

	model := monitor.NewModel(monitor.NewCollector(cfg.Monitor), cfg.Monitor)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrMonitor,
			"The dashboard stopped unexpectedly",
			"Run with TANDEM_DEBUG=1 to see collector logs.")
	}
	return nil
}
