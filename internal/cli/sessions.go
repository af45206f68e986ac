package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/errors"
	"github.com/tandem-cli/tandem/internal/tmux"
	"github.com/tandem-cli/tandem/internal/ui"
	"github.com/tandem-cli/tandem/internal/util"
)

// sessionsCommand lists tmux sessions, marking the configured one.
func sessionsCommand(jsonOut bool) error {
	if !tmux.Available() {
		if jsonOut {
			return failJSON(tmuxMissingError())
		}
		return tmuxMissingError()
	}

	sessions, err := tmux.ListSessions()
	if err != nil {
		lerr := errors.WrapWithCode(err, errors.ErrTmux,
			"Couldn't list tmux sessions",
			"Run 'tandem doctor' to check the tmux setup.")
		if jsonOut {
			return failJSON(lerr)
		}
		return lerr
	}

	if jsonOut {
		return WriteJSONSuccess(os.Stdout, sessions)
	}

	if len(sessions) == 0 {
		fmt.Println("No tmux sessions running")
		return nil
	}

	managed := ""
	if cfg, err := config.LoadOrDefault(Config()); err == nil {
		managed = cfg.Session
	}

	fmt.Print(ui.RenderSessionTable(sessionRows(sessions), managed))
	return nil
}

// sessionRows converts tmux session info into table rows.
func sessionRows(sessions []tmux.SessionInfo) []ui.SessionRow {
	rows := make([]ui.SessionRow, len(sessions))
	for i, s := range sessions {
		rows[i] = ui.SessionRow{
			Name:     s.Name,
			Windows:  fmt.Sprintf("%d", s.Windows),
			Created:  s.Created.Format("2006-01-02 15:04:05"),
			Attached: s.Attached,
		}
	}
	return rows
}

// resolveTargetSession picks the session kill and attach act on: the
// argument when given, otherwise the configured session name.
func resolveTargetSession(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return "", err
	}
	return cfg.Session, nil
}

// noSuchSessionError builds the not-found error, suggesting close matches
// from the sessions that do exist.
func noSuchSessionError(name string, existing []string) error {
	suggestion := "Run 'tandem sessions' to see what's running."
	if close := util.SuggestSimilar(name, existing, 3); len(close) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'? Run 'tandem sessions' to see what's running.",
			strings.Join(close, "', '"))
	}
	return errors.New(errors.ErrTmux,
		fmt.Sprintf("No session named '%s'", name),
		suggestion)
}
