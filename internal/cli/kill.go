package cli

import (
	"fmt"

	"github.com/tandem-cli/tandem/internal/errors"
	"github.com/tandem-cli/tandem/internal/tmux"
	"github.com/tandem-cli/tandem/internal/ui"
)

// killCommand tears down the target session.
func killCommand(args []string) error {
	if !tmux.Available() {
		return tmuxMissingError()
	}

	name, err := resolveTargetSession(args)
	if err != nil {
		return err
	}

	if !tmux.HasSession(name) {
		return noSuchSessionError(name, tmux.SessionNames())
	}

	if err := tmux.KillSession(name); err != nil {
		return errors.WrapWithCode(err, errors.ErrTmux,
			fmt.Sprintf("Couldn't kill session '%s'", name),
			"The session may have already ended; run 'tandem sessions'.")
	}

	fmt.Printf("%s Killed session '%s'\n", ui.SuccessStyle().Render(ui.SymbolSuccess), name)
	return nil
}
