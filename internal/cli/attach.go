package cli

import (
	"github.com/tandem-cli/tandem/internal/tmux"
)

// attachCommand connects the terminal to the target session.
func attachCommand(args []string) error {
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

	return attachSession(name)
}
