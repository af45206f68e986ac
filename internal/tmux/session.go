package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// SplitDirection selects where a new pane lands relative to the window.
type SplitDirection string

const (
	// Below stacks the new pane under the existing ones (tmux -v).
	Below SplitDirection = "-v"
	// Beside places the new pane to the right (tmux -h).
	Beside SplitDirection = "-h"
)

// Session is a tmux session created by tandem. WorkPane holds the global
// pane id (%N) of the initial pane.
type Session struct {
	Name     string
	WorkPane string
}

// NewSession creates a detached session rooted at dir and returns it with the
// initial pane's id. The session is stamped with the tandem marker option;
// stamping failures are logged but not fatal, the session still works.
func NewSession(name, dir string) (*Session, error) {
	paneID, err := runTmux("new-session", "-d", "-s", name, "-c", dir, "-P", "-F", "#{pane_id}")
	if err != nil {
		return nil, err
	}
	s := &Session{Name: name, WorkPane: paneID}
	if err := s.SetOption(markerOption, "1"); err != nil {
		tlog.Debug("could not stamp session %s: %v", name, err)
	}
	return s, nil
}

// Split divides the session's window and returns the new pane's id. percent
// is the new pane's share of the window. The split is created detached so
// focus stays on the work pane.
func (s *Session) Split(dir SplitDirection, percent int) (string, error) {
	return runTmux("split-window", "-d", string(dir), "-p", strconv.Itoa(percent),
		"-t", "="+s.Name, "-P", "-F", "#{pane_id}")
}

// SendKeys types command into the target pane and presses Enter.
func (s *Session) SendKeys(pane, command string) error {
	_, err := runTmux("send-keys", "-t", pane, command, "Enter")
	return err
}

// SelectPane moves focus to the target pane.
func (s *Session) SelectPane(pane string) error {
	_, err := runTmux("select-pane", "-t", pane)
	return err
}

// SetOption sets a session-scoped tmux option.
func (s *Session) SetOption(name, value string) error {
	_, err := runTmux("set-option", "-t", "="+s.Name, name, value)
	return err
}

// Kill destroys the session.
func (s *Session) Kill() error {
	return KillSession(s.Name)
}

// HasSession reports whether a session with exactly this name exists.
func HasSession(name string) bool {
	_, err := runTmux("has-session", "-t", "="+name)
	return err == nil
}

// KillSession destroys the named session.
func KillSession(name string) error {
	_, err := runTmux("kill-session", "-t", "="+name)
	return err
}

// CapturePane returns the visible contents of a pane.
func CapturePane(pane string) (string, error) {
	return runTmux("capture-pane", "-p", "-t", pane)
}

// runInteractive runs tmux with this process's terminal attached. Declared as
// a variable so tests can stub it.
var runInteractive = func(args ...string) error {
	cmd := exec.Command("tmux", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Attach connects the current terminal to the named session. Inside an
// existing tmux client it switches that client over instead, since tmux
// refuses to nest.
func Attach(name string) error {
	if InsideTmux() {
		if _, err := runTmux("switch-client", "-t", "="+name); err != nil {
			return fmt.Errorf("switching to session %s: %w", name, err)
		}
		return nil
	}
	return runInteractive("attach-session", "-t", "="+name)
}
