package integration

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/tandem-cli/tandem/internal/tmux"
)

// SkipIfNoTmux skips the current test when tmux is unavailable or tmux tests
// are disabled. Set TANDEM_TEST_SKIP_TMUX=1 to skip them explicitly.
func SkipIfNoTmux(t *testing.T) {
	t.Helper()
	if os.Getenv("TANDEM_TEST_SKIP_TMUX") == "1" {
		t.Skip("Skipping tmux test: TANDEM_TEST_SKIP_TMUX=1")
	}
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("Skipping tmux test: tmux not installed")
	}
}

// UniqueSession returns a session name that won't collide with other tests
// or with anything a developer has running.
func UniqueSession(label string) string {
	return fmt.Sprintf("tandem-it-%s-%d-%d", label, os.Getpid(), time.Now().UnixNano()%100000)
}

// CleanupSession kills the session at test end, ignoring "no such session".
func CleanupSession(t *testing.T, name string) {
	t.Helper()
	t.Cleanup(func() {
		if tmux.HasSession(name) {
			_ = tmux.KillSession(name)
		}
	})
}

// WaitForPaneContent polls the pane until its capture contains substr or the
// timeout expires. Commands sent with send-keys run asynchronously, so every
// content assertion goes through here.
func WaitForPaneContent(t *testing.T, pane, substr string, timeout time.Duration) string {
	t.Helper()

	deadline := time.Now().Add(timeout)
	var last string
	for time.Now().Before(deadline) {
		content, err := tmux.CapturePane(pane)
		if err == nil {
			last = content
			if strings.Contains(content, substr) {
				return content
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Fatalf("pane %s never showed %q, last capture:\n%s", pane, substr, last)
	return ""
}

// ListPanes returns the pane ids of a session, via the tmux binary directly
// so the assertion does not depend on the code under test.
func ListPanes(t *testing.T, name string) []string {
	t.Helper()

	out, err := exec.Command("tmux", "list-panes", "-t", "="+name, "-F", "#{pane_id}").Output()
	if err != nil {
		t.Fatalf("tmux list-panes failed: %v", err)
	}

	var panes []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			panes = append(panes, line)
		}
	}
	return panes
}
