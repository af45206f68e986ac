// Package tmux wraps the tmux binary for session orchestration.
//
// Everything goes through the tmux CLI: tandem never links against a terminal
// multiplexer, it drives the one the user already has. Targets are prefixed
// with '=' for exact-name matching, and panes are addressed by their global
// pane id (%N) so user base-index settings can't shift them.
package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tandem-cli/tandem/internal/logger"
)

var tlog = logger.NewEnvLogger("[tmux]")

// runTmux executes a tmux command and returns its trimmed combined output.
// Declared as a variable so tests can stub the binary out.
var runTmux = func(args ...string) (string, error) {
	out, err := exec.Command("tmux", args...).CombinedOutput()
	text := strings.TrimSpace(string(out))
	tlog.Debug("tmux %s -> err=%v", strings.Join(args, " "), err)
	if err != nil {
		if text != "" {
			return text, fmt.Errorf("tmux %s: %s: %w", args[0], text, err)
		}
		return text, fmt.Errorf("tmux %s: %w", args[0], err)
	}
	return text, nil
}

// Available reports whether the tmux binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// InsideTmux reports whether this process is already running inside a tmux
// client. Attaching from inside must switch clients instead of nesting.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// ServerVersion returns the version string reported by `tmux -V`,
// e.g. "tmux 3.4".
func ServerVersion() (string, error) {
	return runTmux("-V")
}

var versionRe = regexp.MustCompile(`(\d+)\.(\d+)`)

// ParseVersion extracts major/minor from a `tmux -V` string. Suffixed
// releases like "3.3a" parse as 3.3; unversioned builds ("tmux master")
// return an error.
func ParseVersion(s string) (major, minor int, err error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("unrecognized tmux version %q", s)
	}
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	return major, minor, nil
}

// markerOption is a tmux user option stamped on sessions tandem creates,
// letting the sessions command tell ours apart from the user's own.
const markerOption = "@tandem"

// sessionFormat is the list-sessions format string. Tab-separated because
// session names may contain the more obvious separators.
const sessionFormat = "#{session_name}\t#{session_windows}\t#{session_created}\t#{session_attached}\t#{session_width}\t#{session_height}\t#{" + markerOption + "}"

// SessionInfo describes one tmux session as reported by list-sessions.
type SessionInfo struct {
	Name     string    `json:"name"`
	Windows  int       `json:"windows"`
	Created  time.Time `json:"created"`
	Attached bool      `json:"attached"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Managed  bool      `json:"managed"`
}

// ListSessions returns all sessions on the server. A stopped server is not an
// error: no server means no sessions.
func ListSessions() ([]SessionInfo, error) {
	out, err := runTmux("list-sessions", "-F", sessionFormat)
	if err != nil {
		if strings.Contains(out, "no server running") ||
			strings.Contains(out, "no sessions") ||
			strings.Contains(out, "error connecting to") {
			return nil, nil
		}
		return nil, err
	}
	return parseSessionList(out), nil
}

// parseSessionList parses list-sessions output in sessionFormat.
// Malformed lines are skipped rather than failing the whole listing.
func parseSessionList(out string) []SessionInfo {
	var sessions []SessionInfo
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 7)
		if len(parts) < 7 {
			continue
		}

		windows, _ := strconv.Atoi(parts[1])
		created, _ := strconv.ParseInt(parts[2], 10, 64)
		width, _ := strconv.Atoi(parts[4])
		height, _ := strconv.Atoi(parts[5])

		sessions = append(sessions, SessionInfo{
			Name:     parts[0],
			Windows:  windows,
			Created:  time.Unix(created, 0),
			Attached: parts[3] == "1",
			Width:    width,
			Height:   height,
			Managed:  parts[6] != "",
		})
	}
	return sessions
}

// SessionNames returns just the names from ListSessions, for suggestions.
func SessionNames() []string {
	sessions, err := ListSessions()
	if err != nil {
		return nil
	}
	names := make([]string, len(sessions))
	for i, s := range sessions {
		names[i] = s.Name
	}
	return names
}

// SanitizeName strips characters tmux targets can't carry and caps the
// length, falling back to "tandem" when nothing survives.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	s = strings.TrimLeft(s, "-")
	if s == "" {
		s = "tandem"
	}
	if len(s) > 32 {
		s = s[:32]
	}
	return s
}
