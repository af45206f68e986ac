package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyPause       = " "
	KeyScrollUp    = "up"
	KeyScrollUpK   = "k"
	KeyScrollDown  = "down"
	KeyScrollDownJ = "j"
	KeyScrollTop   = "home"
	KeyScrollEnd   = "end"
	KeyClose       = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyClose {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.collectCmd()

	case KeyPause:
		m.paused = !m.paused
		return true, nil

	case KeyScrollUp, KeyScrollUpK:
		if m.tableReady {
			m.procTable.MoveUp(1)
		}
		return true, nil

	case KeyScrollDown, KeyScrollDownJ:
		if m.tableReady {
			m.procTable.MoveDown(1)
		}
		return true, nil

	case KeyScrollTop:
		if m.tableReady {
			m.procTable.GotoTop()
		}
		return true, nil

	case KeyScrollEnd:
		if m.tableReady {
			m.procTable.GotoBottom()
		}
		return true, nil
	}

	return false, nil
}
