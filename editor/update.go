package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcpad/session"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	out := m.sess.HandleKey(m.sessionKey(msg))
	if m.syncFromSession() {
		prevX := m.xOffset
		m.rebuildContent()
		m.followCursor()
		if m.xOffset != prevX {
			m.rebuildContent()
		}
	}
	if out == session.Quit {
		return m, tea.Quit
	}
	return m, nil
}

// sessionKey classifies a terminal key. Paste and unbound keys map to
// KeyOther, which the session ignores.
func (m Model) sessionKey(msg tea.KeyMsg) session.Key {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Abort):
		return session.Key{Kind: session.KeyAbort}
	case key.Matches(msg, km.Save):
		return session.Key{Kind: session.KeyEscape}
	case key.Matches(msg, km.Left):
		return session.Key{Kind: session.KeyLeft}
	case key.Matches(msg, km.Right):
		return session.Key{Kind: session.KeyRight}
	case key.Matches(msg, km.Up):
		return session.Key{Kind: session.KeyUp}
	case key.Matches(msg, km.Down):
		return session.Key{Kind: session.KeyDown}
	case key.Matches(msg, km.Home):
		return session.Key{Kind: session.KeyHome}
	case key.Matches(msg, km.End):
		return session.Key{Kind: session.KeyEnd}
	case key.Matches(msg, km.Backspace):
		return session.Key{Kind: session.KeyBackspace}
	case key.Matches(msg, km.Enter):
		return session.Key{Kind: session.KeyEnter}
	}

	if msg.Paste || msg.Alt || len(msg.Runes) == 0 {
		return session.Key{Kind: session.KeyOther}
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return session.Runes(string(msg.Runes))
	}
	return session.Key{Kind: session.KeyOther}
}
