package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcpad/buffer"
	"github.com/iw2rmb/calcpad/session"
)

// footerHeight is the message line plus the status line.
const footerHeight = 2

// Model is a Bubble Tea component that renders and drives a session.
type Model struct {
	cfg  Config
	sess *session.State

	viewport viewport.Model
	width    int
	xOffset  int

	lastVersion uint64
	lastCursor  buffer.Pos
}

func New(sess *session.State, cfg Config) Model {
	if cfg.KeyMap.Enter.Keys() == nil {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		sess:     sess,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = sess.Buffer().Version()
	m.lastCursor = sess.Buffer().Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Session() *session.State { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	height -= footerHeight
	if height < 0 {
		height = 0
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		// Mouse, focus and other messages do not reach the session.
		return m, nil
	}
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderMessage() + "\n" + m.renderStatus()
}

func (m *Model) syncFromSession() (changed bool) {
	b := m.sess.Buffer()
	ver := b.Version()
	cur := b.Cursor()
	if ver == m.lastVersion && cur == m.lastCursor {
		return false
	}
	m.lastVersion = ver
	m.lastCursor = cur
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls so the cursor row and cell are visible.
func (m *Model) followCursor() {
	cur := m.sess.Buffer().Cursor()

	if w := m.contentWidth(); w > 0 {
		cell, cw := cursorSpan(m.sess.Buffer().Line(cur.Row), cur.Col)
		switch {
		case cell < m.xOffset || cw > w:
			m.xOffset = cell
		case cell+cw > m.xOffset+w:
			m.xOffset = cell + cw - w
		}
	}

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
