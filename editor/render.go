package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/calcpad/calc"
	"github.com/iw2rmb/calcpad/internal/grapheme"
)

func (m *Model) renderContent() string {
	snap := m.sess.Snapshot()
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(snap.Lines))
	}
	width := m.contentWidth()

	out := make([]string, 0, len(snap.Lines))
	for row, line := range snap.Lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if row == snap.Cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		textStyle := m.cfg.Style.Text
		if m.sess.IsComment(line) {
			textStyle = m.cfg.Style.Comment
		}
		cursorCol := -1
		if row == snap.Cursor.Row {
			cursorCol = snap.Cursor.Col
		}
		sb.WriteString(renderLine(m.cfg.Style, textStyle, line, cursorCol, m.xOffset, width))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders the clusters of line that fall in the cell window
// [left, left+width). A cursor at end of line is drawn as a one-cell space.
// width <= 0 means unbounded.
func renderLine(st Style, textStyle lipgloss.Style, line string, cursorCol, left, width int) string {
	clusters := grapheme.Split(line)
	right := int(^uint(0) >> 1)
	if width > 0 {
		right = left + width
	}

	var sb strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(textStyle.Render(run.String()))
			run.Reset()
		}
	}

	cell := 0
	for i, c := range clusters {
		w := grapheme.Width(c)
		start := cell
		cell += w
		if start < left || start+w > right {
			continue
		}
		if i == cursorCol {
			flush()
			sb.WriteString(st.Cursor.Render(c))
			continue
		}
		run.WriteString(c)
	}
	flush()

	if cursorCol >= len(clusters) && cell >= left && cell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// cursorSpan returns the cell offset and width of cluster col in line. The
// end-of-line cursor is one cell wide.
func cursorSpan(line string, col int) (cell, width int) {
	clusters := grapheme.Split(line)
	cell = grapheme.CellOffset(clusters, col)
	width = 1
	if col < len(clusters) {
		width = max(grapheme.Width(clusters[col]), 1)
	}
	return cell, width
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width
	if m.cfg.ShowLineNums {
		w -= gutterDigits(m.sess.Buffer().LineCount()) + 1
	}
	if w < 1 {
		w = 1
	}
	return w
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) renderMessage() string {
	res, ok := m.sess.Message()
	if !ok {
		return ""
	}
	style := m.cfg.Style.Info
	if res.Severity == calc.Error {
		style = m.cfg.Style.Error
	}
	return style.Render(truncateCells(res.Text, m.width))
}

func (m Model) renderStatus() string {
	snap := m.sess.Snapshot()
	var parts []string
	if m.cfg.Title != "" {
		parts = append(parts, m.cfg.Title)
	}
	parts = append(parts,
		fmt.Sprintf("Ln %d, Col %d", snap.Cursor.Row+1, snap.Cursor.Col+1),
		fmt.Sprintf("%d fn", snap.Functions),
	)
	for _, b := range m.cfg.KeyMap.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.cfg.Style.Status.Render(truncateCells(strings.Join(parts, " · "), m.width))
}

// truncateCells cuts s to at most width terminal cells. width <= 0 keeps s.
func truncateCells(s string, width int) string {
	if width <= 0 {
		return s
	}
	clusters := grapheme.Split(s)
	cells := 0
	for i, c := range clusters {
		cells += grapheme.Width(c)
		if cells > width {
			return grapheme.Join(clusters[:i])
		}
	}
	return s
}
