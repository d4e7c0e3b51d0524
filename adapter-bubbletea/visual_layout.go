package bubble_adapter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	editor "github.com/modaledit/vimput/core"
)

// lineSegment is one display row of a wrapped logical line; startCol is
// the rune offset of its first character within that line.
type lineSegment struct {
	text     string
	startCol int
}

// wrapLine breaks a logical line into display rows no wider than width
// terminal columns, measuring grapheme cluster widths.
func wrapLine(line string, width int) []lineSegment {
	if line == "" || width <= 0 {
		return []lineSegment{{line, 0}}
	}

	var segs []lineSegment
	var sb strings.Builder
	segStart, col, w := 0, 0, 0

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cw := g.Width()
		if w+cw > width && sb.Len() > 0 {
			segs = append(segs, lineSegment{sb.String(), segStart})
			sb.Reset()
			segStart = col
			w = 0
		}
		sb.WriteString(g.Str())
		w += cw
		col += len(g.Runes())
	}
	segs = append(segs, lineSegment{sb.String(), segStart})
	return segs
}

// renderViewport rebuilds the viewport content from the buffer and keeps
// the cursor's display row visible.
func (m *Model) renderViewport() {
	buffer := m.editor.GetBuffer()
	state := m.editor.GetState()
	lines := buffer.GetLines()
	cursor := buffer.GetCursor()

	textWidth := max(m.viewport.Width-m.gutterWidth(), 1)

	var visual []string
	cursorVisualRow := 0

	for row, line := range lines {
		runes := []rune(line)
		styles := m.rowStyles(row, runes, lines)
		segs := wrapLine(line, textWidth)

		for i, seg := range segs {
			last := i == len(segs)-1
			if row == cursor.Position.Row &&
				(cursor.Position.Col < seg.startCol+len([]rune(seg.text)) || last) &&
				cursor.Position.Col >= seg.startCol {
				cursorVisualRow = len(visual)
			}
			visual = append(visual,
				m.renderGutter(row, i, cursor.Position.Row, state)+
					m.renderSegment(seg, styles, row, cursor, last))
		}
	}

	if m.showTildeIndicator {
		for len(visual) < m.viewport.Height {
			visual = append(visual, m.theme.LineNumberStyle.Render("~"))
		}
	}

	m.viewport.SetContent(strings.Join(visual, "\n"))

	if cursorVisualRow < m.viewport.YOffset {
		m.viewport.YOffset = cursorVisualRow
	} else if cursorVisualRow >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = cursorVisualRow - m.viewport.Height + 1
	}
}

// rowStyles computes the per-rune style of one logical line: syntax tokens
// first, then the visual selection, then the yank flash on top.
func (m *Model) rowStyles(row int, runes []rune, lines []string) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(runes))
	plain := lipgloss.NewStyle()
	for i := range styles {
		styles[i] = plain
	}

	if m.highlighter != nil {
		col := 0
		for _, tok := range m.highlighter.LineTokens(row, lines) {
			st := m.highlighter.StyleFor(tok.Type)
			for range tok.Value {
				if col < len(styles) {
					styles[col] = st
				}
				col++
			}
		}
	}

	for col := range styles {
		if m.editor.GetSelectionStatus(editor.Position{Row: row, Col: col}) != editor.SelectionNone {
			styles[col] = m.theme.SelectionStyle
		}
	}

	if m.yanked && row >= m.yankRows[0] && row <= m.yankRows[1] {
		for col := range styles {
			styles[col] = m.theme.YankFlashStyle
		}
	}

	return styles
}

func (m *Model) renderSegment(seg lineSegment, styles []lipgloss.Style, row int, cursor editor.Cursor, last bool) string {
	var sb strings.Builder
	runes := []rune(seg.text)

	onCursorRow := m.isFocused && row == cursor.Position.Row

	for i, r := range runes {
		col := seg.startCol + i
		st := styles[col]
		if onCursorRow && col == cursor.Position.Col {
			st = m.theme.CursorStyle
		}
		sb.WriteString(st.Render(string(r)))
	}

	// In insert mode the cursor may rest one past the line end
	if last && onCursorRow && cursor.Position.Col >= seg.startCol+len(runes) {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return sb.String()
}

func (m *Model) gutterWidth() int {
	if !m.showLineNumbers {
		return 0
	}
	digits := len(strconv.Itoa(max(1, m.editor.GetBuffer().LineCount())))
	return min(max(4, digits)+1, 10)
}

// renderGutter renders the line-number column. Continuation rows of a
// wrapped line get a blank gutter.
func (m *Model) renderGutter(row, segIdx, cursorRow int, state editor.State) string {
	w := m.gutterWidth()
	if w == 0 {
		return ""
	}
	if segIdx > 0 {
		return strings.Repeat(" ", w)
	}

	num := row + 1
	style := m.theme.LineNumberStyle
	if row == cursorRow {
		style = m.theme.CurrentLineNumberStyle
	} else if state.RelativeNumbers {
		num = row - cursorRow
		if num < 0 {
			num = -num
		}
	}

	return style.Width(w-1).Render(strconv.Itoa(num)) + " "
}
