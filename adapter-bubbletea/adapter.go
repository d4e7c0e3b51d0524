package bubble_adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modaledit/vimput/adapter-bubbletea/highlighter"
	editor "github.com/modaledit/vimput/core"
)

// Theme collects the lipgloss styles used by the adapter. Replace any of
// them via WithTheme.
type Theme struct {
	NormalModeStyle        lipgloss.Style
	InsertModeStyle        lipgloss.Style
	VisualModeStyle        lipgloss.Style
	CommandModeStyle       lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	SelectionStyle         lipgloss.Style
	CursorStyle            lipgloss.Style
	YankFlashStyle         lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	VisualModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	CommandModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4).Align(lipgloss.Right),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
	CursorStyle:            lipgloss.NewStyle().Reverse(true),
	YankFlashStyle:         lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
}

// Model wires the editing core into a bubbletea program: it converts key
// messages into core events, drains the core's signal channel, and renders
// the buffer into a bubbles viewport.
type Model struct {
	editor editor.Editor

	viewport viewport.Model
	width    int
	height   int

	theme          Theme
	StatusLineFunc func() string

	showLineNumbers    bool
	showTildeIndicator bool
	showStatusLine     bool
	showMessages       bool
	isFocused          bool

	message string
	err     error

	yanked   bool
	yankRows [2]int

	highlighter *highlighter.Highlighter
}

// SubmitMsg carries the trimmed buffer content out to the host program.
type SubmitMsg string

// QuitMsg is emitted when the editor asks to quit (:q / :q!).
type QuitMsg struct{}

type messageMsg struct {
	text     string
	duration time.Duration
}

type errMsg error

type yankMsg struct {
	totalLines int
	linewise   bool
}

type clearMsg struct{}

type clearYankMsg struct{}

func (m *Model) dispatchClearMsg(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMsg{}
	})
}

func (m *Model) dispatchClearYankMsg() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return clearYankMsg{}
	})
}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *atottoClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

func New(width, height int) Model {
	m := Model{
		editor:          editor.New(&atottoClipboard{}),
		viewport:        viewport.New(width, max(height-2, 1)),
		showLineNumbers: true,
		showStatusLine:  true,
		showMessages:    true,
		isFocused:       true,
		theme:           DefaultTheme,
	}
	m.SetSize(width, height)
	return m
}

// SetSize resizes the viewport; two rows are reserved for the status and
// command lines.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)

	state := m.editor.GetState()
	state.ViewportWidth = m.viewport.Width
	state.ViewportHeight = m.viewport.Height
	state.AvailableWidth = max(m.viewport.Width-m.gutterWidth(), 1)
	m.editor.SetState(state)
}

// SetContent replaces the buffer, resetting cursor and undo history.
func (m *Model) SetContent(content string) {
	m.editor.SetContent([]byte(content))
	if m.highlighter != nil {
		m.highlighter.Invalidate()
	}
}

// GetCurrentContent returns the buffer as a single string.
func (m *Model) GetCurrentContent() string {
	return m.editor.GetBuffer().GetCurrentContent()
}

// GetEditor exposes the underlying editing core.
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// WithSyntaxHighlighter enables chroma-based syntax highlighting.
func (m *Model) WithSyntaxHighlighter(h *highlighter.Highlighter) {
	m.highlighter = h
}

func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
}

func (m *Model) ShowRelativeLineNumbers(show bool) {
	m.editor.ShowRelativeLineNumbers(show)
}

func (m *Model) ShowTildeIndicator(show bool) {
	m.showTildeIndicator = show
}

func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
}

// ShowMessages controls whether transient messages ("3 lines yanked",
// unknown-command errors) are rendered on the command line.
func (m *Model) ShowMessages(show bool) {
	m.showMessages = show
}

func (m *Model) Focus() {
	m.isFocused = true
}

func (m *Model) Blur() {
	m.isFocused = false
}

func (m *Model) IsFocused() bool {
	return m.isFocused
}

func (m *Model) IsNormalMode() bool     { return m.editor.IsNormalMode() }
func (m *Model) IsInsertMode() bool     { return m.editor.IsInsertMode() }
func (m *Model) IsVisualMode() bool     { return m.editor.IsVisualMode() }
func (m *Model) IsVisualLineMode() bool { return m.editor.IsVisualLineMode() }
func (m *Model) IsCommandMode() bool    { return m.editor.IsCommandMode() }

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if !m.isFocused {
			break
		}
		if err := m.editor.HandleKey(convertBubbleKey(msg)); err != nil {
			cmds = append(cmds, func() tea.Msg { return errMsg(err) })
		}
		if m.highlighter != nil {
			m.highlighter.Invalidate()
		}

	case messageMsg:
		m.message = msg.text
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg(msg.duration))

	case errMsg:
		m.message = ""
		m.err = msg
		cmds = append(cmds, m.dispatchClearMsg(3*time.Second))

	case yankMsg:
		cursor := m.editor.GetBuffer().GetCursor()
		m.yanked = true
		m.yankRows = [2]int{cursor.Position.Row, cursor.Position.Row + msg.totalLines - 1}
		cmds = append(cmds, m.dispatchClearYankMsg())

	case clearMsg:
		m.message = ""
		m.err = nil

	case clearYankMsg:
		m.yanked = false

	case QuitMsg:
		return m, tea.Quit
	}

	cmds = append(cmds, m.listenForEditorUpdate())

	var viewportCmd tea.Cmd
	m.viewport, viewportCmd = m.viewport.Update(msg)
	cmds = append(cmds, viewportCmd)

	m.renderViewport()
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	content := m.viewport.View()

	commandLine := m.editor.GetState().CommandLine
	if m.showMessages && m.message != "" {
		commandLine = m.theme.MessageStyle.Render(m.message)
	}
	if m.err != nil {
		commandLine = m.theme.ErrorStyle.Render(m.err.Error())
	}

	statusLine := m.getStatusLine()

	if padding := m.width - lipgloss.Width(statusLine); padding > 0 {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", padding))
	}
	if padding := m.width - lipgloss.Width(commandLine); padding > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", padding))
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusLine, commandLine)
}

func (m *Model) getStatusLine() string {
	if !m.showStatusLine {
		return ""
	}
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	var statusLine string
	switch m.editor.GetState().Mode {
	case editor.NormalMode:
		statusLine = m.theme.NormalModeStyle.Render(" NORMAL ")
	case editor.InsertMode:
		statusLine = m.theme.InsertModeStyle.Render(" INSERT ")
	case editor.VisualMode:
		statusLine = m.theme.VisualModeStyle.Render(" VISUAL ")
	case editor.VisualLineMode:
		statusLine = m.theme.VisualModeStyle.Render(" VISUAL LINE ")
	case editor.ReplaceCharMode, editor.FindCharMode:
		statusLine = m.theme.NormalModeStyle.Render(" NORMAL ")
	case editor.CommandMode:
		statusLine = m.theme.CommandModeStyle.Render(" COMMAND ")
	}

	cursor := m.editor.GetBuffer().GetCursor()
	cursorInfo := fmt.Sprintf("%d/%d ", cursor.Position.Row+1, cursor.Position.Col+1)

	gap := max(0, m.width-lipgloss.Width(cursorInfo)-lipgloss.Width(statusLine))
	statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", gap) + cursorInfo)

	return statusLine
}

// listenForEditorUpdate drains one signal from the core's update channel
// and converts it into a bubbletea message.
func (m *Model) listenForEditorUpdate() tea.Cmd {
	return func() tea.Msg {
		signal := <-m.editor.GetUpdateSignalChan()

		switch signal := signal.(type) {
		case editor.MessageSignal:
			text, duration := signal.Value()
			return messageMsg{text, duration}

		case editor.ErrorSignal:
			_, err := signal.Value()
			return errMsg(err)

		case editor.YankSignal:
			totalLines, linewise := signal.Value()
			return yankMsg{totalLines, linewise}

		case editor.SubmitSignal:
			return SubmitMsg(signal.Value())

		case editor.QuitSignal:
			return QuitMsg{}
		}

		return nil
	}
}

// convertBubbleKey translates a bubbletea key message into a core event.
// Ctrl+J doubles as Ctrl+Enter, which most terminals cannot report
// distinctly.
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			key.Rune = msg.Runes[0]
		}
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeyCtrlJ:
		key.Key = editor.KeyEnter
		key.Modifiers |= editor.ModCtrl
	case tea.KeyCtrlC:
		key.Rune = 'c'
		key.Modifiers |= editor.ModCtrl
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd:
		key.Key = editor.KeyEnd
	case tea.KeyDelete:
		key.Key = editor.KeyDelete
	}

	return key
}
