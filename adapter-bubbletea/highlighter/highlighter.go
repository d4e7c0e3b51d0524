package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter tokenizes buffer content with chroma and maps token types to
// lipgloss styles. Tokenization covers the whole buffer at once and is
// cached until invalidated by the next content change.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	lineTokens [][]chroma.Token
	valid      bool
	styleCache map[chroma.TokenType]lipgloss.Style
	mu         sync.Mutex
}

// New creates a highlighter for the given chroma language and style names.
// Unknown names fall back to chroma's defaults.
func New(language, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{
		lexer:      lexer,
		style:      style,
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Invalidate drops the cached tokens; call after any buffer mutation.
func (h *Highlighter) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.valid = false
}

// LineTokens returns the tokens covering one line, re-tokenizing the whole
// buffer when the cache is stale.
func (h *Highlighter) LineTokens(lineNum int, lines []string) []chroma.Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.valid {
		h.tokenize(lines)
	}
	if lineNum < 0 || lineNum >= len(h.lineTokens) {
		return nil
	}
	return h.lineTokens[lineNum]
}

// tokenize runs the lexer over the joined buffer and splits multi-line
// tokens back onto their lines. Must be called with the lock held.
func (h *Highlighter) tokenize(lines []string) {
	h.lineTokens = make([][]chroma.Token, len(lines))
	h.valid = true

	iter, err := h.lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return
	}

	row := 0
	for _, tok := range iter.Tokens() {
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				row++
			}
			if part == "" || row >= len(h.lineTokens) {
				continue
			}
			h.lineTokens[row] = append(h.lineTokens[row], chroma.Token{Type: tok.Type, Value: part})
		}
	}
}

// StyleFor translates a chroma token type into a lipgloss style.
func (h *Highlighter) StyleFor(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.styleCache[tokenType]; ok {
		return s
	}

	entry := h.style.Get(tokenType)
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}

	h.styleCache[tokenType] = s
	return s
}
