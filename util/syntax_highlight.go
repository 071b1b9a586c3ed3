package util

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

// Highlighter renders source files as tview color-tagged text.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a highlighter using the named chroma style.
// Unknown names fall back to chroma's default style.
func NewHighlighter(styleName string) *Highlighter {
	return &Highlighter{style: styles.Get(styleName)}
}

var defaultHighlighter = NewHighlighter("catppuccin-frappe")

func (h *Highlighter) color(tt chroma.TokenType) string {
	if entry := h.style.Get(tt); entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return string(MainTextColor)
}

// Lines returns one color-tagged string per line of content. When no lexer
// matches filePath or content, the lines are only escaped.
func (h *Highlighter) Lines(filePath string, content string) []string {
	lines := SplitLines(content)
	text := strings.Join(lines, "\n")

	lexer := lexers.Match(filePath)
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	var iterator chroma.Iterator
	if lexer != nil {
		var err error
		iterator, err = chroma.Coalesce(lexer).Tokenise(nil, text)
		if err != nil {
			lexer = nil
		}
	}
	if lexer == nil {
		for i, line := range lines {
			lines[i] = tview.Escape(line)
		}
		return lines
	}

	rendered := make([]strings.Builder, len(lines))
	row := 0
	for _, tok := range iterator.Tokens() {
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				row++
			}
			// Lexers may append a final newline that has no line of its own.
			if row >= len(lines) {
				break
			}
			if part != "" {
				fmt.Fprintf(&rendered[row], "[%s]%s[-]", h.color(tok.Type), tview.Escape(part))
			}
		}
	}

	result := make([]string, len(lines))
	for i := range rendered {
		result[i] = rendered[i].String()
	}
	return result
}

// Highlight renders content with right-aligned line numbers.
func (h *Highlighter) Highlight(filePath string, content string) string {
	lines := h.Lines(filePath, content)
	width := len(fmt.Sprintf("%d", len(lines)))

	var sb strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&sb, "%s%*d[-] %s\n", StatusTextColor.Tag(), width, i+1, line)
	}
	return sb.String()
}

// HighlightSource renders content with the default style.
func HighlightSource(filePath string, content string) string {
	return defaultHighlighter.Highlight(filePath, content)
}
