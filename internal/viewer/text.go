package viewer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	maxTextSize  = 5 * 1024 * 1024 // 5MB
	maxTextLines = 10000
)

// Text renders source and plain-text files with syntax highlighting. It is
// the low-priority catch-all for textual formats and also serves files the
// registry sniffs as text.
type Text struct {
	Theme string // chroma style name
}

func NewText(theme string) *Text {
	return &Text{Theme: theme}
}

func (t *Text) Name() string { return "text" }

func (t *Text) Priority() int { return -1 }

func (t *Text) Extensions() []string {
	return []string{
		".txt", ".log", ".env", ".gitignore", ".dockerignore",
		".editorconfig", ".properties", ".lock",
		".py", ".js", ".ts", ".jsx", ".tsx", ".rs", ".go", ".c", ".cpp",
		".h", ".hpp", ".java", ".rb", ".sh", ".bash", ".zsh", ".fish",
		".sql", ".html", ".htm", ".css", ".scss", ".less", ".xml",
		".ini", ".cfg", ".conf", ".rst", ".r", ".lua", ".swift", ".kt",
		".scala", ".pl", ".php", ".ex", ".exs", ".erl", ".hs", ".ml",
		".clj", ".vim", ".tf", ".proto", ".graphql", ".gql",
	}
}

func (t *Text) Load(path string, width int) (*Document, error) {
	data, capped, err := readCapped(path, t.Name())
	if err != nil {
		return nil, err
	}
	if capped != nil {
		return capped, nil
	}

	content := strings.ToValidUTF8(string(data), "�")
	content = strings.ReplaceAll(content, "\t", "    ")

	doc := &Document{Title: t.Name()}
	lines := strings.SplitN(content, "\n", maxTextLines+1)
	if len(lines) > maxTextLines {
		content = strings.Join(lines[:maxTextLines], "\n")
		doc.Note = fmt.Sprintf("truncated at %d lines", maxTextLines)
	}

	highlighted, err := highlight(content, filepath.Base(path), t.Theme)
	if err != nil {
		// Unhighlighted text is still a valid preview.
		doc.Lines = strings.Split(content, "\n")
		return doc, nil
	}
	doc.Lines = strings.Split(highlighted, "\n")
	return doc, nil
}

// highlight renders content through chroma's terminal256 formatter, picking
// the lexer from the filename.
func highlight(content, filename, theme string) (string, error) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", fmt.Errorf("highlight: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := formatter.Format(buf, style, iterator); err != nil {
		return "", fmt.Errorf("highlight: %w", err)
	}
	return buf.String(), nil
}
