package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown files through glamour.
type Markdown struct{}

func (m *Markdown) Name() string { return "markdown" }

func (m *Markdown) Priority() int { return 5 }

func (m *Markdown) Extensions() []string {
	return []string{".md", ".markdown", ".mkd", ".mdx"}
}

func (m *Markdown) Load(path string, width int) (*Document, error) {
	data, capped, err := readCapped(path, m.Name())
	if err != nil {
		return nil, err
	}
	if capped != nil {
		return capped, nil
	}

	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(string(data))
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return &Document{
		Title: m.Name(),
		Lines: strings.Split(strings.TrimRight(out, "\n"), "\n"),
	}, nil
}
