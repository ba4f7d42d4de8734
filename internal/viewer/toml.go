package viewer

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOML renders TOML documents as an indented tree with sorted keys.
type TOML struct{}

func (t *TOML) Name() string { return "toml" }

func (t *TOML) Priority() int { return 5 }

func (t *TOML) Extensions() []string {
	return []string{".toml"}
}

func (t *TOML) Load(path string, width int) (*Document, error) {
	data, capped, err := readCapped(path, t.Name())
	if err != nil {
		return nil, err
	}
	if capped != nil {
		return capped, nil
	}

	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	lines, truncated := renderTree(root)
	doc := &Document{Title: t.Name(), Lines: lines}
	if truncated {
		doc.Note = fmt.Sprintf("truncated at %d nodes", maxTreeNodes)
	}
	return doc, nil
}
