package viewer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML renders YAML documents as an indented tree with sorted keys.
type YAML struct{}

func (y *YAML) Name() string { return "yaml" }

func (y *YAML) Priority() int { return 5 }

func (y *YAML) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (y *YAML) Load(path string, width int) (*Document, error) {
	data, capped, err := readCapped(path, y.Name())
	if err != nil {
		return nil, err
	}
	if capped != nil {
		return capped, nil
	}

	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	lines, truncated := renderTree(root)
	doc := &Document{Title: y.Name(), Lines: lines}
	if truncated {
		doc.Note = fmt.Sprintf("truncated at %d nodes", maxTreeNodes)
	}
	return doc, nil
}
