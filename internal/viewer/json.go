package viewer

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// JSON renders JSON documents as an indented tree with sorted keys.
type JSON struct{}

func (j *JSON) Name() string { return "json" }

func (j *JSON) Priority() int { return 5 }

func (j *JSON) Extensions() []string {
	return []string{".json", ".geojson", ".jsonl"}
}

func (j *JSON) Load(path string, width int) (*Document, error) {
	data, capped, err := readCapped(path, j.Name())
	if err != nil {
		return nil, err
	}
	if capped != nil {
		return capped, nil
	}

	var root any
	if strings.ToLower(filepath.Ext(path)) == ".jsonl" {
		root, err = decodeLines(data)
	} else {
		err = json.Unmarshal(data, &root)
	}
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	lines, truncated := renderTree(root)
	doc := &Document{Title: j.Name(), Lines: lines}
	if truncated {
		doc.Note = fmt.Sprintf("truncated at %d nodes", maxTreeNodes)
	}
	return doc, nil
}

// decodeLines parses newline-delimited JSON into one record per element.
func decodeLines(data []byte) (any, error) {
	var records []any
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, v)
	}
	return records, nil
}
