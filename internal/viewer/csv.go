package viewer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	maxCSVRows = 1000
	maxCSVCell = 60
)

var (
	csvHeaderStyle = lipgloss.NewStyle().Bold(true)
	csvInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// CSV renders delimited files as an aligned table. Tab-separated variants
// are detected by extension.
type CSV struct{}

func (c *CSV) Name() string { return "csv" }

func (c *CSV) Priority() int { return 10 }

func (c *CSV) Extensions() []string {
	return []string{".csv", ".tsv", ".tab"}
}

func (c *CSV) Load(path string, width int) (*Document, error) {
	data, capped, err := readCapped(path, c.Name())
	if err != nil {
		return nil, err
	}
	if capped != nil {
		return capped, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		r.Comma = '\t'
	}

	var rows [][]string
	truncated := false
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		// Header plus the row cap.
		if len(rows) > maxCSVRows {
			truncated = true
			break
		}
		rows = append(rows, rec)
	}

	doc := &Document{Title: c.Name(), Lines: renderTable(rows)}
	if len(rows) > 0 {
		count := fmt.Sprintf("%d rows", len(rows)-1)
		if truncated {
			count = fmt.Sprintf("%d+ rows", maxCSVRows)
		}
		info := csvInfoStyle.Render(fmt.Sprintf("%s  %d cols", count, len(rows[0])))
		doc.Lines = append([]string{info}, doc.Lines...)
	}
	if truncated {
		doc.Note = fmt.Sprintf("showing first %d rows", maxCSVRows)
	}
	return doc, nil
}

// renderTable pads each column to its widest cell. The first row is treated
// as the header.
func renderTable(rows [][]string) []string {
	if len(rows) == 0 {
		return []string{"(empty)"}
	}

	widths := []int{}
	for i := range rows {
		for col, cell := range rows[i] {
			rows[i][col] = runewidth.Truncate(cell, maxCSVCell, "…")
			for col >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(rows[i][col]); w > widths[col] {
				widths[col] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		cells := make([]string, len(row))
		for col, cell := range row {
			cells[col] = runewidth.FillRight(cell, widths[col])
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if i == 0 {
			line = csvHeaderStyle.Render(line)
		}
		lines = append(lines, line)
		if i == 0 {
			rule := make([]string, len(widths))
			for col, w := range widths {
				rule[col] = strings.Repeat("─", w)
			}
			lines = append(lines, strings.Join(rule, "  "))
		}
	}
	return lines
}
