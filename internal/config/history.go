package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ncv/internal/logger"
)

const (
	historyFileName = "history.json"
	maxHistory      = 25
)

// LoadHistory reads the visited-directory history, most recent first.
// Returns an empty list on any error.
func LoadHistory() []string {
	dir, err := Dir()
	if err != nil {
		logger.Error("Failed to resolve config directory: %v", err)
		return nil
	}

	data, err := os.ReadFile(filepath.Join(dir, historyFileName))
	if err != nil {
		return nil
	}

	var history []string
	if err := json.Unmarshal(data, &history); err != nil {
		logger.Warn("Failed to parse history file: %v", err)
		return nil
	}
	if len(history) > maxHistory {
		history = history[:maxHistory]
	}
	return history
}

// SaveHistory writes the history list as indented JSON.
func SaveHistory(history []string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal history: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, historyFileName), data, 0644); err != nil {
		return fmt.Errorf("cannot write history file: %w", err)
	}
	return nil
}

// PushHistory records a visit to path: moves it to the front, deduplicates,
// and caps the list at maxHistory entries.
func PushHistory(history []string, path string) []string {
	out := make([]string, 0, len(history)+1)
	out = append(out, path)
	for _, p := range history {
		if p != path {
			out = append(out, p)
		}
	}
	if len(out) > maxHistory {
		out = out[:maxHistory]
	}
	return out
}
