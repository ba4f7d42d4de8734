package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ncv/internal/logger"
)

// Pin is a named directory bookmark.
type Pin struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

const pinsFileName = "pins.json"

// LoadPins reads the pinned directories, returning an empty list on any
// error so the pins screen always works.
func LoadPins() []Pin {
	dir, err := Dir()
	if err != nil {
		logger.Error("Failed to resolve config directory: %v", err)
		return nil
	}

	data, err := os.ReadFile(filepath.Join(dir, pinsFileName))
	if err != nil {
		return nil
	}

	var pins []Pin
	if err := json.Unmarshal(data, &pins); err != nil {
		logger.Warn("Failed to parse pins file: %v", err)
		return nil
	}
	return pins
}

// SavePins writes the pin list as indented JSON.
func SavePins(pins []Pin) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(pins, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal pins: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, pinsFileName), data, 0644); err != nil {
		return fmt.Errorf("cannot write pins file: %w", err)
	}
	return nil
}

// AddPin appends a pin unless the path is already pinned. The returned bool
// reports whether the list changed.
func AddPin(pins []Pin, name, path string) ([]Pin, bool) {
	for _, p := range pins {
		if p.Path == path {
			return pins, false
		}
	}
	if name == "" {
		name = filepath.Base(path)
	}
	return append(pins, Pin{Name: name, Path: path}), true
}

// RemovePin deletes the pin for path, if present.
func RemovePin(pins []Pin, path string) []Pin {
	out := pins[:0]
	for _, p := range pins {
		if p.Path != path {
			out = append(out, p)
		}
	}
	return out
}
