package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"ncv/internal/logger"
)

// Config holds all ncv configuration
type Config struct {
	StartPath    string   `json:"start_path"`    // Directory to open on launch; empty means cwd
	ShowHidden   bool     `json:"show_hidden"`   // Include dotfiles in listings
	SortMode     string   `json:"sort_mode"`     // "name", "size" or "modified"
	SplitPreview bool     `json:"split_preview"` // Open with the split preview pane visible
	Theme        string   `json:"theme"`         // Chroma style name for the text viewer
	IgnoreGlobs  []string `json:"ignore_globs"`  // Entry names to hide from listings (supports wildcards like "*.pyc")
	Editor       string   `json:"editor"`        // Overrides $EDITOR when set
}

// Valid sort modes; anything else is clamped back to "name".
const (
	SortByName     = "name"
	SortBySize     = "size"
	SortByModified = "modified"
)

const fileName = "config.json"

// Dir resolves the ncv config directory: $NCV_CONFIG_DIR, then
// $XDG_CONFIG_HOME/ncv, then ~/.config/ncv.
func Dir() (string, error) {
	if dir := os.Getenv("NCV_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ncv"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ncv"), nil
}

// Load reads the config file, falling back to defaults on any error.
// It never fails: a missing or unparsable file yields the default config.
func Load() *Config {
	defaultConfig := &Config{
		StartPath:    "",
		ShowHidden:   false,
		SortMode:     SortByName,
		SplitPreview: false,
		Theme:        "monokai",
		IgnoreGlobs:  defaultIgnoreGlobs(),
		Editor:       "",
	}

	configDir, err := Dir()
	if err != nil {
		logger.Error("Failed to resolve config directory: %v", err)
		return defaultConfig
	}
	configPath := filepath.Join(configDir, fileName)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Save default config and return it
		if err := Save(defaultConfig); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaultConfig
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
		return defaultConfig
	}

	if config.IgnoreGlobs == nil {
		config.IgnoreGlobs = defaultIgnoreGlobs()
	}

	switch config.SortMode {
	case SortByName, SortBySize, SortByModified:
	case "":
		config.SortMode = SortByName
	default:
		logger.Warn("Unknown sort_mode %q, using %q", config.SortMode, SortByName)
		config.SortMode = SortByName
	}

	if config.Theme == "" {
		config.Theme = defaultConfig.Theme
	}

	if config.StartPath != "" {
		if info, err := os.Stat(config.StartPath); err != nil || !info.IsDir() {
			logger.Warn("start_path %q is not a directory, ignoring", config.StartPath)
			config.StartPath = ""
		}
	}

	return config
}

// Save writes the config as indented JSON into the config directory.
func Save(config *Config) error {
	configDir, err := Dir()
	if err != nil {
		logger.Error("Failed to resolve config directory: %v", err)
		return err
	}
	configPath := filepath.Join(configDir, fileName)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal config: %v", err)
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", configPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// CompiledIgnores compiles the ignore patterns, skipping any that do not
// parse. Patterns match entry names, not full paths.
func (c *Config) CompiledIgnores() []glob.Glob {
	globs := make([]glob.Glob, 0, len(c.IgnoreGlobs))
	for _, pattern := range c.IgnoreGlobs {
		g, err := glob.Compile(pattern)
		if err != nil {
			logger.Warn("Bad ignore pattern %q: %v", pattern, err)
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// defaultIgnoreGlobs returns a starting set of noise entries to hide.
// Users can edit the list in the config file.
func defaultIgnoreGlobs() []string {
	return []string{
		"__pycache__",
		"*.pyc",
		".DS_Store",
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}
