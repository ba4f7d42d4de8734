package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ncv/internal/config"
	"ncv/internal/logger"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		showHidden bool
		split      bool
	)

	cmd := &cobra.Command{
		Use:   "ncv [directory]",
		Short: "A terminal file browser with rich previews",
		Long: `ncv is a keyboard-driven file browser for the terminal.

It renders syntax-highlighted text, markdown, JSON, YAML, TOML and CSV
previews in a split pane or full screen, annotates listings with git
status, and remembers pinned and recently visited directories.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(); err != nil {
				fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
				logger.Disable()
			}
			defer logger.Close()

			cfg := config.Load()
			if cmd.Flags().Changed("hidden") {
				cfg.ShowHidden = showHidden
			}
			if cmd.Flags().Changed("split") {
				cfg.SplitPreview = split
			}

			startPath := cfg.StartPath
			if len(args) > 0 {
				// An explicit argument must name a real directory; the
				// config fallback stays lenient.
				if info, err := os.Stat(args[0]); err != nil || !info.IsDir() {
					return fmt.Errorf("not a browsable directory: %s", args[0])
				}
				startPath = args[0]
			}
			startPath = resolveStartPath(startPath)

			logger.Info("Starting ncv in %s", startPath)

			p := tea.NewProgram(initialModel(cfg, startPath), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHidden, "hidden", false, "show hidden files")
	cmd.Flags().BoolVar(&split, "split", false, "open with the split preview pane")

	return cmd
}

// resolveStartPath turns the requested start directory into a usable
// absolute path, falling back to the working directory and then to the
// filesystem root.
func resolveStartPath(path string) string {
	fallback := func() string {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return string(os.PathSeparator)
	}

	if path == "" {
		return fallback()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		logger.Warn("cannot resolve %s: %v", path, err)
		return fallback()
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		logger.Warn("start path %s is not a browsable directory", abs)
		return fallback()
	}
	return abs
}
