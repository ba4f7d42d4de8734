package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"ncv/internal/config"
	"ncv/internal/logger"
)

// Helper functions

// editFile suspends the TUI and runs the configured editor on path. The
// config editor wins, then $EDITOR, then whatever common editor is on PATH.
func (m *model) editFile(path string) tea.Cmd {
	editor := m.cfg.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		for _, candidate := range []string{"vim", "nano", "vi"} {
			if _, err := exec.LookPath(candidate); err == nil {
				editor = candidate
				break
			}
		}
	}
	if editor == "" {
		m.setStatus("no editor found (set $EDITOR or \"editor\" in config)", statusLong)
		return nil
	}

	cmd := exec.Command(editor, path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// openExternal hands path to the system default opener.
func (m *model) openExternal(path string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Run(path); err != nil {
			logger.Warn("open %s: %v", path, err)
		}
		return nil
	}
}

// copyPath puts path on the system clipboard.
func (m *model) copyPath(path string) {
	if err := clipboard.WriteAll(path); err != nil {
		m.setStatus(fmt.Sprintf("Failed to copy: %v", err), statusLong)
		return
	}
	m.setStatus(fmt.Sprintf("Copied: %s", path), statusShort)
}

// pinCurrentDir adds the current directory to the pin list under name.
func (m *model) pinCurrentDir(name string) {
	pins, added := config.AddPin(config.LoadPins(), name, m.currentPath)
	if !added {
		m.setStatus("Already pinned", statusShort)
		return
	}
	if err := config.SavePins(pins); err != nil {
		logger.Warn("save pins: %v", err)
		m.setStatus(fmt.Sprintf("Failed to pin: %v", err), statusLong)
		return
	}
	m.setStatus(fmt.Sprintf("Pinned: %s", m.currentPath), statusShort)
}
