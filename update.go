package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ncv/internal/config"
	"ncv/internal/fileops"
	"ncv/internal/logger"
	"ncv/internal/preview"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		if m.width < minTerminalWidth {
			m.width = minTerminalWidth
		}
		if m.height < minTerminalHeight {
			m.height = minTerminalHeight
		}
		// Reflow the mounted preview at the new width.
		if path := m.previewCtl.ActivePath(); path != "" {
			m.previewDoc = loadDocument(m.registry, path, m.previewContentWidth())
			if m.previewDoc != nil && m.previewScroll >= len(m.previewDoc.Lines) {
				m.previewScroll = 0
			}
		}
		return m, nil

	case dirScannedMsg:
		// Stale scans are dropped silently; the listing always reflects the
		// newest request.
		if !m.scanner.Accepts(msg.view.Generation) {
			return m, nil
		}
		return m, m.applyView(msg.view)

	case gitStatusMsg:
		if msg.forPath == m.view.Path {
			m.view.Markers = msg.markers
			m.gitBranch = msg.branch
		}
		return m, nil

	case previewTickMsg:
		if path, ok := m.previewCtl.Elapsed(msg.token); ok {
			return m, m.previewLoadCmd(path, msg.token)
		}
		return m, nil

	case previewLoadedMsg:
		if m.previewCtl.TokenCurrent(msg.token) {
			m.previewDoc = msg.doc
			m.previewScroll = 0
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("editor: %v", msg.err), statusLong)
		}
		// The file may have changed under us.
		return m, m.scanCmd(m.currentPath)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeFullPreview:
		return m.handleFullPreviewKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	case modeRename, modeCreateFile, modeCreateDir, modePinName:
		return m.handleDialogKey(msg)
	case modePins, modeHistory:
		return m.handleOverlayKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.persist()
		return m, tea.Quit

	case "j", "down":
		return m, m.setCursor(m.cursor + 1)

	case "k", "up":
		return m, m.setCursor(m.cursor - 1)

	case "g", "home":
		return m, m.setCursor(0)

	case "G", "end":
		return m, m.setCursor(len(m.view.Entries) - 1)

	case "ctrl+d":
		newPos := m.cursor + m.halfPage()
		if newPos > len(m.view.Entries)-1 {
			newPos = len(m.view.Entries) - 1
		}
		return m, m.setCursor(newPos)

	case "ctrl+u":
		newPos := m.cursor - m.halfPage()
		if newPos < 0 {
			newPos = 0
		}
		return m, m.setCursor(newPos)

	case "enter", "l", "right":
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		if entry.IsDir() {
			return m, m.navigateTo(entry.Path, true)
		}
		if entry.IsFile() {
			return m, m.openFullPreview(entry.Path)
		}
		m.setStatus(fmt.Sprintf("broken link: %s", entry.Name), statusShort)
		return m, nil

	case "h", "left", "backspace":
		parent := filepath.Dir(m.currentPath)
		if parent != m.currentPath {
			return m, m.navigateTo(parent, true)
		}
		return m, nil

	case "alt+left", "-":
		return m, m.goBack()

	case "tab":
		split, ok := m.previewCtl.ToggleSplit()
		if !ok {
			return m, nil
		}
		if split {
			return m, m.highlightCursor()
		}
		m.previewDoc = nil
		m.previewScroll = 0
		return m, nil

	case "w", "alt+up":
		// Scroll split preview up
		if m.previewCtl.Mode() == preview.Split && m.previewScroll > 0 {
			m.previewScroll--
		}
		return m, nil

	case "s", "alt+down":
		// Scroll split preview down
		if m.previewCtl.Mode() == preview.Split && m.previewDoc != nil &&
			m.previewScroll < len(m.previewDoc.Lines)-1 {
			m.previewScroll++
		}
		return m, nil

	case "S":
		m.sortMode = m.sortMode.Next()
		m.setStatus(fmt.Sprintf("sort: %s", m.sortMode), statusShort)
		return m, m.scanCmd(m.currentPath)

	case ".":
		m.showHidden = !m.showHidden
		if m.showHidden {
			m.setStatus("showing hidden files", statusShort)
		} else {
			m.setStatus("hiding hidden files", statusShort)
		}
		return m, m.scanCmd(m.currentPath)

	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case "n":
		if idx, ok := m.search.Next(); ok {
			return m, m.setCursor(idx)
		}
		return m, nil

	case "N":
		if idx, ok := m.search.Prev(); ok {
			return m, m.setCursor(idx)
		}
		return m, nil

	case "r":
		entry, ok := m.selectedEntry()
		if !ok || entry.Name == ".." {
			return m, nil
		}
		m.mode = modeRename
		m.input.Placeholder = ""
		m.input.SetValue(entry.Name)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		entry, ok := m.selectedEntry()
		if !ok || entry.Name == ".." {
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil

	case "a":
		m.mode = modeCreateFile
		m.input.Placeholder = "new file name"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "A":
		m.mode = modeCreateDir
		m.input.Placeholder = "new directory name"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "R", "f5":
		return m, m.scanCmd(m.currentPath)

	case "y":
		if entry, ok := m.selectedEntry(); ok {
			m.copyPath(entry.Path)
		}
		return m, nil

	case "e":
		entry, ok := m.selectedEntry()
		if !ok || !entry.IsFile() {
			return m, nil
		}
		return m, m.editFile(entry.Path)

	case "C":
		path, err := config.GetConfigPath()
		if err != nil {
			m.setStatus(fmt.Sprintf("config: %v", err), statusLong)
			return m, nil
		}
		return m, m.editFile(path)

	case "o":
		entry, ok := m.selectedEntry()
		if !ok || entry.Name == ".." {
			return m, nil
		}
		return m, m.openExternal(entry.Path)

	case "b":
		return m, m.openPins()

	case "B":
		m.mode = modePinName
		m.input.Placeholder = "pin name (blank = directory name)"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "H":
		return m, m.openHistory()

	case "?":
		m.mode = modeHelp
		m.helpScroll = 0
		return m, nil
	}
	return m, nil
}

func (m *model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		// Cancelled
		m.search.Clear()
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.mode = modeBrowse
		return m, nil

	case "enter":
		// Accept the query; n/N keep walking the matches afterwards.
		m.searchInput.Blur()
		m.mode = modeBrowse
		return m, nil

	case "down", "ctrl+n":
		if idx, ok := m.search.Next(); ok {
			return m, m.setCursor(idx)
		}
		return m, nil

	case "up", "ctrl+p":
		if idx, ok := m.search.Prev(); ok {
			return m, m.setCursor(idx)
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.search.Submit(m.searchInput.Value(), m.view.Entries)
		// A query with no matches leaves the cursor where it was.
		if idx, ok := m.search.Current(); ok {
			return m, tea.Batch(cmd, m.setCursor(idx))
		}
		return m, cmd
	}
}

func (m *model) handleFullPreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxScroll := 0
	if m.previewDoc != nil {
		maxScroll = len(m.previewDoc.Lines) - 1
	}
	if maxScroll < 0 {
		maxScroll = 0
	}

	switch msg.String() {
	case "ctrl+c":
		m.persist()
		return m, tea.Quit

	case "q", "esc":
		reopenSplit, ok := m.previewCtl.CloseFull()
		m.mode = modeBrowse
		m.previewScroll = 0
		if !ok {
			return m, nil
		}
		if reopenSplit {
			// Refresh the pane for the currently highlighted entry.
			return m, m.highlightCursor()
		}
		m.previewDoc = nil
		return m, nil

	case "j", "down":
		if m.previewScroll < maxScroll {
			m.previewScroll++
		}

	case "k", "up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}

	case "ctrl+d":
		m.previewScroll += m.halfPage()
		if m.previewScroll > maxScroll {
			m.previewScroll = maxScroll
		}

	case "ctrl+u":
		m.previewScroll -= m.halfPage()
		if m.previewScroll < 0 {
			m.previewScroll = 0
		}

	case "g", "home":
		m.previewScroll = 0

	case "G", "end":
		m.previewScroll = maxScroll
	}
	return m, nil
}

func (m *model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse
		entry, ok := m.selectedEntry()
		if !ok || entry.Name == ".." {
			return m, nil
		}
		if err := fileops.Delete(entry.Path, entry.IsDir()); err != nil {
			logger.Error("delete %s: %v", entry.Path, err)
			m.setStatus(fmt.Sprintf("delete failed: %v", err), statusLong)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("deleted: %s", entry.Name), statusShort)
		return m, m.scanCmd(m.currentPath)

	case "n", "N", "esc", "ctrl+c":
		// Cancelled
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

func (m *model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.resetInput()
		return m, nil

	case "enter":
		name := m.input.Value()
		dialog := m.mode
		m.resetInput()
		if dialog == modePinName {
			// A blank pin name falls back to the directory's base name.
			m.pinCurrentDir(name)
			return m, nil
		}
		if name == "" {
			return m, nil
		}
		switch dialog {
		case modeRename:
			entry, ok := m.selectedEntry()
			if !ok || entry.Name == ".." {
				return m, nil
			}
			if _, err := fileops.Rename(entry.Path, name); err != nil {
				logger.Error("rename %s: %v", entry.Path, err)
				m.setStatus(fmt.Sprintf("rename failed: %v", err), statusLong)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("renamed to: %s", name), statusShort)

		case modeCreateFile:
			if _, err := fileops.CreateFile(m.currentPath, name); err != nil {
				logger.Error("create file %s: %v", name, err)
				m.setStatus(fmt.Sprintf("create failed: %v", err), statusLong)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("created file: %s", name), statusShort)

		case modeCreateDir:
			if _, err := fileops.CreateDir(m.currentPath, name); err != nil {
				logger.Error("create directory %s: %v", name, err)
				m.setStatus(fmt.Sprintf("create failed: %v", err), statusLong)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("created directory: %s", name), statusShort)
		}
		// Re-scan only after a successful mutation.
		return m, m.scanCmd(m.currentPath)

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.resetInput()
		return m, nil

	case "enter":
		target, ok := m.overlayTarget()
		m.resetInput()
		if !ok {
			return m, nil
		}
		return m, m.navigateTo(target, true)

	case "down", "ctrl+n":
		if m.overlayCursor < len(m.overlayRows)-1 {
			m.overlayCursor++
		}
		return m, nil

	case "up", "ctrl+p":
		if m.overlayCursor > 0 {
			m.overlayCursor--
		}
		return m, nil

	case "ctrl+x":
		// Remove the selected pin
		if m.mode == modePins {
			if target, ok := m.overlayTarget(); ok {
				m.pins = config.RemovePin(m.pins, target)
				if err := config.SavePins(m.pins); err != nil {
					logger.Warn("save pins: %v", err)
				}
				m.refilterOverlay()
			}
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refilterOverlay()
		return m, cmd
	}
}

func (m *model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "g", "home":
		m.helpScroll = 0
	default:
		m.mode = modeBrowse
		m.helpScroll = 0
	}
	return m, nil
}

// openFullPreview loads path synchronously and enters full screen.
func (m *model) openFullPreview(path string) tea.Cmd {
	if !m.previewCtl.Select(path, true) {
		return nil
	}
	m.mode = modeFullPreview
	m.previewDoc = loadDocument(m.registry, path, m.previewContentWidth())
	m.previewScroll = 0
	return nil
}

// resetInput leaves any input-driven mode and clears the shared field.
func (m *model) resetInput() {
	m.mode = modeBrowse
	m.input.SetValue("")
	m.input.Blur()
}

func (m *model) halfPage() int {
	page := (m.height - uiOverhead) / 2
	if page < 1 {
		page = 5
	}
	return page
}
