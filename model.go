package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
	"github.com/sahilm/fuzzy"

	"ncv/internal/browser"
	"ncv/internal/config"
	"ncv/internal/git"
	"ncv/internal/logger"
	"ncv/internal/preview"
	"ncv/internal/viewer"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeFullPreview
	modeConfirmDelete
	modeRename
	modeCreateFile
	modeCreateDir
	modePinName
	modePins
	modeHistory
	modeHelp
)

// Terminal dimension constants
const (
	minTerminalWidth  = 40
	minTerminalHeight = 10
	uiOverhead        = 5 // header (1) + status (1) + pane border (2) + pane header (1)
)

// Status message lifetimes
const (
	statusShort = 2 * time.Second
	statusLong  = 3 * time.Second
)

// Async result messages. Everything that runs off the interactive goroutine
// reports back through one of these; the Update loop is the only place view
// state is mutated.
type dirScannedMsg struct {
	view *browser.DirectoryView
}

type gitStatusMsg struct {
	forPath string
	branch  string
	markers map[string]git.Marker
}

type previewTickMsg struct {
	token uint64
}

type previewLoadedMsg struct {
	token uint64
	doc   *viewer.Document
}

type editorFinishedMsg struct {
	err error
}

type model struct {
	cfg      *config.Config
	registry *viewer.Registry
	ignores  []glob.Glob

	scanner  browser.Scanner
	view     *browser.DirectoryView
	scanning bool

	// currentPath is the newest requested directory; view.Path trails it
	// until that scan lands.
	currentPath string

	cursor       int
	scrollOffset int

	showHidden bool
	sortMode   browser.SortMode

	search      browser.SearchState
	searchInput textinput.Model

	navStack browser.NavigationStack

	previewCtl    *preview.Controller
	previewDoc    *viewer.Document
	previewScroll int

	gitBranch string

	pins          []config.Pin
	history       []string
	overlayRows   []int // indices into pins or history after filtering
	overlayCursor int

	input textinput.Model // rename/create dialogs and overlay filter

	mode   mode
	width  int
	height int

	statusMsg    string
	statusExpiry time.Time

	helpScroll int
}

func initialModel(cfg *config.Config, startPath string) *model {
	searchInput := textinput.New()
	searchInput.Placeholder = "search..."
	searchInput.CharLimit = 128
	searchInput.Width = 30

	input := textinput.New()
	input.CharLimit = 255
	input.Width = 40

	registry := viewer.NewRegistry()
	registry.Register(viewer.NewText(cfg.Theme))
	registry.Register(&viewer.Markdown{})
	registry.Register(&viewer.JSON{})
	registry.Register(&viewer.YAML{})
	registry.Register(&viewer.TOML{})
	registry.Register(&viewer.CSV{})
	registry.Register(&viewer.Fallback{})

	m := &model{
		cfg:         cfg,
		registry:    registry,
		ignores:     cfg.CompiledIgnores(),
		view:        &browser.DirectoryView{Path: startPath},
		currentPath: startPath,
		showHidden:  cfg.ShowHidden,
		sortMode:    browser.SortModeFromString(cfg.SortMode),
		searchInput: searchInput,
		input:       input,
		previewCtl:  preview.New(),
		history:     config.LoadHistory(),
	}
	if cfg.SplitPreview {
		m.previewCtl.ToggleSplit()
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("ncv"),
		m.scanCmd(m.currentPath),
	)
}

// scanCmd issues a fresh generation and lists path off the interactive
// goroutine. A result is applied only while it is still the newest request.
func (m *model) scanCmd(path string) tea.Cmd {
	gen := m.scanner.Next()
	opts := browser.ScanOptions{
		ShowHidden: m.showHidden,
		SortMode:   m.sortMode,
		Ignore:     m.ignores,
	}
	m.scanning = true
	return func() tea.Msg {
		return dirScannedMsg{view: browser.Scan(path, gen, opts)}
	}
}

// gitStatusCmd probes VCS state for path. It runs only after the base
// listing has rendered, so a slow repository never gates navigation.
func gitStatusCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return gitStatusMsg{
			forPath: path,
			branch:  git.Branch(path),
			markers: git.Status(path),
		}
	}
}

func previewTickCmd(token uint64) tea.Cmd {
	return tea.Tick(preview.DebounceDelay, func(time.Time) tea.Msg {
		return previewTickMsg{token: token}
	})
}

// previewLoadCmd renders path through its viewer in the background.
func (m *model) previewLoadCmd(path string, token uint64) tea.Cmd {
	registry := m.registry
	width := m.previewContentWidth()
	return func() tea.Msg {
		return previewLoadedMsg{token: token, doc: loadDocument(registry, path, width)}
	}
}

// loadDocument resolves path to a viewer and loads it, wrapping any failure
// as inline error content scoped to the pane.
func loadDocument(registry *viewer.Registry, path string, width int) *viewer.Document {
	v := registry.Resolve(path)
	doc, err := v.Load(path, width)
	if err != nil {
		logger.Warn("preview %s: %v", path, err)
		return viewer.ErrorDocument(path, err)
	}
	return doc
}

func saveHistoryCmd(history []string) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveHistory(history); err != nil {
			logger.Warn("save history: %v", err)
		}
		return nil
	}
}

func (m *model) selectedEntry() (browser.Entry, bool) {
	if len(m.view.Entries) == 0 || m.cursor < 0 || m.cursor >= len(m.view.Entries) {
		return browser.Entry{}, false
	}
	return m.view.Entries[m.cursor], true
}

// navigateTo points the browser at path. Forward navigations push the path
// being left onto the back stack; pops pass push=false.
func (m *model) navigateTo(path string, push bool) tea.Cmd {
	if path == m.currentPath {
		return nil
	}
	if push && m.currentPath != "" {
		m.navStack.Push(m.currentPath)
	}
	m.currentPath = path
	m.cursor = 0
	m.scrollOffset = 0
	m.previewScroll = 0
	m.search.Clear()
	m.history = config.PushHistory(m.history, path)
	return tea.Batch(
		m.scanCmd(path),
		saveHistoryCmd(m.history),
	)
}

// goBack pops the most recent directory off the back stack.
func (m *model) goBack() tea.Cmd {
	path, ok := m.navStack.Pop()
	if !ok {
		m.setStatus("history empty", statusShort)
		return nil
	}
	return m.navigateTo(path, false)
}

// applyView swaps in a freshly scanned listing. Search state never survives
// a structural change.
func (m *model) applyView(v *browser.DirectoryView) tea.Cmd {
	m.view = v
	m.scanning = false
	m.search.Clear()
	if m.cursor >= len(v.Entries) {
		m.cursor = len(v.Entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.scrollOffset > m.cursor {
		m.scrollOffset = m.cursor
	}
	return tea.Batch(
		gitStatusCmd(v.Path),
		m.highlightCursor(),
	)
}

// setCursor moves the highlight and forwards it to the preview controller.
func (m *model) setCursor(i int) tea.Cmd {
	if i < 0 || i >= len(m.view.Entries) || i == m.cursor {
		return nil
	}
	m.cursor = i
	return m.highlightCursor()
}

// highlightCursor schedules a debounced split preview load for the entry
// under the cursor.
func (m *model) highlightCursor() tea.Cmd {
	entry, ok := m.selectedEntry()
	if !ok {
		return nil
	}
	token, schedule := m.previewCtl.Highlight(entry.Path, entry.IsFile())
	if !schedule {
		return nil
	}
	return previewTickCmd(token)
}

func (m *model) setStatus(msg string, d time.Duration) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(d)
}

// previewContentWidth is the inner width viewers render against.
func (m *model) previewContentWidth() int {
	w := m.width/2 - 6
	if m.previewCtl.Mode() == preview.FullScreen {
		w = m.width - 6
	}
	if w < 20 {
		w = 20
	}
	return w
}

// persist writes back the session toggles and history on exit.
func (m *model) persist() {
	m.cfg.ShowHidden = m.showHidden
	m.cfg.SortMode = m.sortMode.String()
	m.cfg.SplitPreview = m.previewCtl.Mode() == preview.Split
	if err := config.Save(m.cfg); err != nil {
		logger.Error("save config: %v", err)
	}
	if err := config.SaveHistory(m.history); err != nil {
		logger.Warn("save history: %v", err)
	}
}

// openPins loads pins fresh from disk and enters the overlay.
func (m *model) openPins() tea.Cmd {
	m.pins = config.LoadPins()
	m.mode = modePins
	m.overlayCursor = 0
	m.input.SetValue("")
	m.input.Placeholder = "filter pins..."
	m.input.Focus()
	m.refilterOverlay()
	return textinput.Blink
}

// openHistory enters the visited-directories overlay.
func (m *model) openHistory() tea.Cmd {
	m.mode = modeHistory
	m.overlayCursor = 0
	m.input.SetValue("")
	m.input.Placeholder = "filter history..."
	m.input.Focus()
	m.refilterOverlay()
	return textinput.Blink
}

// refilterOverlay rebuilds the filtered row set from the overlay input.
func (m *model) refilterOverlay() {
	var targets []string
	switch m.mode {
	case modePins:
		targets = make([]string, len(m.pins))
		for i, p := range m.pins {
			targets[i] = p.Name + " " + p.Path
		}
	case modeHistory:
		targets = m.history
	default:
		return
	}

	m.overlayRows = m.overlayRows[:0]
	query := m.input.Value()
	if query == "" {
		for i := range targets {
			m.overlayRows = append(m.overlayRows, i)
		}
	} else {
		for _, match := range fuzzy.Find(query, targets) {
			m.overlayRows = append(m.overlayRows, match.Index)
		}
	}
	if m.overlayCursor >= len(m.overlayRows) {
		m.overlayCursor = len(m.overlayRows) - 1
	}
	if m.overlayCursor < 0 {
		m.overlayCursor = 0
	}
}

// overlayTarget resolves the overlay cursor to a directory path.
func (m *model) overlayTarget() (string, bool) {
	if len(m.overlayRows) == 0 || m.overlayCursor >= len(m.overlayRows) {
		return "", false
	}
	idx := m.overlayRows[m.overlayCursor]
	switch m.mode {
	case modePins:
		if idx < len(m.pins) {
			return m.pins[idx].Path, true
		}
	case modeHistory:
		if idx < len(m.history) {
			return m.history[idx], true
		}
	}
	return "", false
}
