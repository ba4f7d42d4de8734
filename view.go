package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ncv/internal/git"
	"ncv/internal/preview"
	"ncv/internal/utils"
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var mainContent string
	switch m.mode {
	case modeConfirmDelete:
		mainContent = m.renderConfirmDeleteDialog()
	case modeRename:
		mainContent = m.renderInputDialog("✏️  Rename", "Enter new name:")
	case modeCreateFile:
		mainContent = m.renderInputDialog("📄 Create New File", "Enter filename:")
	case modeCreateDir:
		mainContent = m.renderInputDialog("📁 Create New Directory", "Enter directory name:")
	case modePinName:
		mainContent = m.renderInputDialog("📌 Pin Directory", "Pin name:")
	case modePins, modeHistory:
		mainContent = m.renderOverlay()
	case modeHelp:
		mainContent = m.renderHelpView()
	case modeFullPreview:
		mainContent = m.renderFullPreview()
	default:
		if m.previewCtl.Mode() == preview.Split {
			// Split view; force both panels to the same height
			availableHeight := m.height - 9
			if availableHeight < 3 {
				availableHeight = 3
			}
			panelHeight := availableHeight + 2

			fileList := lipgloss.NewStyle().Height(panelHeight).Render(m.renderFileList(m.width / 2))
			pane := lipgloss.NewStyle().Height(panelHeight).Render(m.renderPreviewPane(m.width / 2))
			mainContent = lipgloss.JoinHorizontal(lipgloss.Top, fileList, pane)
		} else {
			mainContent = m.renderFileList(m.width)
		}
	}

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mainContent,
		statusBar,
	)
}

func (m *model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(m.width)

	title := fmt.Sprintf("📂 ncv - %s", m.currentPath)

	if m.mode != modeSearch {
		return titleStyle.Render(title)
	}

	// Show the live search in the top-right of the header
	purpleStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("105"))

	grayStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252"))

	yellowStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("226"))

	value := m.searchInput.Value()
	pos := m.searchInput.Position()
	var valueRendered string
	if pos >= len(value) {
		valueRendered = grayStyle.Render(value) + yellowStyle.Render("|")
	} else {
		valueRendered = grayStyle.Render(value[:pos]) + yellowStyle.Render("|") + grayStyle.Render(value[pos:])
	}

	var matchInfo string
	if m.search.Active() {
		if len(m.search.Matches) == 0 {
			matchInfo = " no matches"
		} else {
			matchInfo = fmt.Sprintf(" %d/%d", m.search.Cursor+1, len(m.search.Matches))
		}
	}

	searchText := purpleStyle.Render("🔍 search: ") +
		valueRendered +
		yellowStyle.Render(matchInfo) +
		purpleStyle.Render(" (enter: keep | esc: clear)")

	searchWidth := lipgloss.Width(searchText)
	titleWidth := m.width - searchWidth - 2
	if titleWidth < 20 {
		titleWidth = 20
	}
	titlePart := grayStyle.Width(titleWidth).Padding(0, 1).Render(title)

	return lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, titlePart, searchText))
}

// gitBadge renders the VCS marker for one entry, or "" when clean.
func gitBadge(marker git.Marker, present bool) string {
	if !present {
		return ""
	}
	switch marker {
	case git.Modified:
		return " " + lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Render("[M]")
	case git.Staged:
		return " " + lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true).Render("[A]")
	case git.Deleted:
		return " " + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("[D]")
	case git.Untracked:
		return " " + lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("[?]")
	}
	return ""
}

// renderFileList renders the listing panel with the given width
func (m *model) renderFileList(width int) string {
	availableHeight := m.height - 9 // Account for header, status, borders, padding
	if availableHeight < 3 {
		availableHeight = 3
	}

	contentHeight := availableHeight - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	dirName := filepath.Base(m.currentPath)
	if m.currentPath == "/" {
		dirName = "/"
	}

	var searchIndicator string
	if m.search.Active() && m.mode != modeSearch {
		searchIndicator = fmt.Sprintf(" [/%s]", m.search.Query)
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105")).
		Width(width - 4)

	header := headerStyle.Render(fmt.Sprintf("📁 %s%s", dirName, searchIndicator))

	maxItems := contentHeight

	// Scroll indicators eat into the rows we can show
	hasTopIndicator := m.scrollOffset > 0
	hasBottomIndicator := m.scrollOffset+maxItems < len(m.view.Entries)

	actualMaxItems := maxItems
	if hasTopIndicator {
		actualMaxItems--
	}
	if hasBottomIndicator {
		actualMaxItems--
	}
	if actualMaxItems < 1 {
		actualMaxItems = 1
	}

	// Keep the cursor visible
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+actualMaxItems {
		m.scrollOffset = m.cursor - actualMaxItems + 1
	}

	hasTopIndicator = m.scrollOffset > 0
	hasBottomIndicator = m.scrollOffset+actualMaxItems < len(m.view.Entries)

	listStyle := lipgloss.NewStyle().
		Padding(0, 1)

	var items []string

	startIdx := m.scrollOffset
	endIdx := m.scrollOffset + actualMaxItems
	if endIdx > len(m.view.Entries) {
		endIdx = len(m.view.Entries)
	}

	currentMatch := -1
	if idx, ok := m.search.Current(); ok {
		currentMatch = idx
	}

	for i := startIdx; i < endIdx; i++ {
		entry := m.view.Entries[i]

		icon := "📄"
		switch {
		case entry.Name == "..":
			icon = "⬆️"
		case entry.IsDir():
			icon = "📁"
		case entry.IsFile():
			icon = utils.GetFileIcon(entry.Name)
		default:
			icon = "🔗"
		}

		// Git marker and symlink indicator, grouped together
		marker, present := m.view.Markers[entry.Name]
		badge := gitBadge(marker, present)
		if entry.Symlink {
			linkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
			if !entry.IsDir() && !entry.IsFile() {
				linkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
			}
			badge += " " + linkStyle.Render("[→]")
		}

		name := entry.DisplayName()
		displayName := name

		sizeStr := ""
		sizeWidth := 0
		if entry.IsFile() && entry.Name != ".." {
			sizeStr = utils.FormatSize(entry.Size)
			sizeWidth = lipgloss.Width(sizeStr)
		}

		// Reserve space: icon + badges + size + padding
		maxNameLen := width - 28
		if maxNameLen < 10 {
			maxNameLen = 10
		}

		truncated := false
		if lipgloss.Width(name) > maxNameLen {
			runes := []rune(name)
			keep := ""
			for _, r := range runes {
				if lipgloss.Width(keep+string(r)+"...") > maxNameLen {
					break
				}
				keep += string(r)
			}
			displayName = keep + "..."
			truncated = true
		}

		// Match highlighting only fits untruncated names
		if !truncated && m.search.Active() && m.search.IsMatch(i) {
			if start, end, ok := m.search.MatchRange(entry.Name); ok {
				displayName = utils.HighlightRange(name, start, end, i == currentMatch)
			}
		}

		leftSide := fmt.Sprintf("%s %s%s", icon, displayName, badge)
		leftWidth := lipgloss.Width(leftSide)

		totalWidth := width - 4
		padding := totalWidth - leftWidth - sizeWidth
		if padding < 1 {
			padding = 1
		}

		line := leftSide + strings.Repeat(" ", padding) + sizeStr

		if i == m.cursor {
			selectedStyle := lipgloss.NewStyle().
				Background(lipgloss.Color("57")).
				Foreground(lipgloss.Color("230"))
			line = selectedStyle.Render(line)
		} else {
			normalStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
			line = normalStyle.Render(line)
		}

		items = append(items, line)
	}

	if len(m.view.Entries) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
		if m.scanning {
			items = append(items, emptyStyle.Render("Scanning..."))
		} else {
			items = append(items, emptyStyle.Render("Empty directory"))
		}
	}

	if hasTopIndicator {
		items = append([]string{"▲ More files above..."}, items...)
	}
	if hasBottomIndicator {
		items = append(items, "▼ More files below...")
	}

	fileList := listStyle.Render(strings.Join(items, "\n"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width - 2).
		Height(availableHeight + 2)

	return borderStyle.Render(header + "\n" + fileList)
}

func (m *model) renderPreviewPane(width int) string {
	availableHeight := m.height - 9
	if availableHeight < 3 {
		availableHeight = 3
	}

	contentHeight := availableHeight - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105")).
		Width(width - 4)

	headerText := "👁 Preview"
	if m.previewDoc != nil && m.previewDoc.Title != "" {
		headerText = "👁 " + m.previewDoc.Title
	}
	header := headerStyle.Render(headerText)

	previewStyle := lipgloss.NewStyle().
		Width(width-4).
		Padding(0, 1)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width - 2).
		Height(availableHeight + 2)

	var content string
	switch {
	case m.previewDoc == nil && m.previewCtl.ActivePath() == "":
		content = "No preview"
	case m.previewDoc == nil:
		content = "Loading..."
	default:
		content = m.renderDocLines(m.previewDoc.Lines, m.previewDoc.Note, contentHeight)
	}

	return borderStyle.Render(header + "\n" + previewStyle.Render(content))
}

// renderDocLines windows doc lines to height rows with scroll indicators,
// prefixing the truncation note when one is set.
func (m *model) renderDocLines(docLines []string, note string, contentHeight int) string {
	var lines []string

	if note != "" {
		noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
		lines = append(lines, noteStyle.Render("("+note+")"))
		contentHeight--
	}

	if m.previewScroll > len(docLines)-1 {
		m.previewScroll = len(docLines) - 1
	}
	if m.previewScroll < 0 {
		m.previewScroll = 0
	}

	startIdx := m.previewScroll
	endIdx := m.previewScroll + contentHeight

	hasTopIndicator := startIdx > 0
	hasBottomIndicator := endIdx < len(docLines)

	if hasTopIndicator {
		contentHeight--
	}
	if hasBottomIndicator {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	endIdx = startIdx + contentHeight
	if endIdx > len(docLines) {
		endIdx = len(docLines)
	}

	if hasTopIndicator {
		lines = append(lines, "▲")
	}
	lines = append(lines, docLines[startIdx:endIdx]...)
	if hasBottomIndicator {
		lines = append(lines, "▼")
	}

	return strings.Join(lines, "\n")
}

func (m *model) renderFullPreview() string {
	availableHeight := m.height - 9
	if availableHeight < 3 {
		availableHeight = 3
	}

	contentHeight := availableHeight - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105")).
		Width(m.width - 4)

	headerText := "📖 Preview"
	if m.previewDoc != nil && m.previewDoc.Title != "" {
		headerText = "📖 " + m.previewDoc.Title
	}
	header := headerStyle.Render(headerText)

	contentStyle := lipgloss.NewStyle().
		Width(m.width-4).
		Padding(0, 1)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 2).
		Height(availableHeight + 2)

	content := "No preview"
	if m.previewDoc != nil {
		content = m.renderDocLines(m.previewDoc.Lines, m.previewDoc.Note, contentHeight)
	}

	return borderStyle.Render(header + "\n" + contentStyle.Render(content))
}

func (m *model) renderOverlay() string {
	title := "📌 Pinned Directories"
	empty := "No pins yet. Press 'B' in browse mode to pin the current directory."
	if m.mode == modeHistory {
		title = "🕘 Recent Directories"
		empty = "No history yet."
	}

	availableHeight := m.height - 9
	if availableHeight < 3 {
		availableHeight = 3
	}

	// Filter input takes one row, scroll indicators two more
	contentHeight := availableHeight - 3
	if contentHeight < 1 {
		contentHeight = 1
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105")).
		Width(m.width - 4)

	header := headerStyle.Render(title)

	listStyle := lipgloss.NewStyle().
		Padding(0, 1)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 2).
		Height(availableHeight + 2)

	var rows []string

	if len(m.overlayRows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Padding(1, 0)
		msg := empty
		if m.input.Value() != "" {
			msg = "No matches"
		}
		rows = []string{emptyStyle.Render(msg)}
	} else {
		maxItems := contentHeight

		scrollOffset := 0
		if m.overlayCursor >= maxItems {
			scrollOffset = m.overlayCursor - maxItems + 1
		}

		hasTopIndicator := scrollOffset > 0
		hasBottomIndicator := scrollOffset+maxItems < len(m.overlayRows)

		actualMaxItems := maxItems
		if hasTopIndicator {
			actualMaxItems--
		}
		if hasBottomIndicator {
			actualMaxItems--
		}
		if actualMaxItems < 1 {
			actualMaxItems = 1
		}

		if m.overlayCursor >= scrollOffset+actualMaxItems {
			scrollOffset = m.overlayCursor - actualMaxItems + 1
		}
		if m.overlayCursor < scrollOffset {
			scrollOffset = m.overlayCursor
		}

		hasTopIndicator = scrollOffset > 0
		hasBottomIndicator = scrollOffset+actualMaxItems < len(m.overlayRows)

		if hasTopIndicator {
			rows = append(rows, "▲ More above...")
		}

		endIdx := scrollOffset + actualMaxItems
		if endIdx > len(m.overlayRows) {
			endIdx = len(m.overlayRows)
		}

		for i := scrollOffset; i < endIdx; i++ {
			idx := m.overlayRows[i]

			var name, path string
			if m.mode == modePins {
				if idx >= len(m.pins) {
					continue
				}
				name = m.pins[idx].Name
				path = m.pins[idx].Path
			} else {
				if idx >= len(m.history) {
					continue
				}
				path = m.history[idx]
				name = filepath.Base(path)
				if name == "" || name == "." {
					name = path
				}
			}

			maxPathLen := m.width - 30
			if maxPathLen < 20 {
				maxPathLen = 20
			}
			displayPath := path
			if lipgloss.Width(path) > maxPathLen {
				runes := []rune(path)
				keep := ""
				for j := len(runes) - 1; j >= 0; j-- {
					if lipgloss.Width(string(runes[j])+keep) > maxPathLen-3 {
						break
					}
					keep = string(runes[j]) + keep
				}
				displayPath = "..." + keep
			}

			line := fmt.Sprintf("📁 %s (%s)", name, displayPath)

			if i == m.overlayCursor {
				selectedStyle := lipgloss.NewStyle().
					Background(lipgloss.Color("57")).
					Foreground(lipgloss.Color("230")).
					Width(m.width - 4)
				line = selectedStyle.Render(line)
			} else {
				pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
				line = fmt.Sprintf("📁 %s %s", name, pathStyle.Render("("+displayPath+")"))
			}

			rows = append(rows, line)
		}

		if hasBottomIndicator {
			rows = append(rows, "▼ More below...")
		}
	}

	content := listStyle.Render(m.input.View() + "\n" + strings.Join(rows, "\n"))
	return borderStyle.Render(header + "\n" + content)
}

func (m *model) renderConfirmDeleteDialog() string {
	dialogWidth := 60
	dialogHeight := 8

	entry, ok := m.selectedEntry()
	if !ok {
		return "Error: No file selected"
	}

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2).
		Width(dialogWidth).
		Height(dialogHeight)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	contentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(1, 0)

	promptStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(1, 0)

	fileType := "file"
	if entry.IsDir() {
		fileType = "directory"
	}

	title := titleStyle.Render(fmt.Sprintf("⚠️  Delete %s?", fileType))
	content := contentStyle.Render(fmt.Sprintf("Are you sure you want to delete:\n\n%s\n\nThis cannot be undone.", entry.Name))
	prompt := promptStyle.Render("Press 'y' to confirm, 'n' or ESC to cancel")

	rendered := dialogStyle.Render(title + "\n" + content + "\n" + prompt)

	verticalPadding := (m.height - dialogHeight) / 2
	horizontalPadding := (m.width - dialogWidth) / 2

	return lipgloss.NewStyle().
		Padding(verticalPadding, horizontalPadding).
		Render(rendered)
}

func (m *model) renderInputDialog(title, prompt string) string {
	dialogWidth := 60
	dialogHeight := 8

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("105")).
		Padding(1, 2).
		Width(dialogWidth).
		Height(dialogHeight)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105"))

	contentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(1, 0)

	rendered := dialogStyle.Render(
		titleStyle.Render(title) + "\n" +
			contentStyle.Render(prompt) + "\n" +
			m.input.View())

	verticalPadding := (m.height - dialogHeight) / 2
	horizontalPadding := (m.width - dialogWidth) / 2

	return lipgloss.NewStyle().
		Padding(verticalPadding, horizontalPadding).
		Render(rendered)
}

func (m *model) renderHelpView() string {
	availableHeight := m.height - 9
	if availableHeight < 3 {
		availableHeight = 3
	}

	contentHeight := availableHeight - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105")).
		Width(m.width - 4)

	header := headerStyle.Render("❓ Help")

	listStyle := lipgloss.NewStyle().
		Width(m.width-4).
		Padding(0, 1)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 2).
		Height(availableHeight + 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("105")).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	var help []string

	help = append(help, sectionStyle.Render("Navigation:"))
	help = append(help, fmt.Sprintf("  %s           Move down", keyStyle.Render("j / ↓")))
	help = append(help, fmt.Sprintf("  %s           Move up", keyStyle.Render("k / ↑")))
	help = append(help, fmt.Sprintf("  %s   Enter directory / Open file", keyStyle.Render("enter / l / →")))
	help = append(help, fmt.Sprintf("  %s    Go to parent directory", keyStyle.Render("h / ← / bksp")))
	help = append(help, fmt.Sprintf("  %s       Go back to previous directory", keyStyle.Render("alt+← / -")))
	help = append(help, fmt.Sprintf("  %s               Go to top", keyStyle.Render("g")))
	help = append(help, fmt.Sprintf("  %s               Go to bottom", keyStyle.Render("G")))
	help = append(help, fmt.Sprintf("  %s          Half-page down", keyStyle.Render("ctrl+d")))
	help = append(help, fmt.Sprintf("  %s          Half-page up", keyStyle.Render("ctrl+u")))
	help = append(help, "")

	help = append(help, sectionStyle.Render("Preview:"))
	help = append(help, fmt.Sprintf("  %s             Toggle split preview", keyStyle.Render("tab")))
	help = append(help, fmt.Sprintf("  %s       Scroll preview up", keyStyle.Render("w / alt+↑")))
	help = append(help, fmt.Sprintf("  %s       Scroll preview down", keyStyle.Render("s / alt+↓")))
	help = append(help, fmt.Sprintf("  %s           Open file full screen", keyStyle.Render("enter")))
	help = append(help, fmt.Sprintf("  %s         Leave full screen", keyStyle.Render("q / esc")))
	help = append(help, "")

	help = append(help, sectionStyle.Render("Search:"))
	help = append(help, fmt.Sprintf("  %s               Search current directory", keyStyle.Render("/")))
	help = append(help, fmt.Sprintf("  %s           Keep matches, leave search", keyStyle.Render("enter")))
	help = append(help, fmt.Sprintf("  %s             Clear search", keyStyle.Render("esc")))
	help = append(help, fmt.Sprintf("  %s           Next / previous match", keyStyle.Render("n / N")))
	help = append(help, "")

	help = append(help, sectionStyle.Render("Display:"))
	help = append(help, fmt.Sprintf("  %s               Cycle sort mode (name / size / modified)", keyStyle.Render("S")))
	help = append(help, fmt.Sprintf("  %s               Toggle hidden files", keyStyle.Render(".")))
	help = append(help, fmt.Sprintf("  %s               Refresh listing", keyStyle.Render("R")))
	help = append(help, "")

	help = append(help, sectionStyle.Render("File Operations:"))
	help = append(help, fmt.Sprintf("  %s               Rename", keyStyle.Render("r")))
	help = append(help, fmt.Sprintf("  %s               Create file", keyStyle.Render("a")))
	help = append(help, fmt.Sprintf("  %s               Create directory", keyStyle.Render("A")))
	help = append(help, fmt.Sprintf("  %s               Delete", keyStyle.Render("d")))
	help = append(help, fmt.Sprintf("  %s               Copy path to clipboard", keyStyle.Render("y")))
	help = append(help, fmt.Sprintf("  %s               Edit in $EDITOR", keyStyle.Render("e")))
	help = append(help, fmt.Sprintf("  %s               Open with system default", keyStyle.Render("o")))
	help = append(help, "")

	help = append(help, sectionStyle.Render("Pins & History:"))
	help = append(help, fmt.Sprintf("  %s               View pinned directories", keyStyle.Render("b")))
	help = append(help, fmt.Sprintf("  %s               Pin current directory", keyStyle.Render("B")))
	help = append(help, fmt.Sprintf("  %s               View recent directories", keyStyle.Render("H")))
	help = append(help, "")

	help = append(help, sectionStyle.Render("Other:"))
	help = append(help, fmt.Sprintf("  %s               Edit config file", keyStyle.Render("C")))
	help = append(help, fmt.Sprintf("  %s               Show this help", keyStyle.Render("?")))
	help = append(help, fmt.Sprintf("  %s      Quit", keyStyle.Render("q / ctrl+c")))

	startIdx := m.helpScroll
	endIdx := m.helpScroll + contentHeight

	hasTopIndicator := startIdx > 0
	hasBottomIndicator := endIdx < len(help)

	if hasTopIndicator {
		contentHeight--
	}
	if hasBottomIndicator {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	if m.helpScroll > len(help)-contentHeight {
		m.helpScroll = len(help) - contentHeight
		if m.helpScroll < 0 {
			m.helpScroll = 0
		}
		startIdx = m.helpScroll
	}

	endIdx = startIdx + contentHeight
	if endIdx > len(help) {
		endIdx = len(help)
	}

	var displayLines []string
	if hasTopIndicator {
		displayLines = append(displayLines, "▲")
	}
	if startIdx < len(help) {
		displayLines = append(displayLines, help[startIdx:endIdx]...)
	}
	if hasBottomIndicator {
		displayLines = append(displayLines, "▼")
	}

	content := listStyle.Render(strings.Join(displayLines, "\n"))
	return borderStyle.Render(header + "\n" + content)
}

func (m *model) renderStatusBar() string {
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("240")).
		Padding(0, 1).
		Width(m.width)

	var statusText string
	var rightSide string

	switch m.mode {
	case modePins:
		if target, ok := m.overlayTarget(); ok {
			statusText = target
		} else {
			statusText = "No pins"
		}
		rightSide = "enter: open | ctrl+x: unpin | esc: back"

	case modeHistory:
		if target, ok := m.overlayTarget(); ok {
			statusText = target
		} else {
			statusText = "No history"
		}
		rightSide = "enter: open | esc: back"

	case modeFullPreview:
		if m.previewDoc != nil && len(m.previewDoc.Lines) > 0 {
			statusText = fmt.Sprintf("%d/%d", m.previewScroll+1, len(m.previewDoc.Lines))
		}
		rightSide = "j/k: scroll | q/esc: back"

	default:
		if len(m.view.Entries) > 0 {
			statusText = fmt.Sprintf("%d/%d", m.cursor+1, len(m.view.Entries))
		}

		if m.gitBranch != "" {
			statusText += fmt.Sprintf(" | Branch: %s", m.gitBranch)
		}

		if m.scanning {
			statusText += " | Scanning..."
		}

		if m.statusMsg != "" {
			statusText += " | " + m.statusMsg
		}

		statusText += fmt.Sprintf(" | Sort: %s (S)", m.sortMode)

		rightSide = "? for help"
	}

	totalWidth := m.width - 2 // Account for padding
	padding := totalWidth - lipgloss.Width(statusText) - lipgloss.Width(rightSide) - 3
	if padding < 1 {
		padding = 1
	}
	statusText += strings.Repeat(" ", padding) + rightSide

	return statusStyle.Render(statusText)
}
