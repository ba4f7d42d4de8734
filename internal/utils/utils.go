package utils

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// GetFileIcon returns an emoji icon for a file based on its extension
func GetFileIcon(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".go":
		return "🐹"
	case ".js", ".ts", ".jsx", ".tsx":
		return "📜"
	case ".py":
		return "🐍"
	case ".rb":
		return "💎"
	case ".java":
		return "☕"
	case ".rs":
		return "🦀"
	case ".cpp", ".c", ".h":
		return "⚙️"
	case ".html", ".htm":
		return "🌐"
	case ".css", ".scss", ".sass":
		return "🎨"
	case ".json", ".jsonl", ".geojson", ".yaml", ".yml", ".toml":
		return "📋"
	case ".csv", ".tsv", ".tab", ".xls", ".xlsx":
		return "📊"
	case ".md", ".markdown", ".mkd", ".mdx":
		return "📝"
	case ".txt", ".log":
		return "📄"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico":
		return "🖼️"
	case ".mp4", ".avi", ".mov", ".mkv":
		return "🎬"
	case ".mp3", ".wav", ".flac", ".ogg":
		return "🎵"
	case ".zip", ".tar", ".gz", ".rar", ".7z":
		return "📦"
	case ".pdf":
		return "📕"
	case ".doc", ".docx":
		return "📘"
	case ".sh", ".bash", ".zsh":
		return "🖥️"
	case ".git", ".gitignore":
		return "🔀"
	default:
		return "📄"
	}
}

// FormatSize returns a human-readable file size, color-styled by magnitude.
// Negative sizes (unknown) render as an empty string.
func FormatSize(size int64) string {
	if size < 0 {
		return ""
	}
	sizeStr := humanize.IBytes(uint64(size))

	const (
		kib    = 1024
		mib    = 1024 * kib
		mib100 = 100 * mib
	)

	var style lipgloss.Style
	switch {
	case size < kib:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	case size < mib:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	case size < mib100:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	}

	return style.Render(sizeStr)
}

var (
	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)
	currentMatchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("226")).
				Bold(true)
)

// HighlightRange emphasizes text[start:end], brighter when current marks the
// match under the search cursor. Out-of-range offsets return text unchanged.
func HighlightRange(text string, start, end int, current bool) string {
	if start < 0 || end > len(text) || start >= end {
		return text
	}
	style := matchStyle
	if current {
		style = currentMatchStyle
	}
	return text[:start] + style.Render(text[start:end]) + text[end:]
}
