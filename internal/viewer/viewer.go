package viewer

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// Document is one rendered preview. Lines may carry ANSI styling; the pane
// scrolls and clips them without re-interpreting the content.
type Document struct {
	Title string   // short viewer label for the pane header
	Lines []string // rendered content
	Note  string   // truncation or summary notice, empty when none
}

// Viewer renders one family of file formats. Implementations are registered
// once at startup; the browser core depends only on this interface and never
// on a concrete viewer type. Load may block on I/O or parsing and returns an
// error instead of panicking on malformed input.
type Viewer interface {
	Name() string
	// Extensions lists the claimed extensions, lower-cased with the leading
	// dot. An empty list claims nothing; such a viewer can only be reached
	// through the registry fallback.
	Extensions() []string
	// Priority breaks ties when several viewers claim an extension; higher
	// wins.
	Priority() int
	Load(path string, width int) (*Document, error)
}

// ErrorDocument wraps a load failure as inline preview content. Failures
// stay scoped to the pane; they never change the view mode.
func ErrorDocument(path string, err error) *Document {
	return &Document{
		Title: "error",
		Lines: []string{fmt.Sprintf("Cannot preview %s", path), "", err.Error()},
	}
}

// readCapped reads path unless it exceeds the preview size limit, in which
// case it returns a notice document instead of content.
func readCapped(path, title string) ([]byte, *Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.Size() > maxTextSize {
		return nil, &Document{
			Title: title,
			Lines: []string{fmt.Sprintf("File too large (%s > %s limit)",
				humanize.IBytes(uint64(info.Size())), humanize.IBytes(maxTextSize))},
		}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}
