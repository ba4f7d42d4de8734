package viewer

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// Fallback renders a metadata card for files no other viewer claims. It
// registers no extensions and relies on its low priority to lose every
// extension contest, so the registry only reaches it as a last resort.
type Fallback struct{}

func (f *Fallback) Name() string { return "file info" }

func (f *Fallback) Priority() int { return -100 }

func (f *Fallback) Extensions() []string { return nil }

func (f *Fallback) Load(path string, width int) (*Document, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("%-14s %s", "Name:", info.Name()),
		fmt.Sprintf("%-14s %s", "Path:", path),
		fmt.Sprintf("%-14s %s", "Size:", humanize.IBytes(uint64(info.Size()))),
		fmt.Sprintf("%-14s %d bytes", "Size (bytes):", info.Size()),
		fmt.Sprintf("%-14s %s", "Modified:", info.ModTime().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("%-14s %s", "Permissions:", info.Mode().String()),
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := os.Readlink(path); err == nil {
			lines = append(lines, fmt.Sprintf("%-14s %s", "Link target:", target))
		}
	}
	lines = append(lines, "", "No preview available for this file type.")
	return &Document{Title: f.Name(), Lines: lines}, nil
}
