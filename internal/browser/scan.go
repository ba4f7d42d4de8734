package browser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"ncv/internal/git"
)

// DirectoryView is one complete listing of a directory. Views are built off
// the interactive goroutine and swapped in wholesale; only the view whose
// generation matches the scanner's current generation may become live.
type DirectoryView struct {
	Path       string
	Generation uint64
	Entries    []Entry
	ShowHidden bool
	SortMode   SortMode
	Markers    map[string]git.Marker
}

// ScanOptions carries the listing filters and order.
type ScanOptions struct {
	ShowHidden bool
	SortMode   SortMode
	Ignore     []glob.Glob
}

// Scanner issues generation tokens for directory scans. It is owned by the
// interactive goroutine: Next is called there before the I/O starts, and
// Accepts decides whether an arriving result is still the newest request.
type Scanner struct {
	gen uint64
}

// Next increments the generation and returns the token for a new scan.
func (s *Scanner) Next() uint64 {
	s.gen++
	return s.gen
}

// Current returns the newest issued generation.
func (s *Scanner) Current() uint64 {
	return s.gen
}

// Accepts reports whether a result tagged gen is the newest request. Stale
// results are discarded silently by the caller.
func (s *Scanner) Accepts(gen uint64) bool {
	return gen == s.gen
}

// Scan lists path into a candidate view tagged with gen. It runs off the
// interactive goroutine and never fails: an unreadable directory yields a
// listing with only the parent pseudo-entry so the user can climb back out.
// Sizes are gathered for plain files only; directories show no size.
func Scan(path string, gen uint64, opts ScanOptions) *DirectoryView {
	path = filepath.Clean(path)
	view := &DirectoryView{
		Path:       path,
		Generation: gen,
		ShowHidden: opts.ShowHidden,
		SortMode:   opts.SortMode,
	}

	entries := []Entry{}
	if parent := filepath.Dir(path); parent != path {
		entries = append(entries, parentEntry(parent))
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		view.Entries = entries
		return view
	}

	for _, de := range dirents {
		name := de.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if ignored(name, opts.Ignore) {
			continue
		}

		entryPath := filepath.Join(path, name)

		// Lstat first so symlinks are seen as links, then resolve the
		// target for kind and metadata.
		linfo, err := os.Lstat(entryPath)
		if err != nil {
			continue
		}

		entry := Entry{
			Name: name,
			Path: entryPath,
			Size: -1,
		}

		if linfo.Mode()&os.ModeSymlink != 0 {
			entry.Symlink = true
			if target, err := os.Readlink(entryPath); err == nil {
				if !filepath.IsAbs(target) {
					target = filepath.Join(path, target)
				}
				entry.LinkTarget = target
			}
			if tinfo, err := os.Stat(entryPath); err == nil {
				if tinfo.IsDir() {
					entry.Kind = KindDir
				} else {
					entry.Kind = KindFile
					entry.Size = tinfo.Size()
				}
				entry.ModTime = tinfo.ModTime()
			} else {
				// Broken link: keep it visible, previewable as metadata only.
				entry.Kind = KindSymlink
				entry.ModTime = linfo.ModTime()
			}
		} else if linfo.IsDir() {
			entry.Kind = KindDir
			entry.ModTime = linfo.ModTime()
		} else {
			entry.Kind = KindFile
			entry.Size = linfo.Size()
			entry.ModTime = linfo.ModTime()
		}

		entries = append(entries, entry)
	}

	Sort(entries, opts.SortMode)
	view.Entries = entries
	return view
}

func ignored(name string, patterns []glob.Glob) bool {
	for _, g := range patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}
