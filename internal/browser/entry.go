package browser

import "time"

// Kind classifies a directory entry. Symlinks are resolved during the scan:
// a link to a directory browses as a directory, a link to a file previews as
// a file, and only broken links keep KindSymlink.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
)

// Entry is an immutable snapshot of one filesystem entry. Entries are
// replaced wholesale on every re-scan, never mutated in place.
type Entry struct {
	Name       string
	Path       string    // absolute
	Kind       Kind
	Size       int64     // -1 when unknown; only plain files carry sizes
	ModTime    time.Time // zero when unknown
	Symlink    bool      // set for all symlinks, including resolved ones
	LinkTarget string    // absolute target path, empty for non-links
}

// IsDir reports whether the entry browses as a directory.
func (e Entry) IsDir() bool { return e.Kind == KindDir }

// IsFile reports whether the entry previews as a regular file.
func (e Entry) IsFile() bool { return e.Kind == KindFile }

// SizeForSort maps an unknown size to 0 so size ordering stays total.
func (e Entry) SizeForSort() int64 {
	if e.Size < 0 {
		return 0
	}
	return e.Size
}

// DisplayName is the listing label: directories get a trailing slash,
// except the parent pseudo-entry which stays a bare "..".
func (e Entry) DisplayName() string {
	if e.Name == ".." {
		return ".."
	}
	if e.IsDir() {
		return e.Name + "/"
	}
	return e.Name
}

// parentEntry builds the ".." pseudo-entry pointing at parent.
func parentEntry(parent string) Entry {
	return Entry{
		Name: "..",
		Path: parent,
		Kind: KindDir,
		Size: -1,
	}
}
