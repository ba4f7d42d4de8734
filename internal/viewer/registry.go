package viewer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Registry maps file extensions to viewers. It is append-only and explicitly
// constructed at startup; registration order is the tie-break when two
// viewers claim the same extension at the same priority (first wins).
type Registry struct {
	viewers []Viewer
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a viewer. Order is significant.
func (r *Registry) Register(v Viewer) {
	r.viewers = append(r.viewers, v)
}

// Resolve picks the viewer for path. It never fails: files no viewer claims
// fall back to plain text when they look textual (a conventional extensionless
// name, or no null byte in the first 512 bytes), and to the metadata viewer
// otherwise.
func (r *Registry) Resolve(path string) Viewer {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if v := r.bestFor(ext); v != nil {
			return v
		}
	}

	if knownTextName(filepath.Base(path)) || sniffText(path) {
		if v := r.bestFor(".txt"); v != nil {
			return v
		}
	}

	if v := r.metadataFallback(); v != nil {
		return v
	}
	return &Fallback{}
}

// bestFor returns the highest-priority viewer claiming ext. The strict
// greater-than keeps the first-registered viewer on priority ties.
func (r *Registry) bestFor(ext string) Viewer {
	var best Viewer
	for _, v := range r.viewers {
		if !claims(v, ext) {
			continue
		}
		if best == nil || v.Priority() > best.Priority() {
			best = v
		}
	}
	return best
}

// metadataFallback returns the first registered viewer that claims no
// extensions at all.
func (r *Registry) metadataFallback() Viewer {
	for _, v := range r.viewers {
		if len(v.Extensions()) == 0 {
			return v
		}
	}
	return nil
}

func claims(v Viewer, ext string) bool {
	for _, e := range v.Extensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// Conventional extensionless filenames that are always text.
var textNames = map[string]bool{
	"makefile":      true,
	"gnumakefile":   true,
	"dockerfile":    true,
	"containerfile": true,
	"readme":        true,
	"license":       true,
	"licence":       true,
	"copying":       true,
	"changelog":     true,
	"authors":       true,
	"contributors":  true,
	"contributing":  true,
	"notice":        true,
	"todo":          true,
	"gemfile":       true,
	"rakefile":      true,
	"procfile":      true,
	"vagrantfile":   true,
	"justfile":      true,
	"brewfile":      true,
}

func knownTextName(name string) bool {
	return textNames[strings.ToLower(name)]
}

// sniffText reads up to 512 bytes and reports whether they are null-free.
// Unreadable files are not text.
func sniffText(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return !bytes.Contains(buf[:n], []byte{0})
}
