package git

import (
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Marker classifies the VCS state of one top-level entry of a directory.
type Marker byte

const (
	Untracked Marker = '?'
	Staged    Marker = 'A' // added, or staged modify/rename
	Modified  Marker = 'M' // worktree modification
	Deleted   Marker = 'D'
)

// probeTimeout bounds every subprocess call. A slow or wedged git must never
// hold up navigation.
const probeTimeout = 2 * time.Second

// Status returns a marker per top-level child name of dir. Best effort: any
// failure (git absent, not a repository, timeout, non-zero exit) yields an
// empty map and is never surfaced.
func Status(dir string) map[string]Marker {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	root := topLevel(ctx, dir)
	if root == "" {
		return map[string]Marker{}
	}

	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain", "--", ".")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return map[string]Marker{}
	}

	prefix := ""
	if rel, err := filepath.Rel(root, dir); err == nil && rel != "." {
		prefix = filepath.ToSlash(rel) + "/"
	}

	return parsePorcelain(string(output), prefix)
}

// parsePorcelain reduces porcelain v1 status lines to one marker per
// top-level child. prefix is the probed directory's repo-relative path with
// a trailing slash, or "" at the repo root. Conflicting markers below a
// directory collapse to Modified.
func parsePorcelain(output, prefix string) map[string]Marker {
	markers := make(map[string]Marker)

	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		x, y := line[0], line[1]
		path := line[3:]

		// Renames are reported as "old -> new"; the new name is the one
		// that exists on disk.
		if x == 'R' || x == 'C' {
			if idx := strings.LastIndex(path, " -> "); idx >= 0 {
				path = path[idx+4:]
			}
		}
		path = unquotePath(path)

		path = strings.TrimPrefix(path, prefix)
		if path == "" {
			continue
		}
		name := path
		if idx := strings.IndexByte(path, '/'); idx >= 0 {
			name = path[:idx]
		}
		if name == "" {
			continue
		}

		m := classify(x, y)
		if prev, ok := markers[name]; ok && prev != m {
			markers[name] = Modified
		} else {
			markers[name] = m
		}
	}

	return markers
}

// classify maps a porcelain (index, worktree) status pair to one marker.
func classify(x, y byte) Marker {
	switch {
	case x == '?':
		return Untracked
	case x == 'D' || y == 'D':
		return Deleted
	case y != ' ':
		return Modified
	default:
		return Staged
	}
}

// unquotePath undoes git's C-style quoting of unusual pathnames.
func unquotePath(path string) string {
	if len(path) < 2 || path[0] != '"' {
		return path
	}
	if unquoted, err := strconv.Unquote(path); err == nil {
		return unquoted
	}
	return path
}

// topLevel returns the repository root containing dir, or "" when dir is not
// inside a work tree.
func topLevel(ctx context.Context, dir string) string {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// Branch returns the current branch name, or "" outside a repository.
func Branch(dir string) string {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
