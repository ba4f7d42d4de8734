package browser

import (
	"sort"
	"strings"
)

// SortMode selects the listing order.
type SortMode int

const (
	SortName SortMode = iota
	SortSize
	SortModified
)

func (m SortMode) String() string {
	switch m {
	case SortSize:
		return "size"
	case SortModified:
		return "modified"
	default:
		return "name"
	}
}

// Next cycles through the sort modes.
func (m SortMode) Next() SortMode {
	switch m {
	case SortName:
		return SortSize
	case SortSize:
		return SortModified
	default:
		return SortName
	}
}

// SortModeFromString maps a config value to a SortMode, defaulting to name.
func SortModeFromString(s string) SortMode {
	switch s {
	case "size":
		return SortSize
	case "modified":
		return SortModified
	default:
		return SortName
	}
}

// Sort orders entries in place: ".." pinned first, then directories before
// files under every mode. Name compares case-insensitively ascending. Size
// is ascending with unknown sizes counted as 0. Modified time is descending
// with unknown timestamps last. Equal keys fall back to the name order so
// the result is deterministic.
func Sort(entries []Entry, mode SortMode) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.Name == ".." {
			return true
		}
		if b.Name == ".." {
			return false
		}

		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}

		switch mode {
		case SortSize:
			if a.SizeForSort() != b.SizeForSort() {
				return a.SizeForSort() < b.SizeForSort()
			}
		case SortModified:
			if a.ModTime.IsZero() != b.ModTime.IsZero() {
				return !a.ModTime.IsZero()
			}
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.After(b.ModTime)
			}
		}

		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
