package browser

import "strings"

// SearchState is an incremental substring search over the displayed entry
// list. Matching is case-insensitive on entry names; the ".." pseudo-entry
// matches only the literal query "..". The state must be cleared on every
// structural change to the view (reload, sort change, hidden toggle, path
// change).
type SearchState struct {
	Query   string
	Matches []int // indices into the display-ordered entries
	Cursor  int   // index into Matches, -1 when there are none
}

// Submit recomputes the matches for query against entries. An empty query
// clears all search state.
func (s *SearchState) Submit(query string, entries []Entry) {
	if query == "" {
		s.Clear()
		return
	}

	s.Query = query
	s.Matches = s.Matches[:0]
	needle := strings.ToLower(query)

	for i, e := range entries {
		if e.Name == ".." {
			if query == ".." {
				s.Matches = append(s.Matches, i)
			}
			continue
		}
		if strings.Contains(strings.ToLower(e.Name), needle) {
			s.Matches = append(s.Matches, i)
		}
	}

	if len(s.Matches) == 0 {
		s.Cursor = -1
	} else {
		s.Cursor = 0
	}
}

// Clear drops the query, matches and cursor.
func (s *SearchState) Clear() {
	s.Query = ""
	s.Matches = nil
	s.Cursor = -1
}

// Active reports whether a search is in effect.
func (s *SearchState) Active() bool {
	return s.Query != ""
}

// Current returns the entry index under the search cursor.
func (s *SearchState) Current() (int, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Matches) {
		return 0, false
	}
	return s.Matches[s.Cursor], true
}

// Next advances the cursor cyclically and returns the new entry index.
// No-op when there are no matches.
func (s *SearchState) Next() (int, bool) {
	if len(s.Matches) == 0 {
		return 0, false
	}
	s.Cursor = (s.Cursor + 1) % len(s.Matches)
	return s.Matches[s.Cursor], true
}

// Prev moves the cursor back cyclically and returns the new entry index.
// No-op when there are no matches.
func (s *SearchState) Prev() (int, bool) {
	if len(s.Matches) == 0 {
		return 0, false
	}
	s.Cursor = (s.Cursor - 1 + len(s.Matches)) % len(s.Matches)
	return s.Matches[s.Cursor], true
}

// IsMatch reports whether entry index i is among the current matches.
func (s *SearchState) IsMatch(i int) bool {
	for _, idx := range s.Matches {
		if idx == i {
			return true
		}
	}
	return false
}

// MatchRange returns the half-open byte range of the first case-insensitive
// occurrence of the query in name, for match highlighting. ok is false when
// the name does not contain the query.
func (s *SearchState) MatchRange(name string) (start, end int, ok bool) {
	if s.Query == "" {
		return 0, 0, false
	}
	lower := strings.ToLower(name)
	query := strings.ToLower(s.Query)
	idx := strings.Index(lower, query)
	if idx < 0 {
		return 0, 0, false
	}
	// Lowering can shift byte offsets for some scripts; skip the highlight
	// rather than slice mid-rune.
	if len(lower) != len(name) || idx+len(query) > len(name) {
		return 0, 0, false
	}
	return idx, idx + len(query), true
}
