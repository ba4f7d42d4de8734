package browser

// NavigationStack is the back history of visited directories for one
// session. Callers push the path being left on every forward navigation
// whose destination differs from it; pops themselves are never pushed.
type NavigationStack struct {
	paths []string
}

// Stack depth is bounded; the oldest entries fall off first.
const maxNavStack = 100

// Push records path as the most recent origin.
func (s *NavigationStack) Push(path string) {
	s.paths = append(s.paths, path)
	if len(s.paths) > maxNavStack {
		s.paths = s.paths[len(s.paths)-maxNavStack:]
	}
}

// Pop removes and returns the most recently pushed path. ok is false when
// the stack is empty.
func (s *NavigationStack) Pop() (string, bool) {
	if len(s.paths) == 0 {
		return "", false
	}
	path := s.paths[len(s.paths)-1]
	s.paths = s.paths[:len(s.paths)-1]
	return path, true
}

// Len returns the number of recorded paths.
func (s *NavigationStack) Len() int {
	return len(s.paths)
}
