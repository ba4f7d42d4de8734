package preview

import "time"

// DebounceDelay is how long the cursor must rest on a file before a split
// preview load fires.
const DebounceDelay = 100 * time.Millisecond

// Mode is the preview display state.
type Mode int

const (
	Closed Mode = iota
	Split
	FullScreen
)

func (m Mode) String() string {
	switch m {
	case Split:
		return "split"
	case FullScreen:
		return "full"
	default:
		return "closed"
	}
}

// Controller owns the preview mode machine and the debounce token that
// guards async loads. It holds no timers itself; the caller schedules the
// delay and reports back through Elapsed, so every transition is synchronous
// and the whole machine is testable without sleeping.
//
// Tokens supersede rather than cancel: background work keyed to an old token
// simply finds TokenCurrent false when it reports in.
type Controller struct {
	mode        Mode
	activePath  string
	pendingPath string
	token       uint64
	wasSplit    bool
}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) Mode() Mode { return c.mode }

// ActivePath is the path whose content is currently mounted, empty when none.
func (c *Controller) ActivePath() string { return c.activePath }

// ToggleSplit flips between Closed and Split. It is refused while full
// screen. On entering Split the caller should Highlight the cursor to
// schedule the first load.
func (c *Controller) ToggleSplit() (split bool, ok bool) {
	switch c.mode {
	case FullScreen:
		return false, false
	case Split:
		c.mode = Closed
		c.activePath = ""
		c.pendingPath = ""
		c.token++
		return false, true
	default:
		c.mode = Split
		return true, true
	}
}

// Highlight records a cursor move. While split, every move supersedes the
// previous debounce; only a move onto a regular file schedules a new one,
// returning the token the caller must hand back through Elapsed.
func (c *Controller) Highlight(path string, isFile bool) (token uint64, schedule bool) {
	if c.mode != Split {
		return 0, false
	}
	c.token++
	if !isFile {
		c.pendingPath = ""
		return 0, false
	}
	c.pendingPath = path
	return c.token, true
}

// Elapsed is called when a debounce delay fires. A stale token, a mode
// change, or a cleared pending path all make it a no-op; otherwise the
// pending path becomes active and is returned for loading.
func (c *Controller) Elapsed(token uint64) (path string, ok bool) {
	if token != c.token || c.mode != Split || c.pendingPath == "" {
		return "", false
	}
	c.activePath = c.pendingPath
	c.pendingPath = ""
	return c.activePath, true
}

// TokenCurrent reports whether an async result carrying token is still
// wanted.
func (c *Controller) TokenCurrent(token uint64) bool {
	return token == c.token
}

// Select opens path full screen. Refused while already full screen or for
// non-files. The caller performs the load synchronously.
func (c *Controller) Select(path string, isFile bool) bool {
	if c.mode == FullScreen || !isFile {
		return false
	}
	c.wasSplit = c.mode == Split
	c.mode = FullScreen
	c.activePath = path
	c.pendingPath = ""
	c.token++
	return true
}

// CloseFull leaves full screen, restoring whichever of Split or Closed was
// active before. reopenSplit asks the caller to re-highlight the cursor so
// the split pane refreshes.
func (c *Controller) CloseFull() (reopenSplit bool, ok bool) {
	if c.mode != FullScreen {
		return false, false
	}
	if c.wasSplit {
		c.mode = Split
		return true, true
	}
	c.mode = Closed
	c.activePath = ""
	return false, true
}
