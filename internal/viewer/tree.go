package viewer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	maxTreeNodes = 50000
	maxTreeDepth = 50
)

var (
	treeKeyStyle    = lipgloss.NewStyle().Bold(true)
	treeStringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	treeNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	treeBoolStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	treeNullStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// treeBuilder flattens a decoded document (maps, slices, scalars) into
// indented lines. The JSON, YAML and TOML viewers all render through it.
type treeBuilder struct {
	lines     []string
	nodes     int
	truncated bool
}

// renderTree walks a decoded value and returns its rendered lines plus
// whether the node or depth cap cut the walk short.
func renderTree(root any) ([]string, bool) {
	b := &treeBuilder{}
	b.walk(root, "", 0)
	return b.lines, b.truncated
}

func (b *treeBuilder) add(depth int, text string) {
	if b.nodes >= maxTreeNodes {
		b.truncated = true
		return
	}
	b.nodes++
	b.lines = append(b.lines, strings.Repeat("  ", depth)+text)
}

func (b *treeBuilder) walk(value any, label string, depth int) {
	if b.truncated {
		return
	}
	switch v := value.(type) {
	case map[string]any:
		b.walkMap(v, label, depth)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprintf("%v", k)] = val
		}
		b.walkMap(m, label, depth)
	case []any:
		if len(v) == 0 {
			b.leaf(depth, label, "[]")
			return
		}
		childDepth := b.branch(depth, label)
		if depth >= maxTreeDepth {
			b.truncated = true
			return
		}
		for i, item := range v {
			b.walk(item, "["+strconv.Itoa(i)+"]", childDepth)
		}
	default:
		b.leaf(depth, label, formatScalar(value))
	}
}

func (b *treeBuilder) walkMap(m map[string]any, label string, depth int) {
	if len(m) == 0 {
		b.leaf(depth, label, "{}")
		return
	}
	childDepth := b.branch(depth, label)
	if depth >= maxTreeDepth {
		b.truncated = true
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.walk(m[k], k, childDepth)
	}
}

// branch emits the label line for a non-empty container and returns the
// depth its children indent to. The root container has no label line.
func (b *treeBuilder) branch(depth int, label string) int {
	if label == "" {
		return depth
	}
	b.add(depth, treeKeyStyle.Render(label)+":")
	return depth + 1
}

func (b *treeBuilder) leaf(depth int, label, value string) {
	if label == "" {
		b.add(depth, value)
		return
	}
	b.add(depth, treeKeyStyle.Render(label)+": "+value)
}

func formatScalar(v any) string {
	switch s := v.(type) {
	case nil:
		return treeNullStyle.Render("null")
	case string:
		return treeStringStyle.Render(strconv.Quote(s))
	case bool:
		return treeBoolStyle.Render(strconv.FormatBool(s))
	case float64:
		return treeNumberStyle.Render(strconv.FormatFloat(s, 'g', -1, 64))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32:
		return treeNumberStyle.Render(fmt.Sprintf("%v", s))
	case time.Time:
		return treeNumberStyle.Render(s.Format(time.RFC3339))
	default:
		return fmt.Sprintf("%v", s)
	}
}
