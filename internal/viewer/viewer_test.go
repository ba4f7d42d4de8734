package viewer

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func plainLines(doc *Document) []string {
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		out[i] = stripANSI(line)
	}
	return out
}

func TestTextLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", "hello\tworld\nsecond line\n")

	doc, err := NewText("monokai").Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	joined := stripANSI(strings.Join(doc.Lines, "\n"))
	if !strings.Contains(joined, "hello") {
		t.Errorf("content missing from preview: %q", joined)
	}
	if strings.Contains(joined, "\t") {
		t.Error("tabs should be expanded to spaces")
	}
	if doc.Note != "" {
		t.Errorf("unexpected note %q", doc.Note)
	}
}

func TestTextLoadTruncatesLongFiles(t *testing.T) {
	content := strings.Repeat("line\n", maxTextLines+50)
	path := writeFile(t, t.TempDir(), "big.log", content)

	doc, err := NewText("monokai").Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(doc.Note, "truncated") {
		t.Errorf("expected truncation note, got %q", doc.Note)
	}
}

func TestTextLoadRejectsOversizedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	if err := os.WriteFile(path, make([]byte, maxTextSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewText("monokai").Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Lines) == 0 || !strings.Contains(doc.Lines[0], "too large") {
		t.Errorf("expected size notice, got %v", doc.Lines)
	}
}

func TestTextLoadMissingFile(t *testing.T) {
	_, err := NewText("monokai").Load(filepath.Join(t.TempDir(), "nope.txt"), 80)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestJSONLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "payload.json",
		`{"b": 2, "a": {"c": [1, 2]}, "ok": true, "n": null, "s": "hi"}`)

	doc, err := (&JSON{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{
		"a:",
		"  c:",
		"    [0]: 1",
		"    [1]: 2",
		"b: 2",
		"n: null",
		"ok: true",
		`s: "hi"`,
	}
	got := plainLines(doc)
	if len(got) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestJSONLinesLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "events.jsonl", "{\"id\": 1}\n{\"id\": 2}\n")

	doc, err := (&JSON{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"[0]:", "  id: 1", "[1]:", "  id: 2"}
	got := plainLines(doc)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestJSONLoadMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.json", "{nope")
	if _, err := (&JSON{}).Load(path, 80); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestYAMLLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml",
		"name: demo\nitems:\n  - one\n  - two\nenabled: true\n")

	doc, err := (&YAML{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{
		"enabled: true",
		"items:",
		`  [0]: "one"`,
		`  [1]: "two"`,
		`name: "demo"`,
	}
	got := plainLines(doc)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTOMLLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.toml", "title = \"demo\"\n\n[server]\nport = 8080\n")

	doc, err := (&TOML{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{
		"server:",
		"  port: 8080",
		`title: "demo"`,
	}
	got := plainLines(doc)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCSVLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "report.csv", "name,size\nalpha,100\nbeta,2\n")

	doc, err := (&CSV{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{
		"2 rows  2 cols",
		"name   size",
		"─────  ────",
		"alpha  100",
		"beta   2",
	}
	got := plainLines(doc)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCSVLoadTabSeparated(t *testing.T) {
	path := writeFile(t, t.TempDir(), "report.tsv", "name\tnote\nalpha\thas, comma\n")

	doc, err := (&CSV{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	joined := stripANSI(strings.Join(doc.Lines, "\n"))
	if !strings.Contains(joined, "has, comma") {
		t.Errorf("tab-separated cell mangled: %v", plainLines(doc))
	}
}

func TestCSVLoadCapsRows(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id\n")
	for i := 0; i < maxCSVRows+5; i++ {
		sb.WriteString("row\n")
	}
	path := writeFile(t, t.TempDir(), "big.csv", sb.String())

	doc, err := (&CSV{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Note == "" {
		t.Error("expected row cap note")
	}
	// Info line, header, rule, then the capped rows.
	if len(doc.Lines) != maxCSVRows+3 {
		t.Errorf("len(Lines) = %d, want %d", len(doc.Lines), maxCSVRows+3)
	}
	if !strings.Contains(stripANSI(doc.Lines[0]), "1000+ rows") {
		t.Errorf("info line = %q, want capped row count", stripANSI(doc.Lines[0]))
	}
}

func TestMarkdownLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "README.md", "# Demo\n\nSome *text*.\n")

	doc, err := (&Markdown{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	joined := stripANSI(strings.Join(doc.Lines, "\n"))
	if !strings.Contains(joined, "Demo") {
		t.Errorf("rendered markdown missing heading: %q", joined)
	}
}

func TestFallbackLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.bin", "xx")

	doc, err := (&Fallback{}).Load(path, 80)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	joined := strings.Join(doc.Lines, "\n")
	for _, field := range []string{"Name:", "Path:", "Size:", "Modified:", "Permissions:"} {
		if !strings.Contains(joined, field) {
			t.Errorf("metadata card missing %q", field)
		}
	}
	if !strings.Contains(joined, "data.bin") {
		t.Error("metadata card missing file name")
	}
}

func TestRenderTreeNodeCap(t *testing.T) {
	big := make([]any, maxTreeNodes+10)
	for i := range big {
		big[i] = i
	}
	lines, truncated := renderTree(big)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if len(lines) != maxTreeNodes {
		t.Errorf("len(lines) = %d, want %d", len(lines), maxTreeNodes)
	}
}

func TestRenderTreeDepthCap(t *testing.T) {
	var root any = "leaf"
	for i := 0; i < maxTreeDepth+20; i++ {
		root = map[string]any{"k": root}
	}
	if _, truncated := renderTree(root); !truncated {
		t.Fatal("expected truncation")
	}
}

func TestErrorDocument(t *testing.T) {
	doc := ErrorDocument("/tmp/x.txt", errors.New("permission denied"))
	joined := strings.Join(doc.Lines, "\n")
	if !strings.Contains(joined, "/tmp/x.txt") || !strings.Contains(joined, "permission denied") {
		t.Errorf("error document missing detail: %q", joined)
	}
}
