package viewer

import (
	"os"
	"path/filepath"
	"testing"
)

type stubViewer struct {
	name string
	exts []string
	prio int
}

func (s stubViewer) Name() string         { return s.name }
func (s stubViewer) Extensions() []string { return s.exts }
func (s stubViewer) Priority() int        { return s.prio }

func (s stubViewer) Load(string, int) (*Document, error) {
	return &Document{Title: s.name}, nil
}

func defaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewText("monokai"))
	r.Register(&Markdown{})
	r.Register(&JSON{})
	r.Register(&YAML{})
	r.Register(&TOML{})
	r.Register(&CSV{})
	r.Register(&Fallback{})
	return r
}

func TestResolveByExtension(t *testing.T) {
	r := defaultRegistry()
	missing := filepath.Join(t.TempDir(), "data.bin")

	cases := []struct {
		path string
		want string
	}{
		{"report.csv", "csv"},
		{"notes.txt", "text"},
		{"README.md", "markdown"},
		{"config.yaml", "yaml"},
		{"Cargo.toml", "toml"},
		{"payload.json", "json"},
		{"metrics.tsv", "csv"},
		{missing, "file info"},
	}
	for _, tc := range cases {
		if got := r.Resolve(tc.path).Name(); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolveTieBreak(t *testing.T) {
	r := NewRegistry()
	r.Register(stubViewer{name: "first", exts: []string{".x"}, prio: 5})
	r.Register(stubViewer{name: "second", exts: []string{".x"}, prio: 5})
	r.Register(stubViewer{name: "low", exts: []string{".y"}, prio: 1})
	r.Register(stubViewer{name: "high", exts: []string{".y"}, prio: 9})

	if got := r.Resolve("a.x").Name(); got != "first" {
		t.Errorf("equal priority should keep first registration, got %q", got)
	}
	if got := r.Resolve("a.y").Name(); got != "high" {
		t.Errorf("priority contest: got %q, want %q", got, "high")
	}
}

func TestResolveExtensionlessTextNames(t *testing.T) {
	r := defaultRegistry()
	dir := t.TempDir()
	// Binary content on purpose: the conventional name wins before sniffing.
	for _, name := range []string{"Makefile", "Dockerfile", "LICENSE"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte{0, 1, 2}, 0o644); err != nil {
			t.Fatal(err)
		}
		if got := r.Resolve(path).Name(); got != "text" {
			t.Errorf("Resolve(%q) = %q, want text", name, got)
		}
	}
}

func TestResolveContentSniff(t *testing.T) {
	r := defaultRegistry()
	dir := t.TempDir()

	text := filepath.Join(dir, "notes")
	if err := os.WriteFile(text, []byte("plain words\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve(text).Name(); got != "text" {
		t.Errorf("extensionless text file: got %q, want text", got)
	}

	blob := filepath.Join(dir, "blob.xyz")
	if err := os.WriteFile(blob, []byte{0x7f, 'E', 'L', 'F', 0, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve(blob).Name(); got != "file info" {
		t.Errorf("binary with unclaimed extension: got %q, want file info", got)
	}
}

func TestSniffText(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	cases := []struct {
		name string
		path string
		want bool
	}{
		{"plain text", write("a", []byte("hello\n")), true},
		{"empty file", write("b", nil), true},
		{"null byte", write("c", []byte{'a', 0, 'b'}), false},
		{"missing file", filepath.Join(dir, "nope"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sniffText(tc.path); got != tc.want {
				t.Errorf("sniffText = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	v := r.Resolve("anything.zzz")
	if v == nil {
		t.Fatal("Resolve returned nil")
	}
	if _, ok := v.(*Fallback); !ok {
		t.Errorf("empty registry should fall back to file info, got %T", v)
	}
}
