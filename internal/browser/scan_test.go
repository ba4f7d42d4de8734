package browser

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gobwas/glob"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestScanDisplayOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "dir1"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	writeFile(t, filepath.Join(dir, "file1.txt"), 100)
	writeFile(t, filepath.Join(dir, "file2.csv"), 2048)

	view := Scan(dir, 1, ScanOptions{SortMode: SortName})

	want := []string{"..", "dir1/", "file1.txt", "file2.csv"}
	if len(view.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(view.Entries), len(want))
	}
	for i, name := range want {
		if view.Entries[i].DisplayName() != name {
			t.Errorf("entries[%d] = %q, want %q", i, view.Entries[i].DisplayName(), name)
		}
	}

	if view.Entries[2].Size != 100 {
		t.Errorf("file1.txt size = %d, want 100", view.Entries[2].Size)
	}
	if view.Entries[3].Size != 2048 {
		t.Errorf("file2.csv size = %d, want 2048", view.Entries[3].Size)
	}
}

func TestScanDirectoriesHaveNoSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	view := Scan(dir, 1, ScanOptions{})

	for _, e := range view.Entries {
		if e.IsDir() && e.Size != -1 {
			t.Errorf("directory %q carries size %d", e.Name, e.Size)
		}
	}
}

func TestScanHiddenFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".hidden"), 1)
	writeFile(t, filepath.Join(dir, "visible.txt"), 1)

	tests := []struct {
		name       string
		showHidden bool
		wantNames  []string
	}{
		{"hidden off", false, []string{"..", "visible.txt"}},
		{"hidden on", true, []string{"..", ".hidden", "visible.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Scan(dir, 1, ScanOptions{ShowHidden: tt.showHidden})
			if len(view.Entries) != len(tt.wantNames) {
				t.Fatalf("got %d entries, want %d", len(view.Entries), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if view.Entries[i].Name != name {
					t.Errorf("entries[%d] = %q, want %q", i, view.Entries[i].Name, name)
				}
			}
		})
	}
}

func TestScanIgnoreGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "module.pyc"), 1)
	writeFile(t, filepath.Join(dir, "module.py"), 1)

	view := Scan(dir, 1, ScanOptions{Ignore: []glob.Glob{glob.MustCompile("*.pyc")}})

	for _, e := range view.Entries {
		if e.Name == "module.pyc" {
			t.Error("ignored entry present in listing")
		}
	}
	found := false
	for _, e := range view.Entries {
		if e.Name == "module.py" {
			found = true
		}
	}
	if !found {
		t.Error("module.py missing from listing")
	}
}

func TestScanUnreadableDirectory(t *testing.T) {
	view := Scan("/no/such/directory", 7, ScanOptions{})

	// The listing stays usable: just the parent pseudo-entry, no error.
	if len(view.Entries) != 1 || view.Entries[0].Name != ".." {
		t.Fatalf("unreadable dir entries = %v", view.Entries)
	}
	if view.Generation != 7 {
		t.Errorf("generation = %d, want 7", view.Generation)
	}
}

func TestScanRootHasNoParent(t *testing.T) {
	view := Scan("/", 1, ScanOptions{})

	for _, e := range view.Entries {
		if e.Name == ".." {
			t.Error("root listing contains a parent pseudo-entry")
		}
	}
}

func TestScanSymlinks(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "target"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	writeFile(t, filepath.Join(dir, "plain.txt"), 42)

	links := map[string]string{
		"dirlink":    filepath.Join(dir, "target"),
		"filelink":   filepath.Join(dir, "plain.txt"),
		"brokenlink": filepath.Join(dir, "missing"),
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			t.Fatalf("symlink %s failed: %v", name, err)
		}
	}

	view := Scan(dir, 1, ScanOptions{})

	byName := map[string]Entry{}
	for _, e := range view.Entries {
		byName[e.Name] = e
	}

	if e := byName["dirlink"]; e.Kind != KindDir || !e.Symlink {
		t.Errorf("dirlink = kind %v symlink %v, want dir link", e.Kind, e.Symlink)
	}
	if e := byName["filelink"]; e.Kind != KindFile || !e.Symlink || e.Size != 42 {
		t.Errorf("filelink = kind %v symlink %v size %d, want resolved file of 42 bytes", e.Kind, e.Symlink, e.Size)
	}
	if e := byName["brokenlink"]; e.Kind != KindSymlink || e.Size != -1 {
		t.Errorf("brokenlink = kind %v size %d, want bare symlink without size", e.Kind, e.Size)
	}
}

func TestScannerGenerations(t *testing.T) {
	var s Scanner

	g1 := s.Next()
	g2 := s.Next()

	if g1 != 1 || g2 != 2 {
		t.Fatalf("generations = %d, %d, want 1, 2", g1, g2)
	}
	if s.Accepts(g1) {
		t.Error("stale generation accepted")
	}
	if !s.Accepts(g2) {
		t.Error("current generation rejected")
	}
	if s.Current() != g2 {
		t.Errorf("Current() = %d, want %d", s.Current(), g2)
	}
}

func TestStaleScanDiscarded(t *testing.T) {
	// Two scan requests: P1 issued first but arriving last must lose to P2.
	p1 := t.TempDir()
	p2 := t.TempDir()
	writeFile(t, filepath.Join(p1, "from-p1.txt"), 1)
	writeFile(t, filepath.Join(p2, "from-p2.txt"), 1)

	var s Scanner
	g1 := s.Next()
	g2 := s.Next()

	var live *DirectoryView
	apply := func(v *DirectoryView) {
		if s.Accepts(v.Generation) {
			live = v
		}
	}

	// P2 finishes first, P1's result arrives after it.
	apply(Scan(p2, g2, ScanOptions{}))
	apply(Scan(p1, g1, ScanOptions{}))

	if live == nil {
		t.Fatal("no view applied")
	}
	if live.Path != p2 {
		t.Errorf("live view = %s, want %s", live.Path, p2)
	}
	found := false
	for _, e := range live.Entries {
		if e.Name == "from-p2.txt" {
			found = true
		}
		if e.Name == "from-p1.txt" {
			t.Error("stale P1 entry leaked into the live view")
		}
	}
	if !found {
		t.Error("P2 entry missing from the live view")
	}
}
