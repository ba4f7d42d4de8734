package browser

import (
	"testing"
	"time"
)

func TestSortDirsFirstEveryMode(t *testing.T) {
	now := time.Now()
	modes := []SortMode{SortName, SortSize, SortModified}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			entries := []Entry{
				{Name: "zz.txt", Kind: KindFile, Size: 10, ModTime: now},
				{Name: "beta", Kind: KindDir, Size: -1, ModTime: now.Add(-time.Hour)},
				{Name: "..", Kind: KindDir, Size: -1},
				{Name: "aa.txt", Kind: KindFile, Size: 99999, ModTime: now.Add(-2 * time.Hour)},
				{Name: "alpha", Kind: KindDir, Size: -1, ModTime: now},
			}

			Sort(entries, mode)

			if entries[0].Name != ".." {
				t.Fatalf("%v: first entry = %q, want ..", mode, entries[0].Name)
			}

			seenFile := false
			for _, e := range entries {
				if e.IsDir() && seenFile {
					t.Errorf("%v: directory %q after a file", mode, e.Name)
				}
				if !e.IsDir() {
					seenFile = true
				}
			}
		})
	}
}

func TestSortByName(t *testing.T) {
	entries := []Entry{
		{Name: "Gamma.txt", Kind: KindFile},
		{Name: "alpha.txt", Kind: KindFile},
		{Name: "Beta.txt", Kind: KindFile},
	}

	Sort(entries, SortName)

	want := []string{"alpha.txt", "Beta.txt", "Gamma.txt"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestSortBySize(t *testing.T) {
	entries := []Entry{
		{Name: "big.bin", Kind: KindFile, Size: 2048},
		{Name: "unknown.bin", Kind: KindFile, Size: -1},
		{Name: "small.bin", Kind: KindFile, Size: 100},
	}

	Sort(entries, SortSize)

	// Unknown size counts as 0, so it comes first under ascending order.
	want := []string{"unknown.bin", "small.bin", "big.bin"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestSortBySizeUnknownTiesWithEmpty(t *testing.T) {
	entries := []Entry{
		{Name: "b.bin", Kind: KindFile, Size: -1},
		{Name: "a.bin", Kind: KindFile, Size: 0},
	}

	Sort(entries, SortSize)

	// Both sort as size 0; the name fallback keeps the order deterministic.
	if entries[0].Name != "a.bin" || entries[1].Name != "b.bin" {
		t.Errorf("got order [%s, %s]", entries[0].Name, entries[1].Name)
	}
}

func TestSortByModified(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		{Name: "old.txt", Kind: KindFile, ModTime: now.Add(-48 * time.Hour)},
		{Name: "unknown.txt", Kind: KindFile},
		{Name: "new.txt", Kind: KindFile, ModTime: now},
	}

	Sort(entries, SortModified)

	// Most recent first; entries without a timestamp sort last.
	want := []string{"new.txt", "old.txt", "unknown.txt"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestSortModeCycle(t *testing.T) {
	mode := SortName
	seen := map[SortMode]bool{mode: true}
	for i := 0; i < 2; i++ {
		mode = mode.Next()
		if seen[mode] {
			t.Fatalf("cycle repeated %v before covering all modes", mode)
		}
		seen[mode] = true
	}
	if mode.Next() != SortName {
		t.Errorf("cycle did not return to name sort")
	}
}

func TestSortModeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want SortMode
	}{
		{"name", SortName},
		{"size", SortSize},
		{"modified", SortModified},
		{"bogus", SortName},
		{"", SortName},
	}

	for _, tt := range tests {
		if got := SortModeFromString(tt.in); got != tt.want {
			t.Errorf("SortModeFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
