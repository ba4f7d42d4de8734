package config

import (
	"fmt"
	"testing"
)

func TestPushHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		path    string
		want    []string
	}{
		{"empty", nil, "/a", []string{"/a"}},
		{"prepends", []string{"/a"}, "/b", []string{"/b", "/a"}},
		{"dedup moves to front", []string{"/a", "/b", "/c"}, "/b", []string{"/b", "/a", "/c"}},
		{"revisit front", []string{"/a", "/b"}, "/a", []string{"/a", "/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PushHistory(tt.history, tt.path)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("history[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPushHistoryCap(t *testing.T) {
	var history []string
	for i := 0; i < maxHistory+10; i++ {
		history = PushHistory(history, fmt.Sprintf("/dir%d", i))
	}

	if len(history) != maxHistory {
		t.Errorf("history len = %d, want %d", len(history), maxHistory)
	}
	if history[0] != fmt.Sprintf("/dir%d", maxHistory+9) {
		t.Errorf("most recent entry = %q", history[0])
	}
}

func TestSaveAndLoadHistory(t *testing.T) {
	t.Setenv("NCV_CONFIG_DIR", t.TempDir())

	history := []string{"/one", "/two", "/three"}
	if err := SaveHistory(history); err != nil {
		t.Fatalf("SaveHistory() failed: %v", err)
	}

	loaded := LoadHistory()
	if len(loaded) != 3 {
		t.Fatalf("loaded %d entries, want 3", len(loaded))
	}
	if loaded[0] != "/one" || loaded[2] != "/three" {
		t.Errorf("loaded history mismatch: %v", loaded)
	}
}

func TestLoadHistoryMissingFile(t *testing.T) {
	t.Setenv("NCV_CONFIG_DIR", t.TempDir())

	if history := LoadHistory(); history != nil {
		t.Errorf("missing file should yield nil, got %v", history)
	}
}
