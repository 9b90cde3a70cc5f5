package geocon

import (
	"testing"

	"github.com/geocongrid/geocon/internal/gcformat"
)

func TestCreatePresetsMagicAndVersion(t *testing.T) {
	g := Create()
	if g.Header.Magic != gcformat.Magic {
		t.Errorf("Magic = %#x, want %#x", g.Header.Magic, gcformat.Magic)
	}
	if g.Header.Version != gcformat.Version {
		t.Errorf("Version = %d, want %d", g.Header.Version, gcformat.Version)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	g := Create()
	if err := g.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestFileType(t *testing.T) {
	for _, tt := range []struct {
		path string
		want Filetype
	}{
		{"grid.gcb", Bin},
		{"grid.GCB", Bin},
		{"grid.gca", Asc},
		{"grid.txt", Unknown},
		{"grid", Unknown},
	} {
		if got := FileType(tt.path); got != tt.want {
			t.Errorf("FileType(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
