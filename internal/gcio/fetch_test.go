package gcio

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/geocongrid/geocon/internal/gcformat"
)

func TestMemFetcherGhostCells(t *testing.T) {
	m := &MemFetcher{
		Rows: 2,
		Cols: 2,
		Points: []gcformat.Node{
			{LatValue: 1, LonValue: 2, HgtValue: 3},
			{LatValue: 4, LonValue: 5, HgtValue: 6},
			{LatValue: 7, LonValue: 8, HgtValue: 9},
			{LatValue: 10, LonValue: 11, HgtValue: 12},
		},
	}

	if got := m.Fetch(0, 0); got.LatValue != 1 {
		t.Errorf("Fetch(0,0) = %+v, want LatValue=1", got)
	}
	if got := m.Fetch(1, 1); got.LatValue != 10 {
		t.Errorf("Fetch(1,1) = %+v, want LatValue=10", got)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		got := m.Fetch(rc[0], rc[1])
		if got != (gcformat.Node{}) {
			t.Errorf("Fetch(%d,%d) = %+v, want zero node", rc[0], rc[1], got)
		}
	}
}

func TestFileFetcherReadsThroughOffsetAndDirection(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "nodes-*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer tmp.Close()

	order := binary.BigEndian
	const preamble = 8 // pretend a header occupies the first 8 bytes
	buf := bytes.Repeat([]byte{0}, preamble)
	tmp.Write(buf)

	// Write a 2x2 grid stored S->N, W->E (canonical), so canonical and
	// file order coincide for this test.
	nodes := []gcformat.Node{
		{LatValue: 1}, {LatValue: 2},
		{LatValue: 3}, {LatValue: 4},
	}
	for _, n := range nodes {
		if err := gcformat.WriteNode(tmp, n, order); err != nil {
			t.Fatal(err)
		}
	}

	ff := NewFileFetcher(tmp, order, preamble, 2, 2, true, true)
	if got := ff.Fetch(0, 0); got.LatValue != 1 {
		t.Errorf("Fetch(0,0) = %+v, want LatValue=1", got)
	}
	if got := ff.Fetch(1, 1); got.LatValue != 4 {
		t.Errorf("Fetch(1,1) = %+v, want LatValue=4", got)
	}
	if got := ff.Fetch(5, 5); got != (gcformat.Node{}) {
		t.Errorf("Fetch(5,5) = %+v, want zero node", got)
	}
}

func TestFileFetcherReversedStorageDirection(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "nodes-*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer tmp.Close()

	order := binary.LittleEndian

	// File stores rows N->S, cols W->E. Canonical row 0 (south) is file
	// row 1 (last written); canonical row 1 (north) is file row 0.
	fileOrderNodes := []gcformat.Node{
		{LatValue: 100}, {LatValue: 101}, // file row 0 == canonical row 1 (north)
		{LatValue: 200}, {LatValue: 201}, // file row 1 == canonical row 0 (south)
	}
	for _, n := range fileOrderNodes {
		if err := gcformat.WriteNode(tmp, n, order); err != nil {
			t.Fatal(err)
		}
	}

	ff := NewFileFetcher(tmp, order, 0, 2, 2, false, true)
	if got := ff.Fetch(0, 0); got.LatValue != 200 {
		t.Errorf("Fetch(0,0) = %+v, want LatValue=200 (south row)", got)
	}
	if got := ff.Fetch(1, 0); got.LatValue != 100 {
		t.Errorf("Fetch(1,0) = %+v, want LatValue=100 (north row)", got)
	}
}
