// Package gcio implements node fetch: given a row and column, return the
// shift triple stored there, either from an in-memory array or by seeking
// into an open file under a lock. Both paths implement the same
// ghost-cell policy: any (row, col) outside [0,nrows) x [0,ncols) yields
// a zero shift rather than an error.
package gcio

import (
	"encoding/binary"
	"io"
	"os"
	"sync"

	"github.com/golang/glog"

	"github.com/geocongrid/geocon/internal/gcformat"
)

// Fetcher returns the node at (row, col), or a zero-valued node if the
// indices fall outside the grid.
type Fetcher interface {
	Fetch(row, col int) gcformat.Node
	NRows() int
	NCols() int
}

// MemFetcher serves nodes from an in-memory array laid out S->N by row,
// W->E by column (row-major: index = row*ncols + col), the canonical
// order every loaded grid uses regardless of how the file stored them.
type MemFetcher struct {
	Points []gcformat.Node
	Rows   int
	Cols   int
}

func (m *MemFetcher) NRows() int { return m.Rows }
func (m *MemFetcher) NCols() int { return m.Cols }

func (m *MemFetcher) Fetch(row, col int) gcformat.Node {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return gcformat.Node{}
	}
	return m.Points[row*m.Cols+col]
}

// FileFetcher streams nodes on demand from an open file, serializing
// every read behind a single non-recursive mutex. The file's storage
// order may differ from the canonical in-memory order the rest of the
// library assumes (rows and/or columns may run in either direction);
// FileFetcher translates (row, col) in canonical order to the matching
// file offset before seeking.
type FileFetcher struct {
	mu sync.Mutex

	f           *os.File
	order       binary.ByteOrder
	pointsStart int64

	rows, cols int
	latSToN    bool
	lonWToE    bool
}

// NewFileFetcher constructs a streaming fetcher over f. pointsStart is the
// file offset where node records begin; rows/cols describe the grid in
// canonical orientation, while latSToN/lonWToE describe how the file
// itself stores rows/columns.
func NewFileFetcher(f *os.File, order binary.ByteOrder, pointsStart int64, rows, cols int, latSToN, lonWToE bool) *FileFetcher {
	return &FileFetcher{
		f:           f,
		order:       order,
		pointsStart: pointsStart,
		rows:        rows,
		cols:        cols,
		latSToN:     latSToN,
		lonWToE:     lonWToE,
	}
}

func (ff *FileFetcher) NRows() int { return ff.rows }
func (ff *FileFetcher) NCols() int { return ff.cols }

func (ff *FileFetcher) fileRow(row int) int {
	if ff.latSToN {
		return row
	}
	return (ff.rows - 1) - row
}

func (ff *FileFetcher) fileCol(col int) int {
	if ff.lonWToE {
		return col
	}
	return (ff.cols - 1) - col
}

// Fetch reads the node at (row, col) under the fetcher's mutex. A seek or
// short-read failure is logged and treated as a zero shift, the same way
// an out-of-range index is - documented streamed-fetch edge behavior.
func (ff *FileFetcher) Fetch(row, col int) gcformat.Node {
	if row < 0 || row >= ff.rows || col < 0 || col >= ff.cols {
		return gcformat.Node{}
	}

	offset := int64(ff.fileRow(row)*ff.cols+ff.fileCol(col))*gcformat.NodeSize + ff.pointsStart

	ff.mu.Lock()
	defer ff.mu.Unlock()

	if _, err := ff.f.Seek(offset, io.SeekStart); err != nil {
		glog.Warningf("geocon: seek failed at offset %d: %v", offset, err)
		return gcformat.Node{}
	}

	n, err := gcformat.ReadNode(ff.f, ff.order)
	if err != nil {
		glog.Warningf("geocon: short read fetching node (row=%d col=%d): %v", row, col, err)
		return gcformat.Node{}
	}
	return n
}
