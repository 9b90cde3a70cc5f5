package gcio

import "github.com/geocongrid/geocon/internal/gcformat"

// OffsetFetcher translates a smaller, cropped coordinate space onto a
// larger inner Fetcher by adding a fixed row/col offset before
// delegating. It is how an extent-cropped grid reads from the original
// file's full-grid Fetcher without the rest of the library needing to
// know a crop happened at all: out-of-range queries against the cropped
// bounds still return a zero node, same as any other Fetcher.
type OffsetFetcher struct {
	Inner                Fetcher
	RowOffset, ColOffset int
	Rows, Cols           int
}

func (o *OffsetFetcher) NRows() int { return o.Rows }
func (o *OffsetFetcher) NCols() int { return o.Cols }

func (o *OffsetFetcher) Fetch(row, col int) gcformat.Node {
	if row < 0 || row >= o.Rows || col < 0 || col >= o.Cols {
		return gcformat.Node{}
	}
	return o.Inner.Fetch(row+o.RowOffset, col+o.ColOffset)
}
