package geocon

import (
	"os"

	"github.com/pkg/errors"

	"github.com/geocongrid/geocon/internal/gcerrors"
	"github.com/geocongrid/geocon/internal/gcformat"
	"github.com/geocongrid/geocon/internal/gcio"
)

// Load reads a GEOCON grid from path. When ext is non-nil, the grid is
// cropped to that bounding box at load time; rows and columns outside
// the crop are never read, only fseek'd past. When loadData is true,
// nodes are read eagerly into memory and the file is closed; when
// false, the header is read, the file stays open, and nodes are
// streamed on demand under a mutex.
//
// Loading the ascii ("gca") form is out of this library's scope; Load
// only understands the binary ("gcb") format and returns
// ErrUnknownFiletype for anything else.
func Load(path string, ext *Extent, loadData bool) (*Grid, error) {
	switch FileType(path) {
	case Bin:
		// continue below
	case Asc:
		return nil, errors.Wrap(gcerrors.ErrUnknownFiletype, "ascii grid loading is not part of this library's core")
	default:
		return nil, errors.Wrapf(gcerrors.ErrUnknownFiletype, "unrecognized extension for %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(gcerrors.ErrFileNotFound, "%q", path)
		}
		return nil, errors.Wrapf(gcerrors.ErrCannotOpenFile, "%q: %v", path, err)
	}

	hdr, order, flip, err := gcformat.ReadHeader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	origNRows := int(hdr.NRows)
	origNCols := int(hdr.NCols)
	latSToN := hdr.LatDir == gcformat.LatSouthToNorth
	lonWToE := hdr.LonDir == gcformat.LonWestToEast

	newLatMin, newLatMax := hdr.LatSouth, hdr.LatNorth
	newLonMin, newLonMax := hdr.LonWest, hdr.LonEast
	newNRows, newNCols := origNRows, origNCols
	rowOffset, colOffset := 0, 0

	if ext != nil {
		newLatMin, newLatMax, newLonMin, newLonMax, newNRows, newNCols, rowOffset, colOffset, err = cropExtent(
			hdr.LatSouth, hdr.LatNorth, hdr.LonWest, hdr.LonEast,
			hdr.LatDelta, hdr.LonDelta, origNRows, origNCols, *ext)
		if err != nil {
			f.Close()
			return nil, err
		}
	}

	pointsStart := int64(hdr.HdrLen)
	full := gcio.NewFileFetcher(f, order, pointsStart, origNRows, origNCols, latSToN, lonWToE)
	cropped := &gcio.OffsetFetcher{Inner: full, RowOffset: rowOffset, ColOffset: colOffset, Rows: newNRows, Cols: newNCols}

	g := &Grid{Header: *hdr, sourceOrder: order, flip: flip}
	g.Header.NRows = int32(newNRows)
	g.Header.NCols = int32(newNCols)
	g.Header.LatSouth, g.Header.LatNorth = newLatMin, newLatMax
	g.Header.LonWest, g.Header.LonEast = newLonMin, newLonMax
	g.recomputeGhostBounds()

	if loadData {
		points := make([]gcformat.Node, newNRows*newNCols)
		for r := 0; r < newNRows; r++ {
			for c := 0; c < newNCols; c++ {
				points[r*newNCols+c] = cropped.Fetch(r, c)
			}
		}
		if cerr := f.Close(); cerr != nil {
			return nil, errors.Wrap(gcerrors.ErrIOError, "closing source file after eager load")
		}
		g.fetcher = &gcio.MemFetcher{Points: points, Rows: newNRows, Cols: newNCols}
		g.file = nil
	} else {
		g.fetcher = cropped
		g.file = f
	}

	return g, nil
}
