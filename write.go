package geocon

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"

	"github.com/geocongrid/geocon/internal/byteorder"
	"github.com/geocongrid/geocon/internal/gcerrors"
	"github.com/geocongrid/geocon/internal/gcformat"
)

func nativeByteOrder() binary.ByteOrder {
	if byteorder.Native() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (g *Grid) resolveByteOrder(order ByteOrder) binary.ByteOrder {
	switch order {
	case Big:
		return binary.BigEndian
	case Little:
		return binary.LittleEndian
	case SameAsInput:
		if g.sourceOrder != nil {
			return g.sourceOrder
		}
		return nativeByteOrder()
	default: // Native
		return nativeByteOrder()
	}
}

// Write serializes the grid to path in the requested byte order. The
// output format is chosen from path's extension; only the binary form
// is implemented here (ascii is out of this library's core, same as
// Load). order=SameAsInput reuses the byte order the grid was read in,
// or native order for a grid that was never loaded from a file.
//
// Node storage direction is taken from the grid's current
// Header.LatDir/LonDir, which a caller may reassign before writing to
// request a different on-disk order; node values themselves are always
// held canonically (S->N, W->E) and are reordered here at write time.
func (g *Grid) Write(path string, order ByteOrder) error {
	switch FileType(path) {
	case Bin:
		// continue below
	case Asc:
		return errors.Wrap(gcerrors.ErrUnknownFiletype, "ascii grid writing is not part of this library's core")
	default:
		return errors.Wrapf(gcerrors.ErrUnknownFiletype, "unrecognized extension for %q", path)
	}
	if g.fetcher == nil {
		return errors.Wrap(gcerrors.ErrNullParameter, "grid has no data to write")
	}

	encOrder := g.resolveByteOrder(order)

	hdr := g.Header
	hdr.Magic = gcformat.Magic
	hdr.Version = gcformat.Version
	hdr.HdrLen = int32(gcformat.Len())
	hdr.Reserved = 0

	outF, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(gcerrors.ErrCannotOpenFile, "%q: %v", path, err)
	}

	if err := gcformat.WriteHeader(outF, &hdr, encOrder); err != nil {
		outF.Close()
		return err
	}

	nrows, ncols := int(hdr.NRows), int(hdr.NCols)
	latSToN := hdr.LatDir == gcformat.LatSouthToNorth
	lonWToE := hdr.LonDir == gcformat.LonWestToEast

	canonicalRow := func(storageRow int) int {
		if latSToN {
			return storageRow
		}
		return nrows - 1 - storageRow
	}
	canonicalCol := func(storageCol int) int {
		if lonWToE {
			return storageCol
		}
		return ncols - 1 - storageCol
	}

	for sr := 0; sr < nrows; sr++ {
		for sc := 0; sc < ncols; sc++ {
			node := g.fetcher.Fetch(canonicalRow(sr), canonicalCol(sc))
			if err := gcformat.WriteNode(outF, node, encOrder); err != nil {
				outF.Close()
				return err
			}
		}
	}

	if err := outF.Close(); err != nil {
		return errors.Wrap(gcerrors.ErrIOError, "closing output file")
	}
	return nil
}
