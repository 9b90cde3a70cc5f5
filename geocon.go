// Package geocon loads, crops, transforms through, and writes back
// GEOCON datum-transformation grid files: regular lat/lon meshes of
// (Δlat, Δlon, Δhgt) shift triples used to convert coordinates between
// geodetic reference frames.
package geocon

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"

	"github.com/geocongrid/geocon/internal/gcformat"
	"github.com/geocongrid/geocon/internal/gcio"
)

// Direction selects which way a Transform call applies the grid.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

// Interpolation selects one of the four kernels. Values line up with
// internal/interp.Kind so they convert with a plain cast; Biquadratic is
// zero and is the default, matching the library's documented default.
type Interpolation int

const (
	Biquadratic Interpolation = iota
	Bilinear
	Bicubic
	NatSpline
)

// ByteOrder selects the byte order a grid is written in.
type ByteOrder int

const (
	Native ByteOrder = iota
	Big
	Little
	SameAsInput
)

// Filetype is the format a path names, inferred from its extension only.
type Filetype int

const (
	Unknown Filetype = iota
	Bin
	Asc
)

// FileType infers a Filetype from path's extension (".gcb" or ".gca",
// case-insensitive), with no content sniffing.
func FileType(path string) Filetype {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gcb":
		return Bin
	case ".gca":
		return Asc
	default:
		return Unknown
	}
}

// MaxIterations bounds the inverse transform's convergence loop.
const MaxIterations = 50

// GeoconEps51 is the convergence/boundary comparison epsilon, chosen near
// 2⁻⁵¹ as a compromise between false-equal and false-unequal on typical
// geodetic magnitudes. Do not change this; it is load-bearing for the
// inverse transform's iteration count and the ghost-cell boundary tests.
const GeoconEps51 = 4.44089209850062616169453e-16

// Grid is a loaded (or freshly created) GEOCON grid: a copy of the file
// header, plus whatever fetch mechanism backs node lookups - an
// in-memory array for a fully loaded grid, or a locked file handle for a
// streaming one.
type Grid struct {
	Header gcformat.Header

	latGhostMin, latGhostMax float64
	lonGhostMin, lonGhostMax float64

	fetcher gcio.Fetcher
	file    *os.File

	sourceOrder binary.ByteOrder
	flip        bool
	closed      bool
}

// Create returns an empty grid with magic and version preset, the same
// starting point as a grid populated by Load.
func Create() *Grid {
	g := &Grid{}
	g.Header.Magic = gcformat.Magic
	g.Header.Version = gcformat.Version
	g.Header.LatDir = gcformat.LatSouthToNorth
	g.Header.LonDir = gcformat.LonWestToEast
	return g
}

func (g *Grid) NRows() int { return int(g.Header.NRows) }
func (g *Grid) NCols() int { return int(g.Header.NCols) }

func (g *Grid) LatMin() float64   { return g.Header.LatSouth }
func (g *Grid) LatMax() float64   { return g.Header.LatNorth }
func (g *Grid) LonMin() float64   { return g.Header.LonWest }
func (g *Grid) LonMax() float64   { return g.Header.LonEast }
func (g *Grid) LatDelta() float64 { return g.Header.LatDelta }
func (g *Grid) LonDelta() float64 { return g.Header.LonDelta }

// Flip reports whether the source file's byte order differed from the
// host's, i.e. whether every header field and node required swapping on
// the way in. It is always false for a freshly created grid.
func (g *Grid) Flip() bool { return g.flip }

func (g *Grid) Info() string   { return gcformat.TruncatedString(g.Header.Info[:]) }
func (g *Grid) Source() string { return gcformat.TruncatedString(g.Header.Source[:]) }
func (g *Grid) Date() string   { return gcformat.TruncatedString(g.Header.Date[:]) }

// Close releases the grid's resources: closes the backing file if one is
// open, and drops the node array/fetcher. Idempotent.
func (g *Grid) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.fetcher = nil
	if g.file != nil {
		f := g.file
		g.file = nil
		return f.Close()
	}
	return nil
}
