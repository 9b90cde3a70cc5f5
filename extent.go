package geocon

import "math"

// Extent is a caller-supplied bounding box used to crop a grid at load
// time, in degrees.
type Extent struct {
	SLat, WLon, NLat, ELon float64
}

// cropSnapEps absorbs floating-point noise when a crop boundary lands
// exactly on a grid line, so an exact hit doesn't spuriously skip one
// extra row or column.
const cropSnapEps = 1e-9

// cropExtent computes the cropped in-memory geometry for a load: the new
// bounds, row/column counts, and the row/col offset into the original
// grid's canonical indexing where the cropped window begins.
//
// The crop snaps inward to whole multiples of the deltas - the kept
// bounds are a subset of the requested box, not a superset - so that a
// caller's box never pulls in a row or column outside what they asked
// for.
func cropExtent(origLatMin, origLatMax, origLonMin, origLonMax, latDelta, lonDelta float64, origNRows, origNCols int, ext Extent) (newLatMin, newLatMax, newLonMin, newLonMax float64, newNRows, newNCols, rowOffset, colOffset int, err error) {
	if ext.SLat >= ext.NLat || ext.WLon >= ext.ELon {
		return 0, 0, 0, 0, 0, 0, 0, 0, ErrInvalidExtent
	}

	cropSouth := math.Max(ext.SLat, origLatMin)
	cropNorth := math.Min(ext.NLat, origLatMax)
	cropWest := math.Max(ext.WLon, origLonMin)
	cropEast := math.Min(ext.ELon, origLonMax)
	if cropSouth >= cropNorth || cropWest >= cropEast {
		return 0, 0, 0, 0, 0, 0, 0, 0, ErrInvalidExtent
	}

	skipSouth := int(math.Ceil((cropSouth-origLatMin)/latDelta - cropSnapEps))
	skipNorth := int(math.Ceil((origLatMax-cropNorth)/latDelta - cropSnapEps))
	skipWest := int(math.Ceil((cropWest-origLonMin)/lonDelta - cropSnapEps))
	skipEast := int(math.Ceil((origLonMax-cropEast)/lonDelta - cropSnapEps))

	newLatMin = origLatMin + float64(skipSouth)*latDelta
	newLatMax = origLatMax - float64(skipNorth)*latDelta
	newLonMin = origLonMin + float64(skipWest)*lonDelta
	newLonMax = origLonMax - float64(skipEast)*lonDelta

	newNRows = origNRows - skipSouth - skipNorth
	newNCols = origNCols - skipWest - skipEast

	if newNRows < 2 || newNCols < 2 {
		return 0, 0, 0, 0, 0, 0, 0, 0, ErrInvalidExtent
	}

	return newLatMin, newLatMax, newLonMin, newLonMax, newNRows, newNCols, skipSouth, skipWest, nil
}

// recomputeGhostBounds sets the grid's ghost envelope to exactly one
// delta outside its current in-memory extent.
func (g *Grid) recomputeGhostBounds() {
	g.latGhostMin = g.Header.LatSouth - g.Header.LatDelta
	g.latGhostMax = g.Header.LatNorth + g.Header.LatDelta
	g.lonGhostMin = g.Header.LonWest - g.Header.LonDelta
	g.lonGhostMax = g.Header.LonEast + g.Header.LonDelta
}
