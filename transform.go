package geocon

import (
	"math"
	"runtime"
	"sync"

	"github.com/geocongrid/geocon/internal/interp"
)

// normalizeLon folds lon into (-180, +180], matching the grid's
// longitude convention.
func normalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon <= -180 {
		lon += 360
	}
	return lon
}

// approxEqual compares a and b with a relative tolerance near 2⁻⁵¹,
// matching the convergence/boundary epsilon throughout the grid.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= GeoconEps51*(1+(math.Abs(a)+math.Abs(b))/2)
}

// inGhost reports whether (latDeg, lonDeg) falls strictly inside the
// grid's ghost envelope - one delta beyond the real grid on every side -
// using epsilon-tolerant comparisons so a point that lands exactly on
// the ghost boundary is treated as outside it.
func (g *Grid) inGhost(latDeg, lonDeg float64) bool {
	if latDeg <= g.latGhostMin || approxEqual(latDeg, g.latGhostMin) {
		return false
	}
	if latDeg >= g.latGhostMax || approxEqual(latDeg, g.latGhostMax) {
		return false
	}
	if lonDeg <= g.lonGhostMin || approxEqual(lonDeg, g.lonGhostMin) {
		return false
	}
	if lonDeg >= g.lonGhostMax || approxEqual(lonDeg, g.lonGhostMax) {
		return false
	}
	return true
}

// calcShifts runs the chosen kernel at (latDeg, lonDeg) and returns
// shifts already divided by the header's horz/vert scale.
func (g *Grid) calcShifts(kind Interpolation, latDeg, lonDeg float64) (dLat, dLon, dHgt float64) {
	ext := interp.Extent{
		LatMin:   g.Header.LatSouth,
		LonMin:   g.Header.LonWest,
		LatDelta: g.Header.LatDelta,
		LonDelta: g.Header.LonDelta,
	}
	s := interp.Calculate(interp.Kind(kind), g.fetcher, ext, latDeg, lonDeg)
	return s.Lat / g.Header.HorzScale, s.Lon / g.Header.HorzScale, s.Hgt / g.Header.VertScale
}

// Transform applies the grid to n points, where coords[i] = [lon, lat]
// in caller units and heights[i] (if heights is non-nil) is the matching
// height in caller units. degFactor converts caller units to degrees,
// hgtFactor converts caller height units to metres. Points outside the
// grid's ghost envelope are left unchanged and excluded from the
// returned count; every other point is mutated in place. Points are
// processed in index order.
func (g *Grid) Transform(kind Interpolation, degFactor, hgtFactor float64, coords [][2]float64, heights []float64, dir Direction) int {
	count := 0
	for i := range coords {
		lonIn := coords[i][0]
		latIn := coords[i][1]
		var hgtIn float64
		if heights != nil {
			hgtIn = heights[i]
		}

		latDeg := latIn * degFactor
		lonDeg := normalizeLon(lonIn * degFactor)
		hgtM := hgtIn * hgtFactor

		if !g.inGhost(latDeg, lonDeg) {
			continue
		}

		var latOut, lonOut, hgtOut float64
		if dir == Forward {
			dLat, dLon, dHgt := g.calcShifts(kind, latDeg, lonDeg)
			latOut = latDeg + dLat
			lonOut = normalizeLon(lonDeg + dLon)
			hgtOut = hgtM + dHgt
		} else {
			latOut, lonOut, hgtOut = g.invert(kind, latDeg, lonDeg, hgtM)
		}

		coords[i][1] = latOut / degFactor
		coords[i][0] = lonOut / degFactor
		if heights != nil {
			heights[i] = hgtOut / hgtFactor
		}
		count++
	}
	return count
}

// invert iteratively subtracts forward shifts evaluated at the current
// estimate until the forward image of the estimate converges on the
// input coordinate (or MaxIterations is exhausted, in which case the
// last iterate is emitted anyway).
func (g *Grid) invert(kind Interpolation, latIn, lonIn, hgtIn float64) (lat, lon, hgt float64) {
	lat, lon, hgt = latIn, lonIn, hgtIn
	for k := 0; k < MaxIterations; k++ {
		dLat, dLon, dHgt := g.calcShifts(kind, lat, lon)
		latE := lat + dLat
		lonE := lon + dLon
		hgtE := hgt + dHgt

		deltaLat := latE - latIn
		deltaLon := lonE - lonIn
		deltaHgt := hgtE - hgtIn

		if approxEqual(deltaLat, 0) && approxEqual(deltaLon, 0) && approxEqual(deltaHgt, 0) {
			break
		}

		lat -= deltaLat
		lon -= deltaLon
		hgt -= deltaHgt
	}
	return lat, lon, hgt
}

// Forward is Transform bound to Direction Forward.
func (g *Grid) Forward(kind Interpolation, degFactor, hgtFactor float64, coords [][2]float64, heights []float64) int {
	return g.Transform(kind, degFactor, hgtFactor, coords, heights, Forward)
}

// Inverse is Transform bound to Direction Inverse.
func (g *Grid) Inverse(kind Interpolation, degFactor, hgtFactor float64, coords [][2]float64, heights []float64) int {
	return g.Transform(kind, degFactor, hgtFactor, coords, heights, Inverse)
}

// TransformConcurrent splits coords (and heights, if present) into
// contiguous chunks and runs Transform over each chunk on its own
// goroutine, using runtime.GOMAXPROCS(0) workers. A fully loaded grid
// needs no synchronization for this; a streaming grid serializes
// concurrent fetches behind its own mutex, so this is safe either way.
//
// Unlike Transform, this does not guarantee points are processed in
// overall index order: each chunk is internally ordered, but chunks run
// concurrently with each other. Callers who depend on the single-
// threaded ordering guarantee of Transform should use that instead; this
// is an opt-in accelerator, not the default.
func (g *Grid) TransformConcurrent(kind Interpolation, degFactor, hgtFactor float64, coords [][2]float64, heights []float64, dir Direction) int {
	n := len(coords)
	if n == 0 {
		return 0
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	counts := make([]int, workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(idx, start, end int) {
			defer wg.Done()
			var hSub []float64
			if heights != nil {
				hSub = heights[start:end]
			}
			counts[idx] = g.Transform(kind, degFactor, hgtFactor, coords[start:end], hSub, dir)
		}(w, start, end)
	}
	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
