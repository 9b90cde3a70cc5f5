// Package interp implements the four GEOCON interpolation kernels:
// bilinear, bicubic, biquadratic (the default), and natural-spline-like
// smoothstep blending. Each kernel takes a query point in degrees and a
// Fetcher over the grid's nodes, and returns raw (unscaled) shifts -
// callers divide by the header's horz_scale/vert_scale afterward, which
// preserves precision better than scaling before interpolating.
package interp

import "github.com/geocongrid/geocon/internal/gcio"

// Kind selects one of the four interpolation kernels.
type Kind int

const (
	// Biquadratic is the default kernel, matching the library's default.
	Biquadratic Kind = iota
	Bilinear
	Bicubic
	NatSpline
)

// Extent is the subset of grid geometry the kernels need: the minimum
// corner and per-cell deltas of the in-memory grid extent.
type Extent struct {
	LatMin, LonMin     float64
	LatDelta, LonDelta float64
}

// Shifts is a grid-unit shift triple (before dividing by horz/vert scale).
type Shifts struct {
	Lat, Lon, Hgt float64
}

// Calculate dispatches to the requested kernel. An unrecognized Kind
// silently falls back to Biquadratic, matching the documented behavior
// for an unsupported interpolation tag.
func Calculate(kind Kind, f gcio.Fetcher, ext Extent, latDeg, lonDeg float64) Shifts {
	switch kind {
	case Bilinear:
		return bilinear(f, ext, latDeg, lonDeg)
	case Bicubic:
		return bicubic(f, ext, latDeg, lonDeg)
	case NatSpline:
		return natSpline(f, ext, latDeg, lonDeg)
	default:
		return biquadratic(f, ext, latDeg, lonDeg)
	}
}

// gridIndex floors toward -1 for negative fractions rather than toward
// zero, mirroring the original C (int) truncation combined with an
// explicit -1 fallback for negative values.
func gridIndex(v float64) int {
	if v < 0.0 {
		return -1
	}
	return int(v)
}

func bilinear(f gcio.Fetcher, ext Extent, latDeg, lonDeg float64) Shifts {
	gx := (lonDeg - ext.LonMin) / ext.LonDelta
	gy := (latDeg - ext.LatMin) / ext.LatDelta

	icol := gridIndex(gx)
	irow := gridIndex(gy)
	dx := gx - float64(icol)
	dy := gy - float64(irow)

	a := f.Fetch(irow, icol)
	b := f.Fetch(irow, icol+1)
	c := f.Fetch(irow+1, icol)
	d := f.Fetch(irow+1, icol+1)

	blend := func(h1, h2, h3, h4 float64) float64 {
		a00 := h1
		a10 := h2 - h1
		a01 := h3 - h1
		a11 := (h1 - h2) - (h3 - h4)
		return a00 + a10*dx + a01*dy + a11*dx*dy
	}

	return Shifts{
		Lat: blend(float64(a.LatValue), float64(b.LatValue), float64(c.LatValue), float64(d.LatValue)),
		Lon: blend(float64(a.LonValue), float64(b.LonValue), float64(c.LonValue), float64(d.LonValue)),
		Hgt: blend(float64(a.HgtValue), float64(b.HgtValue), float64(c.HgtValue), float64(d.HgtValue)),
	}
}

// cubic1D is the Catmull-Rom-style 1-D kernel anchored at h1, applied at
// parameter t in [0,1].
func cubic1D(h0, h1, h2, h3, t float64) float64 {
	a0 := h1
	d0 := h0 - a0
	d2 := h2 - a0
	d3 := h3 - a0
	a1 := d2 - (d0/3.0 + d3/6.0)
	a2 := (d0 + d2) / 2.0
	a3 := (d3-d0)/6.0 - d2/2.0
	return a0 + t*(a1+t*(a2+t*a3))
}

func bicubic(f gcio.Fetcher, ext Extent, latDeg, lonDeg float64) Shifts {
	gx := (lonDeg - ext.LonMin) / ext.LonDelta
	gy := (latDeg - ext.LatMin) / ext.LatDelta

	icol := gridIndex(gx)
	irow := gridIndex(gy)
	dx := gx - float64(icol)
	dy := gy - float64(irow)

	irow -= 1
	icol -= 1

	var pt [4][4]struct{ lat, lon, hgt float64 }
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			n := f.Fetch(irow+i, icol+j)
			pt[i][j] = struct{ lat, lon, hgt float64 }{
				float64(n.LatValue), float64(n.LonValue), float64(n.HgtValue),
			}
		}
	}

	collapse := func(sel func(i, j int) float64) float64 {
		var c [4]float64
		for j := 0; j < 4; j++ {
			c[j] = cubic1D(sel(0, j), sel(1, j), sel(2, j), sel(3, j), dy)
		}
		return cubic1D(c[0], c[1], c[2], c[3], dx)
	}

	return Shifts{
		Lat: collapse(func(i, j int) float64 { return pt[i][j].lat }),
		Lon: collapse(func(i, j int) float64 { return pt[i][j].lon }),
		Hgt: collapse(func(i, j int) float64 { return pt[i][j].hgt }),
	}
}

func biquadratic(f gcio.Fetcher, ext Extent, latDeg, lonDeg float64) Shifts {
	gx := (lonDeg - ext.LonMin) / ext.LonDelta
	gy := (latDeg - ext.LatMin) / ext.LatDelta

	icolLft := gridIndex(gx)
	icolCen := icolLft + 1
	icolRgt := icolLft + 2

	irowBot := gridIndex(gy)
	irowCen := irowBot + 1
	irowTop := irowBot + 2

	ncols := f.NCols()
	nrows := f.NRows()

	for icolRgt > ncols {
		icolLft--
		icolCen--
		icolRgt--
	}

	dx := (lonDeg - ext.LonDelta*float64(icolLft) - ext.LonMin) / ext.LonDelta
	if dx < 0.5 && icolLft > 0 {
		icolLft--
		icolCen--
		icolRgt--
		dx += 1.0
	}

	for irowTop > nrows {
		irowBot--
		irowCen--
		irowTop--
	}

	dy := (latDeg - ext.LatDelta*float64(irowBot) - ext.LatMin) / ext.LatDelta
	if dy < 0.5 && irowBot > 0 {
		irowBot--
		irowCen--
		irowTop--
		dy += 1.0
	}

	t1 := 0.5 * (dx - 1.0)
	t2 := 0.5 * (dy - 1.0)

	a := f.Fetch(irowBot, icolLft)
	b := f.Fetch(irowBot, icolCen)
	c := f.Fetch(irowBot, icolRgt)
	d := f.Fetch(irowCen, icolLft)
	e := f.Fetch(irowCen, icolCen)
	g := f.Fetch(irowCen, icolRgt)
	h := f.Fetch(irowTop, icolLft)
	i := f.Fetch(irowTop, icolCen)
	j := f.Fetch(irowTop, icolRgt)

	rowBlend := func(lft, cen, rgt float64) float64 {
		diff := cen - lft
		return lft + dx*(diff+t1*(rgt-cen-diff))
	}

	calc := func(la, lb, lc, ld, le, lg, lh, li, lj float64) float64 {
		f0 := rowBlend(la, lb, lc)
		f1 := rowBlend(ld, le, lg)
		f2 := rowBlend(lh, li, lj)
		diff := f1 - f0
		return f0 + dy*(diff+t2*(f2-f1-diff))
	}

	return Shifts{
		Lat: calc(float64(a.LatValue), float64(b.LatValue), float64(c.LatValue),
			float64(d.LatValue), float64(e.LatValue), float64(g.LatValue),
			float64(h.LatValue), float64(i.LatValue), float64(j.LatValue)),
		Lon: calc(float64(a.LonValue), float64(b.LonValue), float64(c.LonValue),
			float64(d.LonValue), float64(e.LonValue), float64(g.LonValue),
			float64(h.LonValue), float64(i.LonValue), float64(j.LonValue)),
		Hgt: calc(float64(a.HgtValue), float64(b.HgtValue), float64(c.HgtValue),
			float64(d.HgtValue), float64(e.HgtValue), float64(g.HgtValue),
			float64(h.HgtValue), float64(i.HgtValue), float64(j.HgtValue)),
	}
}

// smoothstepWeights returns the four Hermite smoothstep corner weights
// for a query at fractional offset (dx, dy) within its cell.
func smoothstepWeights(dx, dy float64) (wx0, wx1, wy0, wy1 float64) {
	wx0 = (1 - dx) * (1 - dx) * (3 - 2*(1-dx))
	wx1 = dx * dx * (3 - 2*dx)
	wy0 = (1 - dy) * (1 - dy) * (3 - 2*(1-dy))
	wy1 = dy * dy * (3 - 2*dy)
	return
}

func natSpline(f gcio.Fetcher, ext Extent, latDeg, lonDeg float64) Shifts {
	gx := (lonDeg - ext.LonMin) / ext.LonDelta
	gy := (latDeg - ext.LatMin) / ext.LatDelta

	icol := gridIndex(gx)
	irow := gridIndex(gy)
	dx := gx - float64(icol)
	dy := gy - float64(irow)

	wx0, wx1, wy0, wy1 := smoothstepWeights(dx, dy)

	a := f.Fetch(irow, icol)
	b := f.Fetch(irow, icol+1)
	c := f.Fetch(irow+1, icol)
	d := f.Fetch(irow+1, icol+1)

	blend := func(va, vb, vc, vd float64) float64 {
		return va*wx0*wy0 + vc*wx0*wy1 + vb*wx1*wy0 + vd*wx1*wy1
	}

	return Shifts{
		Lat: blend(float64(a.LatValue), float64(b.LatValue), float64(c.LatValue), float64(d.LatValue)),
		Lon: blend(float64(a.LonValue), float64(b.LonValue), float64(c.LonValue), float64(d.LonValue)),
		Hgt: blend(float64(a.HgtValue), float64(b.HgtValue), float64(c.HgtValue), float64(d.HgtValue)),
	}
}
