package interp

import (
	"math"
	"testing"

	"github.com/geocongrid/geocon/internal/gcformat"
	"github.com/geocongrid/geocon/internal/gcio"
)

func square2x2() (*gcio.MemFetcher, Extent) {
	f := &gcio.MemFetcher{
		Rows: 2,
		Cols: 2,
		Points: []gcformat.Node{
			{LatValue: 0, LonValue: 0, HgtValue: 0},
			{LatValue: 1, LonValue: 1, HgtValue: 1},
			{LatValue: 1, LonValue: 1, HgtValue: 1},
			{LatValue: 0, LonValue: 0, HgtValue: 0},
		},
	}
	ext := Extent{LatMin: 0, LonMin: 0, LatDelta: 1, LonDelta: 1}
	return f, ext
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// TestBilinearCenterOfUnitSquare covers a 2x2 grid queried at its
// midpoint: corners (0,0,0)/(1,1,1)/(1,1,1)/(0,0,0)
// bilinearly blend to exactly a quarter of the corner sum at (0.5, 0.5).
func TestBilinearCenterOfUnitSquare(t *testing.T) {
	f, ext := square2x2()
	got := Calculate(Bilinear, f, ext, 0.5, 0.5)
	want := Shifts{Lat: 0.5, Lon: 0.5, Hgt: 0.5}
	if !approxEqual(got.Lat, want.Lat, 1e-9) || !approxEqual(got.Lon, want.Lon, 1e-9) || !approxEqual(got.Hgt, want.Hgt, 1e-9) {
		t.Errorf("Calculate(Bilinear, ...) = %+v, want %+v", got, want)
	}
}

func TestBilinearExactAtNode(t *testing.T) {
	f := &gcio.MemFetcher{
		Rows: 2,
		Cols: 2,
		Points: []gcformat.Node{
			{LatValue: 0.25, LonValue: 0.25, HgtValue: 0.25},
			{LatValue: 4, LonValue: 5, HgtValue: 6},
			{LatValue: 7, LonValue: 8, HgtValue: 9},
			{LatValue: 10, LonValue: 11, HgtValue: 12},
		},
	}
	ext := Extent{LatMin: 0, LonMin: 0, LatDelta: 1, LonDelta: 1}

	got := Calculate(Bilinear, f, ext, 0, 0)
	want := Shifts{Lat: 0.25, Lon: 0.25, Hgt: 0.25}
	if got != want {
		t.Errorf("Calculate(Bilinear, ..., 0, 0) = %+v, want %+v", got, want)
	}
}

func TestNatSplineExactAtNode(t *testing.T) {
	f := &gcio.MemFetcher{
		Rows: 2,
		Cols: 2,
		Points: []gcformat.Node{
			{LatValue: 3, LonValue: 4, HgtValue: 5},
			{LatValue: 4, LonValue: 5, HgtValue: 6},
			{LatValue: 7, LonValue: 8, HgtValue: 9},
			{LatValue: 10, LonValue: 11, HgtValue: 12},
		},
	}
	ext := Extent{LatMin: 0, LonMin: 0, LatDelta: 1, LonDelta: 1}

	got := Calculate(NatSpline, f, ext, 0, 0)
	want := Shifts{Lat: 3, Lon: 4, Hgt: 5}
	if !approxEqual(got.Lat, want.Lat, 1e-9) || !approxEqual(got.Lon, want.Lon, 1e-9) || !approxEqual(got.Hgt, want.Hgt, 1e-9) {
		t.Errorf("Calculate(NatSpline, ..., 0, 0) = %+v, want %+v", got, want)
	}
}

// TestBicubicConstantGridReproducesConstant checks that a constant-valued
// grid interpolates back to that same constant everywhere, for any query
// point, since all sixteen weights used by the kernel sum to one.
func TestBicubicConstantGridReproducesConstant(t *testing.T) {
	pts := make([]gcformat.Node, 36)
	for i := range pts {
		pts[i] = gcformat.Node{LatValue: 5, LonValue: -3, HgtValue: 1.5}
	}
	f := &gcio.MemFetcher{Rows: 6, Cols: 6, Points: pts}
	ext := Extent{LatMin: 0, LonMin: 0, LatDelta: 1, LonDelta: 1}

	got := Calculate(Bicubic, f, ext, 2.37, 3.81)
	want := Shifts{Lat: 5, Lon: -3, Hgt: 1.5}
	if !approxEqual(got.Lat, want.Lat, 1e-6) || !approxEqual(got.Lon, want.Lon, 1e-6) || !approxEqual(got.Hgt, want.Hgt, 1e-6) {
		t.Errorf("Calculate(Bicubic, ...) on constant grid = %+v, want %+v", got, want)
	}
}

func TestBiquadraticConstantGridReproducesConstant(t *testing.T) {
	pts := make([]gcformat.Node, 25)
	for i := range pts {
		pts[i] = gcformat.Node{LatValue: 2, LonValue: 2, HgtValue: 2}
	}
	f := &gcio.MemFetcher{Rows: 5, Cols: 5, Points: pts}
	ext := Extent{LatMin: 0, LonMin: 0, LatDelta: 1, LonDelta: 1}

	got := Calculate(Biquadratic, f, ext, 2.5, 2.5)
	want := Shifts{Lat: 2, Lon: 2, Hgt: 2}
	if !approxEqual(got.Lat, want.Lat, 1e-6) || !approxEqual(got.Lon, want.Lon, 1e-6) || !approxEqual(got.Hgt, want.Hgt, 1e-6) {
		t.Errorf("Calculate(Biquadratic, ...) on constant grid = %+v, want %+v", got, want)
	}
}

func TestUnrecognizedKindFallsBackToBiquadratic(t *testing.T) {
	pts := make([]gcformat.Node, 25)
	for i := range pts {
		pts[i] = gcformat.Node{LatValue: 9, LonValue: 9, HgtValue: 9}
	}
	f := &gcio.MemFetcher{Rows: 5, Cols: 5, Points: pts}
	ext := Extent{LatMin: 0, LonMin: 0, LatDelta: 1, LonDelta: 1}

	got := Calculate(Kind(99), f, ext, 2.2, 2.2)
	want := Calculate(Biquadratic, f, ext, 2.2, 2.2)
	if got != want {
		t.Errorf("Calculate(unrecognized) = %+v, want fallback %+v", got, want)
	}
}
