// Command geoconcvt transforms a single coordinate through a GEOCON
// grid file and prints the result. It is a thin wrapper over the
// library's public API, in the same spirit as a worked example: no
// argument-parsing framework, no output formatting beyond a plain
// print.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/golang/glog"

	"github.com/geocongrid/geocon"
)

var (
	gridPath   = flag.String("grid", "", "input GEOCON file (.gcb)")
	lon        = flag.Float64("lon", 0, "longitude in degrees")
	lat        = flag.Float64("lat", 0, "latitude in degrees")
	hgt        = flag.Float64("hgt", 0, "height in metres")
	interpName = flag.String("interp", "biquadratic", "bilinear|bicubic|biquadratic|natspline")
	inverse    = flag.Bool("inverse", false, "apply the inverse transform instead of forward")
)

func main() {
	flag.Parse()
	if err := run(context.Background()); err != nil {
		glog.Exitf("geoconcvt: %v", err)
	}
}

func run(_ context.Context) error {
	if *gridPath == "" {
		return fmt.Errorf("-grid is required")
	}

	kind, err := parseInterp(*interpName)
	if err != nil {
		return err
	}

	g, err := geocon.Load(*gridPath, nil, true)
	if err != nil {
		return fmt.Errorf("loading %q: %w", *gridPath, err)
	}
	defer g.Close()

	dir := geocon.Forward
	if *inverse {
		dir = geocon.Inverse
	}

	coords := [][2]float64{{*lon, *lat}}
	heights := []float64{*hgt}

	n := g.Transform(kind, 1.0, 1.0, coords, heights, dir)
	if n == 0 {
		return fmt.Errorf("point (lon=%v, lat=%v) is outside the grid's acceptance envelope", *lon, *lat)
	}

	fmt.Printf("lon=%.9f lat=%.9f hgt=%.4f\n", coords[0][0], coords[0][1], heights[0])
	return nil
}

func parseInterp(s string) (geocon.Interpolation, error) {
	switch s {
	case "bilinear":
		return geocon.Bilinear, nil
	case "bicubic":
		return geocon.Bicubic, nil
	case "biquadratic", "":
		return geocon.Biquadratic, nil
	case "natspline":
		return geocon.NatSpline, nil
	default:
		return 0, fmt.Errorf("unknown -interp %q", s)
	}
}
