// Command gridquery interpolates a synthetic geophysical field on a
// regular longitude/latitude grid and reports timing statistics. It is a
// smoke-test and benchmarking utility, not a data processing tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	pyinterp "github.com/leexhwhy/pangeo-pyinterp"
)

const (
	defaultResolution = 1.0 // degrees per cell
	defaultQueries    = 100000
)

func main() {
	var (
		resolution = flag.Float64("resolution", defaultResolution, "Grid resolution in degrees")
		queries    = flag.Int("queries", defaultQueries, "Number of random query points")
		kernelName = flag.String("kernel", "bilinear", "Kernel: bilinear, nearest, inverse_distance, bicubic")
		bounds     = flag.String("bounds", "reject", "Bounds policy: reject, clamp, extrapolate")
		workers    = flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
		seed       = flag.Int64("seed", 1, "Random seed for query coordinates")
	)
	flag.Parse()

	opts := pyinterp.DefaultOptions()
	var err error
	if opts.Kernel, err = parseKernel(*kernelName); err != nil {
		log.Fatal(err)
	}
	if opts.Bounds, err = parseBounds(*bounds); err != nil {
		log.Fatal(err)
	}
	opts.Workers = *workers

	grid, err := buildGrid(*resolution)
	if err != nil {
		log.Fatalf("Failed to build grid: %v", err)
	}

	nLon := grid.X().Len()
	nLat := grid.Y().Len()
	fmt.Printf("Grid: %dx%d (%.3g MB), lon step %.3g°, circular=%v\n",
		nLon, nLat, float64(nLon*nLat*8)/(1<<20), grid.X().Step(), grid.X().IsCircular())
	fmt.Printf("Kernel: %s, bounds: %s, workers: %d\n", opts.Kernel, opts.Bounds, opts.Workers)

	rng := rand.New(rand.NewSource(*seed))
	lons := make([]float64, *queries)
	lats := make([]float64, *queries)
	for i := range lons {
		lons[i] = rng.Float64() * 360
		lats[i] = rng.Float64()*180 - 90
	}

	start := time.Now()
	out, err := grid.Bivariate(lons, lats, opts)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}
	elapsed := time.Since(start)

	var sum, maxAbsErr float64
	rejected := 0
	for i, v := range out {
		if math.IsNaN(v) {
			rejected++
			continue
		}
		sum += v
		if e := math.Abs(v - truthField(lons[i], lats[i])); e > maxAbsErr {
			maxAbsErr = e
		}
	}
	evaluated := len(out) - rejected

	fmt.Printf("\n%d queries in %v (%.0f queries/s)\n",
		len(out), elapsed, float64(len(out))/elapsed.Seconds())
	fmt.Printf("Evaluated: %d, rejected: %d\n", evaluated, rejected)
	if evaluated > 0 {
		fmt.Printf("Mean value: %.6f\n", sum/float64(evaluated))
		fmt.Printf("Max error vs analytic field: %.3g\n", maxAbsErr)
	}
}

// buildGrid samples the analytic truth field on a global grid with a
// circular longitude axis.
func buildGrid(resolution float64) (*pyinterp.Grid2D[float64], error) {
	nLon := int(math.Round(360 / resolution))
	nLat := int(math.Round(180/resolution)) + 1

	lons := make([]float64, nLon)
	for i := range lons {
		lons[i] = float64(i) * resolution
	}
	lats := make([]float64, nLat)
	for j := range lats {
		lats[j] = -90 + float64(j)*resolution
	}

	values := make([]float64, nLon*nLat)
	for i, lon := range lons {
		for j, lat := range lats {
			values[i*nLat+j] = truthField(lon, lat)
		}
	}
	return pyinterp.NewLonLatGrid(lons, lats, values)
}

// truthField is a smooth synthetic field with structure in both
// coordinates, periodic in longitude.
func truthField(lon, lat float64) float64 {
	return math.Sin(3*lon*math.Pi/180)*math.Cos(lat*math.Pi/180) +
		0.25*math.Cos(2*lat*math.Pi/180)
}

func parseKernel(s string) (pyinterp.Kernel, error) {
	switch s {
	case "bilinear":
		return pyinterp.Bilinear, nil
	case "nearest":
		return pyinterp.Nearest, nil
	case "inverse_distance":
		return pyinterp.InverseDistance, nil
	case "bicubic":
		return pyinterp.Bicubic, nil
	default:
		return 0, fmt.Errorf("unknown kernel %q", s)
	}
}

func parseBounds(s string) (pyinterp.BoundsPolicy, error) {
	switch s {
	case "reject":
		return pyinterp.Reject, nil
	case "clamp":
		return pyinterp.Clamp, nil
	case "extrapolate":
		return pyinterp.Extrapolate, nil
	default:
		return 0, fmt.Errorf("unknown bounds policy %q", s)
	}
}
