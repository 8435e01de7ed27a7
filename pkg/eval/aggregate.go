package eval

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GridSize is the number of evenly spaced FPR points every fold curve is
// interpolated onto before averaging.
const GridSize = 100

// FPRGrid returns GridSize evenly spaced points spanning [0, 1] inclusive.
func FPRGrid() []float64 {
	grid := make([]float64, GridSize)
	floats.Span(grid, 0, 1)
	return grid
}

// Summary aggregates per-fold ROC curves on a common FPR grid: the
// pointwise mean TPR, its standard deviation, the clamped +/-1 std
// envelope, and the mean/std of the per-fold AUC scalars.
type Summary struct {
	Grid    []float64
	MeanTPR []float64
	StdTPR  []float64
	Upper   []float64
	Lower   []float64
	MeanAUC float64
	StdAUC  float64
}

// Interp linearly interpolates the curve's TPR onto the given ascending
// FPR grid. The first interpolated value is forced to 0 so every
// interpolated curve honors the mandatory (0,0) origin.
func Interp(c Curve, grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = interpLinear(x, c.FPR, c.TPR)
	}
	if len(out) > 0 {
		out[0] = 0
	}
	return out
}

// Aggregate interpolates each curve onto the shared grid and reduces
// across folds. The final mean-TPR point is forced to exactly 1 (the ROC
// terminal point), and the envelope is clamped to [0, 1]. The AUC mean and
// std are computed over the per-fold AUC values, not from the mean curve.
func Aggregate(curves []Curve) (Summary, error) {
	if len(curves) < 2 {
		return Summary{}, errors.New("aggregate: need at least two curves")
	}
	grid := FPRGrid()
	interps := make([][]float64, len(curves))
	aucs := make([]float64, len(curves))
	for i, c := range curves {
		interps[i] = Interp(c, grid)
		aucs[i] = c.AUC
	}

	mean := make([]float64, GridSize)
	std := make([]float64, GridSize)
	col := make([]float64, len(curves))
	for j := 0; j < GridSize; j++ {
		for i := range interps {
			col[i] = interps[i][j]
		}
		mean[j], std[j] = stat.MeanStdDev(col, nil)
	}
	mean[GridSize-1] = 1

	upper := make([]float64, GridSize)
	lower := make([]float64, GridSize)
	for j := range mean {
		upper[j] = clamp01(mean[j] + std[j])
		lower[j] = clamp01(mean[j] - std[j])
	}

	meanAUC, stdAUC := stat.MeanStdDev(aucs, nil)
	return Summary{
		Grid:    grid,
		MeanTPR: mean,
		StdTPR:  std,
		Upper:   upper,
		Lower:   lower,
		MeanAUC: meanAUC,
		StdAUC:  stdAUC,
	}, nil
}

// interpLinear evaluates the piecewise-linear function through (xs, ys) at
// x, holding the boundary values outside the domain. xs must be ascending
// but may contain repeats (ROC curves are stair-stepped); at a repeated
// abscissa the rightmost point wins.
func interpLinear(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		for j+1 < n && xs[j+1] == x {
			j++
		}
		return ys[j]
	}
	x0, x1 := xs[j-1], xs[j]
	y0, y1 := ys[j-1], ys[j]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
