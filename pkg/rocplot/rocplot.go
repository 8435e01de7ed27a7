package rocplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"roccv/pkg/eval"
)

// foldPalette cycles across per-fold curves; alpha keeps them visually
// behind the mean curve.
var foldPalette = []color.NRGBA{
	{R: 31, G: 119, B: 180, A: 110},
	{R: 255, G: 127, B: 14, A: 110},
	{R: 44, G: 160, B: 44, A: 110},
	{R: 214, G: 39, B: 40, A: 110},
	{R: 148, G: 103, B: 189, A: 110},
	{R: 140, G: 86, B: 75, A: 110},
}

// Composer assembles the shared ROC chart: per-fold curves, the chance
// diagonal, the mean curve and its +/-1 std band, on axes fixed to
// [-0.05, 1.05] so the unit square has a visual margin.
type Composer struct {
	p *plot.Plot
}

// New returns a Composer with titled, labeled and fixed-range axes and the
// legend in the lower right.
func New(title string) *Composer {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = -0.05, 1.05
	p.Y.Min, p.Y.Max = -0.05, 1.05
	p.Add(plotter.NewGrid())
	return &Composer{p: p}
}

// AddFold draws one fold's curve as a thin low-opacity line labeled with
// the fold index and its AUC.
func (c *Composer) AddFold(fold int, curve eval.Curve) error {
	l, err := plotter.NewLine(xyPoints(curve.FPR, curve.TPR))
	if err != nil {
		return fmt.Errorf("rocplot: fold %d line: %w", fold, err)
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = foldPalette[fold%len(foldPalette)]
	c.p.Add(l)
	c.p.Legend.Add(fmt.Sprintf("ROC fold %d (AUC = %.2f)", fold, curve.AUC), l)
	return nil
}

// AddChance draws the dashed diagonal reference line of a no-skill
// classifier.
func (c *Composer) AddChance() error {
	l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return fmt.Errorf("rocplot: chance line: %w", err)
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = color.NRGBA{R: 214, G: 39, B: 40, A: 200}
	l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	c.p.Add(l)
	c.p.Legend.Add("Chance", l)
	return nil
}

// AddMean draws the aggregate mean curve labeled with its AUC +/- std, and
// the shaded band between the lower and upper envelopes.
func (c *Composer) AddMean(s eval.Summary) error {
	band, err := plotter.NewPolygon(bandPoints(s.Grid, s.Upper, s.Lower))
	if err != nil {
		return fmt.Errorf("rocplot: std band: %w", err)
	}
	band.Color = color.NRGBA{R: 128, G: 128, B: 128, A: 50}
	band.LineStyle.Color = color.NRGBA{A: 0}
	c.p.Add(band)
	c.p.Legend.Add("+/- 1 std. dev.", band)

	mean, err := plotter.NewLine(xyPoints(s.Grid, s.MeanTPR))
	if err != nil {
		return fmt.Errorf("rocplot: mean line: %w", err)
	}
	mean.LineStyle.Width = vg.Points(2.5)
	mean.LineStyle.Color = color.NRGBA{R: 0, G: 0, B: 200, A: 255}
	c.p.Add(mean)
	c.p.Legend.Add(fmt.Sprintf("Mean ROC (AUC = %.2f +/- %.2f)", s.MeanAUC, s.StdAUC), mean)
	return nil
}

// Save renders the chart to path; the extension picks the format (png).
func (c *Composer) Save(path string) error {
	return c.p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// bandPoints walks the upper envelope left to right, then the lower one
// right to left, closing the fill region between them.
func bandPoints(grid, upper, lower []float64) plotter.XYs {
	n := len(grid)
	pts := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		pts = append(pts, plotter.XY{X: grid[i], Y: upper[i]})
	}
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: grid[i], Y: lower[i]})
	}
	return pts
}
