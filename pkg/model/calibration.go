package model

import "math"

// plattScaler maps raw decision values to probabilities through a fitted
// sigmoid p = 1 / (1 + exp(a*f + b)).
type plattScaler struct {
	a, b float64
}

func (p *plattScaler) predict(f float64) float64 {
	return sigmoid(-(p.a*f + p.b))
}

// fitPlatt fits the sigmoid parameters by gradient descent on the binary
// cross-entropy of the training decision values. Deterministic: fixed
// initialization, fixed iteration count.
func fitPlatt(scores []float64, y []int) *plattScaler {
	n := float64(len(scores))
	// Platt's smoothed targets guard against overconfident calibration on
	// separable training sets.
	pos, neg := 0.0, 0.0
	for _, label := range y {
		if label == 1 {
			pos++
		} else {
			neg++
		}
	}
	tPos := (pos + 1) / (pos + 2)
	tNeg := 1 / (neg + 2)

	a, b := -1.0, 0.0
	const iters = 500
	const lr = 0.1
	for it := 0; it < iters; it++ {
		var ga, gb float64
		for i, f := range scores {
			t := tNeg
			if y[i] == 1 {
				t = tPos
			}
			p := sigmoid(-(a*f + b))
			d := t - p // gradient of the cross-entropy in a*f+b
			ga += d * f
			gb += d
		}
		a -= lr * ga / n
		b -= lr * gb / n
	}
	return &plattScaler{a: a, b: b}
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// logLoss is the mean binary cross-entropy of probabilities p against
// labels y, with clamping away from exact 0 and 1.
func logLoss(y []int, p []float64) float64 {
	n := len(y)
	s := 0.0
	for i := 0; i < n; i++ {
		pi := math.Min(math.Max(p[i], 1e-12), 1-1e-12)
		if y[i] == 1 {
			s += -math.Log(pi)
		} else {
			s += -math.Log(1 - pi)
		}
	}
	return s / float64(n)
}
