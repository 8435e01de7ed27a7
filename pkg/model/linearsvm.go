package model

import (
	"errors"
	"math/rand"
	"runtime"
	"sync"

	"roccv/pkg/optim"
)

// LinearSVC is a linear-kernel support vector classifier trained by
// epoch-decayed stochastic subgradient descent on the L2-regularized hinge
// objective (Pegasos schedule). With probability enabled, Fit additionally
// fits a Platt calibration over the training decision values so
// PredictProba returns calibrated p(y=1).
type LinearSVC struct {
	// Hyperparameters / options
	C           float64
	Epochs      int
	Probability bool
	RandomState int64

	// Fitted state
	W []float64
	B float64

	platt *plattScaler
}

// LinearSVCOption is a functional config for LinearSVC.
type LinearSVCOption func(*LinearSVC)

func WithC(c float64) LinearSVCOption         { return func(m *LinearSVC) { m.C = c } }
func WithEpochs(n int) LinearSVCOption        { return func(m *LinearSVC) { m.Epochs = n } }
func WithProbability(p bool) LinearSVCOption  { return func(m *LinearSVC) { m.Probability = p } }
func WithRandomState(s int64) LinearSVCOption { return func(m *LinearSVC) { m.RandomState = s } }

// NewLinearSVC initializes the classifier with sensible defaults.
func NewLinearSVC(opts ...LinearSVCOption) *LinearSVC {
	m := &LinearSVC{
		C:           1.0,
		Epochs:      20,
		Probability: false,
		RandomState: 0,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Fit trains the classifier on X and binary labels y (0/1). The traversal
// order is shuffled each epoch with the model's RandomState, so a fixed
// state yields identical weights across runs.
func (m *LinearSVC) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("linearsvc: empty X")
	}
	n := len(X)
	if len(y) != n {
		return errors.New("linearsvc: X and y length mismatch")
	}
	d := len(X[0])
	for _, row := range X {
		if len(row) != d {
			return errors.New("linearsvc: ragged feature matrix")
		}
	}
	pos, neg := 0, 0
	targets := make([]float64, n) // labels remapped to -1/+1
	for i, label := range y {
		if label == 1 {
			targets[i] = 1
			pos++
		} else {
			targets[i] = -1
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return errors.New("linearsvc: training labels contain a single class")
	}

	lambda := 1.0 / (m.C * float64(n))
	m.W = make([]float64, d)
	m.B = 0

	rng := rand.New(rand.NewSource(m.RandomState))
	opt := optim.NewSGDWithDecay(0, lambda)
	grad := make([]float64, d)
	step := 0
	for ep := 0; ep < m.Epochs; ep++ {
		for _, i := range rng.Perm(n) {
			step++
			lr := 1.0 / (lambda * float64(step))
			opt.LearningRate = lr

			margin := targets[i] * (dot(m.W, X[i]) + m.B)
			if margin < 1 {
				for j, v := range X[i] {
					grad[j] = -targets[i] * v
				}
			} else {
				for j := range grad {
					grad[j] = 0
				}
			}
			opt.Step(m.W, grad)
			if margin < 1 {
				m.B += lr * targets[i]
			}
		}
	}

	if m.Probability {
		m.platt = fitPlatt(m.DecisionFunction(X), y)
	}
	return nil
}

// DecisionFunction returns the signed distance w.x + b for each row of X.
// Rows are scored in parallel across GOMAXPROCS workers.
func (m *LinearSVC) DecisionFunction(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	out := make([]float64, len(X))
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > len(X) {
			end = len(X)
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = dot(m.W, X[i]) + m.B
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// PredictProba returns p(y=1) per row. With probability enabled at fit
// time this is the Platt-calibrated estimate; otherwise a plain sigmoid
// over the decision values.
func (m *LinearSVC) PredictProba(X [][]float64) []float64 {
	scores := m.DecisionFunction(X)
	out := make([]float64, len(scores))
	for i, f := range scores {
		if m.platt != nil {
			out[i] = m.platt.predict(f)
		} else {
			out[i] = sigmoid(f)
		}
	}
	return out
}

// Predict returns class labels 0/1 by the sign of the decision value.
func (m *LinearSVC) Predict(X [][]float64) []int {
	scores := m.DecisionFunction(X)
	out := make([]int, len(scores))
	for i, f := range scores {
		if f >= 0 {
			out[i] = 1
		}
	}
	return out
}

func dot(w, x []float64) float64 {
	s := 0.0
	for j, v := range w {
		s += v * x[j]
	}
	return s
}
