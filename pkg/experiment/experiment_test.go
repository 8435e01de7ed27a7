package experiment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roccv/pkg/eval"
	"roccv/pkg/experiment"
	"roccv/pkg/loader"
	"roccv/pkg/model"
)

// TestRun_EndToEnd runs the default experiment: six stratified folds over
// the two-class table with seed 0 must yield six fold curves and a finite
// aggregate without error.
func TestRun_EndToEnd(t *testing.T) {
	res, err := experiment.Run(experiment.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, res.Curves, 6)
	require.Len(t, res.Reports, 6)
	for f, c := range res.Curves {
		for i := range c.FPR {
			assert.GreaterOrEqual(t, c.FPR[i], 0.0, "fold %d", f)
			assert.LessOrEqual(t, c.FPR[i], 1.0, "fold %d", f)
			assert.GreaterOrEqual(t, c.TPR[i], 0.0, "fold %d", f)
			assert.LessOrEqual(t, c.TPR[i], 1.0, "fold %d", f)
		}
		assert.GreaterOrEqual(t, c.AUC, 0.0, "fold %d", f)
		assert.LessOrEqual(t, c.AUC, 1.0, "fold %d", f)
	}

	s := res.Summary
	require.Len(t, s.MeanTPR, eval.GridSize)
	assert.Equal(t, 0.0, s.MeanTPR[0])
	assert.Equal(t, 1.0, s.MeanTPR[eval.GridSize-1])
	for i := range s.Upper {
		assert.GreaterOrEqual(t, s.Upper[i], s.Lower[i], "point %d", i)
	}
	assert.GreaterOrEqual(t, s.MeanAUC, 0.0)
	assert.LessOrEqual(t, s.MeanAUC, 1.0)
}

// TestRun_Idempotent verifies a fixed config reproduces the run exactly:
// identical curves, reports and aggregate statistics.
func TestRun_Idempotent(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Epochs = 5 // keep the repeated run cheap

	a, err := experiment.Run(cfg)
	require.NoError(t, err)
	b, err := experiment.Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Curves, b.Curves)
	assert.Equal(t, a.Reports, b.Reports)
	assert.Equal(t, a.Summary, b.Summary)
}

// TestRun_SeparablePerformance: setosa and versicolor stay separable even
// under heavy noise augmentation, so the mean AUC should clear chance by
// a wide margin.
func TestRun_SeparablePerformance(t *testing.T) {
	res, err := experiment.Run(experiment.DefaultConfig())
	require.NoError(t, err)
	assert.Greater(t, res.Summary.MeanAUC, 0.6)
}

// TestRun_BadFoldCount verifies fold-count errors propagate unmodified.
func TestRun_BadFoldCount(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Folds = 1
	_, err := experiment.Run(cfg)
	assert.Error(t, err)
}

// TestChanceLevelOnNoise cross-validates the same classifier on pure
// noise features with arbitrary labels: held-out ranking power should
// hover near chance.
func TestChanceLevelOnNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 100
	X := make([][]float64, n)
	y := make([]int, n)
	for i := range X {
		row := make([]float64, 20)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		X[i] = row
		y[i] = i % 2
	}

	folds, err := loader.StratifiedKFold(y, 6, rng)
	require.NoError(t, err)

	var aucs []float64
	for i, fold := range folds {
		XTrain, yTrain := loader.Subset(X, y, fold.Train)
		XTest, yTest := loader.Subset(X, y, fold.Test)
		clf := model.NewLinearSVC(model.WithProbability(true), model.WithRandomState(int64(i)))
		require.NoError(t, clf.Fit(XTrain, yTrain))
		c, err := eval.ROC(clf.PredictProba(XTest), yTest)
		require.NoError(t, err)
		aucs = append(aucs, c.AUC)
	}
	mean := 0.0
	for _, a := range aucs {
		mean += a
	}
	mean /= float64(len(aucs))
	assert.Greater(t, mean, 0.2, "mean AUC should be near chance, not inverted")
	assert.Less(t, mean, 0.8, "mean AUC should be near chance, not skilled")
}
