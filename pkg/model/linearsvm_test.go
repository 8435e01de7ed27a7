package model_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roccv/pkg/model"
)

// separableData builds a 2-D dataset split by the sign of the first
// feature with a wide margin.
func separableData(n int, seed int64) (X [][]float64, y []int) {
	rng := rand.New(rand.NewSource(seed))
	X = make([][]float64, n)
	y = make([]int, n)
	for i := range X {
		x1 := rng.Float64() + 0.5 // [0.5, 1.5]
		if i%2 == 0 {
			x1 = -x1
		} else {
			y[i] = 1
		}
		X[i] = []float64{x1, rng.NormFloat64()}
	}
	return
}

// TestLinearSVC_SeparableData verifies the classifier recovers a widely
// separable decision rule.
func TestLinearSVC_SeparableData(t *testing.T) {
	X, y := separableData(200, 0)
	clf := model.NewLinearSVC(model.WithEpochs(30), model.WithRandomState(0))
	require.NoError(t, clf.Fit(X, y))

	pred := clf.Predict(X)
	correct := 0
	for i := range y {
		if pred[i] == y[i] {
			correct++
		}
	}
	assert.GreaterOrEqual(t, float64(correct)/float64(len(y)), 0.98)
}

// TestLinearSVC_DecisionSignMatchesPredict verifies Predict is exactly the
// sign of DecisionFunction.
func TestLinearSVC_DecisionSignMatchesPredict(t *testing.T) {
	X, y := separableData(100, 1)
	clf := model.NewLinearSVC(model.WithRandomState(1))
	require.NoError(t, clf.Fit(X, y))

	scores := clf.DecisionFunction(X)
	pred := clf.Predict(X)
	for i, f := range scores {
		if f >= 0 {
			assert.Equal(t, 1, pred[i], "row %d", i)
		} else {
			assert.Equal(t, 0, pred[i], "row %d", i)
		}
	}
}

// TestLinearSVC_Deterministic verifies a fixed RandomState reproduces the
// fitted weights exactly.
func TestLinearSVC_Deterministic(t *testing.T) {
	X, y := separableData(120, 2)

	a := model.NewLinearSVC(model.WithRandomState(42), model.WithProbability(true))
	require.NoError(t, a.Fit(X, y))
	b := model.NewLinearSVC(model.WithRandomState(42), model.WithProbability(true))
	require.NoError(t, b.Fit(X, y))

	assert.Equal(t, a.W, b.W)
	assert.Equal(t, a.B, b.B)
	assert.Equal(t, a.PredictProba(X), b.PredictProba(X))
}

// TestLinearSVC_ProbaRangeAndOrder verifies probabilities are valid and
// monotone in the decision value.
func TestLinearSVC_ProbaRangeAndOrder(t *testing.T) {
	X, y := separableData(150, 3)
	clf := model.NewLinearSVC(model.WithProbability(true), model.WithRandomState(3))
	require.NoError(t, clf.Fit(X, y))

	scores := clf.DecisionFunction(X)
	proba := clf.PredictProba(X)
	for i := range proba {
		assert.GreaterOrEqual(t, proba[i], 0.0)
		assert.LessOrEqual(t, proba[i], 1.0)
		for j := range proba {
			if scores[i] < scores[j] {
				assert.LessOrEqual(t, proba[i], proba[j],
					"probability must not decrease as the decision value grows")
			}
		}
	}
}

// TestLinearSVC_FitErrors covers the degenerate inputs.
func TestLinearSVC_FitErrors(t *testing.T) {
	clf := model.NewLinearSVC()

	assert.Error(t, clf.Fit(nil, nil), "empty X must error")
	assert.Error(t, clf.Fit([][]float64{{1}, {2}}, []int{1}), "length mismatch must error")
	assert.Error(t, clf.Fit([][]float64{{1}, {2, 3}}, []int{0, 1}), "ragged X must error")

	err := clf.Fit([][]float64{{1}, {2}, {3}}, []int{1, 1, 1})
	assert.Error(t, err, "single-class labels must error")
}
