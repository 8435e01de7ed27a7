package experiment

import (
	"fmt"
	"math/rand"

	"roccv/pkg/dataset"
	"roccv/pkg/eval"
	"roccv/pkg/loader"
	"roccv/pkg/model"
)

// Config fixes every source of variation in one run. Equal configs produce
// bit-identical results.
type Config struct {
	Folds       int
	Seed        int64
	NoiseFactor int // noise columns appended per original feature
	Epochs      int
	C           float64
}

// DefaultConfig mirrors the reference experiment: six stratified folds,
// seed 0, and 200 noise columns per original feature.
func DefaultConfig() Config {
	return Config{Folds: 6, Seed: 0, NoiseFactor: 200, Epochs: 20, C: 1}
}

// FoldReport summarizes one held-out evaluation.
type FoldReport struct {
	Fold     int
	AUC      float64
	Accuracy float64
}

// Result carries the per-fold curves in fold order plus the aggregate.
type Result struct {
	Curves  []eval.Curve
	Reports []FoldReport
	Summary eval.Summary
}

// Run executes the whole pipeline sequentially: load the two-class table,
// append noise features, split into stratified folds, fit a linear SVM
// with probabilities per fold, evaluate the held-out ROC, and aggregate.
// Any failure aborts the run and propagates unmodified.
func Run(cfg Config) (*Result, error) {
	X, y, err := dataset.Load()
	if err != nil {
		return nil, err
	}
	X = dataset.WithNoise(X, cfg.NoiseFactor, cfg.Seed)

	rng := rand.New(rand.NewSource(cfg.Seed))
	folds, err := loader.StratifiedKFold(y, cfg.Folds, rng)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Curves:  make([]eval.Curve, 0, len(folds)),
		Reports: make([]FoldReport, 0, len(folds)),
	}
	for i, fold := range folds {
		XTrain, yTrain := loader.Subset(X, y, fold.Train)
		XTest, yTest := loader.Subset(X, y, fold.Test)

		clf := model.NewLinearSVC(
			model.WithC(cfg.C),
			model.WithEpochs(cfg.Epochs),
			model.WithProbability(true),
			model.WithRandomState(cfg.Seed+int64(i)),
		)
		if err := clf.Fit(XTrain, yTrain); err != nil {
			return nil, fmt.Errorf("experiment: fold %d: %w", i, err)
		}

		proba := clf.PredictProba(XTest)
		curve, err := eval.ROC(proba, yTest)
		if err != nil {
			return nil, fmt.Errorf("experiment: fold %d: %w", i, err)
		}
		res.Curves = append(res.Curves, curve)
		res.Reports = append(res.Reports, FoldReport{
			Fold:     i,
			AUC:      curve.AUC,
			Accuracy: eval.Accuracy(yTest, eval.BinaryPredFromProba(proba, 0.5)),
		})
	}

	summary, err := eval.Aggregate(res.Curves)
	if err != nil {
		return nil, err
	}
	res.Summary = summary
	return res, nil
}
