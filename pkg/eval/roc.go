package eval

import (
	"errors"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Curve is one receiver operating characteristic curve: paired
// (FPR, TPR) points oriented from (0,0) to (1,1), plus the area under it.
type Curve struct {
	FPR []float64
	TPR []float64
	AUC float64
}

// ROC sweeps all distinct score thresholds and returns the resulting curve
// and its trapezoidal-rule area. Labels must be binary 0/1 and contain both
// classes; higher scores indicate the positive class.
func ROC(scores []float64, y []int) (Curve, error) {
	if len(scores) == 0 {
		return Curve{}, errors.New("roc: empty scores")
	}
	if len(scores) != len(y) {
		return Curve{}, errors.New("roc: scores and labels length mismatch")
	}
	s := make([]float64, len(scores))
	copy(s, scores)
	classes := make([]bool, len(y))
	pos := 0
	for i, label := range y {
		classes[i] = label == 1
		if classes[i] {
			pos++
		}
	}
	if pos == 0 || pos == len(y) {
		return Curve{}, errors.New("roc: labels contain a single class")
	}

	// stat.ROC wants scores in ascending order with labels kept aligned.
	stat.SortWeightedLabeled(s, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, s, classes, nil)

	// Orient the curve from (0,0) to (1,1) so integration and
	// interpolation see monotone abscissae.
	if fpr[0] > fpr[len(fpr)-1] {
		reverse(tpr)
		reverse(fpr)
	}
	auc := integrate.Trapezoidal(fpr, tpr)
	return Curve{FPR: fpr, TPR: tpr, AUC: auc}, nil
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
