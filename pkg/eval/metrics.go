package eval

// Classification metrics for binary labels 0/1.

// Accuracy is the fraction of matching predictions.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// BinaryPredFromProba thresholds probabilities into hard 0/1 labels.
func BinaryPredFromProba(proba []float64, threshold float64) []int {
	out := make([]int, len(proba))
	for i, p := range proba {
		if p >= threshold {
			out[i] = 1
		}
	}
	return out
}

// PrecisionRecallF1 computes precision, recall and F1 for the positive class.
func PrecisionRecallF1(yTrue, yPred []int) (prec, rec, f1 float64) {
	tp, fp, fn := 0, 0, 0
	for i := range yTrue {
		if yPred[i] == 1 && yTrue[i] == 1 {
			tp++
		}
		if yPred[i] == 1 && yTrue[i] == 0 {
			fp++
		}
		if yPred[i] == 0 && yTrue[i] == 1 {
			fn++
		}
	}
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}
