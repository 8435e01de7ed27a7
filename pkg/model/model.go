package model

// Model is a generic supervised learning interface over binary labels 0/1.
type Model interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
}

// Classifier is a Model that also exposes raw decision scores and
// calibrated probabilities for the positive class.
type Classifier interface {
	Model
	DecisionFunction(X [][]float64) []float64 // signed distance to the separating hyperplane
	PredictProba(X [][]float64) []float64     // p(y=1)
}
