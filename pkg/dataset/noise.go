package dataset

import "math/rand"

// WithNoise appends factor*d standard-normal noise columns to every row of
// X, where d is the original feature count. The input rows are not
// modified; each output row is original features followed by noise.
// Deterministic for a fixed seed.
func WithNoise(X [][]float64, factor int, seed int64) [][]float64 {
	if len(X) == 0 || factor <= 0 {
		return X
	}
	d := len(X[0])
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, len(X))
	for i, row := range X {
		augmented := make([]float64, d+factor*d)
		copy(augmented, row)
		for j := d; j < len(augmented); j++ {
			augmented[j] = rng.NormFloat64()
		}
		out[i] = augmented
	}
	return out
}
