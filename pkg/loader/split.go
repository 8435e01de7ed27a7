package loader

import (
	"fmt"
	"math/rand"
	"sort"
)

// Fold holds one train/test partition as index sets into the full dataset.
type Fold struct {
	Train []int
	Test  []int
}

// StratifiedKFold partitions sample indices into k folds whose class
// proportions approximate the global proportions. Indices of each class are
// shuffled with rng and dealt round-robin across folds, so the test sets
// are mutually disjoint and together cover every sample exactly once.
func StratifiedKFold(y []int, k int, rng *rand.Rand) ([]Fold, error) {
	if k < 2 {
		return nil, fmt.Errorf("stratifiedkfold: k must be >= 2, got %d", k)
	}
	byClass := make(map[int][]int)
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}
	for label, members := range byClass {
		if len(members) < k {
			return nil, fmt.Errorf("stratifiedkfold: class %d has %d samples, fewer than k=%d", label, len(members), k)
		}
	}

	// Iterate classes in label order so the assignment depends only on rng.
	labels := make([]int, 0, len(byClass))
	for label := range byClass {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	testSets := make([][]int, k)
	for _, label := range labels {
		members := byClass[label]
		rng.Shuffle(len(members), func(a, b int) { members[a], members[b] = members[b], members[a] })
		for i, idx := range members {
			testSets[i%k] = append(testSets[i%k], idx)
		}
	}

	folds := make([]Fold, k)
	for f := range folds {
		inTest := make(map[int]bool, len(testSets[f]))
		for _, idx := range testSets[f] {
			inTest[idx] = true
		}
		train := make([]int, 0, len(y)-len(testSets[f]))
		for i := range y {
			if !inTest[i] {
				train = append(train, i)
			}
		}
		folds[f] = Fold{Train: train, Test: testSets[f]}
	}
	return folds, nil
}

// TrainTestSplit splits X, Y into train and test sets by ratio using rng.
func TrainTestSplit(X [][]float64, Y []int, testRatio float64, rng *rand.Rand) (XTrain, XTest [][]float64, YTrain, YTest []int) {
	n := len(X)
	indices := rng.Perm(n)
	nTest := int(float64(n) * testRatio)
	for i := 0; i < n; i++ {
		if i < nTest {
			XTest = append(XTest, X[indices[i]])
			YTest = append(YTest, Y[indices[i]])
		} else {
			XTrain = append(XTrain, X[indices[i]])
			YTrain = append(YTrain, Y[indices[i]])
		}
	}
	return
}

// Subset gathers the rows and labels of X, y at the given indices.
func Subset(X [][]float64, y []int, indices []int) ([][]float64, []int) {
	Xs := make([][]float64, len(indices))
	ys := make([]int, len(indices))
	for i, idx := range indices {
		Xs[i] = X[idx]
		ys[i] = y[idx]
	}
	return Xs, ys
}
