package dataset

import (
	"bufio"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

//go:embed iris.csv
var irisFS embed.FS

// Class labels of the embedded table. The original iris data has a third
// class (virginica); it is already stripped here so the problem is binary.
const (
	ClassSetosa     = 0
	ClassVersicolor = 1
)

// Load parses the embedded two-class iris table and returns the feature
// matrix (100 x 4) and the label vector (0 = setosa, 1 = versicolor).
func Load() (X [][]float64, y []int, err error) {
	f, err := irisFS.Open("iris.csv")
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))
	if _, err := reader.Read(); err != nil { // header
		return nil, nil, fmt.Errorf("dataset: reading header: %w", err)
	}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: reading record: %w", err)
		}
		row := make([]float64, len(rec)-1)
		for i, s := range rec[:len(rec)-1] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("dataset: parsing %q: %w", s, err)
			}
			row[i] = v
		}
		var label int
		switch species := rec[len(rec)-1]; species {
		case "setosa":
			label = ClassSetosa
		case "versicolor":
			label = ClassVersicolor
		default:
			return nil, nil, fmt.Errorf("dataset: unexpected species %q", species)
		}
		X = append(X, row)
		y = append(y, label)
	}
	return X, y, nil
}
