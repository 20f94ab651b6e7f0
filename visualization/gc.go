package visualization

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"quickbio_go/dna"
)

// DefaultWindowSize is the sliding window width used when callers have no preference.
const DefaultWindowSize = 100

var ErrInvalidWindow = errors.New("window size must be at least 1")

// GCPlotData slides a window of windowSize bases across seq with stride 1 and
// returns, for each window, its centre (start + windowSize/2) and its GC
// content. A sequence shorter than the window yields a single point at
// position 0 holding the GC content of the whole sequence.
func GCPlotData(seq string, windowSize int) ([]int, []float64, error) {
	if windowSize < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, windowSize)
	}

	bases := []rune(seq)
	if len(bases) < windowSize {
		return []int{0}, []float64{dna.GCContent(seq)}, nil
	}

	n := len(bases) - windowSize + 1
	positions := make([]int, 0, n)
	gcValues := make([]float64, 0, n)
	for start := 0; start < n; start++ {
		window := string(bases[start : start+windowSize])
		positions = append(positions, start+windowSize/2)
		gcValues = append(gcValues, dna.GCContent(window))
	}
	return positions, gcValues, nil
}

// GCSummary describes a GC content series.
type GCSummary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// SummarizeGC computes summary statistics of GC values. StdDev is the
// sample standard deviation and is 0 for fewer than two values.
func SummarizeGC(values []float64) GCSummary {
	if len(values) == 0 {
		return GCSummary{}
	}
	summary := GCSummary{
		N:    len(values),
		Mean: stat.Mean(values, nil),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
	if len(values) > 1 {
		summary.StdDev = stat.StdDev(values, nil)
	}
	return summary
}
