package visualization

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"quickbio_go/dna"
	"quickbio_go/tools/seq_generator"
)

func TestGCPlotDataShortSequence(t *testing.T) {
	positions, values, err := GCPlotData("GGCA", DefaultWindowSize)
	if err != nil {
		t.Fatalf("GCPlotData: %v", err)
	}
	if !reflect.DeepEqual(positions, []int{0}) || !reflect.DeepEqual(values, []float64{0.75}) {
		t.Errorf("got %v %v, want [0] [0.75]", positions, values)
	}

	positions, values, err = GCPlotData("", 5)
	if err != nil {
		t.Fatalf("GCPlotData: %v", err)
	}
	if !reflect.DeepEqual(positions, []int{0}) || !reflect.DeepEqual(values, []float64{0}) {
		t.Errorf("empty sequence: got %v %v", positions, values)
	}
}

func TestGCPlotDataWindows(t *testing.T) {
	positions, values, err := GCPlotData("AAGGCCAA", 4)
	if err != nil {
		t.Fatalf("GCPlotData: %v", err)
	}
	wantPos := []int{2, 3, 4, 5, 6}
	wantGC := []float64{0.5, 0.75, 1, 0.75, 0.5}
	if !reflect.DeepEqual(positions, wantPos) {
		t.Errorf("positions = %v, want %v", positions, wantPos)
	}
	if !reflect.DeepEqual(values, wantGC) {
		t.Errorf("values = %v, want %v", values, wantGC)
	}
}

func TestGCPlotDataExactWindow(t *testing.T) {
	positions, values, err := GCPlotData("GCGAT", 5)
	if err != nil {
		t.Fatalf("GCPlotData: %v", err)
	}
	if !reflect.DeepEqual(positions, []int{2}) || !reflect.DeepEqual(values, []float64{0.6}) {
		t.Errorf("got %v %v, want [2] [0.6]", positions, values)
	}
}

func TestGCPlotDataMatchesGCContent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	seq := seq_generator.GenerateDNA(r, 500, 0.4, false)
	positions, values, err := GCPlotData(seq, DefaultWindowSize)
	if err != nil {
		t.Fatalf("GCPlotData: %v", err)
	}
	if len(positions) != 401 {
		t.Fatalf("got %d windows, want 401", len(positions))
	}
	for i, pos := range positions {
		if pos != i+50 {
			t.Fatalf("window %d centred at %d, want %d", i, pos, i+50)
		}
		if want := dna.GCContent(seq[i : i+100]); values[i] != want {
			t.Fatalf("window %d: gc = %v, want %v", i, values[i], want)
		}
	}
}

func TestGCPlotDataInvalidWindow(t *testing.T) {
	for _, w := range []int{0, -3} {
		if _, _, err := GCPlotData("ACGT", w); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("window %d: got %v, want ErrInvalidWindow", w, err)
		}
	}
}

func TestSummarizeGC(t *testing.T) {
	if got := SummarizeGC(nil); got != (GCSummary{}) {
		t.Errorf("empty summary = %+v", got)
	}

	single := SummarizeGC([]float64{0.4})
	if single.N != 1 || single.Mean != 0.4 || single.StdDev != 0 || single.Min != 0.4 || single.Max != 0.4 {
		t.Errorf("single summary = %+v", single)
	}

	s := SummarizeGC([]float64{0.25, 0.5, 0.75})
	if s.N != 3 || s.Min != 0.25 || s.Max != 0.75 {
		t.Errorf("summary = %+v", s)
	}
	if math.Abs(s.Mean-0.5) > 1e-12 {
		t.Errorf("mean = %v, want 0.5", s.Mean)
	}
	if math.Abs(s.StdDev-0.25) > 1e-12 {
		t.Errorf("stddev = %v, want 0.25", s.StdDev)
	}
}
