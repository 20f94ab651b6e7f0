package visualization

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGCPlotSVG(t *testing.T) {
	positions, values, err := GCPlotData(strings.Repeat("AACGTTGCGA", 30), 50)
	if err != nil {
		t.Fatalf("GCPlotData: %v", err)
	}
	svg, err := GCPlotSVG(positions, values)
	if err != nil {
		t.Fatalf("GCPlotSVG: %v", err)
	}
	if !strings.Contains(svg, "<svg") {
		t.Errorf("output is not SVG: %.80q", svg)
	}
}

func TestGCPlotSVGRejectsBadInput(t *testing.T) {
	if _, err := GCPlotSVG([]int{0, 1}, []float64{0.5}); err == nil {
		t.Error("expected an error for mismatched series")
	}
	if _, err := GCPlotSVG(nil, nil); err == nil {
		t.Error("expected an error for an empty series")
	}
}

func TestSaveGCPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gc.svg")
	positions, values, err := GCPlotData("ACGTGGGCCCATAT", 4)
	if err != nil {
		t.Fatalf("GCPlotData: %v", err)
	}
	if err := SaveGCPlot(positions, values, path); err != nil {
		t.Fatalf("SaveGCPlot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestLogoSVG(t *testing.T) {
	svg, err := LogoSVG([]string{"ACGT", "ACGA", "UCGT"})
	if err != nil {
		t.Fatalf("LogoSVG: %v", err)
	}
	if !strings.Contains(svg, "<svg") {
		t.Errorf("output is not SVG: %.80q", svg)
	}
}

func TestLogoSVGErrors(t *testing.T) {
	if _, err := LogoSVG(nil); !errors.Is(err, ErrNoSequences) {
		t.Errorf("nil input: got %v, want ErrNoSequences", err)
	}
	if _, err := LogoSVG([]string{"", ""}); !errors.Is(err, ErrNoSequences) {
		t.Errorf("empty sequences: got %v, want ErrNoSequences", err)
	}
	if _, err := LogoSVG([]string{"AC", "A"}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("ragged input: got %v, want ErrLengthMismatch", err)
	}
}
