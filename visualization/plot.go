package visualization

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot dimensions for every rendered figure.
const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// logoColors follows logoSymbols.
var logoColors = []color.RGBA{
	{R: 255, A: 255},         // A
	{R: 255, G: 165, A: 255}, // T
	{B: 255, A: 255},         // G
	{G: 200, A: 255},         // C
	{R: 200, B: 200, A: 255}, // U
	{R: 150, G: 150, B: 150, A: 255},
}

var errNoPoints = errors.New("no GC values to plot")

func gcPlot(positions []int, gcValues []float64) (*plot.Plot, error) {
	if len(positions) != len(gcValues) {
		return nil, fmt.Errorf("%d positions for %d GC values", len(positions), len(gcValues))
	}
	if len(gcValues) == 0 {
		return nil, errNoPoints
	}

	p := plot.New()
	p.Title.Text = "Sliding Window GC Content"
	p.X.Label.Text = "Window Centre (bp)"
	p.Y.Label.Text = "GC Content (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	pts := make(plotter.XYs, len(gcValues))
	for i, val := range gcValues {
		pts[i].X = float64(positions[i])
		pts[i].Y = val * 100
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = color.RGBA{B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	p.Legend.Add("GC %", line)
	p.Legend.Top = true
	return p, nil
}

// GCPlotSVG renders the output of GCPlotData as an SVG line plot.
func GCPlotSVG(positions []int, gcValues []float64) (string, error) {
	p, err := gcPlot(positions, gcValues)
	if err != nil {
		return "", err
	}
	return renderSVG(p)
}

// SaveGCPlot writes the GC line plot to path. The image format follows the
// file extension (.svg, .png, .pdf, ...).
func SaveGCPlot(positions []int, gcValues []float64, path string) error {
	p, err := gcPlot(positions, gcValues)
	if err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}

// LogoSVG renders the per-position symbol frequencies of aligned sequences
// as a stacked bar chart.
func LogoSVG(seqs []string) (string, error) {
	if len(seqs) == 0 {
		return "", ErrNoSequences
	}
	cols, err := tallyColumns(seqs)
	if err != nil {
		return "", err
	}
	if len(cols) == 0 {
		return "", fmt.Errorf("%w: sequences are empty", ErrNoSequences)
	}

	p := plot.New()
	p.Title.Text = "Sequence Logo"
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Frequency"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Legend.Top = true

	total := float64(len(seqs))
	var below *plotter.BarChart
	for i, sym := range logoSymbols {
		freqs := make(plotter.Values, len(cols))
		seen := false
		for pos, col := range cols {
			freqs[pos] = float64(col[i]) / total
			seen = seen || col[i] > 0
		}
		if !seen {
			continue
		}
		bars, err := plotter.NewBarChart(freqs, vg.Points(12))
		if err != nil {
			return "", err
		}
		bars.Color = logoColors[i]
		bars.LineStyle.Width = vg.Length(0)
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(string(sym), bars)
		below = bars
	}

	labels := make([]string, len(cols))
	for pos := range labels {
		labels[pos] = strconv.Itoa(pos + 1)
	}
	p.NominalX(labels...)

	return renderSVG(p)
}

func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(plotWidth, plotHeight, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
