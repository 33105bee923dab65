// Package plot draws SAX representations with gonum.org/v1/plot.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/tsml/pkg/errors"
	"github.com/YuminosukeSato/tsml/preprocessing"
	"github.com/YuminosukeSato/tsml/transformations/sax"
)

var (
	seriesColor     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	paaColor        = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	breakpointColor = color.Gray{Y: 128}
)

// SeriesWithPAA plots series as one SAX window: the z-normalized values,
// their PAA segments as a step line and the breakpoints of alphabetSize as
// dashed horizontal lines. The title shows the resulting word.
func SeriesWithPAA(series []float64, wordLength, alphabetSize int) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.NewModelError("plot.SeriesWithPAA", "empty data", errors.ErrEmptyData)
	}
	if err := errors.CheckNumericalStability("plot.SeriesWithPAA", series); err != nil {
		return nil, err
	}

	z := slices.Clone(series)
	if !preprocessing.ZNormalizeRow(z) {
		return nil, errors.NewValueError("plot.SeriesWithPAA", "series has zero variance")
	}
	segments, err := preprocessing.PAA(z, wordLength)
	if err != nil {
		return nil, err
	}
	breakpoints, err := sax.Breakpoints(alphabetSize)
	if err != nil {
		return nil, err
	}
	letterBits := sax.LetterBits(alphabetSize)
	word := sax.EncodeWord(segments, breakpoints, letterBits)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("SAX word %q", sax.WordString(word, wordLength, letterBits))
	p.X.Label.Text = "t"
	p.Y.Label.Text = "z-normalized value"

	points := make(plotter.XYs, len(z))
	for i, v := range z {
		points[i] = plotter.XY{X: float64(i), Y: v}
	}
	seriesLine, err := plotter.NewLine(points)
	if err != nil {
		return nil, errors.Wrap(err, "series line")
	}
	seriesLine.Color = seriesColor

	// segment k covers [k*frame, (k+1)*frame); the final point closes the
	// last step
	frame := float64(len(z)) / float64(wordLength)
	steps := make(plotter.XYs, wordLength+1)
	for k, v := range segments {
		steps[k] = plotter.XY{X: float64(k) * frame, Y: v}
	}
	steps[wordLength] = plotter.XY{X: float64(len(z)), Y: segments[wordLength-1]}
	paaLine, err := plotter.NewLine(steps)
	if err != nil {
		return nil, errors.Wrap(err, "paa line")
	}
	paaLine.StepStyle = plotter.PostStep
	paaLine.Color = paaColor
	paaLine.Width = vg.Points(2)

	for _, bp := range breakpoints {
		if math.IsInf(bp, 1) {
			continue
		}
		level := bp
		guide := plotter.NewFunction(func(float64) float64 { return level })
		guide.XMin = 0
		guide.XMax = float64(len(z))
		guide.Color = breakpointColor
		guide.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(guide)
	}

	p.Add(seriesLine, paaLine)
	p.Legend.Add("series", seriesLine)
	p.Legend.Add("PAA", paaLine)
	p.Legend.Top = true
	return p, nil
}

// WordHistogram draws one bar per word of counts, ordered by word value and
// labelled with WordString.
func WordHistogram(counts map[sax.Word]int, wordLength int, letterBits uint) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, errors.NewModelError("plot.WordHistogram", "empty data", errors.ErrEmptyData)
	}

	words := make([]sax.Word, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	slices.Sort(words)

	values := make(plotter.Values, len(words))
	labels := make([]string, len(words))
	for i, w := range words {
		values[i] = float64(counts[w])
		labels[i] = sax.WordString(w, wordLength, letterBits)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, errors.Wrap(err, "bar chart")
	}
	bars.Color = seriesColor
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Title.Text = "SAX word histogram"
	p.Y.Label.Text = "count"
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

// Render writes p to w in format ("png", "svg", "pdf", ...).
func Render(p *plot.Plot, w io.Writer, width, height vg.Length, format string) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return errors.Wrapf(err, "unsupported plot format %q", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "render plot")
	}
	return nil
}
