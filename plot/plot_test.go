package plot

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/tsml/pkg/errors"
	"github.com/YuminosukeSato/tsml/transformations/sax"
)

func TestSeriesWithPAA(t *testing.T) {
	p, err := SeriesWithPAA([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, `SAX word "ad"`, p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, Render(p, &buf, 4*vg.Inch, 3*vg.Inch, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestSeriesWithPAAErrors(t *testing.T) {
	_, err := SeriesWithPAA([]float64{1, math.NaN(), 3}, 2, 4)
	var ne *errors.NumericalInstabilityError
	assert.True(t, errors.As(err, &ne), "got %v", err)

	_, err = SeriesWithPAA([]float64{2, 2, 2, 2}, 2, 4)
	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve), "got %v", err)

	_, err = SeriesWithPAA([]float64{1, 2, 3}, 4, 4)
	var se *errors.InputShapeError
	assert.True(t, errors.As(err, &se), "got %v", err)

	_, err = SeriesWithPAA(nil, 2, 4)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestWordHistogram(t *testing.T) {
	counts := sax.Histogram([]sax.Word{3, 0, 3, 12, 6})
	p, err := WordHistogram(counts, 2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(p, &buf, 4*vg.Inch, 3*vg.Inch, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	_, err = WordHistogram(map[sax.Word]int{}, 2, 2)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestRenderUnknownFormat(t *testing.T) {
	p, err := SeriesWithPAA([]float64{1, 3, 2, 5}, 2, 3)
	require.NoError(t, err)
	assert.Error(t, Render(p, &bytes.Buffer{}, vg.Inch, vg.Inch, "bmp"))
}
