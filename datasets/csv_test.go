package datasets

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

func TestLoadPanelCSV(t *testing.T) {
	in := "1,2,3,4\n5, 6,7,8\n"
	m, err := LoadPanelCSV(strings.NewReader(in), nil)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, mat.NewDense(2, 4, []float64{1, 2, 3, 4, 5, 6, 7, 8})))
}

func TestLoadPanelCSVOptions(t *testing.T) {
	in := "# exported panel\nid;t0;t1;t2\na;1.5;NA;3\nb;4;5;6\n"
	opts := DefaultCSVOptions()
	opts.Delimiter = ';'
	opts.SkipRows = 1
	opts.HasHeader = true
	opts.SkipColumns = 1

	m, err := LoadPanelCSV(strings.NewReader(in), opts)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.5, m.At(0, 0))
	assert.True(t, math.IsNaN(m.At(0, 1)))
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestLoadPanelCSVErrors(t *testing.T) {
	_, err := LoadPanelCSV(strings.NewReader("1,2,3\n4,5\n"), nil)
	var shapeErr *errors.InputShapeError
	assert.True(t, errors.As(err, &shapeErr), "got %v", err)

	_, err = LoadPanelCSV(strings.NewReader("1,x,3\n"), nil)
	assert.Error(t, err)

	_, err = LoadPanelCSV(strings.NewReader(""), nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData), "got %v", err)
}
