// Package datasets provides seeded synthetic series and a CSV loader that
// produce the n_instances × series_length matrices consumed by the
// transformers in this module.
package datasets

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// MakeExample1D returns nTimepoints draws from U[0, 1).
func MakeExample1D(nTimepoints int, seed uint64) []float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: newSource(seed)}
	x := make([]float64, nTimepoints)
	for i := range x {
		x[i] = u.Rand()
	}
	return x
}

// MakeExample2DSeries returns an nTimepoints × nChannels matrix of U[0, 1)
// draws, one column per channel.
func MakeExample2DSeries(nTimepoints, nChannels int, seed uint64) *mat.Dense {
	u := distuv.Uniform{Min: 0, Max: 1, Src: newSource(seed)}
	data := make([]float64, nTimepoints*nChannels)
	for i := range data {
		data[i] = u.Rand()
	}
	return mat.NewDense(nTimepoints, nChannels, data)
}

// SeriesOptions configures MakeSeries.
type SeriesOptions struct {
	NTimepoints int  // default 50
	NColumns    int  // default 1
	AllPositive bool // shift every column so its minimum is 1
	AddNaN      bool // set the first, middle and last rows to NaN
	Seed        uint64
}

// DefaultSeriesOptions returns 50 positive timepoints in one column.
func DefaultSeriesOptions() SeriesOptions {
	return SeriesOptions{NTimepoints: 50, NColumns: 1, AllPositive: true}
}

// MakeSeries draws standard normal values into an NTimepoints × NColumns
// matrix. With AllPositive each column is shifted by 1 - min over its
// non-NaN values.
func MakeSeries(opts SeriesOptions) *mat.Dense {
	if opts.NTimepoints <= 0 {
		opts.NTimepoints = 50
	}
	if opts.NColumns <= 0 {
		opts.NColumns = 1
	}
	n, c := opts.NTimepoints, opts.NColumns

	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: newSource(opts.Seed)}
	data := make([]float64, n*c)
	for i := range data {
		data[i] = norm.Rand()
	}
	m := mat.NewDense(n, c, data)

	if opts.AddNaN {
		nan := make([]float64, c)
		for j := range nan {
			nan[j] = math.NaN()
		}
		m.SetRow(n/2, nan)
		m.SetRow(0, nan)
		m.SetRow(n-1, nan)
	}

	if opts.AllPositive {
		col := make([]float64, n)
		for j := 0; j < c; j++ {
			mat.Col(col, j, m)
			lowest := math.Inf(1)
			for _, v := range col {
				if !math.IsNaN(v) && v < lowest {
					lowest = v
				}
			}
			if math.IsInf(lowest, 1) {
				continue
			}
			floats.AddConst(1-lowest, col)
			m.SetCol(j, col)
		}
	}
	return m
}

// MakePanel returns nInstances random walks of length seriesLength with
// standard normal steps, one instance per row.
func MakePanel(nInstances, seriesLength int, seed uint64) *mat.Dense {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: newSource(seed)}
	m := mat.NewDense(nInstances, seriesLength, nil)
	for i := 0; i < nInstances; i++ {
		row := m.RawRowView(i)
		for j := range row {
			row[j] = norm.Rand()
		}
		floats.CumSum(row, row)
	}
	return m
}
