package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

// PAA compresses window into segments piecewise means (Piecewise Aggregate
// Approximation). The frame length len(window)/segments may be fractional;
// a sample straddling two frames contributes to both in proportion to its
// overlap.
func PAA(window []float64, segments int) ([]float64, error) {
	if err := checkSegments(len(window), segments); err != nil {
		return nil, err
	}
	dst := make([]float64, segments)
	paaInto(dst, window)
	return dst, nil
}

// PAARows applies PAA to every row of src and writes the result to dst,
// which is allocated when nil or of the wrong shape.
func PAARows(dst, src *mat.Dense, segments int) (*mat.Dense, error) {
	r, c := src.Dims()
	if err := checkSegments(c, segments); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = mat.NewDense(r, segments, nil)
	} else if dr, dc := dst.Dims(); dr != r || dc != segments {
		dst = mat.NewDense(r, segments, nil)
	}
	for i := 0; i < r; i++ {
		paaInto(dst.RawRowView(i), src.RawRowView(i))
	}
	return dst, nil
}

func checkSegments(length, segments int) error {
	if segments < 1 || segments > length {
		return errors.NewInputShapeErrorFor("paa", "word_length", []int{length}, []int{segments})
	}
	return nil
}

// frameTolerance is the slack allowed when deciding that a fractional frame
// is complete.
const frameTolerance = 1e-9

// paaInto writes len(dst) segment means of window into dst. It does not
// allocate.
func paaInto(dst, window []float64) {
	segments := len(dst)
	frameLength := float64(len(window)) / float64(segments)

	current := 0
	frameSize := 0.0
	frameSum := 0.0
	for _, v := range window {
		remaining := frameLength - frameSize
		if remaining > 1 {
			frameSum += v
			frameSize++
		} else {
			frameSum += remaining * v
			frameSize += remaining
		}

		if math.Abs(frameLength-frameSize) <= frameTolerance {
			if current < segments {
				dst[current] = frameSum / frameLength
			}
			current++
			frameSum = (1 - remaining) * v
			frameSize = 1 - remaining
		}
	}

	// rounding can leave the last frame just short of frameLength
	if current == segments-1 {
		dst[current] = frameSum / frameLength
	}
}
