package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

// NumWindows returns the number of stride-1 windows of length windowSize in
// a series of length seriesLength. The result is zero or negative when the
// window does not fit.
func NumWindows(seriesLength, windowSize int) int {
	return seriesLength - windowSize + 1
}

// SlidingWindows はseriesからストライド1の部分系列を切り出す
// 行iは開始位置iの窓を表す
//
// パラメータ:
//   - dst: 再利用する出力行列。nilまたは形状が異なる場合は新しく確保する
//   - series: 入力系列
//   - windowSize: 窓幅
//
// 戻り値:
//   - *mat.Dense: (len(series)-windowSize+1) × windowSize の行列
//   - error: windowSize が1未満または系列長を超える場合 InputShapeError
func SlidingWindows(dst *mat.Dense, series []float64, windowSize int) (*mat.Dense, error) {
	if windowSize < 1 {
		return nil, errors.NewInputShapeErrorFor("windows", "window_size", []int{1}, []int{windowSize})
	}
	n := NumWindows(len(series), windowSize)
	if n < 1 {
		return nil, errors.NewInputShapeErrorFor("windows", "window_size",
			[]int{len(series)}, []int{windowSize})
	}

	if dst == nil {
		dst = mat.NewDense(n, windowSize, nil)
	} else if r, c := dst.Dims(); r != n || c != windowSize {
		dst = mat.NewDense(n, windowSize, nil)
	}

	for i := 0; i < n; i++ {
		dst.SetRow(i, series[i:i+windowSize])
	}
	return dst, nil
}
