package preprocessing

import (
	"sync/atomic"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/tsml/core/model"
	"github.com/YuminosukeSato/tsml/core/parallel"
	"github.com/YuminosukeSato/tsml/pkg/errors"
)

// ZNormalizeRow は1行を母標準偏差で標準化する（その場で書き換える）
// 分散が0の行は 0/0 となりNaNで埋まる。その場合 false を返す
func ZNormalizeRow(row []float64) bool {
	mean, std := stat.PopMeanStdDev(row, nil)
	for j, v := range row {
		row[j] = (v - mean) / std
	}
	return std != 0
}

// ZNormalizeRows は行列の各行を独立に標準化する（その場で書き換える）
// 分散が0だった行数を返す
func ZNormalizeRows(m *mat.Dense) int {
	r, _ := m.Dims()
	degenerate := 0
	for i := 0; i < r; i++ {
		if !ZNormalizeRow(m.RawRowView(i)) {
			degenerate++
		}
	}
	return degenerate
}

// RowZNormalizer は各行（各インスタンス）を平均0、標準偏差1に変換する
// 列方向に統計量を学習するStandardScalerと異なり、行ごとに完結するため
// Fitで学習する状態を持たない
//
// 使用例:
//
//	z := preprocessing.NewRowZNormalizer()
//	XNorm, err := z.FitTransform(X)
type RowZNormalizer struct {
	// Degenerate は直前のTransformで分散0だった行数
	Degenerate int
}

var _ model.Transformer = (*RowZNormalizer)(nil)

// parallelRowThreshold を超える行数のときだけ行を分割して並列に標準化する
const parallelRowThreshold = 1024

// NewRowZNormalizer は新しいRowZNormalizerを作成する
func NewRowZNormalizer() *RowZNormalizer {
	return &RowZNormalizer{}
}

// Fit は入力が空でないことを確認する
func (z *RowZNormalizer) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("RowZNormalizer.Fit", "empty data", errors.ErrEmptyData)
	}
	return nil
}

// Transform は入力のコピーを行ごとに標準化して返す。入力は変更しない
// 分散0の行があった場合はDegenerateWindowWarningを発行する
func (z *RowZNormalizer) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := z.Fit(X); err != nil {
		return nil, err
	}
	result := mat.DenseCopyOf(X)
	r, _ := result.Dims()

	var degenerate atomic.Int64
	parallel.ParallelizeWithThreshold(r, parallelRowThreshold, func(start, end int) {
		n := 0
		for i := start; i < end; i++ {
			if !ZNormalizeRow(result.RawRowView(i)) {
				n++
			}
		}
		degenerate.Add(int64(n))
	})

	z.Degenerate = int(degenerate.Load())
	if z.Degenerate > 0 {
		errors.Warn(errors.NewDegenerateWindowWarning("RowZNormalizer.Transform", z.Degenerate, r))
	}
	return result, nil
}

// FitTransform はFitとTransformを続けて実行する
func (z *RowZNormalizer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := z.Fit(X); err != nil {
		return nil, err
	}
	return z.Transform(X)
}
