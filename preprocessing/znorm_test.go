package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

func TestZNormalizeRow(t *testing.T) {
	row := []float64{1, 2, 3, 4}
	if !ZNormalizeRow(row) {
		t.Fatal("expected a non-degenerate row")
	}

	// 母標準偏差 sqrt(1.25)
	std := math.Sqrt(1.25)
	want := []float64{-1.5 / std, -0.5 / std, 0.5 / std, 1.5 / std}
	for i := range row {
		if math.Abs(row[i]-want[i]) > 1e-12 {
			t.Errorf("row[%d]: expected %v, got %v", i, want[i], row[i])
		}
	}

	mean, sd := stat.PopMeanStdDev(row, nil)
	if math.Abs(mean) > 1e-12 || math.Abs(sd-1) > 1e-12 {
		t.Errorf("expected mean 0 and std 1, got %v and %v", mean, sd)
	}
}

func TestZNormalizeRowConstant(t *testing.T) {
	row := []float64{10, 10, 10, 10}
	if ZNormalizeRow(row) {
		t.Fatal("expected a degenerate row")
	}
	for i, v := range row {
		if !math.IsNaN(v) {
			t.Errorf("row[%d]: expected NaN, got %v", i, v)
		}
	}
}

func TestZNormalizeRows(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		0, 0, 0, 0,
		-2, 0, 2, 4,
	})
	if got := ZNormalizeRows(m); got != 1 {
		t.Errorf("expected 1 degenerate row, got %d", got)
	}
	if !math.IsNaN(m.At(1, 0)) {
		t.Errorf("expected the constant row to become NaN, got %v", m.At(1, 0))
	}
	// 行1と行3は線形変換の関係にあるので同じ値になる
	for j := 0; j < 4; j++ {
		if math.Abs(m.At(0, j)-m.At(2, j)) > 1e-12 {
			t.Errorf("column %d: rows 0 and 2 differ: %v vs %v", j, m.At(0, j), m.At(2, j))
		}
	}
}

func TestRowZNormalizer(t *testing.T) {
	X := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		5, 5, 5,
	})
	original := mat.DenseCopyOf(X)

	var warnings []error
	errors.SetZerologWarnFunc(func(w error) { warnings = append(warnings, w) })
	defer errors.SetZerologWarnFunc(nil)

	z := NewRowZNormalizer()
	out, err := z.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	if !mat.Equal(X, original) {
		t.Error("input matrix was modified")
	}
	if z.Degenerate != 1 {
		t.Errorf("expected 1 degenerate row, got %d", z.Degenerate)
	}
	if math.Abs(out.At(0, 0)+math.Sqrt(1.5)) > 1e-12 {
		t.Errorf("unexpected normalized value %v", out.At(0, 0))
	}

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	var dw *errors.DegenerateWindowWarning
	if !errors.As(warnings[0], &dw) || dw.Degenerate != 1 || dw.Total != 2 {
		t.Errorf("unexpected warning: %v", warnings[0])
	}
}

func TestRowZNormalizerEmpty(t *testing.T) {
	z := NewRowZNormalizer()
	_, err := z.Transform(&mat.Dense{})
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
}

func TestRowZNormalizerLargeInput(t *testing.T) {
	rows, cols := 3*parallelRowThreshold, 8
	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i%100 == 0 {
				X.Set(i, j, 7) // 分散0の行
				continue
			}
			X.Set(i, j, float64((i*31+j*17)%23))
		}
	}
	want := mat.DenseCopyOf(X)
	wantDegenerate := ZNormalizeRows(want)

	errors.SetZerologWarnFunc(func(error) {})
	defer errors.SetZerologWarnFunc(nil)

	z := NewRowZNormalizer()
	out, err := z.Transform(X)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if z.Degenerate != wantDegenerate || z.Degenerate != 31 {
		t.Errorf("expected %d degenerate rows, got %d", wantDegenerate, z.Degenerate)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			got, exp := out.At(i, j), want.At(i, j)
			if math.IsNaN(exp) != math.IsNaN(got) || (!math.IsNaN(exp) && got != exp) {
				t.Fatalf("(%d, %d): expected %v, got %v", i, j, exp, got)
			}
		}
	}
}
