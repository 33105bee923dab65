package sax

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tsml/core/model"
	"github.com/YuminosukeSato/tsml/core/parallel"
	"github.com/YuminosukeSato/tsml/performance"
	"github.com/YuminosukeSato/tsml/pkg/codec"
	"github.com/YuminosukeSato/tsml/pkg/errors"
	"github.com/YuminosukeSato/tsml/pkg/log"
	"github.com/YuminosukeSato/tsml/preprocessing"
)

// SAX はSymbolic Aggregate approXimation変換器
// 各インスタンスの系列にスライディング窓を掛け、窓ごとに1つの単語を出力する
//
// 設定は構築後に変更されない。Transformは保存単語を更新するため、
// WithSaveWords(true) の場合は同じインスタンスを並行に使わないこと
type SAX struct {
	params Params
	logger log.Logger

	words *WordMatrix
}

// scratch holds the per-worker window and PAA buffers.
var scratch = performance.NewDensePool()

var _ model.ParameterGetter = (*SAX)(nil)
var _ model.Fitter = (*SAX)(nil)

// New は新しいSAX変換器を作成する
//
// 使用例:
//
//	s := sax.New(sax.WithWordLength(4), sax.WithWindowSize(16))
//	out, err := s.Transform(X)
func New(opts ...Option) *SAX {
	s := &SAX{params: DefaultParams()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.GetLoggerWithName("sax")
	}
	s.logger = s.logger.With(log.ModelNameKey, "SAX")
	return s
}

// NewFromParams は Params から変換器を作成する
func NewFromParams(p Params, opts ...Option) *SAX {
	return New(append(p.Options(), opts...)...)
}

// Params returns a copy of the configuration.
func (s *SAX) Params() Params { return s.params }

// LetterBits returns the bits used by one symbol.
func (s *SAX) LetterBits() uint { return LetterBits(s.params.AlphabetSize) }

// GetParams implements model.ParameterGetter.
func (s *SAX) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"word_length":               s.params.WordLength,
		"alphabet_size":             s.params.AlphabetSize,
		"window_size":               s.params.WindowSize,
		"remove_repeat_words":       s.params.RemoveRepeatWords,
		"save_words":                s.params.SaveWords,
		"return_sparse":             s.params.ReturnSparse,
		"return_pandas_data_series": s.params.ReturnSequences,
		"n_jobs":                    s.params.NJobs,
	}
}

func (s *SAX) String() string {
	p := s.params
	return fmt.Sprintf("SAX(word_length=%d, alphabet_size=%d, window_size=%d, remove_repeat_words=%t, output=%s)",
		p.WordLength, p.AlphabetSize, p.WindowSize, p.RemoveRepeatWords, p.OutputFormat())
}

// Words returns the word matrix of the last Transform, taken after repeat
// removal, or nil when save_words is disabled or nothing was transformed.
func (s *SAX) Words() *WordMatrix { return s.words }

// SaveWords writes the saved word matrix as an archive.
func (s *SAX) SaveWords(w io.Writer, t codec.Type) error {
	if s.words == nil {
		return errors.NewModelError("SAX.SaveWords", "no saved words", errors.ErrEmptyData)
	}
	if err := SaveWords(w, s.words, t); err != nil {
		return err
	}
	s.logger.Debug("words saved",
		log.OperationKey, log.OperationSaveWords,
		log.CodecKey, t.String(),
	)
	return nil
}

// Fit は変換できる入力かどうかを検証する。学習する状態はない
func (s *SAX) Fit(X mat.Matrix) error {
	_, _, err := s.check("SAX.Fit", X)
	return err
}

// FitTransform はFitとTransformを同時に実行する
func (s *SAX) FitTransform(X mat.Matrix) (Output, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// Transform はXの各インスタンスを単語列に変換する
//
// パラメータ:
//   - X: n_instances × series_length の入力。変更されない
//
// 戻り値:
//   - Output: n_instances × (series_length - window_size + 1) の単語
//   - error: 設定・形状が不正な場合。この場合、何も計算しない
func (s *SAX) Transform(X mat.Matrix) (Output, error) {
	start := time.Now()
	p := s.params

	rows, cols, err := s.check("SAX.Transform", X)
	if err != nil {
		return nil, err
	}

	breakpoints, err := Breakpoints(p.AlphabetSize)
	if err != nil {
		return nil, err
	}
	letterBits := LetterBits(p.AlphabetSize)
	nWindows := preprocessing.NumWindows(cols, p.WindowSize)
	workers := parallel.Workers(p.NJobs)

	words := NewWordMatrix(rows, nWindows, nil)
	var degenerate, nonFinite atomic.Int64

	err = parallel.ForEach(rows, workers, func(begin, end int) error {
		series := make([]float64, cols)
		windows := scratch.Get(nWindows, p.WindowSize)
		defer scratch.Put(windows)
		patterns := scratch.Get(nWindows, p.WordLength)
		defer scratch.Put(patterns)

		for i := begin; i < end; i++ {
			mat.Row(series, i, X)
			if n := errors.CountNonFinite(series); n > 0 {
				nonFinite.Add(int64(n))
			}
			if _, err := preprocessing.SlidingWindows(windows, series, p.WindowSize); err != nil {
				return err
			}
			if n := preprocessing.ZNormalizeRows(windows); n > 0 {
				degenerate.Add(int64(n))
			}
			if _, err := preprocessing.PAARows(patterns, windows, p.WordLength); err != nil {
				return err
			}

			row := words.RawRow(i)
			for j := range row {
				row[j] = EncodeWord(patterns.RawRowView(j), breakpoints, letterBits)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("transform failed", err, log.OperationKey, log.OperationTransform)
		return nil, err
	}

	if p.RemoveRepeatWords {
		RemoveRepeatWords(words)
	}
	if p.SaveWords {
		s.words = words.Clone()
	}

	if n := int(degenerate.Load()); n > 0 {
		errors.Warn(errors.NewDegenerateWindowWarning("SAX.Transform", n, rows*nWindows))
	}

	var out Output
	switch p.OutputFormat() {
	case FormatSequences:
		out = newWordSequences(words)
	case FormatSparse:
		out = NewSparseWordMatrix(words)
	default:
		out = words
	}

	s.logger.Debug("transform completed",
		log.OperationKey, log.OperationTransform,
		log.InstancesKey, rows,
		log.SeriesLengthKey, cols,
		log.WindowsKey, nWindows,
		log.AlphabetSizeKey, p.AlphabetSize,
		log.DegenerateWindowsKey, degenerate.Load(),
		log.NonFiniteValuesKey, nonFinite.Load(),
		log.OutputFormatKey, out.Format().String(),
		log.WorkersKey, workers,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// check validates the configuration against X before anything is allocated.
func (s *SAX) check(op string, X mat.Matrix) (rows, cols int, err error) {
	p := s.params
	if err := p.Validate(); err != nil {
		s.logger.Debug("invalid configuration", log.OperationKey, op, log.ErrorCodeKey, log.ErrorInvalidConfig)
		return 0, 0, err
	}
	if X == nil {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	rows, cols = X.Dims()
	if rows == 0 || cols == 0 {
		s.logger.Debug("empty input", log.OperationKey, op, log.ErrorCodeKey, log.ErrorEmptyData)
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	switch {
	case p.WindowSize < 1:
		err = errors.NewInputShapeErrorFor("transform", "window_size", []int{1}, []int{p.WindowSize})
	case p.WindowSize > cols:
		err = errors.NewInputShapeErrorFor("transform", "window_size", []int{rows, p.WindowSize}, []int{rows, cols})
	case p.WordLength > p.WindowSize:
		err = errors.NewInputShapeErrorFor("transform", "word_length", []int{p.WindowSize}, []int{p.WordLength})
	}
	if err != nil {
		s.logger.Debug("input shape mismatch",
			log.OperationKey, op,
			log.ErrorCodeKey, log.ErrorShapeMismatch,
			log.WindowSizeKey, p.WindowSize,
			log.WordLengthKey, p.WordLength,
			log.SeriesLengthKey, cols,
		)
		return 0, 0, err
	}
	return rows, cols, nil
}
