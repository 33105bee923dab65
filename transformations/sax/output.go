package sax

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Word is a bit-packed SAX word. 32 bits hold MaxWordLength letters of 2 bits.
type Word uint32

// OutputFormat selects the container returned by Transform.
type OutputFormat int

const (
	// FormatSparse returns a *SparseWordMatrix.
	FormatSparse OutputFormat = iota
	// FormatDense returns a *WordMatrix.
	FormatDense
	// FormatSequences returns WordSequences.
	FormatSequences
)

func (f OutputFormat) String() string {
	switch f {
	case FormatSparse:
		return "sparse"
	case FormatDense:
		return "dense"
	case FormatSequences:
		return "sequences"
	default:
		return "unknown"
	}
}

// Output is the result of a transform: one row of words per instance, in
// window order.
type Output interface {
	// NumInstances returns the number of rows.
	NumInstances() int
	// Row returns the words of instance i including zeros. The slice must
	// not be modified.
	Row(i int) []Word
	// Format reports which container this is.
	Format() OutputFormat
	// Dense returns the words as a dense matrix.
	Dense() *WordMatrix
}

var (
	_ Output     = (*WordMatrix)(nil)
	_ Output     = (*SparseWordMatrix)(nil)
	_ Output     = WordSequences(nil)
	_ mat.Matrix = (*WordMatrix)(nil)
	_ mat.Matrix = (*SparseWordMatrix)(nil)
)

// WordMatrix is a dense row-major matrix of words
// (n_instances × windows_per_instance).
type WordMatrix struct {
	rows, cols int
	data       []Word
}

// NewWordMatrix creates a rows × cols matrix. data is used as backing store
// when non-nil and must have rows*cols elements.
func NewWordMatrix(rows, cols int, data []Word) *WordMatrix {
	if rows < 0 || cols < 0 {
		panic(mat.ErrShape)
	}
	if data == nil {
		data = make([]Word, rows*cols)
	} else if len(data) != rows*cols {
		panic(mat.ErrShape)
	}
	return &WordMatrix{rows: rows, cols: cols, data: data}
}

// Dims returns the number of instances and windows.
func (m *WordMatrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the word at (i, j) as a float64 so that the matrix can be used
// wherever gonum expects a mat.Matrix.
func (m *WordMatrix) At(i, j int) float64 { return float64(m.WordAt(i, j)) }

// T returns the implicit transpose.
func (m *WordMatrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// WordAt returns the word at (i, j).
func (m *WordMatrix) WordAt(i, j int) Word {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// SetWord sets the word at (i, j).
func (m *WordMatrix) SetWord(i, j int, w Word) {
	m.check(i, j)
	m.data[i*m.cols+j] = w
}

func (m *WordMatrix) check(i, j int) {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.cols) {
		panic(mat.ErrColAccess)
	}
}

// RawRow returns row i backed by the matrix storage.
func (m *WordMatrix) RawRow(i int) []Word {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// NumInstances implements Output.
func (m *WordMatrix) NumInstances() int { return m.rows }

// Row implements Output.
func (m *WordMatrix) Row(i int) []Word { return m.RawRow(i) }

// Format implements Output.
func (m *WordMatrix) Format() OutputFormat { return FormatDense }

// Dense implements Output and returns the receiver.
func (m *WordMatrix) Dense() *WordMatrix { return m }

// Clone returns a deep copy.
func (m *WordMatrix) Clone() *WordMatrix {
	return &WordMatrix{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// Equal reports whether m and o have the same shape and words.
func (m *WordMatrix) Equal(o *WordMatrix) bool {
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}

// SparseWordMatrix stores the non-zero words of a WordMatrix in compressed
// sparse row form. Zeros are implicit.
type SparseWordMatrix struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []Word
}

// NewSparseWordMatrix compresses m. m is not retained.
func NewSparseWordMatrix(m *WordMatrix) *SparseWordMatrix {
	s := &SparseWordMatrix{
		rows:   m.rows,
		cols:   m.cols,
		indptr: make([]int, m.rows+1),
	}
	for i := 0; i < m.rows; i++ {
		for j, w := range m.RawRow(i) {
			if w != 0 {
				s.indices = append(s.indices, j)
				s.data = append(s.data, w)
			}
		}
		s.indptr[i+1] = len(s.data)
	}
	return s
}

// Dims returns the number of instances and windows.
func (s *SparseWordMatrix) Dims() (r, c int) { return s.rows, s.cols }

// At returns the word at (i, j), zero when it is not stored.
func (s *SparseWordMatrix) At(i, j int) float64 {
	if uint(i) >= uint(s.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(s.cols) {
		panic(mat.ErrColAccess)
	}
	lo, hi := s.indptr[i], s.indptr[i+1]
	k := lo + sort.SearchInts(s.indices[lo:hi], j)
	if k < hi && s.indices[k] == j {
		return float64(s.data[k])
	}
	return 0
}

// T returns the implicit transpose.
func (s *SparseWordMatrix) T() mat.Matrix { return mat.Transpose{Matrix: s} }

// NNZ returns the number of stored words.
func (s *SparseWordMatrix) NNZ() int { return len(s.data) }

// RowNonZero returns the column indices and words stored for row i. The
// slices share the matrix storage.
func (s *SparseWordMatrix) RowNonZero(i int) (indices []int, words []Word) {
	if uint(i) >= uint(s.rows) {
		panic(mat.ErrRowAccess)
	}
	lo, hi := s.indptr[i], s.indptr[i+1]
	return s.indices[lo:hi], s.data[lo:hi]
}

// NumInstances implements Output.
func (s *SparseWordMatrix) NumInstances() int { return s.rows }

// Row implements Output. The row is expanded into a new slice.
func (s *SparseWordMatrix) Row(i int) []Word {
	row := make([]Word, s.cols)
	indices, words := s.RowNonZero(i)
	for k, j := range indices {
		row[j] = words[k]
	}
	return row
}

// Format implements Output.
func (s *SparseWordMatrix) Format() OutputFormat { return FormatSparse }

// Dense implements Output.
func (s *SparseWordMatrix) Dense() *WordMatrix {
	m := NewWordMatrix(s.rows, s.cols, nil)
	for i := 0; i < s.rows; i++ {
		row := m.RawRow(i)
		indices, words := s.RowNonZero(i)
		for k, j := range indices {
			row[j] = words[k]
		}
	}
	return m
}

// WordSequences holds one ordered list of words per instance, zeros
// included.
type WordSequences [][]Word

// NumInstances implements Output.
func (ws WordSequences) NumInstances() int { return len(ws) }

// Row implements Output.
func (ws WordSequences) Row(i int) []Word { return ws[i] }

// Format implements Output.
func (ws WordSequences) Format() OutputFormat { return FormatSequences }

// Dense implements Output. Shorter sequences are padded with zeros.
func (ws WordSequences) Dense() *WordMatrix {
	cols := 0
	for _, seq := range ws {
		cols = max(cols, len(seq))
	}
	m := NewWordMatrix(len(ws), cols, nil)
	for i, seq := range ws {
		copy(m.RawRow(i), seq)
	}
	return m
}

func newWordSequences(m *WordMatrix) WordSequences {
	ws := make(WordSequences, m.rows)
	for i := range ws {
		ws[i] = slices.Clone(m.RawRow(i))
	}
	return ws
}

// Histogram counts the non-zero words of row. Zero is treated as absence,
// which also drops genuine all-lowest-symbol words.
func Histogram(row []Word) map[Word]int {
	counts := make(map[Word]int)
	for _, w := range row {
		if w != 0 {
			counts[w]++
		}
	}
	return counts
}
