package datasets

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

// CSVOptions holds options for LoadPanelCSV.
type CSVOptions struct {
	HasHeader   bool     // whether the first row holds column names
	Delimiter   rune     // field delimiter (default: ',')
	SkipRows    int      // number of rows to skip at start
	SkipColumns int      // leading columns to drop, e.g. an instance id
	NAValues    []string // cells parsed as NaN (default: "", "NA", "NaN")
}

// DefaultCSVOptions returns options for a headerless, comma separated panel.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
		NAValues:  []string{"", "NA", "NaN"},
	}
}

// LoadPanelCSV reads one instance per row. Every row must have the same
// number of values after SkipColumns.
func LoadPanelCSV(r io.Reader, opts *CSVOptions) (*mat.Dense, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(err, "skip row %d", i)
		}
	}
	if opts.HasHeader {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "read header")
		}
	}

	var data []float64
	rows, cols := 0, -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read row %d", rows)
		}
		if opts.SkipColumns > len(record) {
			return nil, errors.NewInputShapeError("csv", []int{opts.SkipColumns}, []int{len(record)})
		}
		record = record[opts.SkipColumns:]

		if cols == -1 {
			cols = len(record)
		} else if len(record) != cols {
			return nil, errors.NewInputShapeError("csv", []int{rows, cols}, []int{rows, len(record)})
		}

		for j, field := range record {
			v, err := parseValue(strings.TrimSpace(field), opts.NAValues)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %d", rows, j+opts.SkipColumns)
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 || cols == 0 {
		return nil, errors.NewModelError("LoadPanelCSV", "empty data", errors.ErrEmptyData)
	}
	return mat.NewDense(rows, cols, data), nil
}

func parseValue(field string, naValues []string) (float64, error) {
	for _, na := range naValues {
		if field == na {
			return math.NaN(), nil
		}
	}
	return strconv.ParseFloat(field, 64)
}
