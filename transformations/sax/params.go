package sax

import (
	"encoding/json"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

// Params holds the SAX hyperparameters. The JSON names follow the
// scikit-learn style parameter names.
type Params struct {
	WordLength        int  `json:"word_length"`
	AlphabetSize      int  `json:"alphabet_size"`
	WindowSize        int  `json:"window_size"`
	RemoveRepeatWords bool `json:"remove_repeat_words"`
	SaveWords         bool `json:"save_words"`
	ReturnSparse      bool `json:"return_sparse"`
	ReturnSequences   bool `json:"return_pandas_data_series"`
	NJobs             int  `json:"n_jobs"`
}

// DefaultParams returns word_length=8, alphabet_size=4, window_size=12 and
// sparse output.
func DefaultParams() Params {
	return Params{
		WordLength:   8,
		AlphabetSize: 4,
		WindowSize:   12,
		ReturnSparse: true,
		NJobs:        1,
	}
}

// Validate checks the ranges that do not depend on the input.
func (p Params) Validate() error {
	if p.AlphabetSize < MinAlphabetSize || p.AlphabetSize > MaxAlphabetSize {
		return errors.NewValidationError("alphabet_size", "must be an integer between 2 and 4", p.AlphabetSize)
	}
	if p.WordLength < MinWordLength || p.WordLength > MaxWordLength {
		return errors.NewValidationError("word_length", "must be an integer between 1 and 16", p.WordLength)
	}
	return nil
}

// OutputFormat returns the container selected by the flags. Sequences win
// over sparse, sparse over dense.
func (p Params) OutputFormat() OutputFormat {
	switch {
	case p.ReturnSequences:
		return FormatSequences
	case p.ReturnSparse:
		return FormatSparse
	default:
		return FormatDense
	}
}

// Options converts p into options for New.
func (p Params) Options() []Option {
	return []Option{
		WithWordLength(p.WordLength),
		WithAlphabetSize(p.AlphabetSize),
		WithWindowSize(p.WindowSize),
		WithRemoveRepeatWords(p.RemoveRepeatWords),
		WithSaveWords(p.SaveWords),
		WithReturnSparse(p.ReturnSparse),
		WithReturnSequences(p.ReturnSequences),
		WithNJobs(p.NJobs),
	}
}

// ToJSON encodes the parameters.
func (p Params) ToJSON() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal SAX params")
	}
	return data, nil
}

// ParamsFromJSON decodes parameters. Missing fields keep their defaults.
func ParamsFromJSON(data []byte) (Params, error) {
	p := DefaultParams()
	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, errors.Wrap(err, "failed to unmarshal SAX params")
	}
	return p, nil
}
