package sax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsJSON(t *testing.T) {
	p := Params{
		WordLength:        4,
		AlphabetSize:      3,
		WindowSize:        20,
		RemoveRepeatWords: true,
		SaveWords:         true,
		ReturnSparse:      false,
		ReturnSequences:   true,
		NJobs:             -1,
	}
	data, err := p.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"word_length": 4,
		"alphabet_size": 3,
		"window_size": 20,
		"remove_repeat_words": true,
		"save_words": true,
		"return_sparse": false,
		"return_pandas_data_series": true,
		"n_jobs": -1
	}`, string(data))

	got, err := ParamsFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParamsFromJSONDefaults(t *testing.T) {
	got, err := ParamsFromJSON([]byte(`{"word_length": 2, "window_size": 4}`))
	require.NoError(t, err)

	want := DefaultParams()
	want.WordLength = 2
	want.WindowSize = 4
	assert.Equal(t, want, got)

	_, err = ParamsFromJSON([]byte(`{"word_length": "eight"}`))
	assert.Error(t, err)
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.AlphabetSize = 10
	assert.Error(t, p.Validate())

	p = DefaultParams()
	p.WordLength = 16
	assert.NoError(t, p.Validate())
	p.WordLength = 17
	assert.Error(t, p.Validate())
}

func TestParamsOutputFormat(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, FormatSparse, p.OutputFormat())
	p.ReturnSparse = false
	assert.Equal(t, FormatDense, p.OutputFormat())
	p.ReturnSequences = true
	assert.Equal(t, FormatSequences, p.OutputFormat())
	p.ReturnSparse = true
	assert.Equal(t, FormatSequences, p.OutputFormat())
}

func TestNewFromParams(t *testing.T) {
	p := DefaultParams()
	p.WordLength = 3
	p.RemoveRepeatWords = true

	s := NewFromParams(p, WithWindowSize(9))
	want := p
	want.WindowSize = 9
	assert.Equal(t, want, s.Params())
}
