package sax

import "github.com/YuminosukeSato/tsml/pkg/log"

// Option is a function that configures SAX
type Option func(*SAX)

// WithWordLength sets the number of PAA segments per window (1 to 16)
func WithWordLength(n int) Option {
	return func(s *SAX) {
		s.params.WordLength = n
	}
}

// WithAlphabetSize sets the number of discretization symbols (2 to 4)
func WithAlphabetSize(n int) Option {
	return func(s *SAX) {
		s.params.AlphabetSize = n
	}
}

// WithWindowSize sets the sliding window length. Use the series length for
// a single word per instance.
func WithWindowSize(n int) Option {
	return func(s *SAX) {
		s.params.WindowSize = n
	}
}

// WithRemoveRepeatWords enables numerosity reduction
func WithRemoveRepeatWords(remove bool) Option {
	return func(s *SAX) {
		s.params.RemoveRepeatWords = remove
	}
}

// WithSaveWords keeps a copy of the last word matrix, see SAX.Words
func WithSaveWords(save bool) Option {
	return func(s *SAX) {
		s.params.SaveWords = save
	}
}

// WithReturnSparse selects sparse (true) or dense (false) matrix output
func WithReturnSparse(sparse bool) Option {
	return func(s *SAX) {
		s.params.ReturnSparse = sparse
	}
}

// WithReturnSequences selects per-instance word sequences. It takes
// precedence over WithReturnSparse.
func WithReturnSequences(sequences bool) Option {
	return func(s *SAX) {
		s.params.ReturnSequences = sequences
	}
}

// WithNJobs sets the number of parallel jobs; -1 uses every CPU
func WithNJobs(n int) Option {
	return func(s *SAX) {
		s.params.NJobs = n
	}
}

// WithLogger replaces the component logger
func WithLogger(logger log.Logger) Option {
	return func(s *SAX) {
		s.logger = logger
	}
}
