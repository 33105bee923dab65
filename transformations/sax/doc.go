/*
Package sax implements the Symbolic Aggregate approXimation (SAX) transform
for panels of equal-length time series.

For every instance a window of WindowSize points slides over the series with
stride 1. Each window is z-normalized, compressed to WordLength segment means
with PAA and discretized against Gaussian breakpoints into AlphabetSize
symbols. The symbols are packed into a single Word, first segment in the
highest bits:

	s := sax.New(
		sax.WithWordLength(8),
		sax.WithAlphabetSize(4),
		sax.WithWindowSize(12),
		sax.WithRemoveRepeatWords(true),
	)
	out, err := s.Transform(X) // X is n_instances × series_length
	if err != nil {
		return err
	}
	for i := 0; i < out.NumInstances(); i++ {
		hist := sax.Histogram(out.Row(i))
		_ = hist
	}

The result is a *WordMatrix (dense), a *SparseWordMatrix (CSR, the default)
or WordSequences depending on WithReturnSparse and WithReturnSequences.

Zero is overloaded: with repeat removal enabled a 0 marks a suppressed
repeat, but 0 is also the word of the all-lowest-symbol pattern. Consumers
treating zero as absence lose those genuine words.

Windows with zero variance z-normalize to NaN. NaN segments add no symbol,
so a constant window encodes as 0; the transform reports how many such
windows it saw through a DegenerateWindowWarning.
*/
package sax
