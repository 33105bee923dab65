// Package tsml provides time-series transformers for Go in the
// scikit-learn style, built on gonum matrices.
//
// The central transformer is SAX (Symbolic Aggregate approXimation), which
// turns every sliding window of a series into a short symbolic word that
// downstream bag-of-words classifiers can count.
//
// # Installation
//
//	go get github.com/YuminosukeSato/tsml
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/tsml/datasets"
//	    "github.com/YuminosukeSato/tsml/transformations/sax"
//	)
//
//	func main() {
//	    // 10 random walks of length 64
//	    X := datasets.MakePanel(10, 64, 42)
//
//	    s := sax.New(
//	        sax.WithWordLength(8),
//	        sax.WithAlphabetSize(4),
//	        sax.WithWindowSize(16),
//	        sax.WithRemoveRepeatWords(true),
//	        sax.WithNJobs(-1), // Use all CPU cores
//	    )
//	    out, err := s.Transform(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(sax.Histogram(out.Row(0)))
//	}
//
// # Packages
//
//   - transformations/sax: the SAX transformer, word containers and word archives
//   - preprocessing: sliding windows, row-wise z-normalization and PAA
//   - datasets: seeded synthetic series and a CSV panel loader
//   - plot: plots of a window with its PAA segments and of word histograms
//   - core/model: transformer interfaces
//   - core/parallel: parallel processing utilities
//   - pkg/codec: zstd, s2 and lz4 codecs for word archives
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging backed by zerolog
//
// # Errors
//
// Invalid configuration fails with *errors.ValidationError and windows that
// do not fit the input with *errors.InputShapeError, both before any work
// is done. Windows with zero variance are not an error: they produce NaN
// segments and a DegenerateWindowWarning is sent to the warning handler.
//
// # License
//
// tsml is released under the MIT License.
package tsml
