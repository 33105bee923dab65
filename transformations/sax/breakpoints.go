package sax

import (
	"math"
	"math/bits"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

const (
	// MinAlphabetSize and MaxAlphabetSize bound the alphabet accepted by the
	// transformer.
	MinAlphabetSize = 2
	MaxAlphabetSize = 4

	// MinWordLength and MaxWordLength bound the number of PAA segments per
	// word. 16 letters of 2 bits fill a Word.
	MinWordLength = 1
	MaxWordLength = 16
)

// Breakpoints returns the Gaussian breakpoints for alphabetSize symbols,
// ending with +Inf. Tables exist for sizes 2 to 10; the slice is a fresh copy.
func Breakpoints(alphabetSize int) ([]float64, error) {
	inf := math.Inf(1)
	switch alphabetSize {
	case 2:
		return []float64{0, inf}, nil
	case 3:
		return []float64{-0.43, 0.43, inf}, nil
	case 4:
		return []float64{-0.67, 0, 0.67, inf}, nil
	case 5:
		return []float64{-0.84, -0.25, 0.25, 0.84, inf}, nil
	case 6:
		return []float64{-0.97, -0.43, 0, 0.43, 0.97, inf}, nil
	case 7:
		return []float64{-1.07, -0.57, -0.18, 0.18, 0.57, 1.07, inf}, nil
	case 8:
		return []float64{-1.15, -0.67, -0.32, 0, 0.32, 0.67, 1.15, inf}, nil
	case 9:
		return []float64{-1.22, -0.76, -0.43, -0.14, 0.14, 0.43, 0.76, 1.22, inf}, nil
	case 10:
		return []float64{-1.28, -0.84, -0.52, -0.25, 0, 0.25, 0.52, 0.84, 1.28, inf}, nil
	default:
		return nil, errors.NewValidationError("alphabet_size", "no breakpoint table; must be between 2 and 10", alphabetSize)
	}
}

// LetterBits returns ceil(log2(alphabetSize)), the bits taken by one symbol.
func LetterBits(alphabetSize int) uint {
	if alphabetSize < 2 {
		return 0
	}
	return uint(bits.Len(uint(alphabetSize - 1)))
}
