package errors

import (
	"math"
)

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CountNonFinite returns the number of NaN or Inf entries in values.
func CountNonFinite(values []float64) int {
	n := 0
	for _, v := range values {
		if !IsFinite(v) {
			n++
		}
	}
	return n
}

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64) error {
	var unstable []float64
	for _, v := range values {
		if !IsFinite(v) {
			unstable = append(unstable, v)
			if len(unstable) >= 10 {
				// Limit the number of collected values for error message
				break
			}
		}
	}
	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable)
	}
	return nil
}
