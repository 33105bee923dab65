package sax

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

func TestBreakpoints(t *testing.T) {
	for size := 2; size <= 10; size++ {
		bps, err := Breakpoints(size)
		require.NoError(t, err, "size %d", size)
		assert.Len(t, bps, size)
		assert.True(t, math.IsInf(bps[size-1], 1), "size %d must end with +Inf", size)
		assert.True(t, sort.Float64sAreSorted(bps), "size %d not ascending", size)
	}

	bps, err := Breakpoints(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.67, 0, 0.67, math.Inf(1)}, bps)
}

func TestBreakpointsReturnsCopy(t *testing.T) {
	a, err := Breakpoints(3)
	require.NoError(t, err)
	a[0] = 100

	b, err := Breakpoints(3)
	require.NoError(t, err)
	assert.Equal(t, -0.43, b[0])
}

func TestBreakpointsUnknownSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 11} {
		_, err := Breakpoints(size)
		var ve *errors.ValidationError
		require.True(t, errors.As(err, &ve), "size %d: got %v", size, err)
		assert.Equal(t, "alphabet_size", ve.ParamName)
	}
}

func TestLetterBits(t *testing.T) {
	tests := map[int]uint{2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 10: 4}
	for size, want := range tests {
		assert.Equal(t, want, LetterBits(size), "alphabet %d", size)
	}
}
