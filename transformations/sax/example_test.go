package sax_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tsml/transformations/sax"
)

func Example() {
	X := mat.NewDense(2, 8, []float64{
		1, 2, 3, 4, 5, 6, 7, 8,
		8, 7, 6, 5, 4, 3, 2, 1,
	})

	s := sax.New(
		sax.WithWordLength(2),
		sax.WithAlphabetSize(4),
		sax.WithWindowSize(4),
		sax.WithReturnSparse(false),
	)
	out, err := s.Transform(X)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < out.NumInstances(); i++ {
		row := out.Row(i)
		fmt.Println(row, sax.WordString(row[0], 2, s.LetterBits()))
	}
	// Output:
	// [3 3 3 3 3] ad
	// [12 12 12 12 12] da
}

func ExampleRemoveRepeatWords() {
	m := sax.NewWordMatrix(1, 6, []sax.Word{5, 5, 5, 2, 2, 7})
	sax.RemoveRepeatWords(m)
	fmt.Println(m.Row(0))
	fmt.Println(sax.Histogram(m.Row(0)))
	// Output:
	// [5 0 5 2 0 7]
	// map[2:1 5:2 7:1]
}
