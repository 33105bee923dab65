package sax

import "strings"

// EncodeWord maps every segment of pattern to the index of the first
// breakpoint it does not exceed and packs the indices into a Word, first
// segment in the highest bits. A NaN segment matches no breakpoint and adds
// no symbol.
func EncodeWord(pattern, breakpoints []float64, letterBits uint) Word {
	var word Word
	for _, v := range pattern {
		for bp, threshold := range breakpoints {
			if v <= threshold {
				word = word<<letterBits | Word(bp)
				break
			}
		}
	}
	return word
}

// DecodeWord splits w back into wordLength symbol indices in time order.
func DecodeWord(w Word, wordLength int, letterBits uint) []int {
	symbols := make([]int, wordLength)
	mask := Word(1)<<letterBits - 1
	for i := wordLength - 1; i >= 0; i-- {
		symbols[i] = int(w & mask)
		w >>= letterBits
	}
	return symbols
}

// WordString renders w as letters starting at 'a', e.g. "abdc".
func WordString(w Word, wordLength int, letterBits uint) string {
	var sb strings.Builder
	sb.Grow(wordLength)
	for _, s := range DecodeWord(w, wordLength, letterBits) {
		sb.WriteByte(byte('a' + s))
	}
	return sb.String()
}

// RemoveRepeatWords replaces, row by row, every word equal to the value left
// of it with 0. Rows are rewritten left to right, so the run "a a a" becomes
// "a 0 a". The value left of the first column is 0, so a genuine 0 word is
// dropped as well. Running it twice changes nothing.
func RemoveRepeatWords(m *WordMatrix) {
	for i := 0; i < m.rows; i++ {
		removeRepeats(m.RawRow(i))
	}
}

func removeRepeats(row []Word) {
	var last Word
	for j, w := range row {
		if w == last {
			row[j] = 0
		}
		last = row[j]
	}
}
