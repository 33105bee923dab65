package sax

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/tsml/pkg/codec"
	"github.com/YuminosukeSato/tsml/pkg/errors"
)

func transformedWords(t *testing.T) *WordMatrix {
	t.Helper()
	out, err := quietSAX(WithWordLength(4), WithWindowSize(8), WithRemoveRepeatWords(true)).
		Transform(randomPanel(10, 64, 21))
	require.NoError(t, err)
	return out.Dense()
}

func TestArchiveRoundTrip(t *testing.T) {
	m := transformedWords(t)
	for _, ct := range []codec.Type{codec.None, codec.Zstd, codec.S2, codec.LZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, SaveWords(&buf, m, ct))

			got, err := LoadWords(&buf)
			require.NoError(t, err)
			assert.True(t, m.Equal(got))
			assert.Equal(t, Fingerprint(m), Fingerprint(got))
		})
	}
}

func TestArchiveEmptyMatrix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SaveWords(&buf, NewWordMatrix(0, 0, nil), codec.None))
	got, err := LoadWords(&buf)
	require.NoError(t, err)
	r, c := got.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
}

func TestArchiveCompresses(t *testing.T) {
	m := transformedWords(t)
	var plain, zstd bytes.Buffer
	require.NoError(t, SaveWords(&plain, m, codec.None))
	require.NoError(t, SaveWords(&zstd, m, codec.Zstd))
	assert.Less(t, zstd.Len(), plain.Len())
}

func TestArchiveChecksumMismatch(t *testing.T) {
	m := transformedWords(t)
	var buf bytes.Buffer
	require.NoError(t, SaveWords(&buf, m, codec.None))

	data := buf.Bytes()
	data[archiveHeaderSize+5] ^= 0xFF
	_, err := LoadWords(bytes.NewReader(data))
	assert.True(t, errors.Is(err, errors.ErrChecksumMismatch), "got %v", err)
}

func TestArchiveCorrupt(t *testing.T) {
	m := transformedWords(t)
	var buf bytes.Buffer
	require.NoError(t, SaveWords(&buf, m, codec.Zstd))
	good := buf.Bytes()

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"bad magic", func(b []byte) []byte { b[0] = 'X'; return b }},
		{"bad version", func(b []byte) []byte { b[4] = 9; return b }},
		{"unknown codec", func(b []byte) []byte { b[5] = 200; return b }},
		{"shape mismatch", func(b []byte) []byte { b[8]++; return b }},
		{"truncated header", func(b []byte) []byte { return b[:10] }},
		{"truncated payload", func(b []byte) []byte { return b[:len(b)-3] }},
		{"compressed size beyond codec bound", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[28:32], 0xF0000000)
			return b
		}},
		{"raw size shorter than payload", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[8:12], 1)
			binary.LittleEndian.PutUint32(b[12:16], 1)
			binary.LittleEndian.PutUint32(b[16:20], 4)
			return b
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(bytes.Clone(good))
			_, err := LoadWords(bytes.NewReader(data))
			assert.True(t, errors.Is(err, errors.ErrCorruptArchive), "got %v", err)
		})
	}
}

func TestArchiveLargeLZ4(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates several 136 MB buffers")
	}
	// 128 MiB を超える非圧縮ペイロード
	m := NewWordMatrix(1, 34_000_000, nil)
	row := m.RawRow(0)
	for i := range row {
		row[i] = Word(uint32(i) * 2654435761)
	}

	var buf bytes.Buffer
	require.NoError(t, SaveWords(&buf, m, codec.LZ4))
	got, err := LoadWords(&buf)
	require.NoError(t, err)
	assert.Equal(t, Fingerprint(m), Fingerprint(got))
}

func TestSAXSaveWords(t *testing.T) {
	s := quietSAX(WithWordLength(2), WithWindowSize(4))
	var buf bytes.Buffer
	assert.True(t, errors.Is(s.SaveWords(&buf, codec.S2), errors.ErrEmptyData))

	s = quietSAX(WithWordLength(2), WithWindowSize(4), WithSaveWords(true))
	_, err := s.Transform(randomPanel(2, 12, 22))
	require.NoError(t, err)
	require.NoError(t, s.SaveWords(&buf, codec.S2))

	got, err := LoadWords(&buf)
	require.NoError(t, err)
	assert.True(t, s.Words().Equal(got))
}

func TestFingerprintDistinguishesShape(t *testing.T) {
	a := NewWordMatrix(2, 3, nil)
	b := NewWordMatrix(3, 2, nil)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
