package sax

import (
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/YuminosukeSato/tsml/pkg/codec"
	"github.com/YuminosukeSato/tsml/pkg/errors"
)

const (
	archiveMagic      = "TSAX"
	archiveVersion    = 1
	archiveHeaderSize = 32
	wordBits          = 32

	// maxArchivePayload bounds the decompressed payload accepted by LoadWords.
	maxArchivePayload = 1 << 30
)

// archiveHeader is the fixed-size header in front of a word archive. All
// fields are little-endian.
type archiveHeader struct {
	Version  uint8      // byte offset 4
	Codec    codec.Type // byte offset 5
	WordBits uint8      // byte offset 6
	Rows     uint32     // byte offset 8-11
	Cols     uint32     // byte offset 12-15
	RawSize  uint32     // byte offset 16-19
	Checksum uint64     // byte offset 20-27, xxhash64 of the raw payload
	Size     uint32     // byte offset 28-31, compressed payload length
}

func (h *archiveHeader) Bytes() []byte {
	b := make([]byte, archiveHeaderSize)
	copy(b[0:4], archiveMagic)
	b[4] = h.Version
	b[5] = uint8(h.Codec)
	b[6] = h.WordBits
	binary.LittleEndian.PutUint32(b[8:12], h.Rows)
	binary.LittleEndian.PutUint32(b[12:16], h.Cols)
	binary.LittleEndian.PutUint32(b[16:20], h.RawSize)
	binary.LittleEndian.PutUint64(b[20:28], h.Checksum)
	binary.LittleEndian.PutUint32(b[28:32], h.Size)
	return b
}

func (h *archiveHeader) Parse(b []byte) error {
	if len(b) != archiveHeaderSize || string(b[0:4]) != archiveMagic {
		return errors.Wrap(errors.ErrCorruptArchive, "bad magic")
	}
	h.Version = b[4]
	h.Codec = codec.Type(b[5])
	h.WordBits = b[6]
	h.Rows = binary.LittleEndian.Uint32(b[8:12])
	h.Cols = binary.LittleEndian.Uint32(b[12:16])
	h.RawSize = binary.LittleEndian.Uint32(b[16:20])
	h.Checksum = binary.LittleEndian.Uint64(b[20:28])
	h.Size = binary.LittleEndian.Uint32(b[28:32])

	if h.Version != archiveVersion {
		return errors.Wrapf(errors.ErrCorruptArchive, "unsupported version %d", h.Version)
	}
	if h.WordBits != wordBits {
		return errors.Wrapf(errors.ErrCorruptArchive, "unsupported word width %d", h.WordBits)
	}
	if uint64(h.Rows)*uint64(h.Cols)*4 != uint64(h.RawSize) {
		return errors.Wrapf(errors.ErrCorruptArchive, "payload size %d does not match %dx%d words",
			h.RawSize, h.Rows, h.Cols)
	}
	if h.RawSize > maxArchivePayload {
		return errors.Wrapf(errors.ErrCorruptArchive, "payload of %d bytes is too large", h.RawSize)
	}
	return nil
}

func encodePayload(m *WordMatrix) []byte {
	raw := make([]byte, 4*len(m.data))
	for i, w := range m.data {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(w))
	}
	return raw
}

// Fingerprint returns the xxhash64 of the matrix shape and words. Equal
// matrices have equal fingerprints.
func Fingerprint(m *WordMatrix) uint64 {
	d := xxhash.New()
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(m.rows))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(m.cols))
	_, _ = d.Write(dims[:])
	_, _ = d.Write(encodePayload(m))
	return d.Sum64()
}

// SaveWords writes m to w as a word archive compressed with codec t.
func SaveWords(w io.Writer, m *WordMatrix, t codec.Type) error {
	c, err := codec.Get(t)
	if err != nil {
		return errors.Wrap(err, "SaveWords")
	}

	raw := encodePayload(m)
	if len(raw) > maxArchivePayload {
		return errors.NewValueError("SaveWords", "word matrix too large for an archive")
	}
	compressed, err := c.Compress(raw)
	if err != nil {
		return errors.Wrapf(err, "SaveWords: %s compression failed", t)
	}

	h := archiveHeader{
		Version:  archiveVersion,
		Codec:    t,
		WordBits: wordBits,
		Rows:     uint32(m.rows),
		Cols:     uint32(m.cols),
		RawSize:  uint32(len(raw)),
		Checksum: xxhash.Sum64(raw),
		Size:     uint32(len(compressed)),
	}
	if _, err := w.Write(h.Bytes()); err != nil {
		return errors.Wrap(err, "SaveWords: write header")
	}
	if _, err := w.Write(compressed); err != nil {
		return errors.Wrap(err, "SaveWords: write payload")
	}
	return nil
}

// LoadWords reads an archive written by SaveWords. A truncated or altered
// archive yields an error matching ErrCorruptArchive or ErrChecksumMismatch.
func LoadWords(r io.Reader) (*WordMatrix, error) {
	buf := make([]byte, archiveHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptArchive, "read header: %v", err)
	}
	var h archiveHeader
	if err := h.Parse(buf); err != nil {
		return nil, err
	}

	c, err := codec.Get(h.Codec)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptArchive, "%v", err)
	}

	// 圧縮後サイズはコーデックの上限を超えないので、確保する前に弾く
	if bound := codec.MaxEncodedLen(h.Codec, int(h.RawSize)); int64(h.Size) > int64(bound) {
		return nil, errors.Wrapf(errors.ErrCorruptArchive, "compressed size %d exceeds the %s bound %d for %d bytes",
			h.Size, h.Codec, bound, h.RawSize)
	}

	compressed := make([]byte, h.Size)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptArchive, "read payload: %v", err)
	}
	raw, err := codec.DecompressSize(c, compressed, int(h.RawSize))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptArchive, "%s decompression: %v", h.Codec, err)
	}
	if xxhash.Sum64(raw) != h.Checksum {
		return nil, errors.WithStack(errors.ErrChecksumMismatch)
	}

	m := NewWordMatrix(int(h.Rows), int(h.Cols), nil)
	for i := range m.data {
		m.data[i] = Word(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return m, nil
}
