// Package codec provides the compression codecs used to persist saved SAX
// words.
//
// Word payloads are little-endian uint32 runs; after repeat-word suppression
// they are dominated by zeros and compress very well. Zstd gives the best
// ratio, S2 and LZ4 trade ratio for speed, and None stores the payload as is.
package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses a complete payload.
//
// The returned slice is newly allocated and owned by the caller; the input
// is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same Type.
//
// An error is returned if the data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Implementations are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// Type identifies a compression algorithm. Its numeric value is stored in
// archive headers and must stay stable.
type Type uint8

const (
	None Type = iota
	Zstd
	S2
	LZ4
)

// String returns the lowercase algorithm name.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("codec(%d)", uint8(t))
	}
}

// ParseType converts a name produced by Type.String back into a Type.
func ParseType(name string) (Type, error) {
	for t := range builtinCodecs {
		if t.String() == name {
			return t, nil
		}
	}
	return None, fmt.Errorf("unknown codec %q", name)
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// Get returns the built-in Codec for t.
func Get(t Type) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

// SizedDecompressor is implemented by codecs that can decompress straight
// into a buffer of a known size, such as the raw size stored next to the
// payload.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// DecompressSize decompresses data that is expected to expand to exactly size
// bytes. Codecs implementing SizedDecompressor decode into a buffer of that
// size; the others go through Decompress and have their length checked.
func DecompressSize(d Decompressor, data []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative decompressed size %d", size)
	}
	if len(data) == 0 {
		if size != 0 {
			return nil, fmt.Errorf("empty payload, expected %d bytes", size)
		}
		return nil, nil
	}
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressSize(data, size)
	}
	out, err := d.Decompress(data)
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("decompressed %d bytes, expected %d", len(out), size)
	}
	return out, nil
}

// MaxEncodedLen returns the largest compressed size codec t produces for n
// input bytes, or -1 when t is unknown.
func MaxEncodedLen(t Type, n int) int {
	switch t {
	case None:
		return n
	case Zstd:
		// raw blocks carry a 3-byte header per 128 KiB plus frame overhead
		return n + n>>8 + 128
	case S2:
		return s2.MaxEncodedLen(n)
	case LZ4:
		return max(lz4.CompressBlockBound(n), n+n/255+16)
	default:
		return -1
	}
}
