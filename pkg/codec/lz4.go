package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses with raw LZ4 blocks.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 block.
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible input: CompressBlock reports 0 and the caller must
		// fall back. Store the input as a single literal-only block.
		return lz4LiteralBlock(data), nil
	}
	return dst[:n], nil
}

var _ SizedDecompressor = (*LZ4Compressor)(nil)

// Decompress decompresses an LZ4 block. The block does not store its
// decompressed size, so the sequence headers are walked first to compute it.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	size, err := lz4BlockSize(data)
	if err != nil {
		return nil, err
	}
	return c.DecompressSize(data, size)
}

// DecompressSize decompresses an LZ4 block that expands to exactly size bytes.
func (LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 && size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("lz4 block expands to %d bytes, expected %d", n, size)
	}
	return buf, nil
}

// lz4BlockSize returns the decompressed length of an LZ4 block by summing
// the literal and match lengths of its sequences.
func lz4BlockSize(data []byte) (int, error) {
	const maxBlockSize = 1 << 30

	// 15 means the length continues in the following bytes, 255 at a time
	extend := func(pos, length int) (int, int, error) {
		if length != 15 {
			return pos, length, nil
		}
		for {
			if pos >= len(data) {
				return 0, 0, errLZ4Truncated
			}
			b := data[pos]
			pos++
			length += int(b)
			if b != 255 {
				return pos, length, nil
			}
		}
	}

	size := 0
	pos := 0
	for pos < len(data) {
		token := data[pos]
		pos++

		var literals int
		var err error
		if pos, literals, err = extend(pos, int(token>>4)); err != nil {
			return 0, err
		}
		pos += literals
		size += literals
		if pos > len(data) {
			return 0, errLZ4Truncated
		}
		if pos == len(data) {
			// last sequence has literals only
			break
		}

		pos += 2 // match offset
		if pos > len(data) {
			return 0, errLZ4Truncated
		}
		var match int
		if pos, match, err = extend(pos, int(token&0x0F)); err != nil {
			return 0, err
		}
		size += match + 4
		if size > maxBlockSize {
			return 0, fmt.Errorf("lz4 block expands beyond %d bytes", maxBlockSize)
		}
	}
	return size, nil
}

var errLZ4Truncated = errors.New("lz4: truncated block")

// lz4LiteralBlock encodes data as one LZ4 sequence of literals with no match,
// which every LZ4 block decoder accepts.
func lz4LiteralBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)
	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 255)
			rest -= 255
		}
		out = append(out, byte(rest))
	}
	return append(out, data...)
}
