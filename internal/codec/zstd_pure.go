//go:build !cgo

package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse. klauspost/compress/zstd is
// explicitly designed for decoder reuse: "The decoder has been designed to
// operate without allocations after a warmup."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("codec: failed to create pooled zstd decoder: %v", err))
		}

		return dec
	},
}

type pureZstdDecompressor struct{}

func newZstdDecompressor() Decompressor { return pureZstdDecompressor{} }

func (pureZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd: %w", err)
	}

	return out, nil
}
