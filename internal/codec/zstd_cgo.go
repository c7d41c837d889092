//go:build cgo

package codec

import (
	"fmt"

	"github.com/valyala/gozstd"
)

type cgoZstdDecompressor struct{}

func newZstdDecompressor() Decompressor { return cgoZstdDecompressor{} }

func (cgoZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd (cgo): %w", err)
	}

	return out, nil
}
