// Package codec transparently decompresses a Gmsh MSH file before it
// reaches the scanner, so a caller can hand the parser a .msh, .msh.gz,
// .msh.zst, or .msh.lz4 file interchangeably. A read-only parser only
// needs the decompression half of each algorithm; gzip is included because
// it is the format mesh-generation pipelines most often reach for when
// archiving ASCII .msh output.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Kind identifies an input compression scheme.
type Kind int

const (
	// None is uncompressed ASCII MSH input.
	None Kind = iota
	// Gzip is gzip-compressed input (RFC 1952 magic 0x1f 0x8b).
	Gzip
	// Zstd is Zstandard-compressed input (magic 0x28 0xB5 0x2F 0xFD).
	Zstd
	// LZ4 is LZ4 frame-compressed input (magic 0x04 0x22 0x4D 0x18).
	LZ4
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Decompressor decompresses a full buffer of input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Sniff inspects the leading bytes of data and returns the compression Kind
// it appears to be encoded with. It never errors; unrecognised input is
// reported as None and left for the scanner to reject on its own terms.
func Sniff(data []byte) Kind {
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		return Gzip
	case len(data) >= 4 && data[0] == 0x28 && data[1] == 0xB5 && data[2] == 0x2F && data[3] == 0xFD:
		return Zstd
	case len(data) >= 4 && data[0] == 0x04 && data[1] == 0x22 && data[2] == 0x4D && data[3] == 0x18:
		return LZ4
	default:
		return None
	}
}

// Decompress decompresses data according to kind. For kind == None it
// returns data unchanged.
func Decompress(kind Kind, data []byte) ([]byte, error) {
	switch kind {
	case None:
		return data, nil
	case Gzip:
		return decompressGzip(data)
	case Zstd:
		return newZstdDecompressor().Decompress(data)
	case LZ4:
		return decompressLZ4(data)
	default:
		return nil, fmt.Errorf("codec: unsupported compression kind %v", kind)
	}
}

func decompressGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("codec: gzip: %w", err)
	}
	defer r.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("codec: gzip: %w", err)
	}

	return out.Bytes(), nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("codec: lz4: %w", err)
	}

	return out.Bytes(), nil
}

// ErrUnknownKind is returned by ParseKind for an unrecognised name.
var ErrUnknownKind = errors.New("codec: unknown compression kind")

// ParseKind maps a name (as accepted by WithDecompression) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
