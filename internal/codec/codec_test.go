package codec

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

// compressZstdForTest encodes payload with klauspost/compress/zstd so the
// decompression path (cgo or pure-Go, depending on build tags) can be
// exercised without depending on which variant is active.
func compressZstdForTest(payload []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(payload, nil), nil
}

func TestSniff(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Kind
	}{
		{"plain ascii", []byte("$MeshFormat\n4.1 0 8\n"), None},
		{"gzip magic", []byte{0x1f, 0x8b, 0x08, 0x00}, Gzip},
		{"zstd magic", []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}, Zstd},
		{"lz4 magic", []byte{0x04, 0x22, 0x4D, 0x18, 0x00}, LZ4},
		{"too short", []byte{0x1f}, None},
		{"empty", nil, None},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Sniff(tc.data))
		})
	}
}

func TestDecompressNoneReturnsInputUnchanged(t *testing.T) {
	data := []byte("hello")
	out, err := Decompress(None, data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestDecompressGzipRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := Decompress(Gzip, buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "$MeshFormat\n4.1 0 8\n$EndMeshFormat\n", string(out))
}

func TestDecompressGzipRejectsGarbage(t *testing.T) {
	_, err := Decompress(Gzip, []byte("not gzip"))
	require.Error(t, err)
}

func TestDecompressLZ4RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write([]byte("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := Decompress(LZ4, buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "$MeshFormat\n4.1 0 8\n$EndMeshFormat\n", string(out))
}

func TestDecompressZstdRoundTrip(t *testing.T) {
	payload := []byte("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n")
	compressed, err := compressZstdForTest(payload)
	require.NoError(t, err)

	out, err := Decompress(Zstd, compressed)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":     None,
		"none": None,
		"gzip": Gzip,
		"gz":   Gzip,
		"zstd": Zstd,
		"zst":  Zstd,
		"lz4":  LZ4,
	}
	for name, want := range cases {
		got, err := ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseKind("bogus")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "none", None.String())
	require.Equal(t, "gzip", Gzip.String())
	require.Equal(t, "zstd", Zstd.String())
	require.Equal(t, "lz4", LZ4.String())
	require.Equal(t, "unknown", Kind(99).String())
}
