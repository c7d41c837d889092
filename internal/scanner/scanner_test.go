package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/srcbuf"
)

func newScanner(src string) *Scanner {
	return New(srcbuf.New("test.msh", []byte(src)))
}

func TestReadIntegers(t *testing.T) {
	s := newScanner("42 -7 007\n")

	v32, _, err := s.ReadI32("sec")
	require.NoError(t, err)
	require.Equal(t, int32(42), v32)

	v64, _, err := s.ReadI64("sec")
	require.NoError(t, err)
	require.Equal(t, int64(-7), v64)

	vu, _, err := s.ReadUsize("sec")
	require.NoError(t, err)
	require.Equal(t, uint64(7), vu)
}

func TestReadUsizeRejectsNegative(t *testing.T) {
	s := newScanner("-3\n")
	_, _, err := s.ReadUsize("sec")
	require.Error(t, err)

	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, diag.InvalidData, d.Kind)
}

func TestReadF64Forms(t *testing.T) {
	cases := map[string]float64{
		"4.1":   4.1,
		"-1.5":  -1.5,
		"1e10":  1e10,
		"inf":   0, // checked separately below for +Inf
		"-inf":  0,
		"nan":   0,
	}
	for input := range cases {
		s := newScanner(input + "\n")
		v, _, err := s.ReadF64("sec")
		require.NoError(t, err, input)
		switch input {
		case "inf":
			require.True(t, v > 0 && v*2 == v) // +Inf
		case "-inf":
			require.True(t, v < 0 && v*2 == v) // -Inf
		case "nan":
			require.True(t, v != v) // NaN
		default:
			require.Equal(t, cases[input], v)
		}
	}
}

func TestReadF64RejectsGarbage(t *testing.T) {
	s := newScanner("$NotANumber\n")
	_, _, err := s.ReadF64("sec")
	require.Error(t, err)
}

func TestReadQuotedString(t *testing.T) {
	s := newScanner(`"TheBox"` + "\n")
	v, _, err := s.ReadQuotedString("sec")
	require.NoError(t, err)
	require.Equal(t, "TheBox", v)
}

func TestReadQuotedStringUnterminated(t *testing.T) {
	s := newScanner(`"oops`)
	_, _, err := s.ReadQuotedString("sec")
	require.Error(t, err)
}

func TestReadQuotedStringRecoversUTF16(t *testing.T) {
	// UTF-16BE BOM followed by "Hi" as UTF-16BE code units.
	payload := []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}
	src := append([]byte{'"'}, append(payload, '"', '\n')...)
	s := New(srcbuf.New("test.msh", src))

	v, _, err := s.ReadQuotedString("sec")
	require.NoError(t, err)
	require.Equal(t, "Hi", v)
}

func TestExpectSectionHeaderAndFooter(t *testing.T) {
	s := newScanner("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n")

	_, err := s.ExpectSectionHeader("MeshFormat")
	require.NoError(t, err)

	_, _, err = s.ReadF64("MeshFormat")
	require.NoError(t, err)
	_, _, err = s.ReadI32("MeshFormat")
	require.NoError(t, err)
	_, _, err = s.ReadI32("MeshFormat")
	require.NoError(t, err)

	_, err = s.ExpectSectionFooter("MeshFormat")
	require.NoError(t, err)
	require.True(t, s.AtEOF())
}

func TestExpectSectionHeaderWrongName(t *testing.T) {
	s := newScanner("$Nodes\n")
	_, err := s.ExpectSectionHeader("MeshFormat")
	require.Error(t, err)

	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, diag.InvalidSection, d.Kind)
}

func TestSkipUnknownSection(t *testing.T) {
	s := newScanner("garbage line\nmore garbage\n$EndFoo\n$Nodes\n")
	err := s.SkipUnknownSection("Foo")
	require.NoError(t, err)

	name, ok := s.NextHeaderToken()
	require.True(t, ok)
	require.Equal(t, "Nodes", name)
}

func TestSkipUnknownSectionEOF(t *testing.T) {
	s := newScanner("garbage\nno footer here\n")
	err := s.SkipUnknownSection("Foo")
	require.Error(t, err)
}

func TestNextHeaderToken(t *testing.T) {
	s := newScanner("  \n$Entities\n")
	name, ok := s.NextHeaderToken()
	require.True(t, ok)
	require.Equal(t, "Entities", name)

	// Peeking must not consume.
	_, err := s.ExpectSectionHeader("Entities")
	require.NoError(t, err)
}

func TestNextHeaderTokenAtEOF(t *testing.T) {
	s := newScanner("   \n")
	_, ok := s.NextHeaderToken()
	require.False(t, ok)
}
