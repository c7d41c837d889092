package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mshkit/gmsh41/internal/srcbuf"
)

func TestDiagnosticError(t *testing.T) {
	buf := srcbuf.New("model.msh", []byte("$MeshFormat\n4.2 0 8\n$EndMeshFormat\n"))
	r := srcbuf.Range{Begin: 12, End: 15}

	d := New(buf, UnsupportedVersion, "MeshFormat", r, "unsupported version %v", 4.2)
	require.Equal(t, UnsupportedVersion, d.Kind)
	require.Contains(t, d.Error(), "model.msh:2:1")
	require.Contains(t, d.Error(), "unsupported version 4.2")
}

func TestDiagnosticErrorWithoutBuffer(t *testing.T) {
	d := New(nil, IoError, "", srcbuf.Range{}, "file not found")
	require.Equal(t, "IoError: file not found", d.Error())
}

func TestDiagnosticRender(t *testing.T) {
	buf := srcbuf.New("model.msh", []byte("$MeshFormat\n4.2 0 8\n$EndMeshFormat\n"))
	r := srcbuf.Range{Begin: 12, End: 15}
	d := New(buf, UnsupportedVersion, "MeshFormat", r, "unsupported version")

	var out bytes.Buffer
	d.Render(&out, 1)

	rendered := out.String()
	require.Contains(t, rendered, "model.msh:2:1")
	require.Contains(t, rendered, "4.2 0 8")
	require.Contains(t, rendered, "^^^")
	require.Contains(t, rendered, "$MeshFormat") // one line of leading context
}

func TestDiagnosticRenderWithoutBuffer(t *testing.T) {
	d := New(nil, IoError, "", srcbuf.Range{}, "boom")

	var out bytes.Buffer
	d.Render(&out, 2)
	require.Equal(t, "IoError: boom\n", out.String())
}

func TestNewIOWrapsUnderlyingError(t *testing.T) {
	underlying := errors.New("no such file")
	d := NewIO(underlying, "reading model.msh: %v", underlying)

	require.Equal(t, IoError, d.Kind)
	require.ErrorIs(t, d, underlying)
	require.Contains(t, d.Error(), "no such file")
}

func TestWarningString(t *testing.T) {
	w := Warning{Message: "unrecognised section", Section: "Foo"}
	require.Equal(t, "[Foo] unrecognised section", w.String())
}
