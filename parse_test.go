package gmsh41

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/mshkit/gmsh41/internal/diag"
)

func TestParseMinimalFileWithOnlyMeshFormat(t *testing.T) {
	m, err := ParseBytes([]byte("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n"), "minimal.msh")
	require.NoError(t, err)

	require.Equal(t, 4.1, m.Format.Version)
	require.Equal(t, int32(0), m.Format.FileType)
	require.Empty(t, m.Warnings)
	require.Equal(t, 0, m.NumNodes())
	require.Equal(t, 0, m.NumElements())
	require.Empty(t, m.PhysicalNames)
}

func TestParseSingleTetrahedronMesh(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$PhysicalNames
1
3 15 "TheBox"
$EndPhysicalNames
$Entities
0 0 0 1
1 0 0 0 1 1 1 1 15 0
$EndEntities
$Nodes
1 4 1 4
3 1 0 4
1
2
3
4
0 0 0
1 0 0
0 1 0
0 0 1
$EndNodes
$Elements
1 1 1 1
3 1 4 1
1 1 2 3 4
$EndElements
`
	m, err := ParseBytes([]byte(src), "tet.msh")
	require.NoError(t, err)
	require.Empty(t, m.Warnings)

	require.Equal(t, 4, m.NumNodes())
	require.Equal(t, 1, m.NumElements())

	pn, ok := m.PhysicalGroup(3, 15)
	require.True(t, ok)
	require.Equal(t, "TheBox", pn.Name)

	elems := m.ElementsInEntity(3, 1)
	require.Len(t, elems, 1)
	require.Equal(t, []uint64{1, 2, 3, 4}, elems[0].NodeTags)
}

func TestParseHeaderCountMismatchProducesInvalidData(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Nodes
1 5 1 4
0 1 0 4
1
2
3
4
0 0 0
1 0 0
0 1 0
0 0 1
$EndNodes
`
	_, err := ParseBytes([]byte(src), "mismatch.msh")
	require.Error(t, err)

	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, diag.InvalidData, d.Kind)
}

func TestParseDuplicateNodeTagProducesDuplicateTag(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Nodes
1 2 1 1
0 1 0 2
1
1
0 0 0
1 1 1
$EndNodes
`
	_, err := ParseBytes([]byte(src), "dup.msh")
	require.Error(t, err)

	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, diag.DuplicateTag, d.Kind)
}

func TestParseUnknownSectionIsToleratedWithWarning(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 0
$EndEntities
$MyCustom
some nonsense that is simply skipped
$EndMyCustom
$Nodes
0 0 1 0
$EndNodes
`
	m, err := ParseBytes([]byte(src), "unknown-section.msh")
	require.NoError(t, err)

	require.Len(t, m.Warnings, 1)
	require.Contains(t, m.Warnings[0].Message, "MyCustom")
}

func TestParseElementsSectionMayPrecedeNodes(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Elements
1 1 1 1
3 1 4 1
1 1 2 3 4
$EndElements
$Nodes
1 4 1 4
3 1 0 4
1
2
3
4
0 0 0
1 0 0
0 1 0
0 0 1
$EndNodes
`
	m, err := ParseBytes([]byte(src), "reordered.msh")
	require.NoError(t, err)
	require.Equal(t, 4, m.NumNodes())
	require.Equal(t, 1, m.NumElements())
}

func TestParseElementReferencingMissingNodeFails(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Nodes
1 1 1 1
0 1 0 1
1
0 0 0
$EndNodes
$Elements
1 1 1 1
0 1 15 1
1 9
$EndElements
`
	_, err := ParseBytes([]byte(src), "dangling.msh")
	require.Error(t, err)

	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, diag.InvalidData, d.Kind)
	require.Contains(t, d.Message, "node tag 9")
}

func TestParseAbsentPhysicalNamesWarnsOnEntityReferences(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 1
1 0 0 0 1 1 1 1 15 0
$EndEntities
`
	m, err := ParseBytes([]byte(src), "nonames.msh")
	require.NoError(t, err)

	require.Len(t, m.Warnings, 1)
	require.Contains(t, m.Warnings[0].Message, "physical tag 15")
}

func TestParseMissingFileReturnsIoError(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.msh"))
	require.Error(t, err)

	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	require.Equal(t, IoError, d.Kind)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseGzipCompressedInput(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	m, err := ParseBytes(buf.Bytes(), "minimal.msh.gz")
	require.NoError(t, err)
	require.Equal(t, 4.1, m.Format.Version)
}

func TestParseTrailingGarbageIsRejected(t *testing.T) {
	src := "$MeshFormat\n4.1 0 8\n$EndMeshFormat\nstray tokens here\n"
	_, err := ParseBytes([]byte(src), "trailing.msh")
	require.Error(t, err)

	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, diag.InvalidFormat, d.Kind)
}

func TestParsePeriodicSectionPopulatesTranslationLink(t *testing.T) {
	src := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Periodic
1
2 2 1
3 1.0 0.0 0.0
0
$EndPeriodic
`
	m, err := ParseBytes([]byte(src), "periodic.msh")
	require.NoError(t, err)

	require.NotNil(t, m.Periodic)
	require.Len(t, m.Periodic.Links, 1)
	link := m.Periodic.Links[0]
	require.Equal(t, int32(2), link.SlaveTag)
	require.Equal(t, int32(1), link.MasterTag)
	require.Equal(t, []float64{1, 0, 0}, link.Affine)
	require.Empty(t, link.NodePairs)
}
