// Package section holds one parser per recognised MSH 4.1 section header.
// Each parser receives the scanner and the mesh builder and consumes
// exactly up to and including its $End… footer.
package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const nameMeshFormat = "MeshFormat"

// ParseMeshFormat parses the mandatory $MeshFormat section: one line of
// "version file_type data_size", then the footer. Validates version == 4.1
// and file_type == 0 (ASCII).
func ParseMeshFormat(s *scanner.Scanner, b *mesh.Builder) error {
	version, versionRange, err := s.ReadF64(nameMeshFormat)
	if err != nil {
		return err
	}
	fileType, fileTypeRange, err := s.ReadI32(nameMeshFormat)
	if err != nil {
		return err
	}
	dataSize, _, err := s.ReadI32(nameMeshFormat)
	if err != nil {
		return err
	}

	if version != 4.1 {
		return diag.New(s.Buffer(), diag.UnsupportedVersion, nameMeshFormat, versionRange,
			"unsupported MSH version %v, only 4.1 is supported", version)
	}
	if fileType != 0 {
		return diag.New(s.Buffer(), diag.UnsupportedFileType, nameMeshFormat, fileTypeRange,
			"unsupported file_type %d, only ASCII (0) is supported", fileType)
	}

	if _, err := s.ExpectSectionFooter(nameMeshFormat); err != nil {
		return err
	}

	b.SetFormat(mesh.MeshFormat{Version: version, FileType: fileType, DataSize: dataSize})

	return nil
}
