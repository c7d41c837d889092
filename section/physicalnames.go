package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const namePhysicalNames = "PhysicalNames"

// ParsePhysicalNames parses $PhysicalNames: a header giving the record
// count, then that many "dimension physical_tag name" lines.
func ParsePhysicalNames(s *scanner.Scanner, b *mesh.Builder) error {
	numNames, countRange, err := s.ReadUsize(namePhysicalNames)
	if err != nil {
		return err
	}

	count := uint64(0)
	for {
		name, ok := s.NextHeaderToken()
		if ok && name == "End"+namePhysicalNames {
			break
		}

		dim, dimRange, err := s.ReadI32(namePhysicalNames)
		if err != nil {
			return err
		}
		if dim < 0 || dim > 3 {
			return diag.New(s.Buffer(), diag.InvalidEntityDimension, namePhysicalNames, dimRange,
				"physical name dimension %d outside {0,1,2,3}", dim)
		}

		tag, _, err := s.ReadI32(namePhysicalNames)
		if err != nil {
			return err
		}

		nameStr, _, err := s.ReadQuotedString(namePhysicalNames)
		if err != nil {
			return err
		}

		b.AddPhysicalName(mesh.PhysicalName{Dimension: int(dim), PhysicalTag: tag, Name: nameStr})
		count++
	}

	if _, err := s.ExpectSectionFooter(namePhysicalNames); err != nil {
		return err
	}

	if count != numNames {
		return diag.New(s.Buffer(), diag.InvalidData, namePhysicalNames, countRange,
			"header declares %d physical names but %d were parsed", numNames, count)
	}

	return nil
}
