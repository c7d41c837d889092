package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const nameInterpolationScheme = "InterpolationScheme"

// ParseInterpolationScheme parses $InterpolationScheme: a named scheme
// count, then per scheme a name and a list of element types, each carrying
// one or more coefficient/exponent matrices.
func ParseInterpolationScheme(s *scanner.Scanner, b *mesh.Builder) error {
	numSchemes, countRange, err := s.ReadUsize(nameInterpolationScheme)
	if err != nil {
		return err
	}

	count := uint64(0)
	for i := uint64(0); i < numSchemes; i++ {
		name, _, err := s.ReadQuotedString(nameInterpolationScheme)
		if err != nil {
			return err
		}

		numElementTypes, _, err := s.ReadUsize(nameInterpolationScheme)
		if err != nil {
			return err
		}

		elems := make([]mesh.InterpolationElement, 0, numElementTypes)
		for j := uint64(0); j < numElementTypes; j++ {
			elementType, _, err := s.ReadI32(nameInterpolationScheme)
			if err != nil {
				return err
			}
			numMatrices, _, err := s.ReadUsize(nameInterpolationScheme)
			if err != nil {
				return err
			}

			matrices := make([]mesh.InterpolationMatrix, 0, numMatrices)
			for k := uint64(0); k < numMatrices; k++ {
				rows, _, err := s.ReadUsize(nameInterpolationScheme)
				if err != nil {
					return err
				}
				cols, _, err := s.ReadUsize(nameInterpolationScheme)
				if err != nil {
					return err
				}
				values := make([]float64, 0, rows*cols)
				for v := uint64(0); v < rows*cols; v++ {
					val, _, err := s.ReadF64(nameInterpolationScheme)
					if err != nil {
						return err
					}
					values = append(values, val)
				}
				matrices = append(matrices, mesh.InterpolationMatrix{Rows: int(rows), Cols: int(cols), Values: values})
			}

			elems = append(elems, mesh.InterpolationElement{ElementType: int(elementType), Matrices: matrices})
		}

		b.AddInterpolationScheme(mesh.InterpolationScheme{Name: name, Elements: elems})
		count++
	}

	if _, err := s.ExpectSectionFooter(nameInterpolationScheme); err != nil {
		return err
	}

	if count != numSchemes {
		return diag.New(s.Buffer(), diag.InvalidData, nameInterpolationScheme, countRange,
			"header declares %d interpolation schemes but %d were parsed", numSchemes, count)
	}

	return nil
}
