package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/elemtype"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/internal/srcbuf"
	"github.com/mshkit/gmsh41/mesh"
)

const nameElements = "Elements"

// ParseElements parses $Elements: a header of (numEntityBlocks, numElements,
// minElementTag, maxElementTag), then that many entity blocks. Each block
// declares one element type for its entity and lists, per element, a tag
// followed by its node tags. Fixed arity is read from the element-type
// catalogue; variable-arity types read a leading count first.
func ParseElements(s *scanner.Scanner, b *mesh.Builder) error {
	numBlocks, _, err := s.ReadUsize(nameElements)
	if err != nil {
		return err
	}
	numElements, numElementsRange, err := s.ReadUsize(nameElements)
	if err != nil {
		return err
	}
	minTag, minTagRange, err := s.ReadUsize(nameElements)
	if err != nil {
		return err
	}
	maxTag, maxTagRange, err := s.ReadUsize(nameElements)
	if err != nil {
		return err
	}

	totalParsed := uint64(0)

	for blk := uint64(0); blk < numBlocks; blk++ {
		entityDim, dimRange, err := s.ReadI32(nameElements)
		if err != nil {
			return err
		}
		if entityDim < 0 || entityDim > 3 {
			return diag.New(s.Buffer(), diag.InvalidEntityDimension, nameElements, dimRange,
				"element block entity dimension %d outside {0,1,2,3}", entityDim)
		}
		entityTag, _, err := s.ReadI32(nameElements)
		if err != nil {
			return err
		}
		elementType, typeRange, err := s.ReadI32(nameElements)
		if err != nil {
			return err
		}
		def, ok := elemtype.Lookup(int(elementType))
		if !ok {
			return diag.New(s.Buffer(), diag.InvalidElementType, nameElements, typeRange,
				"element type %d is not a recognised identifier", elementType)
		}
		numInBlock, _, err := s.ReadUsize(nameElements)
		if err != nil {
			return err
		}

		elements := make([]mesh.Element, 0, numInBlock)
		dupRanges := make(map[uint64]srcbuf.Range, numInBlock)
		nodeRefRanges := make(map[uint64]srcbuf.Range, numInBlock)

		for i := uint64(0); i < numInBlock; i++ {
			tag, tagRange, err := s.ReadUsize(nameElements)
			if err != nil {
				return err
			}

			arity := def.Nodes
			if def.Variable {
				n, _, err := s.ReadUsize(nameElements)
				if err != nil {
					return err
				}
				arity = int(n)
			}

			nodeTags := make([]uint64, 0, arity)
			for k := 0; k < arity; k++ {
				nt, _, err := s.ReadUsize(nameElements)
				if err != nil {
					return err
				}
				nodeTags = append(nodeTags, nt)
			}

			elements = append(elements, mesh.Element{Tag: tag, NodeTags: nodeTags})
			dupRanges[tag] = tagRange
			nodeRefRanges[tag] = tagRange
		}

		if err := b.AddElementBlock(mesh.ElementBlock{
			EntityDim:   int(entityDim),
			EntityTag:   entityTag,
			ElementType: int(elementType),
			Elements:    elements,
		}, dupRanges, nodeRefRanges); err != nil {
			return err
		}

		totalParsed += numInBlock
	}

	if _, err := s.ExpectSectionFooter(nameElements); err != nil {
		return err
	}

	if totalParsed != numElements {
		return diag.New(s.Buffer(), diag.InvalidData, nameElements, numElementsRange,
			"header declares %d elements but %d were parsed", numElements, totalParsed)
	}

	if obsMin, obsMax, ok := b.ElementTagMinMax(); ok {
		if obsMin != minTag {
			return diag.New(s.Buffer(), diag.InvalidData, nameElements, minTagRange,
				"header declares minElementTag %d but observed minimum is %d", minTag, obsMin)
		}
		if obsMax != maxTag {
			return diag.New(s.Buffer(), diag.InvalidData, nameElements, maxTagRange,
				"header declares maxElementTag %d but observed maximum is %d", maxTag, obsMax)
		}
	}

	return nil
}
