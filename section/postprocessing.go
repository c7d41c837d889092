package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const (
	nameNodeData        = "NodeData"
	nameElementData     = "ElementData"
	nameElementNodeData = "ElementNodeData"
)

// ParseNodeData parses $NodeData per the shared post-processing view shape.
func ParseNodeData(s *scanner.Scanner, b *mesh.Builder) error {
	v, err := parseDataView(s, nameNodeData, false)
	if err != nil {
		return err
	}
	b.AddNodeData(*v)

	return nil
}

// ParseElementData parses $ElementData per the shared post-processing view
// shape.
func ParseElementData(s *scanner.Scanner, b *mesh.Builder) error {
	v, err := parseDataView(s, nameElementData, false)
	if err != nil {
		return err
	}
	b.AddElementData(*v)

	return nil
}

// ParseElementNodeData parses $ElementNodeData, whose body entries additionally
// carry a per-element node count ahead of their values.
func ParseElementNodeData(s *scanner.Scanner, b *mesh.Builder) error {
	v, err := parseDataView(s, nameElementNodeData, true)
	if err != nil {
		return err
	}
	b.AddElementNodeData(*v)

	return nil
}

// parseDataView implements the common $NodeData/$ElementData/
// $ElementNodeData grammar: a string-tag block, a real-tag block, an
// integer-tag block (time step, field components, entity count, and an
// optional partition index), then that many body entries.
func parseDataView(s *scanner.Scanner, section string, perElementNodeCount bool) (*mesh.DataView, error) {
	numStringTags, _, err := s.ReadUsize(section)
	if err != nil {
		return nil, err
	}
	stringTags := make([]string, 0, numStringTags)
	for i := uint64(0); i < numStringTags; i++ {
		str, _, err := s.ReadQuotedString(section)
		if err != nil {
			return nil, err
		}
		stringTags = append(stringTags, str)
	}

	numRealTags, _, err := s.ReadUsize(section)
	if err != nil {
		return nil, err
	}
	realTags := make([]float64, 0, numRealTags)
	for i := uint64(0); i < numRealTags; i++ {
		v, _, err := s.ReadF64(section)
		if err != nil {
			return nil, err
		}
		realTags = append(realTags, v)
	}

	numIntTags, intCountRange, err := s.ReadUsize(section)
	if err != nil {
		return nil, err
	}
	if numIntTags < 3 {
		return nil, diag.New(s.Buffer(), diag.InvalidData, section, intCountRange,
			"expected at least 3 integer tags, got %d", numIntTags)
	}

	timeStep, _, err := s.ReadI64(section)
	if err != nil {
		return nil, err
	}
	numFieldComponents, _, err := s.ReadI64(section)
	if err != nil {
		return nil, err
	}
	numEntities, _, err := s.ReadI64(section)
	if err != nil {
		return nil, err
	}

	var partition int64
	hasPartition := numIntTags >= 4
	if hasPartition {
		partition, _, err = s.ReadI64(section)
		if err != nil {
			return nil, err
		}
	}
	for i := uint64(4); i < numIntTags; i++ {
		if _, _, err := s.ReadI64(section); err != nil {
			return nil, err
		}
	}

	entries := make([]mesh.DataEntry, 0, numEntities)
	for i := int64(0); i < numEntities; i++ {
		entityTag, _, err := s.ReadUsize(section)
		if err != nil {
			return nil, err
		}

		numNodesPerElement := 1
		if perElementNodeCount {
			n, _, err := s.ReadUsize(section)
			if err != nil {
				return nil, err
			}
			numNodesPerElement = int(n)
		}

		numValues := int(numFieldComponents) * numNodesPerElement
		values := make([]float64, 0, numValues)
		for k := 0; k < numValues; k++ {
			v, _, err := s.ReadF64(section)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}

		entries = append(entries, mesh.DataEntry{
			EntityTag:          entityTag,
			NumNodesPerElement: numNodesPerElement,
			Values:             values,
		})
	}

	if _, err := s.ExpectSectionFooter(section); err != nil {
		return nil, err
	}

	return &mesh.DataView{
		StringTags:         stringTags,
		RealTags:           realTags,
		TimeStep:           timeStep,
		NumFieldComponents: int(numFieldComponents),
		NumEntities:        int(numEntities),
		Partition:          int(partition),
		HasPartition:       hasPartition,
		Entries:            entries,
	}, nil
}
