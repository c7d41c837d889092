package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/internal/srcbuf"
	"github.com/mshkit/gmsh41/mesh"
)

const nameNodes = "Nodes"

// ParseNodes parses $Nodes: a header of (numEntityBlocks, numNodes,
// minNodeTag, maxNodeTag), then that many entity blocks. Each block lists
// its node tags, then its coordinates, in two separate passes. The tag
// for node i in phase one pairs positionally with the coordinates for node
// i in phase two.
func ParseNodes(s *scanner.Scanner, b *mesh.Builder) error {
	numBlocks, _, err := s.ReadUsize(nameNodes)
	if err != nil {
		return err
	}
	numNodes, numNodesRange, err := s.ReadUsize(nameNodes)
	if err != nil {
		return err
	}
	minTag, minTagRange, err := s.ReadUsize(nameNodes)
	if err != nil {
		return err
	}
	maxTag, maxTagRange, err := s.ReadUsize(nameNodes)
	if err != nil {
		return err
	}

	totalParsed := uint64(0)

	for blk := uint64(0); blk < numBlocks; blk++ {
		entityDim, dimRange, err := s.ReadI32(nameNodes)
		if err != nil {
			return err
		}
		if entityDim < 0 || entityDim > 3 {
			return diag.New(s.Buffer(), diag.InvalidEntityDimension, nameNodes, dimRange,
				"node block entity dimension %d outside {0,1,2,3}", entityDim)
		}
		entityTag, _, err := s.ReadI32(nameNodes)
		if err != nil {
			return err
		}
		parametricFlag, _, err := s.ReadI32(nameNodes)
		if err != nil {
			return err
		}
		numInBlock, _, err := s.ReadUsize(nameNodes)
		if err != nil {
			return err
		}
		parametric := parametricFlag != 0

		tags := make([]uint64, 0, numInBlock)
		tagRanges := make(map[uint64]srcbuf.Range, numInBlock)
		for i := uint64(0); i < numInBlock; i++ {
			tag, r, err := s.ReadUsize(nameNodes)
			if err != nil {
				return err
			}
			tags = append(tags, tag)
			tagRanges[tag] = r
		}

		nodes := make([]mesh.Node, 0, numInBlock)
		for i := uint64(0); i < numInBlock; i++ {
			x, _, err := s.ReadF64(nameNodes)
			if err != nil {
				return err
			}
			y, _, err := s.ReadF64(nameNodes)
			if err != nil {
				return err
			}
			z, _, err := s.ReadF64(nameNodes)
			if err != nil {
				return err
			}
			var param []float64
			if parametric {
				param = make([]float64, entityDim)
				for k := range param {
					v, _, err := s.ReadF64(nameNodes)
					if err != nil {
						return err
					}
					param[k] = v
				}
			}
			nodes = append(nodes, mesh.Node{Tag: tags[i], X: x, Y: y, Z: z, Param: param})
		}

		if err := b.AddNodeBlock(mesh.NodeBlock{
			EntityDim:  int(entityDim),
			EntityTag:  entityTag,
			Parametric: parametric,
			Nodes:      nodes,
		}, tagRanges); err != nil {
			return err
		}

		totalParsed += numInBlock
	}

	if _, err := s.ExpectSectionFooter(nameNodes); err != nil {
		return err
	}

	if totalParsed != numNodes {
		return diag.New(s.Buffer(), diag.InvalidData, nameNodes, numNodesRange,
			"header declares %d nodes but %d were parsed", numNodes, totalParsed)
	}

	if obsMin, obsMax, ok := b.NodeTagMinMax(); ok {
		if obsMin != minTag {
			return diag.New(s.Buffer(), diag.InvalidData, nameNodes, minTagRange,
				"header declares minNodeTag %d but observed minimum is %d", minTag, obsMin)
		}
		if obsMax != maxTag {
			return diag.New(s.Buffer(), diag.InvalidData, nameNodes, maxTagRange,
				"header declares maxNodeTag %d but observed maximum is %d", maxTag, obsMax)
		}
	}

	return nil
}
