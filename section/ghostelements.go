package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const nameGhostElements = "GhostElements"

// ParseGhostElements parses $GhostElements: a header giving the record
// count, then that many "elementTag partitionTag numGhostPartitions
// ghostPartitionTag..." records.
func ParseGhostElements(s *scanner.Scanner, b *mesh.Builder) error {
	numGhosts, countRange, err := s.ReadUsize(nameGhostElements)
	if err != nil {
		return err
	}

	ghosts := make([]mesh.GhostElement, 0, numGhosts)

	for i := uint64(0); i < numGhosts; i++ {
		elementTag, _, err := s.ReadUsize(nameGhostElements)
		if err != nil {
			return err
		}
		partitionTag, _, err := s.ReadI32(nameGhostElements)
		if err != nil {
			return err
		}
		numGhostPartitions, _, err := s.ReadUsize(nameGhostElements)
		if err != nil {
			return err
		}
		ghostTags := make([]int32, 0, numGhostPartitions)
		for k := uint64(0); k < numGhostPartitions; k++ {
			gt, _, err := s.ReadI32(nameGhostElements)
			if err != nil {
				return err
			}
			ghostTags = append(ghostTags, gt)
		}

		ghosts = append(ghosts, mesh.GhostElement{
			ElementTag:         elementTag,
			PartitionTag:       partitionTag,
			GhostPartitionTags: ghostTags,
		})
	}

	if _, err := s.ExpectSectionFooter(nameGhostElements); err != nil {
		return err
	}

	if uint64(len(ghosts)) != numGhosts {
		return diag.New(s.Buffer(), diag.InvalidData, nameGhostElements, countRange,
			"header declares %d ghost elements but %d were parsed", numGhosts, len(ghosts))
	}

	b.SetGhostElements(ghosts)

	return nil
}
