package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const namePartitionedEntities = "PartitionedEntities"

// ParsePartitionedEntities parses $PartitionedEntities: a partition count, a
// ghost-entity list, then four blocks of partitioned point/curve/surface/
// volume records. Each record extends its unpartitioned counterpart with
// a parent (dimension, tag) and a partition-tag list.
func ParsePartitionedEntities(s *scanner.Scanner, b *mesh.Builder) error {
	numPartitions, _, err := s.ReadUsize(namePartitionedEntities)
	if err != nil {
		return err
	}

	numGhosts, _, err := s.ReadUsize(namePartitionedEntities)
	if err != nil {
		return err
	}
	ghosts := make([]mesh.GhostPartitionEntity, 0, numGhosts)
	for i := uint64(0); i < numGhosts; i++ {
		entityTag, _, err := s.ReadI32(namePartitionedEntities)
		if err != nil {
			return err
		}
		partition, _, err := s.ReadI32(namePartitionedEntities)
		if err != nil {
			return err
		}
		ghosts = append(ghosts, mesh.GhostPartitionEntity{EntityTag: entityTag, Partition: partition})
	}

	numPoints, numPointsRange, err := s.ReadUsize(namePartitionedEntities)
	if err != nil {
		return err
	}
	numCurves, numCurvesRange, err := s.ReadUsize(namePartitionedEntities)
	if err != nil {
		return err
	}
	numSurfaces, numSurfacesRange, err := s.ReadUsize(namePartitionedEntities)
	if err != nil {
		return err
	}
	numVolumes, numVolumesRange, err := s.ReadUsize(namePartitionedEntities)
	if err != nil {
		return err
	}

	out := &mesh.PartitionedEntities{
		NumPartitions: int(numPartitions),
		GhostEntities: ghosts,
		Points:        make(map[int32]mesh.PartitionedPointEntity),
		Curves:        make(map[int32]mesh.PartitionedBoundedEntity),
		Surfaces:      make(map[int32]mesh.PartitionedBoundedEntity),
		Volumes:       make(map[int32]mesh.PartitionedBoundedEntity),
	}

	readParentAndPartitions := func() (parentDim int, parentTag int32, partitionTags []int32, err error) {
		pd, _, err := s.ReadI32(namePartitionedEntities)
		if err != nil {
			return 0, 0, nil, err
		}
		pt, _, err := s.ReadI32(namePartitionedEntities)
		if err != nil {
			return 0, 0, nil, err
		}
		tags, err := readTagList(s, namePartitionedEntities)
		if err != nil {
			return 0, 0, nil, err
		}

		return int(pd), pt, tags, nil
	}

	for i := uint64(0); i < numPoints; i++ {
		tag, _, err := s.ReadI32(namePartitionedEntities)
		if err != nil {
			return err
		}
		parentDim, parentTag, partTags, err := readParentAndPartitions()
		if err != nil {
			return err
		}
		x, _, err := s.ReadF64(namePartitionedEntities)
		if err != nil {
			return err
		}
		y, _, err := s.ReadF64(namePartitionedEntities)
		if err != nil {
			return err
		}
		z, _, err := s.ReadF64(namePartitionedEntities)
		if err != nil {
			return err
		}
		physTags, err := readTagList(s, namePartitionedEntities)
		if err != nil {
			return err
		}
		out.Points[tag] = mesh.PartitionedPointEntity{
			PointEntity:   mesh.PointEntity{Tag: tag, X: x, Y: y, Z: z, PhysicalTags: physTags},
			ParentDim:     parentDim,
			ParentTag:     parentTag,
			PartitionTags: partTags,
		}
	}

	readPartitionedBounded := func() (mesh.PartitionedBoundedEntity, error) {
		var e mesh.PartitionedBoundedEntity
		tag, _, err := s.ReadI32(namePartitionedEntities)
		if err != nil {
			return e, err
		}
		e.Tag = tag
		parentDim, parentTag, partTags, err := readParentAndPartitions()
		if err != nil {
			return e, err
		}
		e.ParentDim = parentDim
		e.ParentTag = parentTag
		e.PartitionTags = partTags

		for _, p := range []*float64{&e.MinX, &e.MinY, &e.MinZ, &e.MaxX, &e.MaxY, &e.MaxZ} {
			v, _, err := s.ReadF64(namePartitionedEntities)
			if err != nil {
				return e, err
			}
			*p = v
		}
		physTags, err := readTagList(s, namePartitionedEntities)
		if err != nil {
			return e, err
		}
		e.PhysicalTags = physTags

		boundTags, err := readTagList(s, namePartitionedEntities)
		if err != nil {
			return e, err
		}
		e.BoundingTags = boundTags

		return e, nil
	}

	for i := uint64(0); i < numCurves; i++ {
		e, err := readPartitionedBounded()
		if err != nil {
			return err
		}
		out.Curves[e.Tag] = e
	}
	for i := uint64(0); i < numSurfaces; i++ {
		e, err := readPartitionedBounded()
		if err != nil {
			return err
		}
		out.Surfaces[e.Tag] = e
	}
	for i := uint64(0); i < numVolumes; i++ {
		e, err := readPartitionedBounded()
		if err != nil {
			return err
		}
		out.Volumes[e.Tag] = e
	}

	if _, err := s.ExpectSectionFooter(namePartitionedEntities); err != nil {
		return err
	}

	if uint64(len(out.Points)) != numPoints {
		return diag.New(s.Buffer(), diag.InvalidData, namePartitionedEntities, numPointsRange,
			"header declares %d partitioned points but %d were parsed", numPoints, len(out.Points))
	}
	if uint64(len(out.Curves)) != numCurves {
		return diag.New(s.Buffer(), diag.InvalidData, namePartitionedEntities, numCurvesRange,
			"header declares %d partitioned curves but %d were parsed", numCurves, len(out.Curves))
	}
	if uint64(len(out.Surfaces)) != numSurfaces {
		return diag.New(s.Buffer(), diag.InvalidData, namePartitionedEntities, numSurfacesRange,
			"header declares %d partitioned surfaces but %d were parsed", numSurfaces, len(out.Surfaces))
	}
	if uint64(len(out.Volumes)) != numVolumes {
		return diag.New(s.Buffer(), diag.InvalidData, namePartitionedEntities, numVolumesRange,
			"header declares %d partitioned volumes but %d were parsed", numVolumes, len(out.Volumes))
	}

	b.SetPartitionedEntities(out)

	return nil
}
