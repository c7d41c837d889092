package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const nameEntities = "Entities"

// ParseEntities parses $Entities: a header of four counts (points, curves,
// surfaces, volumes), then exactly those counts of records in that order.
func ParseEntities(s *scanner.Scanner, b *mesh.Builder) error {
	numPoints, numPointsRange, err := s.ReadUsize(nameEntities)
	if err != nil {
		return err
	}
	numCurves, numCurvesRange, err := s.ReadUsize(nameEntities)
	if err != nil {
		return err
	}
	numSurfaces, numSurfacesRange, err := s.ReadUsize(nameEntities)
	if err != nil {
		return err
	}
	numVolumes, numVolumesRange, err := s.ReadUsize(nameEntities)
	if err != nil {
		return err
	}

	entities := mesh.NewEntities()

	for i := uint64(0); i < numPoints; i++ {
		tag, _, err := s.ReadI32(nameEntities)
		if err != nil {
			return err
		}
		x, _, err := s.ReadF64(nameEntities)
		if err != nil {
			return err
		}
		y, _, err := s.ReadF64(nameEntities)
		if err != nil {
			return err
		}
		z, _, err := s.ReadF64(nameEntities)
		if err != nil {
			return err
		}
		physTags, err := readTagList(s, nameEntities)
		if err != nil {
			return err
		}
		entities.Points[tag] = mesh.PointEntity{Tag: tag, X: x, Y: y, Z: z, PhysicalTags: physTags}
	}

	readBounded := func() (mesh.BoundedEntity, error) {
		var e mesh.BoundedEntity
		tag, _, err := s.ReadI32(nameEntities)
		if err != nil {
			return e, err
		}
		e.Tag = tag
		for _, p := range []*float64{&e.MinX, &e.MinY, &e.MinZ, &e.MaxX, &e.MaxY, &e.MaxZ} {
			v, _, err := s.ReadF64(nameEntities)
			if err != nil {
				return e, err
			}
			*p = v
		}
		physTags, err := readTagList(s, nameEntities)
		if err != nil {
			return e, err
		}
		e.PhysicalTags = physTags

		boundTags, err := readTagList(s, nameEntities)
		if err != nil {
			return e, err
		}
		e.BoundingTags = boundTags

		return e, nil
	}

	for i := uint64(0); i < numCurves; i++ {
		e, err := readBounded()
		if err != nil {
			return err
		}
		entities.Curves[e.Tag] = e
	}
	for i := uint64(0); i < numSurfaces; i++ {
		e, err := readBounded()
		if err != nil {
			return err
		}
		entities.Surfaces[e.Tag] = e
	}
	for i := uint64(0); i < numVolumes; i++ {
		e, err := readBounded()
		if err != nil {
			return err
		}
		entities.Volumes[e.Tag] = e
	}

	if _, err := s.ExpectSectionFooter(nameEntities); err != nil {
		return err
	}

	if uint64(len(entities.Points)) != numPoints {
		return diag.New(s.Buffer(), diag.InvalidData, nameEntities, numPointsRange,
			"header declares %d points but %d were parsed", numPoints, len(entities.Points))
	}
	if uint64(len(entities.Curves)) != numCurves {
		return diag.New(s.Buffer(), diag.InvalidData, nameEntities, numCurvesRange,
			"header declares %d curves but %d were parsed", numCurves, len(entities.Curves))
	}
	if uint64(len(entities.Surfaces)) != numSurfaces {
		return diag.New(s.Buffer(), diag.InvalidData, nameEntities, numSurfacesRange,
			"header declares %d surfaces but %d were parsed", numSurfaces, len(entities.Surfaces))
	}
	if uint64(len(entities.Volumes)) != numVolumes {
		return diag.New(s.Buffer(), diag.InvalidData, nameEntities, numVolumesRange,
			"header declares %d volumes but %d were parsed", numVolumes, len(entities.Volumes))
	}

	b.SetEntities(entities)

	return nil
}

// readTagList reads "count tag...", a pattern repeated throughout
// $Entities and $PartitionedEntities records.
func readTagList(s *scanner.Scanner, section string) ([]int32, error) {
	n, _, err := s.ReadUsize(section)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	tags := make([]int32, 0, n)
	for i := uint64(0); i < n; i++ {
		t, _, err := s.ReadI32(section)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, nil
}
