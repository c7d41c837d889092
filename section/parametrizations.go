package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const nameParametrizations = "Parametrizations"

// ParseParametrizations parses $Parametrizations: a header of (numCurves,
// numSurfaces), then that many curve records ("entityTag numNodes (node u)
// ...") followed by that many surface records ("entityTag numNodes
// (node u v) ...").
func ParseParametrizations(s *scanner.Scanner, b *mesh.Builder) error {
	numCurves, numCurvesRange, err := s.ReadUsize(nameParametrizations)
	if err != nil {
		return err
	}
	numSurfaces, numSurfacesRange, err := s.ReadUsize(nameParametrizations)
	if err != nil {
		return err
	}

	curves := make([]mesh.ParametrizationCurve, 0, numCurves)
	for i := uint64(0); i < numCurves; i++ {
		entityTag, _, err := s.ReadI32(nameParametrizations)
		if err != nil {
			return err
		}
		numNodes, _, err := s.ReadUsize(nameParametrizations)
		if err != nil {
			return err
		}
		nodeTags := make([]uint64, 0, numNodes)
		us := make([]float64, 0, numNodes)
		for k := uint64(0); k < numNodes; k++ {
			nt, _, err := s.ReadUsize(nameParametrizations)
			if err != nil {
				return err
			}
			u, _, err := s.ReadF64(nameParametrizations)
			if err != nil {
				return err
			}
			nodeTags = append(nodeTags, nt)
			us = append(us, u)
		}
		curves = append(curves, mesh.ParametrizationCurve{EntityTag: entityTag, NodeTag: nodeTags, U: us})
	}

	surfaces := make([]mesh.ParametrizationSurface, 0, numSurfaces)
	for i := uint64(0); i < numSurfaces; i++ {
		entityTag, _, err := s.ReadI32(nameParametrizations)
		if err != nil {
			return err
		}
		numNodes, _, err := s.ReadUsize(nameParametrizations)
		if err != nil {
			return err
		}
		nodeTags := make([]uint64, 0, numNodes)
		us := make([]float64, 0, numNodes)
		vs := make([]float64, 0, numNodes)
		for k := uint64(0); k < numNodes; k++ {
			nt, _, err := s.ReadUsize(nameParametrizations)
			if err != nil {
				return err
			}
			u, _, err := s.ReadF64(nameParametrizations)
			if err != nil {
				return err
			}
			v, _, err := s.ReadF64(nameParametrizations)
			if err != nil {
				return err
			}
			nodeTags = append(nodeTags, nt)
			us = append(us, u)
			vs = append(vs, v)
		}
		surfaces = append(surfaces, mesh.ParametrizationSurface{EntityTag: entityTag, NodeTag: nodeTags, U: us, V: vs})
	}

	if _, err := s.ExpectSectionFooter(nameParametrizations); err != nil {
		return err
	}

	if uint64(len(curves)) != numCurves {
		return diag.New(s.Buffer(), diag.InvalidData, nameParametrizations, numCurvesRange,
			"header declares %d parametrized curves but %d were parsed", numCurves, len(curves))
	}
	if uint64(len(surfaces)) != numSurfaces {
		return diag.New(s.Buffer(), diag.InvalidData, nameParametrizations, numSurfacesRange,
			"header declares %d parametrized surfaces but %d were parsed", numSurfaces, len(surfaces))
	}

	b.SetParametrizations(&mesh.Parametrizations{Curves: curves, Surfaces: surfaces})

	return nil
}
