package section

import (
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/mesh"
)

const namePeriodic = "Periodic"

// ParsePeriodic parses $Periodic: a header giving the record count, then
// that many records of "slaveDim slaveTag masterTag", a numAffine count
// followed by that many affine-transform coefficients (numAffine == 0 means
// no transform was recorded), and finally a node-correspondence list.
func ParsePeriodic(s *scanner.Scanner, b *mesh.Builder) error {
	numLinks, countRange, err := s.ReadUsize(namePeriodic)
	if err != nil {
		return err
	}

	links := make([]mesh.PeriodicLink, 0, numLinks)

	for i := uint64(0); i < numLinks; i++ {
		slaveDim, dimRange, err := s.ReadI32(namePeriodic)
		if err != nil {
			return err
		}
		if slaveDim < 0 || slaveDim > 3 {
			return diag.New(s.Buffer(), diag.InvalidEntityDimension, namePeriodic, dimRange,
				"periodic slave dimension %d outside {0,1,2,3}", slaveDim)
		}
		slaveTag, _, err := s.ReadI32(namePeriodic)
		if err != nil {
			return err
		}
		masterTag, _, err := s.ReadI32(namePeriodic)
		if err != nil {
			return err
		}

		numAffine, _, err := s.ReadUsize(namePeriodic)
		if err != nil {
			return err
		}
		var affine []float64
		if numAffine > 0 {
			affine = make([]float64, 0, numAffine)
			for k := uint64(0); k < numAffine; k++ {
				v, _, err := s.ReadF64(namePeriodic)
				if err != nil {
					return err
				}
				affine = append(affine, v)
			}
		}

		numPairs, _, err := s.ReadUsize(namePeriodic)
		if err != nil {
			return err
		}
		pairs := make([][2]uint64, 0, numPairs)
		for k := uint64(0); k < numPairs; k++ {
			slaveNode, _, err := s.ReadUsize(namePeriodic)
			if err != nil {
				return err
			}
			masterNode, _, err := s.ReadUsize(namePeriodic)
			if err != nil {
				return err
			}
			pairs = append(pairs, [2]uint64{slaveNode, masterNode})
		}

		links = append(links, mesh.PeriodicLink{
			SlaveDim:  int(slaveDim),
			SlaveTag:  slaveTag,
			MasterDim: int(slaveDim),
			MasterTag: masterTag,
			Affine:    affine,
			NodePairs: pairs,
		})
	}

	if _, err := s.ExpectSectionFooter(namePeriodic); err != nil {
		return err
	}

	if uint64(len(links)) != numLinks {
		return diag.New(s.Buffer(), diag.InvalidData, namePeriodic, countRange,
			"header declares %d periodic links but %d were parsed", numLinks, len(links))
	}

	b.SetPeriodic(&mesh.PeriodicLinks{Links: links})

	return nil
}
