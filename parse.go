package gmsh41

import (
	"fmt"
	"os"
	"strings"

	"github.com/mshkit/gmsh41/internal/codec"
	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/options"
	"github.com/mshkit/gmsh41/internal/scanner"
	"github.com/mshkit/gmsh41/internal/srcbuf"
	"github.com/mshkit/gmsh41/mesh"
	"github.com/mshkit/gmsh41/section"
)

// sectionParser parses one "$Name ... $EndName" block, consuming through
// its footer. The driver has already consumed the "$Name" header line.
type sectionParser func(*scanner.Scanner, *mesh.Builder) error

var dispatch = map[string]sectionParser{
	"PhysicalNames":        section.ParsePhysicalNames,
	"Entities":             section.ParseEntities,
	"PartitionedEntities":  section.ParsePartitionedEntities,
	"Nodes":                section.ParseNodes,
	"Elements":             section.ParseElements,
	"Periodic":             section.ParsePeriodic,
	"GhostElements":        section.ParseGhostElements,
	"Parametrizations":     section.ParseParametrizations,
	"NodeData":             section.ParseNodeData,
	"ElementData":          section.ParseElementData,
	"ElementNodeData":      section.ParseElementNodeData,
	"InterpolationScheme":  section.ParseInterpolationScheme,
}

// Parse reads and parses the MSH file at path.
func Parse(path string, opts ...ParseOption) (mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mesh.Mesh{}, diag.NewIO(err, "reading %s: %v", path, err)
	}

	origin := path
	return parse(data, origin, opts...)
}

// ParseBytes parses in-memory MSH content. origin is the name diagnostics
// report, overridable with WithSourceName.
func ParseBytes(data []byte, origin string, opts ...ParseOption) (mesh.Mesh, error) {
	return parse(data, origin, opts...)
}

func parse(data []byte, origin string, opts ...ParseOption) (mesh.Mesh, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return mesh.Mesh{}, fmt.Errorf("gmsh41: %w", err)
	}
	if cfg.sourceName != "" {
		origin = cfg.sourceName
	}

	kind := cfg.decompression
	if cfg.autoDetect {
		kind = codec.Sniff(data)
	}
	decoded, err := codec.Decompress(kind, data)
	if err != nil {
		return mesh.Mesh{}, diag.NewIO(err, "decompressing %s: %v", origin, err)
	}

	buf := srcbuf.New(origin, decoded)
	s := scanner.New(buf)
	b := mesh.New(buf, cfg.maxWarnings)
	b.SetStrictPhysicalNames(cfg.strictPhysicalNames)

	if err := driveSections(s, b); err != nil {
		return mesh.Mesh{}, err
	}

	if err := b.Finalize(); err != nil {
		return mesh.Mesh{}, err
	}

	return b.Finish(), nil
}

// driveSections consumes $MeshFormat (mandatory and required to be first),
// then every other recognised section in whatever order the file presents
// them, skipping unrecognised ones, until EOF.
func driveSections(s *scanner.Scanner, b *mesh.Builder) error {
	name, ok := s.NextHeaderToken()
	if !ok || name != "MeshFormat" {
		return diag.New(s.Buffer(), diag.MissingSection, "MeshFormat", srcbuf.Range{},
			"file must begin with a $MeshFormat section")
	}
	if _, err := s.ExpectSectionHeader("MeshFormat"); err != nil {
		return err
	}
	if err := section.ParseMeshFormat(s, b); err != nil {
		return err
	}
	if err := b.MarkSection("MeshFormat", srcbuf.Range{}); err != nil {
		return err
	}

	for {
		name, ok := s.NextHeaderToken()
		if !ok {
			s.SkipBlank()
			if !s.AtEOF() {
				r := srcbuf.Range{Begin: s.Pos(), End: s.Pos() + 1}
				return diag.New(s.Buffer(), diag.InvalidFormat, "<top-level>", r,
					"expected a section header, got %q", s.PeekLineTrimmed())
			}
			break
		}

		r, err := s.ExpectSectionHeader(name)
		if err != nil {
			return err
		}

		// Unrecognised sections are skipped with a warning and never
		// duplicate-checked; the at-most-once rule binds the recognised
		// sections only.
		parseFn, known := dispatch[name]
		if !known {
			// $MeshFormat was marked before this loop, so a second one is
			// reported by MarkSection as DuplicateSection.
			if name == "MeshFormat" {
				return b.MarkSection(name, r)
			}
			// Section names are matched exactly: a recognised name in the
			// wrong case is rejected rather than skipped as unknown.
			for recognised := range dispatch {
				if strings.EqualFold(name, recognised) {
					return diag.New(s.Buffer(), diag.InvalidSection, name, r,
						"section $%s does not match the exact name $%s", name, recognised)
				}
			}
			if err := s.SkipUnknownSection(name); err != nil {
				return err
			}
			b.AddWarning(name, r, "unrecognised section %q was skipped", name)
			continue
		}

		if err := b.MarkSection(name, r); err != nil {
			return err
		}
		if err := parseFn(s, b); err != nil {
			return err
		}
	}

	return nil
}
