package mesh

import (
	"fmt"

	"github.com/mshkit/gmsh41/internal/diag"
	"github.com/mshkit/gmsh41/internal/srcbuf"
	"github.com/mshkit/gmsh41/internal/tagset"
)

// Builder accumulates section output into a Mesh, maintaining the
// cross-section invariant state the format requires: collected node and
// element tags, sections already seen, and observed tag extrema.
//
// Section parsers receive a *Builder by reference and feed it directly;
// each one constructs its piece of the final Mesh.
type Builder struct {
	buf *srcbuf.Buffer

	mesh Mesh

	nodeTags    *tagset.Set
	elementTags *tagset.Set

	seenSections         map[string]bool
	physicalNamesPresent bool
	entitiesPresent      bool

	maxWarnings         int // 0 means unbounded
	strictPhysicalNames bool

	// Element → node references are validated in Finalize, not at
	// AddElementBlock time: section order after $MeshFormat is not fixed,
	// so $Elements may legally precede $Nodes.
	pendingNodeRefs []pendingNodeRef
}

type pendingNodeRef struct {
	elementTag uint64
	nodeTag    uint64
	r          srcbuf.Range
}

// New creates an empty Builder over buf.
func New(buf *srcbuf.Buffer, maxWarnings int) *Builder {
	return &Builder{
		buf:          buf,
		nodeTags:     tagset.New(),
		elementTags:  tagset.New(),
		seenSections: make(map[string]bool),
		maxWarnings:  maxWarnings,
	}
}

// SetStrictPhysicalNames controls whether CheckPhysicalReferences reports
// an unresolved physical-tag reference as a fatal InvalidData diagnostic
// (true) or a Warning (false, the default).
func (b *Builder) SetStrictPhysicalNames(strict bool) { b.strictPhysicalNames = strict }

// Buffer returns the source buffer the builder was created over.
func (b *Builder) Buffer() *srcbuf.Buffer { return b.buf }

// MarkSection records that a section header was seen, returning a
// DuplicateSection diagnostic if it was already present. $MeshFormat
// validation is the driver's responsibility; every other recognised
// section goes through this.
func (b *Builder) MarkSection(name string, r srcbuf.Range) error {
	if b.seenSections[name] {
		return diag.New(b.buf, diag.DuplicateSection, name, r, "section %q appears more than once", name)
	}
	b.seenSections[name] = true

	return nil
}

// SectionSeen reports whether a section with the given name has been
// marked via MarkSection.
func (b *Builder) SectionSeen(name string) bool { return b.seenSections[name] }

// SetFormat records the $MeshFormat content.
func (b *Builder) SetFormat(f MeshFormat) { b.mesh.Format = f }

// AddPhysicalName appends one $PhysicalNames record.
func (b *Builder) AddPhysicalName(pn PhysicalName) {
	b.physicalNamesPresent = true
	b.mesh.PhysicalNames = append(b.mesh.PhysicalNames, pn)
}

// PhysicalNamesPresent reports whether $PhysicalNames appeared.
func (b *Builder) PhysicalNamesPresent() bool { return b.physicalNamesPresent }

// SetEntities installs the parsed $Entities content.
func (b *Builder) SetEntities(e *Entities) {
	b.entitiesPresent = true
	b.mesh.Entities = e
}

// EntitiesPresent reports whether $Entities appeared.
func (b *Builder) EntitiesPresent() bool { return b.entitiesPresent }

// NewEntities returns a freshly initialised Entities value for a section
// parser to populate.
func NewEntities() *Entities { return newEntities() }

// SetPartitionedEntities installs the parsed $PartitionedEntities content.
func (b *Builder) SetPartitionedEntities(p *PartitionedEntities) {
	b.mesh.PartitionedEntities = p
}

// AddNodeBlock appends a parsed node block, tracking tag uniqueness.
// Returns a DuplicateTag diagnostic pointing at the tag's range in
// dupRanges if any node tag in the block was already seen in this file.
func (b *Builder) AddNodeBlock(nb NodeBlock, dupRanges map[uint64]srcbuf.Range) error {
	for _, n := range nb.Nodes {
		if !b.nodeTags.Add(n.Tag) {
			r := dupRanges[n.Tag]
			return diag.New(b.buf, diag.DuplicateTag, "Nodes", r, "duplicate node tag %d", n.Tag)
		}
	}
	b.mesh.NodeBlocks = append(b.mesh.NodeBlocks, nb)

	return nil
}

// HasNodeTag reports whether tag was produced by any node block seen so
// far.
func (b *Builder) HasNodeTag(tag uint64) bool { return b.nodeTags.Has(tag) }

// NodeTagMinMax returns the observed node-tag extrema across all node
// blocks added so far.
func (b *Builder) NodeTagMinMax() (min, max uint64, ok bool) { return b.nodeTags.MinMax() }

// NodeCount returns the number of nodes accumulated so far.
func (b *Builder) NodeCount() int { return b.nodeTags.Count() }

// AddElementBlock appends a parsed element block, tracking tag uniqueness.
// Node-tag references are collected for validation in Finalize, once every
// node block has been seen.
func (b *Builder) AddElementBlock(eb ElementBlock, dupRanges map[uint64]srcbuf.Range, nodeRefRanges map[uint64]srcbuf.Range) error {
	for _, el := range eb.Elements {
		if !b.elementTags.Add(el.Tag) {
			r := dupRanges[el.Tag]
			return diag.New(b.buf, diag.DuplicateTag, "Elements", r, "duplicate element tag %d", el.Tag)
		}
		for _, nt := range el.NodeTags {
			if !b.nodeTags.Has(nt) {
				b.pendingNodeRefs = append(b.pendingNodeRefs, pendingNodeRef{
					elementTag: el.Tag,
					nodeTag:    nt,
					r:          nodeRefRanges[el.Tag],
				})
			}
		}
	}
	b.mesh.ElementBlocks = append(b.mesh.ElementBlocks, eb)

	return nil
}

// ElementTagMinMax returns the observed element-tag extrema across all
// element blocks added so far.
func (b *Builder) ElementTagMinMax() (min, max uint64, ok bool) { return b.elementTags.MinMax() }

// ElementCount returns the number of elements accumulated so far.
func (b *Builder) ElementCount() int { return b.elementTags.Count() }

// SetPeriodic installs the parsed $Periodic content.
func (b *Builder) SetPeriodic(p *PeriodicLinks) { b.mesh.Periodic = p }

// SetGhostElements installs the parsed $GhostElements content.
func (b *Builder) SetGhostElements(g []GhostElement) { b.mesh.GhostElements = g }

// SetParametrizations installs the parsed $Parametrizations content.
func (b *Builder) SetParametrizations(p *Parametrizations) { b.mesh.Parametrizations = p }

// AddNodeData appends one $NodeData view.
func (b *Builder) AddNodeData(v DataView) { b.mesh.NodeData = append(b.mesh.NodeData, v) }

// AddElementData appends one $ElementData view.
func (b *Builder) AddElementData(v DataView) { b.mesh.ElementData = append(b.mesh.ElementData, v) }

// AddElementNodeData appends one $ElementNodeData view.
func (b *Builder) AddElementNodeData(v DataView) {
	b.mesh.ElementNodeData = append(b.mesh.ElementNodeData, v)
}

// AddInterpolationScheme appends one $InterpolationScheme record.
func (b *Builder) AddInterpolationScheme(s InterpolationScheme) {
	b.mesh.InterpolationSchemes = append(b.mesh.InterpolationSchemes, s)
}

// AddWarning records a non-fatal issue, subject to the builder's configured
// warning cap (0 means unbounded).
func (b *Builder) AddWarning(section string, r srcbuf.Range, format string, args ...any) {
	if b.maxWarnings > 0 && len(b.mesh.Warnings) >= b.maxWarnings {
		return
	}
	b.mesh.Warnings = append(b.mesh.Warnings, diag.Warning{
		Message: fmt.Sprintf(format, args...),
		Range:   r,
		Section: section,
	})
}

// Finalize runs the cross-section checks that can only be decided once
// every section has been consumed: element → node references, warnings for
// sections that lean on an absent $Entities, and physical-tag resolution.
func (b *Builder) Finalize() error {
	if err := b.CheckNodeReferences(); err != nil {
		return err
	}

	if b.mesh.Periodic != nil && !b.entitiesPresent {
		b.AddWarning("Periodic", srcbuf.Range{}, "$Periodic present without $Entities")
	}
	if len(b.mesh.GhostElements) > 0 && !b.entitiesPresent {
		b.AddWarning("GhostElements", srcbuf.Range{}, "$GhostElements present without $Entities")
	}

	return b.CheckPhysicalReferences()
}

// CheckNodeReferences verifies that every node tag referenced by an element
// was produced by some node block, regardless of the order $Nodes and
// $Elements appeared in.
func (b *Builder) CheckNodeReferences() error {
	for _, ref := range b.pendingNodeRefs {
		if b.nodeTags.Has(ref.nodeTag) {
			continue
		}

		return diag.New(b.buf, diag.InvalidData, "Elements", ref.r,
			"element %d references node tag %d which is not present in any node block", ref.elementTag, ref.nodeTag)
	}

	return nil
}

// CheckPhysicalReferences flags every entity physical tag with no
// corresponding $PhysicalNames record. When $PhysicalNames is absent
// entirely, every reference is unresolved and produces a warning. By
// default an unresolved reference is a Warning; SetStrictPhysicalNames
// promotes the first one found to a fatal InvalidData diagnostic.
func (b *Builder) CheckPhysicalReferences() error {
	if b.mesh.Entities == nil {
		return nil
	}

	named := make(map[[2]int]bool, len(b.mesh.PhysicalNames))
	for _, pn := range b.mesh.PhysicalNames {
		named[[2]int{pn.Dimension, int(pn.PhysicalTag)}] = true
	}

	reason := "with no matching $PhysicalNames record"
	if !b.physicalNamesPresent {
		reason = "but no $PhysicalNames section is present"
	}

	var firstErr error
	check := func(dim int, tags []int32) {
		for _, t := range tags {
			if named[[2]int{dim, int(t)}] {
				continue
			}
			if b.strictPhysicalNames {
				if firstErr == nil {
					firstErr = diag.New(b.buf, diag.InvalidData, "PhysicalNames", srcbuf.Range{},
						"entity references physical tag %d (dim %d) %s", t, dim, reason)
				}
				continue
			}
			b.AddWarning("PhysicalNames", srcbuf.Range{},
				"entity references physical tag %d (dim %d) %s", t, dim, reason)
		}
	}

	for _, e := range b.mesh.Entities.Points {
		check(0, e.PhysicalTags)
	}
	for _, e := range b.mesh.Entities.Curves {
		check(1, e.PhysicalTags)
	}
	for _, e := range b.mesh.Entities.Surfaces {
		check(2, e.PhysicalTags)
	}
	for _, e := range b.mesh.Entities.Volumes {
		check(3, e.PhysicalTags)
	}

	return firstErr
}

// Finish returns the completed Mesh.
func (b *Builder) Finish() Mesh { return b.mesh }
