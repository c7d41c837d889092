// Package mesh defines the materialised Mesh value a parse produces, and
// the Builder that assembles one incrementally while enforcing the
// format's cross-section invariants: unique node and element tags and
// element → node references. The Builder also tracks the observed tag
// extrema; the section parsers compare those, and their own record
// counts, against the values declared in the section headers.
package mesh

import "github.com/mshkit/gmsh41/internal/diag"

// MeshFormat is the content of the mandatory $MeshFormat section.
type MeshFormat struct {
	Version  float64
	FileType int32
	DataSize int32
}

// PhysicalName is one record of the $PhysicalNames section.
type PhysicalName struct {
	Dimension   int
	PhysicalTag int32
	Name        string
}

// PointEntity is a zero-dimensional entity: a point carries only
// coordinates, physical tags, and no bounding entities.
type PointEntity struct {
	Tag          int32
	X, Y, Z      float64
	PhysicalTags []int32
}

// BoundedEntity is shared by curves, surfaces, and volumes: a bounding box,
// physical tags, and signed tags of the lower-dimensional entities that
// bound it (sign encodes orientation).
type BoundedEntity struct {
	Tag               int32
	MinX, MinY, MinZ  float64
	MaxX, MaxY, MaxZ  float64
	PhysicalTags      []int32
	BoundingTags      []int32
}

// Entities holds the content of the optional $Entities section, keyed by
// entity tag within each dimension.
type Entities struct {
	Points   map[int32]PointEntity
	Curves   map[int32]BoundedEntity
	Surfaces map[int32]BoundedEntity
	Volumes  map[int32]BoundedEntity
}

func newEntities() *Entities {
	return &Entities{
		Points:   make(map[int32]PointEntity),
		Curves:   make(map[int32]BoundedEntity),
		Surfaces: make(map[int32]BoundedEntity),
		Volumes:  make(map[int32]BoundedEntity),
	}
}

// Node is a single record in a NodeBlock.
type Node struct {
	Tag     uint64
	X, Y, Z float64
	// Param holds the node's parametric coordinates on the owning entity's
	// intrinsic parameter space. Its length is 0 (non-parametric), 1, 2, or
	// 3, matching the owning NodeBlock's EntityDim when Parametric is true.
	Param []float64
}

// NodeBlock is a contiguous run of nodes sharing one entity.
type NodeBlock struct {
	EntityDim   int
	EntityTag   int32
	Parametric  bool
	Nodes       []Node
}

// Element is a single record in an ElementBlock.
type Element struct {
	Tag      uint64
	NodeTags []uint64
}

// ElementBlock is a contiguous run of elements sharing one entity and
// element type.
type ElementBlock struct {
	EntityDim   int
	EntityTag   int32
	ElementType int
	Elements    []Element
}

// PeriodicLink is one correspondence record of the $Periodic section.
type PeriodicLink struct {
	SlaveDim   int
	SlaveTag   int32
	MasterDim  int
	MasterTag  int32
	Affine     []float64 // empty if the record carried no affine transform
	NodePairs  [][2]uint64
}

// PeriodicLinks holds the content of the optional $Periodic section.
type PeriodicLinks struct {
	Links []PeriodicLink
}

// GhostElement is one record of the $GhostElements section.
type GhostElement struct {
	ElementTag         uint64
	PartitionTag       int32
	GhostPartitionTags []int32
}

// ParametrizationCurve is one curve record of the $Parametrizations
// section.
type ParametrizationCurve struct {
	EntityTag int32
	NodeTag   []uint64
	U         []float64
}

// ParametrizationSurface is one surface record of the $Parametrizations
// section.
type ParametrizationSurface struct {
	EntityTag int32
	NodeTag   []uint64
	U, V      []float64
}

// Parametrizations holds the content of the optional $Parametrizations
// section.
type Parametrizations struct {
	Curves   []ParametrizationCurve
	Surfaces []ParametrizationSurface
}

// PartitionedPointEntity mirrors PointEntity with the additional
// partition-assignment fields $PartitionedEntities adds.
type PartitionedPointEntity struct {
	PointEntity
	ParentDim    int
	ParentTag    int32
	PartitionTags []int32
}

// PartitionedBoundedEntity mirrors BoundedEntity with the additional
// partition-assignment fields $PartitionedEntities adds.
type PartitionedBoundedEntity struct {
	BoundedEntity
	ParentDim     int
	ParentTag     int32
	PartitionTags []int32
}

// GhostPartitionEntity records one (entity, partition) ghost assignment.
type GhostPartitionEntity struct {
	EntityTag int32
	Partition int32
}

// PartitionedEntities holds the content of the optional
// $PartitionedEntities section.
type PartitionedEntities struct {
	NumPartitions int
	GhostEntities []GhostPartitionEntity
	Points        map[int32]PartitionedPointEntity
	Curves        map[int32]PartitionedBoundedEntity
	Surfaces      map[int32]PartitionedBoundedEntity
	Volumes       map[int32]PartitionedBoundedEntity
}

// DataEntry is one body record of a post-processing view.
type DataEntry struct {
	EntityTag          uint64
	NumNodesPerElement int // only meaningful for ElementNodeData
	Values             []float64
}

// DataView is the common shape of $NodeData, $ElementData, and
// $ElementNodeData: three header sub-blocks followed by a body of entries.
// The parser stores these faithfully without interpreting their semantics.
type DataView struct {
	StringTags         []string
	RealTags           []float64
	TimeStep           int64
	NumFieldComponents int
	NumEntities        int
	Partition          int // 0 if absent
	HasPartition       bool
	Entries            []DataEntry
}

// InterpolationMatrix is one coefficient/exponent matrix of an
// $InterpolationScheme entry.
type InterpolationMatrix struct {
	Rows, Cols int
	Values     []float64
}

// InterpolationElement holds the matrices declared for one element type
// within an interpolation scheme.
type InterpolationElement struct {
	ElementType int
	Matrices    []InterpolationMatrix
}

// InterpolationScheme is one named scheme of the $InterpolationScheme
// section.
type InterpolationScheme struct {
	Name     string
	Elements []InterpolationElement
}

// Warning is a non-fatal issue accumulated during parsing.
type Warning = diag.Warning

// Mesh is the fully materialised, immutable result of a successful parse.
type Mesh struct {
	Format              MeshFormat
	PhysicalNames       []PhysicalName
	Entities            *Entities
	PartitionedEntities *PartitionedEntities
	NodeBlocks          []NodeBlock
	ElementBlocks       []ElementBlock
	Periodic            *PeriodicLinks
	GhostElements       []GhostElement
	Parametrizations    *Parametrizations
	NodeData            []DataView
	ElementData         []DataView
	ElementNodeData     []DataView
	InterpolationSchemes []InterpolationScheme
	Warnings            []Warning
}

// NumNodes returns the total number of nodes across all node blocks.
func (m *Mesh) NumNodes() int {
	n := 0
	for _, b := range m.NodeBlocks {
		n += len(b.Nodes)
	}

	return n
}

// NumElements returns the total number of elements across all element
// blocks.
func (m *Mesh) NumElements() int {
	n := 0
	for _, b := range m.ElementBlocks {
		n += len(b.Elements)
	}

	return n
}

// PhysicalGroup looks up a physical name by (dimension, tag).
func (m *Mesh) PhysicalGroup(dim int, tag int32) (PhysicalName, bool) {
	for _, pn := range m.PhysicalNames {
		if pn.Dimension == dim && pn.PhysicalTag == tag {
			return pn, true
		}
	}

	return PhysicalName{}, false
}

// ElementsInEntity returns the elements belonging to the entity (dim, tag),
// in block order.
func (m *Mesh) ElementsInEntity(dim int, tag int32) []Element {
	var out []Element
	for _, b := range m.ElementBlocks {
		if b.EntityDim == dim && b.EntityTag == tag {
			out = append(out, b.Elements...)
		}
	}

	return out
}
