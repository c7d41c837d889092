package gmsh41

import (
	"fmt"
	"io"

	"github.com/mshkit/gmsh41/mesh"
)

// PrintSummary writes a short human-readable report of a parsed mesh: node
// and element counts, the physical groups and entity counts present, and
// any accumulated warnings.
func PrintSummary(w io.Writer, m mesh.Mesh) {
	fmt.Fprintf(w, "MSH %.1f, %d node block(s), %d element block(s)\n",
		m.Format.Version, len(m.NodeBlocks), len(m.ElementBlocks))
	fmt.Fprintf(w, "  nodes: %d, elements: %d\n", m.NumNodes(), m.NumElements())

	if len(m.PhysicalNames) > 0 {
		fmt.Fprintf(w, "  physical names: %d\n", len(m.PhysicalNames))
		for _, pn := range m.PhysicalNames {
			fmt.Fprintf(w, "    dim %d tag %d: %q\n", pn.Dimension, pn.PhysicalTag, pn.Name)
		}
	}

	if m.Entities != nil {
		fmt.Fprintf(w, "  entities: %d points, %d curves, %d surfaces, %d volumes\n",
			len(m.Entities.Points), len(m.Entities.Curves), len(m.Entities.Surfaces), len(m.Entities.Volumes))
	}

	if m.Periodic != nil {
		fmt.Fprintf(w, "  periodic links: %d\n", len(m.Periodic.Links))
	}
	if len(m.GhostElements) > 0 {
		fmt.Fprintf(w, "  ghost elements: %d\n", len(m.GhostElements))
	}
	if len(m.NodeData)+len(m.ElementData)+len(m.ElementNodeData) > 0 {
		fmt.Fprintf(w, "  post-processing views: %d node, %d element, %d element-node\n",
			len(m.NodeData), len(m.ElementData), len(m.ElementNodeData))
	}

	if len(m.Warnings) > 0 {
		fmt.Fprintf(w, "  warnings: %d\n", len(m.Warnings))
		for _, warn := range m.Warnings {
			fmt.Fprintf(w, "    %s\n", warn.String())
		}
	}
}
