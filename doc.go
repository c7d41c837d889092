// Package gmsh41 parses Gmsh MSH 4.1 ASCII mesh files into an in-memory
// Mesh value.
//
// A parse reads the whole file into memory, optionally transparently
// decompressing it (internal/codec), then drives internal/scanner and the
// section package's per-header parsers to build a mesh.Mesh through
// mesh.Builder. Any syntactic or semantic failure short-circuits the parse
// and returns a single *Diagnostic carrying the byte range of the
// first error encountered; non-fatal issues are accumulated as warnings on
// the returned Mesh.
//
// # Basic usage
//
//	m, err := gmsh41.Parse("model.msh")
//	if err != nil {
//		if d, ok := gmsh41.AsDiagnostic(err); ok {
//			d.Render(os.Stderr, 2)
//		}
//		return err
//	}
//	gmsh41.PrintSummary(os.Stdout, m)
//
// Parsing is strictly single-threaded and synchronous: one blocking call
// returns either the mesh or a diagnostic, with no internal concurrency.
package gmsh41
