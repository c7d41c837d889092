// Command gmshcat parses a Gmsh MSH 4.1 ASCII file and prints a summary of
// its contents, or a caret-style diagnostic if the file fails to parse.
//
// Usage:
//
//	gmshcat [-strict-physical-names] [-decompress=gzip|zstd|lz4] file.msh
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mshkit/gmsh41"
)

func main() {
	strict := flag.Bool("strict-physical-names", false, "fail on unresolved physical-tag references instead of warning")
	decompress := flag.String("decompress", "", "force a decompression scheme instead of sniffing (gzip, zstd, lz4)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gmshcat [flags] file.msh")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var opts []gmsh41.ParseOption
	if *strict {
		opts = append(opts, gmsh41.WithStrictPhysicalNames())
	}
	if *decompress != "" {
		opts = append(opts, gmsh41.WithDecompression(*decompress))
	}

	path := flag.Arg(0)
	m, err := gmsh41.Parse(path, opts...)
	if err != nil {
		if d, ok := gmsh41.AsDiagnostic(err); ok {
			d.Render(os.Stderr, 2)
			os.Exit(1)
		}
		log.Fatalf("gmshcat: %v", err)
	}

	gmsh41.PrintSummary(os.Stdout, m)
}
