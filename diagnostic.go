package gmsh41

import (
	"errors"

	"github.com/mshkit/gmsh41/internal/diag"
)

// Diagnostic is the rich error value a failed parse returns: a Kind, a
// message, and the byte range in the source file that triggered it. Its
// Render method writes a caret-style excerpt of the offending lines.
type Diagnostic = diag.Diagnostic

// Kind identifies which parsing rule a Diagnostic reports a violation of.
type Kind = diag.Kind

const (
	IoError                = diag.IoError
	InvalidFormat          = diag.InvalidFormat
	UnsupportedVersion     = diag.UnsupportedVersion
	UnsupportedFileType    = diag.UnsupportedFileType
	InvalidSection         = diag.InvalidSection
	DuplicateSection       = diag.DuplicateSection
	MissingSection         = diag.MissingSection
	InvalidEntityDimension = diag.InvalidEntityDimension
	InvalidElementType     = diag.InvalidElementType
	InvalidData            = diag.InvalidData
	DuplicateTag           = diag.DuplicateTag
)

// AsDiagnostic unwraps the *Diagnostic carried by an error returned from
// Parse or ParseBytes. ok is false for errors with no diagnostic attached
// (for example an option-validation failure).
func AsDiagnostic(err error) (d *Diagnostic, ok bool) {
	if errors.As(err, &d) {
		return d, true
	}

	return nil, false
}
