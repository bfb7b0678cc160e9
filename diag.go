package dfc

import (
	"io"
	"log"
	"os"
)

var diag = log.New(os.Stderr, "", log.LstdFlags)

// SetDiagnosticOutput redirects the notices emitted during computation.
// The default destination is standard error.
func SetDiagnosticOutput(w io.Writer) {
	diag.SetOutput(w)
}
