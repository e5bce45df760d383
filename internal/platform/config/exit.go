package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeFailure is the status used for every fatal CLI error.
const ExitCodeFailure = 1

// Exitf writes a formatted diagnostic to stderr and exits with
// ExitCodeFailure.
func Exitf(format string, args ...any) {
	Fprintf(os.Stderr, format, args...)
	os.Exit(ExitCodeFailure)
}

// Fprintf writes a newline-terminated diagnostic to w.
func Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
