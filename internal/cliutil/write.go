// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteDocument writes a JSON payload to the writer with exactly one trailing
// newline, keeping stdout clean for pipelines.
func WriteDocument(w io.Writer, doc string) {
	Writef(w, "%s\n", strings.TrimRight(doc, "\n"))
}
