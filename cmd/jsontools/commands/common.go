// Package commands provides CLI command handlers for jsontools.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/internal/yamlutil"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// loadDocument reads a document from a file path or stdin ("-") and returns
// it as JSON text. YAML inputs are converted when forceYAML is set or the
// file extension says so.
func loadDocument(path string, forceYAML bool) (string, error) {
	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
	}
	if forceYAML || (path != StdinFilePath && yamlutil.IsYAMLPath(path)) {
		return yamlutil.ToJSON(data)
	}
	return string(data), nil
}
