package mcpserver

import (
	"fmt"
	"os"

	"github.com/erraggy/jsontools/internal/yamlutil"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set. YAML files are detected by
// extension and converted to JSON; inline YAML requires the yaml flag.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
	YAML    bool   `json:"yaml,omitempty"    jsonschema:"Treat inline content as YAML and convert it to JSON"`
}

// resolve validates the input and returns the document as JSON text.
func (in docInput) resolve() (string, error) {
	if err := validateSingleSource(in.File != "", in.Content != ""); err != nil {
		return "", err
	}
	if in.Content != "" {
		if len(in.Content) > cfg.MaxDocumentSize {
			return "", fmt.Errorf("document exceeds %d bytes", cfg.MaxDocumentSize)
		}
		if in.YAML {
			return yamlutil.ToJSON([]byte(in.Content))
		}
		return in.Content, nil
	}
	info, err := os.Stat(in.File)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	if info.Size() > int64(cfg.MaxDocumentSize) {
		return "", fmt.Errorf("document exceeds %d bytes", cfg.MaxDocumentSize)
	}
	data, err := os.ReadFile(in.File)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	if in.YAML || yamlutil.IsYAMLPath(in.File) {
		return yamlutil.ToJSON(data)
	}
	return string(data), nil
}

// validateSingleSource ensures exactly one input source is specified.
func validateSingleSource(hasFile, hasContent bool) error {
	switch {
	case !hasFile && !hasContent:
		return fmt.Errorf("provide a document via file or content")
	case hasFile && hasContent:
		return fmt.Errorf("provide a document via file or content, not both")
	default:
		return nil
	}
}
