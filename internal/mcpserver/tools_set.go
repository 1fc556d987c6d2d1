package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsontools/mutate"
)

type setInput struct {
	Doc           docInput `json:"doc"                      jsonschema:"The JSON document to mutate"`
	Path          string   `json:"path"                     jsonschema:"The key/index path of the value to set"`
	Value         string   `json:"value"                    jsonschema:"The replacement value; spliced verbatim when valid JSON, else encoded as a JSON string"`
	OverwriteOnly bool     `json:"overwrite_only,omitempty" jsonschema:"Fail when the path does not resolve instead of creating intermediates"`
}

type setOutput struct {
	JSON string `json:"json"`
}

func handleSet(_ context.Context, _ *mcp.CallToolRequest, input setInput) (*mcp.CallToolResult, setOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), setOutput{}, nil
	}

	var out string
	if input.OverwriteOnly {
		out, err = mutate.SetOverwrite(doc, input.Path, input.Value)
	} else {
		out, err = mutate.Set(doc, input.Path, input.Value)
	}
	if err != nil {
		return errResult(err), setOutput{}, nil
	}
	return nil, setOutput{JSON: out}, nil
}
