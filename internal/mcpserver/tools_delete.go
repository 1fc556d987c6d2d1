package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsontools/mutate"
)

type deleteInput struct {
	Doc  docInput `json:"doc"  jsonschema:"The JSON document to mutate"`
	Path string   `json:"path" jsonschema:"The key/index path of the value to delete"`
}

type deleteOutput struct {
	JSON string `json:"json"`
}

func handleDelete(_ context.Context, _ *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, deleteOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), deleteOutput{}, nil
	}

	out, err := mutate.Delete(doc, input.Path)
	if err != nil {
		return errResult(err), deleteOutput{}, nil
	}
	return nil, deleteOutput{JSON: out}, nil
}
