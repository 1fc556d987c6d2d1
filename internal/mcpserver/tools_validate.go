package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsontools/query"
)

type validateInput struct {
	Doc docInput `json:"doc" jsonschema:"The JSON document to validate"`
}

type validateOutput struct {
	Valid bool `json:"valid"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	return nil, validateOutput{Valid: query.Valid(doc)}, nil
}
