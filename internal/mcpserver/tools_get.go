package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsontools/pretty"
	"github.com/erraggy/jsontools/query"
)

type getInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The JSON document to query"`
	Path   string   `json:"path"             jsonschema:"The path expression to evaluate"`
	Pretty *bool    `json:"pretty,omitempty" jsonschema:"Indent the result (default from JSONTOOLS_PRETTY_BY_DEFAULT)"`
}

type getOutput struct {
	Exists    bool   `json:"exists"`
	Kind      string `json:"kind,omitempty"`
	JSON      string `json:"json,omitempty"`
	Index     *int   `json:"index,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

func handleGet(_ context.Context, _ *mcp.CallToolRequest, input getInput) (*mcp.CallToolResult, getOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), getOutput{}, nil
	}

	res := query.Get(doc, input.Path)
	if !res.Exists() {
		return nil, getOutput{Exists: false}, nil
	}

	indent := cfg.PrettyByDefault
	if input.Pretty != nil {
		indent = *input.Pretty
	}
	payload := res.Raw
	if indent {
		payload = pretty.Pretty(payload)
	}
	payload, truncated := truncateResult(payload)

	output := getOutput{
		Exists:    true,
		Kind:      res.Kind.String(),
		JSON:      payload,
		Truncated: truncated,
	}
	if res.Index >= 0 {
		idx := res.Index
		output.Index = &idx
	}
	return nil, output, nil
}
