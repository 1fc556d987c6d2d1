package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsontools/pretty"
)

type formatInput struct {
	Doc      docInput `json:"doc"                 jsonschema:"The JSON document to reformat"`
	Ugly     bool     `json:"ugly,omitempty"      jsonschema:"Emit compact output instead of indented"`
	Indent   string   `json:"indent,omitempty"    jsonschema:"Indentation string (default two spaces)"`
	SortKeys bool     `json:"sort_keys,omitempty" jsonschema:"Order object members by key"`
	Width    int      `json:"width,omitempty"     jsonschema:"Collapse containers that fit within this column (0 disables)"`
}

type formatOutput struct {
	JSON      string `json:"json"`
	Truncated bool   `json:"truncated,omitempty"`
}

func handleFormat(_ context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	var out string
	if input.Ugly {
		out = pretty.Ugly(doc)
	} else {
		opts := &pretty.Options{
			Indent:   input.Indent,
			SortKeys: input.SortKeys,
			Width:    input.Width,
		}
		out = pretty.PrettyOptions(doc, opts)
	}
	out, truncated := truncateResult(out)
	return nil, formatOutput{JSON: out, Truncated: truncated}, nil
}
