// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsontools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/jsontools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `jsontools MCP server — queries, mutates, validates, and reformats JSON documents addressed by path expressions.

Paths are dot-separated: "user.name", "items.3", "items.#" (length), "items.#.name" (every element), "items.#(age>45)#" (query), "a.b|@pretty" (pipe into a modifier). Keys containing '.' are escaped with a backslash.

Documents are supplied inline via content or by path via file. YAML files are converted to JSON automatically; set yaml=true for inline YAML content.

Configuration: defaults are configurable via JSONTOOLS_* environment variables set in your MCP client config.

Key settings:
- JSONTOOLS_RESULT_LIMIT (default: 262144) — maximum bytes of JSON returned inline before truncation
- JSONTOOLS_MAX_DOCUMENT_SIZE (default: 10485760) — maximum accepted document size in bytes
- JSONTOOLS_PRETTY_BY_DEFAULT (default: false) — indent get results unless the call overrides it`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsontools", Version: jsontools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get",
		Description: "Evaluate a path expression against a JSON document and return the matching value. Supports keys, indexes, wildcards, '#' selections, queries, multipaths, modifiers, pipes, and the '..' JSON Lines prefix. A path that matches nothing returns exists=false rather than an error.",
	}, handleGet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set",
		Description: "Set the value at a path in a JSON document and return the rewritten document. The value is spliced verbatim when it is valid JSON, otherwise it is encoded as a JSON string. By default missing intermediate objects and arrays are created; set overwrite_only=true to fail when the path does not resolve. Mutation paths accept only keys and indexes.",
	}, handleSet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete",
		Description: "Delete the value at a path in a JSON document and return the rewritten document, with the separators adjusted and surrounding formatting preserved. Mutation paths accept only keys and indexes.",
	}, handleDelete)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Strictly validate a JSON document. Returns valid=true/false; trailing commas, malformed numbers, bad escapes, and trailing content all fail.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format",
		Description: "Reformat a JSON document: indented by default, compact with ugly=true. Indentation string, key sorting, and line width are configurable per call.",
	}, handleFormat)
}

// truncateResult caps a JSON payload at the configured result limit.
func truncateResult(doc string) (string, bool) {
	if len(doc) <= cfg.ResultLimit {
		return doc, false
	}
	return doc[:cfg.ResultLimit], true
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
