package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/jsontools"
	"github.com/erraggy/jsontools/cmd/jsontools/commands"
	"github.com/erraggy/jsontools/internal/mcpserver"
)

// validCommands lists all valid command names for typo suggestions
var validCommands = []string{
	"get", "set", "delete", "validate", "format", "serve", "mcp", "version", "help",
}

// levenshteinDistance calculates the minimum edit distance between two strings
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range len(b) + 1 {
		matrix[0][j] = j
	}

	// Fill matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

// suggestCommand returns the closest matching command if the edit distance is <= 2
func suggestCommand(input string) string {
	var bestMatch string
	bestDistance := 3 // Only suggest if distance <= 2

	for _, cmd := range validCommands {
		dist := levenshteinDistance(input, cmd)
		if dist < bestDistance {
			bestDistance = dist
			bestMatch = cmd
		}
	}

	return bestMatch
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("jsontools v%s\n", jsontools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "get":
		if err := commands.HandleGet(os.Args[2:]); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "set":
		if err := commands.HandleSet(os.Args[2:]); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "delete":
		if err := commands.HandleDelete(os.Args[2:]); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "format":
		if err := commands.HandleFormat(os.Args[2:]); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := commands.HandleServe(os.Args[2:]); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			commands.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		commands.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`jsontools - path-addressed JSON query and mutation

Usage:
  jsontools <command> [options]

Commands:
  get         Evaluate a path expression against a JSON document
  set         Set the value at a path and print the rewritten document
  delete      Delete the value at a path and print the rewritten document
  validate    Strictly validate a JSON document
  format      Reformat a JSON document (indented or compact)
  serve       Start the HTTP API server
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  jsontools get api.json 'paths.#'
  jsontools get config.yaml 'servers.0.url'
  cat doc.json | jsontools get - 'users.#(age>45)#.name'
  jsontools set doc.json 'user.name' '"Tom"' > out.json
  jsontools delete doc.json 'user.password' > out.json
  jsontools format --ugly doc.json
  jsontools serve --addr :8080

Run 'jsontools <command> --help' for more information on a command.`)
}
