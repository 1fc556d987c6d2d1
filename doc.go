// Package jsontools provides fast, path-addressed querying and mutation of raw
// JSON text without building a parsed tree.
//
// jsontools operates directly on the textual form of a document: a query
// returns a view into the caller's input (a byte-range substring), and a
// mutation splices replacement bytes into a copy while preserving the
// formatting of every untouched region.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - query: Evaluate path expressions against JSON text and inspect results
//   - mutate: Set, overwrite, and delete values addressed by a path
//   - pretty: Reformat JSON text (indented or compact) without parsing it
//
// Structured errors for the mutation surface live in the jsonerrors package.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/jsontools
//
// # Quick Start
//
// Query a document:
//
//	import "github.com/erraggy/jsontools/query"
//
//	name := query.Get(`{"user":{"name":"Tom"}}`, "user.name")
//	fmt.Println(name.Str) // Tom
//
// Mutate a document:
//
//	import "github.com/erraggy/jsontools/mutate"
//
//	out, err := mutate.Delete(`{"a":1,"b":2}`, "a")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // {"b":2}
//
// Reformat a document:
//
//	import "github.com/erraggy/jsontools/pretty"
//
//	fmt.Println(pretty.Ugly("{\n  \"a\": 1\n}")) // {"a":1}
//
// # Path Syntax
//
// Paths are dot-separated expressions. Each component selects an object key or
// array index; additional forms select over arrays and transform results:
//
//   - "name.last"            object keys
//   - "children.0"           array index
//   - "children.#"           array length
//   - "children.#.name"      a path applied to every element
//   - "c?ild*"               key wildcards (* and ?)
//   - "fav\.movie"           escaped separator inside a key
//   - "friends.#(age>45)"    first element matching a query
//   - "friends.#(age>45)#"   every element matching a query
//   - "[a,b.c]" / "{a,n:b}"  multipath array and object constructors
//   - "a.b|c"                pipe: evaluate left fully, then apply right
//   - "@pretty" / "@ugly"    modifiers, optionally with a JSON argument
//   - "..#"                  JSON Lines: the input is a stream of values
//
// The complete grammar is documented in the query package.
//
// # Command Line
//
// The jsontools command exposes the library over a CLI, an HTTP API, and an
// MCP (Model Context Protocol) stdio server:
//
//	jsontools get api.json 'paths.#'
//	jsontools serve --addr :8080
//	jsontools mcp
package jsontools
