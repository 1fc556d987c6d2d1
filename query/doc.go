// Package query evaluates path expressions against raw JSON text.
//
// Import path: github.com/erraggy/jsontools/query
//
// The package never builds a parsed tree. [Get] scans the document forward a
// single time, directed by the path, and returns a [Result] whose Raw field
// is a substring of the input: querying is allocation-free unless the path
// itself constructs new values (collections, multipaths, modifiers, pipes).
//
// # Results
//
// Every failure on the read path — a missing key, an out-of-range index, a
// malformed document, an unparseable path — collapses into the not-present
// result. Check [Result.Exists]; there are no errors to handle:
//
//	if v := query.Get(doc, "user.name"); v.Exists() {
//	    fmt.Println(v.Str)
//	}
//
// # Path grammar
//
// A path is a sequence of segments separated by '.'. Within a segment a
// backslash escapes the next character, so keys containing '.', '|', '*',
// '?', '#', or '\' remain addressable.
//
//	key            object member by name
//	3              array element by position (or a member named "3")
//	c?ild*         first member whose name matches the glob
//	#              array length (terminal) / for-every-element (non-terminal)
//	#(path op v)   first array element whose path compares true against v
//	#(path op v)#  every such element
//	[a,b]  {n:a}   multipath: build a new array or object from sub-paths
//	@name[:arg]    modifier: transform the current value
//	left|right     pipe: materialise left, evaluate right against it
//	..             JSON Lines prefix: the input is a stream of values
//
// Query operators: = and == (equality), !=, <, <=, >, >=, % (glob match),
// !% (glob mismatch), and ==~ (coercing boolean test; the sole coercion in
// the grammar).
//
// Built-in modifiers: @this, @valid, @ugly, @pretty, @reverse, @flatten,
// @join, @upper, @lower. The modifier table is fixed at start-up; an unknown
// modifier evaluates to not-present.
//
// # Parsed paths
//
// [ParsePath] separates parsing from evaluation so a hot path can be parsed
// once:
//
//	p, err := query.ParsePath("statuses.#.user.name")
//	if err != nil { ... }
//	for _, doc := range docs {
//	    names := p.Get(doc)
//	    ...
//	}
package query
