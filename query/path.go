package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed path expression. Parsing and evaluation are kept separate
// so callers can parse once and evaluate against many documents.
type Path struct {
	raw string
	// JSONLines is true when the path began with "..", which treats the
	// document as a whitespace-separated stream of top-level values.
	JSONLines bool
	// Segments is the ordered list of parsed segments.
	Segments []Segment
}

// String returns the original path expression.
func (p *Path) String() string {
	return p.raw
}

// Segment is one lexical unit of a path expression.
type Segment interface {
	// segmentType returns a string identifying the segment type for debugging.
	segmentType() string
}

// KeySegment selects an object member by name. Name is stored with path
// escapes already removed.
type KeySegment struct {
	Name    string
	Escaped bool
}

func (s KeySegment) segmentType() string { return "key" }

// IndexSegment selects an array element by position. When the current value
// is an object the digits are matched as a member name instead, so "10"
// addresses both the eleventh element of an array and a member named "10".
type IndexSegment struct {
	Index int
	Name  string
}

func (s IndexSegment) segmentType() string { return "index" }

// WildcardSegment selects the first object member whose name matches a glob
// pattern of '*' and '?'. The pattern keeps its backslash escapes so that
// escaped wildcards match literally.
type WildcardSegment struct {
	Pattern string
}

func (s WildcardSegment) segmentType() string { return "wildcard" }

// ArrayLenSegment is a terminal '#': the number of elements in the current
// array.
type ArrayLenSegment struct{}

func (s ArrayLenSegment) segmentType() string { return "arraylen" }

// ArrayEachSegment is a non-terminal '#': the remainder of the path (up to
// the next pipe) is applied to every element and the existing results are
// collected into a new array.
type ArrayEachSegment struct{}

func (s ArrayEachSegment) segmentType() string { return "arrayeach" }

// QuerySegment selects from an array the first element — or with All set,
// every element — for which Path resolves against the element and the
// resolved value compares true against Value under Op. An empty Op is an
// existence test, and an empty Path compares the element itself.
type QuerySegment struct {
	Path  string
	Op    string
	Value string
	All   bool

	lit queryLiteral
}

func (s QuerySegment) segmentType() string { return "query" }

// MultipathPart is one comma-separated part of a multipath.
type MultipathPart struct {
	// Name is the explicit "name:" prefix, or the name synthesised from the
	// part's final segment for object-form multipaths.
	Name string
	// Explicit is true when the name was written in the path.
	Explicit bool
	// Path is the parsed inner path.
	Path *Path
}

// MultipathSegment constructs a new array ("[...]") or object ("{...}") by
// evaluating each part against the same current value.
type MultipathSegment struct {
	Object bool
	Parts  []MultipathPart
}

func (s MultipathSegment) segmentType() string { return "multipath" }

// ModifierSegment applies a named transform to the current value, with an
// optional raw JSON argument following ':'.
type ModifierSegment struct {
	Name string
	Arg  string
}

func (s ModifierSegment) segmentType() string { return "modifier" }

// PipeSegment is the '|' boundary: the left side is fully evaluated and its
// result becomes the root for the segments that follow.
type PipeSegment struct{}

func (s PipeSegment) segmentType() string { return "pipe" }

// queryLiteral is the decoded right-hand side of a query comparison.
type queryLiteral struct {
	kind Kind    // String, Number, True, False, Null, or NotPresent for none
	str  string  // decoded string form
	num  float64 // numeric form
	raw  string  // raw text, used for exact integer comparison
}

// ParsePath parses a path expression into its segments. The parser performs
// no semantic validation: a structurally sound path that cannot match
// anything simply evaluates to a not-present result. Errors are returned
// only for expressions that cannot be tokenised, such as an unterminated
// query or multipath.
func ParsePath(path string) (*Path, error) {
	p := &Path{raw: path}
	rest := path
	if strings.HasPrefix(rest, "..") {
		p.JSONLines = true
		rest = rest[2:]
	}
	i := 0
	for i < len(rest) {
		switch rest[i] {
		case '|':
			p.Segments = append(p.Segments, PipeSegment{})
			i++
		case '.':
			i++
		case '[', '{':
			seg, next, err := parseMultipath(rest, i)
			if err != nil {
				return nil, err
			}
			p.Segments = append(p.Segments, seg)
			i = next
		case '@':
			seg, next := parseModifier(rest, i)
			p.Segments = append(p.Segments, seg)
			i = next
		case '#':
			if i+1 < len(rest) && rest[i+1] == '(' {
				seg, next, err := parseQuery(rest, i)
				if err != nil {
					return nil, err
				}
				p.Segments = append(p.Segments, seg)
				i = next
				break
			}
			if i+1 >= len(rest) || rest[i+1] == '|' {
				p.Segments = append(p.Segments, ArrayLenSegment{})
				i++
				break
			}
			if rest[i+1] == '.' {
				p.Segments = append(p.Segments, ArrayEachSegment{})
				i++
				break
			}
			// '#' followed by anything else is an ordinary key.
			fallthrough
		default:
			seg, next := parseToken(rest, i)
			p.Segments = append(p.Segments, seg)
			i = next
		}
	}
	return p, nil
}

// parseToken scans a plain key token: a run of bytes up to the next unescaped
// '.' or '|'.
func parseToken(path string, i int) (Segment, int) {
	start := i
	escaped := false
	for i < len(path) {
		switch path[i] {
		case '\\':
			escaped = true
			i += 2
		case '.', '|':
			goto done
		default:
			i++
		}
	}
done:
	if i > len(path) {
		i = len(path)
	}
	token := path[start:i]
	if isGlobPattern(token) {
		return WildcardSegment{Pattern: token}, i
	}
	name := token
	if escaped {
		name = pathUnescape(token)
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && !escaped {
		return IndexSegment{Index: n, Name: name}, i
	}
	return KeySegment{Name: name, Escaped: escaped}, i
}

// pathUnescape removes the backslash escapes from a path token.
func pathUnescape(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		if token[i] == '\\' && i+1 < len(token) {
			i++
		}
		b.WriteByte(token[i])
	}
	return b.String()
}

// scanBalanced advances from the opening bracket at i to one past its
// matching close, honouring nested brackets of every kind, strings, and
// backslash escapes. ok is false when the input ends first.
func scanBalanced(path string, i int) (int, bool) {
	depth := 0
	for ; i < len(path); i++ {
		switch path[i] {
		case '\\':
			i++
		case '"':
			end, _ := skipString(path, i)
			i = end - 1
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return i, false
}

// parseModifier scans "@name" with an optional ":arg" whose raw JSON runs to
// the next top-level '.' or '|'.
func parseModifier(path string, i int) (Segment, int) {
	i++ // consume @
	nameStart := i
	for i < len(path) {
		c := path[i]
		if c == '.' || c == '|' || c == ':' {
			break
		}
		i++
	}
	seg := ModifierSegment{Name: path[nameStart:i]}
	if i < len(path) && path[i] == ':' {
		i++
		argStart := i
		depth := 0
		for i < len(path) {
			switch path[i] {
			case '\\':
				i++
			case '"':
				end, _ := skipString(path, i)
				i = end - 1
			case '[', '{', '(':
				depth++
			case ']', '}', ')':
				depth--
			case '.', '|':
				if depth <= 0 {
					seg.Arg = path[argStart:i]
					return seg, i
				}
			}
			i++
		}
		seg.Arg = path[argStart:i]
	}
	return seg, i
}

// parseQuery scans "#(" ... ")" with an optional trailing '#'.
func parseQuery(path string, i int) (Segment, int, error) {
	open := i + 1 // the '('
	end, ok := scanBalanced(path, open)
	if !ok {
		return nil, 0, fmt.Errorf("unterminated query at offset %d: %s", i, path)
	}
	content := path[open+1 : end-1]
	seg := QuerySegment{}
	if end < len(path) && path[end] == '#' {
		seg.All = true
		end++
	}
	sub, op, lit := splitQuery(content)
	seg.Path = strings.TrimSpace(sub)
	seg.Op = op
	seg.Value = strings.TrimSpace(lit)
	seg.lit = parseQueryLiteral(seg.Value)
	return seg, end, nil
}

// splitQuery divides query content into sub-path, operator, and literal. The
// operator is the first comparison found at bracket depth zero.
func splitQuery(content string) (sub, op, lit string) {
	depth := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\\':
			i++
		case '"':
			end, _ := skipString(content, i)
			i = end - 1
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			depth--
		case '=', '<', '>', '!', '%':
			if depth != 0 {
				continue
			}
			sub = content[:i]
			switch {
			case strings.HasPrefix(content[i:], "==~"):
				return sub, "==~", content[i+3:]
			case strings.HasPrefix(content[i:], "=="):
				return sub, "==", content[i+2:]
			case strings.HasPrefix(content[i:], "!="):
				return sub, "!=", content[i+2:]
			case strings.HasPrefix(content[i:], "!%"):
				return sub, "!%", content[i+2:]
			case strings.HasPrefix(content[i:], "<="):
				return sub, "<=", content[i+2:]
			case strings.HasPrefix(content[i:], ">="):
				return sub, ">=", content[i+2:]
			case content[i] == '=':
				return sub, "=", content[i+1:]
			case content[i] == '<':
				return sub, "<", content[i+1:]
			case content[i] == '>':
				return sub, ">", content[i+1:]
			case content[i] == '%':
				return sub, "%", content[i+1:]
			default:
				// A lone '!' is part of the sub-path.
			}
		}
	}
	return content, "", ""
}

// parseQueryLiteral decodes the right-hand side of a query comparison.
func parseQueryLiteral(raw string) queryLiteral {
	if raw == "" {
		return queryLiteral{kind: NotPresent}
	}
	if raw[0] == '"' {
		return queryLiteral{kind: String, str: unquote(raw), raw: raw}
	}
	switch raw {
	case "true":
		return queryLiteral{kind: True, raw: raw}
	case "false":
		return queryLiteral{kind: False, raw: raw}
	case "null":
		return queryLiteral{kind: Null, raw: raw}
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return queryLiteral{kind: Number, num: n, raw: raw}
	}
	// A bare word compares as a string.
	return queryLiteral{kind: String, str: pathUnescape(raw), raw: raw}
}

// parseMultipath scans "[...]" or "{...}" and parses each comma-separated
// part into its own inner path.
func parseMultipath(path string, i int) (Segment, int, error) {
	object := path[i] == '{'
	end, ok := scanBalanced(path, i)
	if !ok {
		return nil, 0, fmt.Errorf("unterminated multipath at offset %d: %s", i, path)
	}
	content := path[i+1 : end-1]
	seg := MultipathSegment{Object: object}
	for _, part := range splitTopLevel(content, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mp, err := parseMultipathPart(part)
		if err != nil {
			return nil, 0, err
		}
		seg.Parts = append(seg.Parts, mp)
	}
	if end < len(path) && path[end] != '.' && path[end] != '|' {
		return nil, 0, fmt.Errorf("unexpected %q after multipath at offset %d: %s", path[end], end, path)
	}
	return seg, end, nil
}

// splitTopLevel splits s at every sep found outside brackets and strings.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			end, _ := skipString(s, i)
			i = end - 1
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// parseMultipathPart parses one part, honouring an optional quoted or bare
// "name:" prefix.
func parseMultipathPart(part string) (MultipathPart, error) {
	mp := MultipathPart{}
	rest := part
	if part[0] == '"' {
		end, _ := skipString(part, 0)
		if end < len(part) && part[end] == ':' {
			mp.Name = unquote(part[:end])
			mp.Explicit = true
			rest = part[end+1:]
		}
	} else if colon := findNameColon(part); colon >= 0 {
		mp.Name = part[:colon]
		mp.Explicit = true
		rest = part[colon+1:]
	}
	inner, err := ParsePath(rest)
	if err != nil {
		return mp, err
	}
	mp.Path = inner
	if !mp.Explicit {
		mp.Name = synthesiseName(inner)
	}
	return mp, nil
}

// findNameColon returns the offset of a bare name's ':' separator, or -1 when
// the part has no explicit name. The name must precede any path syntax.
func findNameColon(part string) int {
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case ':':
			return i
		case '\\', '.', '|', '(', '[', '{', '*', '?', '@', '#', '"':
			return -1
		}
	}
	return -1
}

// synthesiseName derives an object-form member name from the final segment of
// an inner path: the key or index text, a modifier's "@name", or "_".
func synthesiseName(p *Path) string {
	if len(p.Segments) == 0 {
		return "_"
	}
	switch seg := p.Segments[len(p.Segments)-1].(type) {
	case KeySegment:
		return seg.Name
	case IndexSegment:
		return seg.Name
	case ModifierSegment:
		return "@" + seg.Name
	default:
		return "_"
	}
}
