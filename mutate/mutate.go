// Package mutate rewrites JSON documents addressed by a path: set a value,
// overwrite a value, or delete a value. The document is never parsed into a
// tree; a mutation locates the byte range of its target and splices the
// replacement, so the formatting of every untouched region survives.
//
// Mutation paths accept only object keys and array indexes (with the same
// backslash escapes as the query package). The query-only forms — wildcards,
// '#' selections, multipaths, modifiers, pipes — have no meaning as a write
// target and are rejected with [jsonerrors.ErrPathInvalid].
package mutate

import (
	"strings"

	"github.com/erraggy/jsontools/jsonerrors"
	"github.com/erraggy/jsontools/query"
)

// accessor is one component of a mutation path: an object key, which may
// also serve as an array index when the digits allow it.
type accessor struct {
	name    string
	index   int
	isIndex bool
}

// Delete removes the value addressed by path, along with its key and the
// separator that joined it to its container: the comma before it when it is
// not the first member, otherwise the comma after it together with the
// whitespace that follows that comma. All other whitespace is preserved.
func Delete(json, path string) (string, error) {
	accs, err := parseMutationPath(path)
	if err != nil {
		return "", err
	}
	if !query.Valid(json) {
		return "", &jsonerrors.DocumentError{Message: "input is not valid JSON"}
	}
	loc, err := locate(json, path, accs)
	if err != nil {
		return "", err
	}
	if !loc.found {
		return "", &jsonerrors.PathError{Path: path, Component: loc.missing}
	}
	start := loc.entryStart
	end := loc.valEnd
	if loc.prevValEnd >= 0 {
		// Not the first member: the preceding comma goes too.
		start = loc.prevValEnd
	} else {
		// First member: when a member follows, consume the comma after the
		// value and the whitespace that follows it.
		i := skipSpace(json, end)
		if i < len(json) && json[i] == ',' {
			end = skipSpace(json, i+1)
		}
	}
	return json[:start] + json[end:], nil
}

// SetOverwrite replaces the value addressed by path. The replacement is
// spliced verbatim when it is itself valid JSON; anything else is encoded as
// a JSON string literal. A path that does not resolve is an error; use [Set]
// to create missing intermediate containers instead.
func SetOverwrite(json, path, value string) (string, error) {
	accs, err := parseMutationPath(path)
	if err != nil {
		return "", err
	}
	if !query.Valid(json) {
		return "", &jsonerrors.DocumentError{Message: "input is not valid JSON"}
	}
	loc, err := locate(json, path, accs)
	if err != nil {
		return "", err
	}
	if !loc.found {
		return "", &jsonerrors.PathError{Path: path, Component: loc.missing}
	}
	return json[:loc.valStart] + encodeValue(value) + json[loc.valEnd:], nil
}

// Set is like [SetOverwrite], but a path that does not resolve creates the
// minimum intermediate objects and arrays needed to hold the value. A missing
// key accessor creates an object member; a missing index accessor appends to
// the array, padding skipped positions with null.
func Set(json, path, value string) (string, error) {
	accs, err := parseMutationPath(path)
	if err != nil {
		return "", err
	}
	if !query.Valid(json) {
		return "", &jsonerrors.DocumentError{Message: "input is not valid JSON"}
	}
	loc, err := locate(json, path, accs)
	if err != nil {
		return "", err
	}
	encoded := encodeValue(value)
	if loc.found {
		return json[:loc.valStart] + encoded + json[loc.valEnd:], nil
	}
	// Build the skeleton for every accessor that was never reached, then
	// splice it into the container where the descent stopped. The first
	// missing accessor names the new entry; whether it becomes a member or an
	// element depends on the container the descent stopped in.
	skeleton := buildSkeleton(loc.remaining[1:], encoded)
	if loc.inObject {
		insert := string(appendKey(nil, loc.remaining[0].name)) + ":" + skeleton
		if !loc.emptyContainer {
			insert = "," + insert
		}
		return json[:loc.insertAt] + insert + json[loc.insertAt:], nil
	}
	// Array: pad skipped positions with null, then append.
	parts := make([]string, 0, loc.padTo-loc.arrayLen+1)
	for i := loc.arrayLen; i < loc.padTo; i++ {
		parts = append(parts, "null")
	}
	parts = append(parts, skeleton)
	insert := strings.Join(parts, ",")
	if loc.arrayLen > 0 {
		insert = "," + insert
	}
	return json[:loc.insertAt] + insert + json[loc.insertAt:], nil
}

// location describes where a mutation path landed in the document.
type location struct {
	found bool

	// Set when found: the byte ranges of the matched entry.
	entryStart int // key start in objects, value start in arrays
	valStart   int
	valEnd     int
	prevValEnd int // end of the previous member's value, -1 when first

	// Set when not found: where and what to create.
	missing        string // the accessor that failed to resolve
	remaining      []accessor
	inObject       bool
	emptyContainer bool
	insertAt       int // offset of the container's closing bracket
	arrayLen       int
	padTo          int
}

// locate descends the document one accessor at a time, tracking byte offsets.
func locate(json, path string, accs []accessor) (location, error) {
	start, end, ok := valueRange(json, 0, len(json))
	if !ok {
		return location{}, &jsonerrors.DocumentError{Message: "no value found"}
	}
	for ai, acc := range accs {
		last := ai == len(accs)-1
		i := skipSpace(json, start)
		if i >= end {
			return location{}, &jsonerrors.DocumentError{Offset: i, Message: "truncated value"}
		}
		switch json[i] {
		case '{':
			loc, err := descendObject(json, i, acc)
			if err != nil {
				return location{}, err
			}
			if !loc.found {
				loc.missing = acc.name
				loc.remaining = accs[ai:]
				return loc, nil
			}
			if last {
				return loc, nil
			}
			start, end = loc.valStart, loc.valEnd
		case '[':
			if !acc.isIndex {
				return location{}, &jsonerrors.TypeError{Path: path, Component: acc.name, Want: "object", Got: "array"}
			}
			loc, err := descendArray(json, i, acc)
			if err != nil {
				return location{}, err
			}
			if !loc.found {
				loc.missing = acc.name
				loc.remaining = accs[ai:]
				return loc, nil
			}
			if last {
				return loc, nil
			}
			start, end = loc.valStart, loc.valEnd
		default:
			return location{}, &jsonerrors.TypeError{
				Path:      path,
				Component: acc.name,
				Want:      "object or array",
				Got:       kindName(json[i]),
			}
		}
	}
	return location{}, &jsonerrors.SyntaxError{Path: path, Message: "empty path"}
}

// descendObject finds the member named by acc inside the object opening at i.
func descendObject(json string, i int, acc accessor) (location, error) {
	loc := location{prevValEnd: -1, inObject: true}
	i++ // consume {
	first := true
	prevEnd := -1
	for {
		j := skipSpace(json, i)
		if j >= len(json) {
			return loc, &jsonerrors.DocumentError{Offset: j, Message: "unterminated object"}
		}
		if json[j] == '}' {
			loc.emptyContainer = first
			loc.insertAt = j
			return loc, nil
		}
		keyStart := j
		keyEnd, escaped := scanString(json, j)
		key := json[keyStart+1 : keyEnd-1]
		if escaped {
			key = query.Unescape(key)
		}
		j = skipSpace(json, keyEnd)
		if j >= len(json) || json[j] != ':' {
			return loc, &jsonerrors.DocumentError{Offset: j, Message: "missing ':' after member name"}
		}
		valStart, valEnd, ok := valueRange(json, j+1, len(json))
		if !ok {
			return loc, &jsonerrors.DocumentError{Offset: j, Message: "missing member value"}
		}
		if key == acc.name {
			loc.found = true
			loc.entryStart = keyStart
			loc.valStart = valStart
			loc.valEnd = valEnd
			loc.prevValEnd = prevEnd
			return loc, nil
		}
		prevEnd = valEnd
		first = false
		i = valEnd
		j = skipSpace(json, i)
		if j < len(json) && json[j] == ',' {
			i = j + 1
		}
	}
}

// descendArray finds the element at acc.index inside the array opening at i.
func descendArray(json string, i int, acc accessor) (location, error) {
	loc := location{prevValEnd: -1}
	i++ // consume [
	count := 0
	prevEnd := -1
	for {
		j := skipSpace(json, i)
		if j >= len(json) {
			return loc, &jsonerrors.DocumentError{Offset: j, Message: "unterminated array"}
		}
		if json[j] == ']' {
			loc.emptyContainer = count == 0
			loc.insertAt = j
			loc.arrayLen = count
			loc.padTo = acc.index
			return loc, nil
		}
		valStart, valEnd, ok := valueRange(json, j, len(json))
		if !ok {
			return loc, &jsonerrors.DocumentError{Offset: j, Message: "missing element value"}
		}
		if count == acc.index {
			loc.found = true
			loc.entryStart = valStart
			loc.valStart = valStart
			loc.valEnd = valEnd
			loc.prevValEnd = prevEnd
			return loc, nil
		}
		prevEnd = valEnd
		count++
		i = valEnd
		j = skipSpace(json, i)
		if j < len(json) && json[j] == ',' {
			i = j + 1
		}
	}
}

// parseMutationPath reuses the query path parser, then restricts the result
// to plain key and index segments.
func parseMutationPath(path string) ([]accessor, error) {
	if path == "" {
		return nil, &jsonerrors.SyntaxError{Path: path, Message: "empty path"}
	}
	parsed, err := query.ParsePath(path)
	if err != nil {
		return nil, &jsonerrors.SyntaxError{Path: path, Message: err.Error()}
	}
	if parsed.JSONLines {
		return nil, &jsonerrors.SyntaxError{Path: path, Message: "JSON Lines paths cannot be mutated"}
	}
	accs := make([]accessor, 0, len(parsed.Segments))
	for _, seg := range parsed.Segments {
		switch s := seg.(type) {
		case query.KeySegment:
			accs = append(accs, accessor{name: s.Name})
		case query.IndexSegment:
			accs = append(accs, accessor{name: s.Name, index: s.Index, isIndex: true})
		default:
			return nil, &jsonerrors.SyntaxError{
				Path:    path,
				Message: "only keys and indexes are allowed in mutation paths",
			}
		}
	}
	if len(accs) == 0 {
		return nil, &jsonerrors.SyntaxError{Path: path, Message: "empty path"}
	}
	return accs, nil
}

// buildSkeleton wraps an encoded value in the containers needed for the
// accessors that did not resolve: an index accessor becomes an array padded
// with nulls, a key accessor becomes a single-member object.
func buildSkeleton(accs []accessor, value string) string {
	out := value
	for i := len(accs) - 1; i >= 0; i-- {
		acc := accs[i]
		if acc.isIndex {
			var b strings.Builder
			b.WriteByte('[')
			for j := 0; j < acc.index; j++ {
				b.WriteString("null,")
			}
			b.WriteString(out)
			b.WriteByte(']')
			out = b.String()
		} else {
			out = "{" + string(appendKey(nil, acc.name)) + ":" + out + "}"
		}
	}
	return out
}

// encodeValue returns value verbatim when it already parses as a JSON value,
// and as a JSON string literal otherwise.
func encodeValue(value string) string {
	if query.Valid(strings.TrimSpace(value)) {
		return strings.TrimSpace(value)
	}
	return string(appendKey(nil, value))
}

// appendKey appends s as a JSON string literal.
func appendKey(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				const hex = "0123456789abcdef"
				dst = append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return append(dst, '"')
}

func kindName(c byte) string {
	switch c {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// The helpers below mirror the forward scanner: skip whitespace, consume a
// string, consume one value.

func skipSpace(json string, i int) int {
	for i < len(json) && json[i] <= ' ' {
		i++
	}
	return i
}

func scanString(json string, i int) (int, bool) {
	escaped := false
	for i++; i < len(json); i++ {
		switch json[i] {
		case '\\':
			escaped = true
			i++
		case '"':
			return i + 1, escaped
		}
	}
	return i, escaped
}

func valueRange(json string, i, end int) (int, int, bool) {
	i = skipSpace(json, i)
	if i >= end {
		return i, i, false
	}
	switch json[i] {
	case '{', '[':
		open := json[i]
		closeBracket := byte('}')
		if open == '[' {
			closeBracket = ']'
		}
		depth := 0
		for j := i; j < end; j++ {
			switch json[j] {
			case open:
				depth++
			case closeBracket:
				depth--
				if depth == 0 {
					return i, j + 1, true
				}
			case '"':
				strEnd, _ := scanString(json, j)
				j = strEnd - 1
			}
		}
		return i, end, true
	case '"':
		strEnd, _ := scanString(json, i)
		return i, strEnd, true
	case '}', ']', ',', ':':
		return i, i, false
	default:
		j := i
		for j < end {
			switch json[j] {
			case ' ', '\t', '\n', '\r', ',', ']', '}', ':':
				return i, j, true
			}
			j++
		}
		return i, j, true
	}
}
