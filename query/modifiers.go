package query

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/jsontools/pretty"
)

// A modifierFunc transforms the raw text of the current value into the raw
// text of a new value. ok is false when the modifier rejects its input, which
// evaluates to not-present.
type modifierFunc func(json, arg string) (out string, ok bool)

// modifierTable is the registry of named modifiers. It is built once at
// start-up and never mutated; there is no API for registering modifiers at
// run time.
var modifierTable map[string]modifierFunc

func init() {
	modifierTable = map[string]modifierFunc{
		"this":    modThis,
		"valid":   modValid,
		"ugly":    modUgly,
		"pretty":  modPretty,
		"reverse": modReverse,
		"flatten": modFlatten,
		"join":    modJoin,
		"upper":   modUpper,
		"lower":   modLower,
	}
}

// applyModifier dispatches a modifier segment. An unknown modifier name
// evaluates to not-present. When a modifier returns its input unchanged the
// current result is kept as-is, preserving its offset into the document.
func applyModifier(cur Result, seg ModifierSegment) Result {
	fn, ok := modifierTable[seg.Name]
	if !ok {
		return Result{}
	}
	out, ok := fn(cur.Raw, seg.Arg)
	if !ok {
		return Result{}
	}
	if out == cur.Raw {
		return cur
	}
	return makeResult(out)
}

// modThis is the identity modifier.
func modThis(json, _ string) (string, bool) {
	return json, true
}

// modValid passes a valid document through untouched and rejects anything
// else.
func modValid(json, _ string) (string, bool) {
	if !Valid(json) {
		return "", false
	}
	return json, true
}

// modUgly strips insignificant whitespace.
func modUgly(json, _ string) (string, bool) {
	return pretty.Ugly(json), true
}

// modPretty reformats with indentation. The argument object may override
// indent, sortKeys, width, and prefix; the default is two-space indentation
// with no line-width collapsing.
func modPretty(json, arg string) (string, bool) {
	opts := &pretty.Options{Indent: "  "}
	if arg != "" {
		if v := Get(arg, "indent"); v.Exists() {
			opts.Indent = v.String()
		}
		if v := Get(arg, "sortKeys"); v.Exists() {
			opts.SortKeys = v.Bool()
		}
		if v := Get(arg, "width"); v.Exists() {
			opts.Width = int(v.Int())
		}
		if v := Get(arg, "prefix"); v.Exists() {
			opts.Prefix = v.String()
		}
	}
	return pretty.PrettyOptions(json, opts), true
}

// modReverse reverses the elements of an array or the members of an object.
// Any other value passes through unchanged.
func modReverse(json, _ string) (string, bool) {
	r := makeResult(json)
	switch r.Kind {
	case Array:
		elems := r.Array()
		buf := make([]byte, 0, len(json))
		buf = append(buf, '[')
		for i := len(elems) - 1; i >= 0; i-- {
			if i < len(elems)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, elems[i].Raw...)
		}
		buf = append(buf, ']')
		return string(buf), true
	case Object:
		type member struct{ key, val string }
		var members []member
		for i := 1; ; {
			elem, next, ok := nextElement(json, i, true)
			if !ok {
				break
			}
			members = append(members, member{
				key: json[elem.keyStart:elem.keyEnd],
				val: json[elem.valStart:elem.valEnd],
			})
			i = next
		}
		buf := make([]byte, 0, len(json))
		buf = append(buf, '{')
		for i := len(members) - 1; i >= 0; i-- {
			if i < len(members)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, members[i].key...)
			buf = append(buf, ':')
			buf = append(buf, members[i].val...)
		}
		buf = append(buf, '}')
		return string(buf), true
	default:
		return json, true
	}
}

// modFlatten splices array elements that are themselves arrays one level
// into their parent. With {"deep":true} the splice recurses.
func modFlatten(json, arg string) (string, bool) {
	r := makeResult(json)
	if r.Kind != Array {
		return json, true
	}
	deep := arg != "" && Get(arg, "deep").Bool()
	buf := make([]byte, 0, len(json))
	buf = append(buf, '[')
	n := 0
	buf = appendFlattened(buf, r, deep, &n)
	buf = append(buf, ']')
	return string(buf), true
}

func appendFlattened(buf []byte, arr Result, deep bool, n *int) []byte {
	for _, elem := range arr.Array() {
		if elem.Kind == Array {
			if deep {
				buf = appendFlattened(buf, elem, true, n)
				continue
			}
			for _, inner := range elem.Array() {
				if *n > 0 {
					buf = append(buf, ',')
				}
				buf = append(buf, inner.Raw...)
				*n++
			}
			continue
		}
		if *n > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, elem.Raw...)
		*n++
	}
	return buf
}

// modJoin merges an array of objects into a single object. By default a
// repeated key keeps its first position and its last value; with
// {"preserve":true} every member is kept, duplicates included.
func modJoin(json, arg string) (string, bool) {
	r := makeResult(json)
	if r.Kind != Array {
		return json, true
	}
	preserve := arg != "" && Get(arg, "preserve").Bool()
	buf := make([]byte, 0, len(json))
	buf = append(buf, '{')
	if preserve {
		n := 0
		for _, elem := range r.Array() {
			if elem.Kind != Object {
				continue
			}
			for i := 1; ; {
				m, next, ok := nextElement(elem.Raw, i, true)
				if !ok {
					break
				}
				if n > 0 {
					buf = append(buf, ',')
				}
				buf = append(buf, elem.Raw[m.keyStart:m.keyEnd]...)
				buf = append(buf, ':')
				buf = append(buf, elem.Raw[m.valStart:m.valEnd]...)
				n++
				i = next
			}
		}
		buf = append(buf, '}')
		return string(buf), true
	}
	var order []string
	members := make(map[string]struct{ key, val string })
	for _, elem := range r.Array() {
		if elem.Kind != Object {
			continue
		}
		for i := 1; ; {
			m, next, ok := nextElement(elem.Raw, i, true)
			if !ok {
				break
			}
			keyRaw := elem.Raw[m.keyStart:m.keyEnd]
			name := keyRaw[1 : len(keyRaw)-1]
			if m.keyEscaped {
				name = unescape(name)
			}
			if _, seen := members[name]; !seen {
				order = append(order, name)
				members[name] = struct{ key, val string }{keyRaw, elem.Raw[m.valStart:m.valEnd]}
			} else {
				prev := members[name]
				prev.val = elem.Raw[m.valStart:m.valEnd]
				members[name] = prev
			}
			i = next
		}
	}
	for i, name := range order {
		if i > 0 {
			buf = append(buf, ',')
		}
		m := members[name]
		buf = append(buf, m.key...)
		buf = append(buf, ':')
		buf = append(buf, m.val...)
	}
	buf = append(buf, '}')
	return string(buf), true
}

// modUpper maps a string value to upper case using Unicode case mapping.
// Non-strings pass through unchanged.
func modUpper(json, _ string) (string, bool) {
	return recase(json, cases.Upper(language.Und))
}

// modLower maps a string value to lower case using Unicode case mapping.
// Non-strings pass through unchanged.
func modLower(json, _ string) (string, bool) {
	return recase(json, cases.Lower(language.Und))
}

func recase(json string, caser cases.Caser) (string, bool) {
	r := makeResult(json)
	if r.Kind != String {
		return json, true
	}
	return string(appendJSONString(nil, caser.String(r.Str))), true
}
