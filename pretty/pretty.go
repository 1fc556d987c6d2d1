// Package pretty provides fast methods for formatting JSON text in either an
// indented or compact form. It operates purely on bytes: no tree is built, no
// numbers are reparsed, and invalid trailing content is passed through rather
// than rejected.
package pretty

import (
	"sort"
	"strings"
)

// Options controls how [PrettyOptions] formats a document.
type Options struct {
	// Width is an approximate column beyond which arrays and objects are
	// expanded onto multiple lines. Containers that fit within Width are
	// emitted on a single compact line. Zero means no single-line collapsing:
	// every container is expanded. Width is ignored when SortKeys is set, and
	// every container is then expanded.
	Width int
	// Prefix is prepended to every line.
	Prefix string
	// Indent is the nested indentation string. Defaults to two spaces.
	Indent string
	// SortKeys orders object members lexicographically by key.
	SortKeys bool
}

// DefaultOptions are used by [Pretty].
var DefaultOptions = &Options{Indent: "  "}

// Pretty converts json into a human readable, indented form using
// [DefaultOptions]. The output round-trips: Ugly(Pretty(json)) == Ugly(json)
// for any valid document.
func Pretty(json string) string {
	return PrettyOptions(json, nil)
}

// PrettyOptions is like [Pretty] but with customized options. A nil opts uses
// [DefaultOptions].
func PrettyOptions(json string, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	buf := make([]byte, 0, len(json)+len(json)/4)
	buf = append(buf, opts.Prefix...)
	buf, i := appendAny(buf, json, 0, 0, indent, opts)
	// Preserve any bytes the scanner could not make sense of.
	if i < len(json) {
		rest := strings.TrimSpace(json[i:])
		if rest != "" {
			buf = append(buf, rest...)
		}
	}
	return string(buf)
}

// Ugly removes insignificant whitespace from json. Bytes inside strings are
// untouched; everything else outside of strings that is a space, tab, or line
// break is dropped.
func Ugly(json string) string {
	buf := make([]byte, 0, len(json))
	for i := 0; i < len(json); i++ {
		c := json[i]
		if c <= ' ' {
			continue
		}
		if c == '"' {
			end, _ := skipString(json, i)
			buf = append(buf, json[i:end]...)
			i = end - 1
			continue
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// appendAny formats one value starting at the first non-space byte at or
// after i. It returns the extended buffer and the index one past the value.
func appendAny(buf []byte, json string, i, depth int, indent string, opts *Options) ([]byte, int) {
	i = skipSpace(json, i)
	if i >= len(json) {
		return buf, i
	}
	switch json[i] {
	case '{':
		return appendObject(buf, json, i, depth, indent, opts)
	case '[':
		return appendArray(buf, json, i, depth, indent, opts)
	case '"':
		end, _ := skipString(json, i)
		return append(buf, json[i:end]...), end
	default:
		end := skipScalar(json, i)
		return append(buf, json[i:end]...), end
	}
}

// fitsInline reports whether the container starting at i can be emitted on a
// single line within opts.Width, and returns its compact rendering.
func fitsInline(json string, i, depth int, indent string, opts *Options) (string, bool) {
	if opts.Width <= 0 || opts.SortKeys {
		return "", false
	}
	end := skipValue(json, i)
	compact := Ugly(json[i:end])
	if len(opts.Prefix)+depth*len(indent)+len(compact) <= opts.Width {
		return compact, true
	}
	return "", false
}

func appendNewline(buf []byte, depth int, indent string, opts *Options) []byte {
	buf = append(buf, '\n')
	buf = append(buf, opts.Prefix...)
	for range depth {
		buf = append(buf, indent...)
	}
	return buf
}

type member struct {
	key string // raw key including quotes
	val string // raw value range
}

func appendObject(buf []byte, json string, i, depth int, indent string, opts *Options) ([]byte, int) {
	if compact, ok := fitsInline(json, i, depth, indent, opts); ok {
		return append(buf, compact...), skipValue(json, i)
	}
	i++ // consume {
	i = skipSpace(json, i)
	if i < len(json) && json[i] == '}' {
		return append(buf, '{', '}'), i + 1
	}
	if opts.SortKeys {
		return appendSortedObject(buf, json, i, depth, indent, opts)
	}
	buf = append(buf, '{')
	first := true
	for i < len(json) && json[i] != '}' {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = appendNewline(buf, depth+1, indent, opts)
		keyEnd, _ := skipString(json, i)
		buf = append(buf, json[i:keyEnd]...)
		buf = append(buf, ':', ' ')
		i = skipSpace(json, keyEnd)
		if i < len(json) && json[i] == ':' {
			i++
		}
		buf, i = appendAny(buf, json, i, depth+1, indent, opts)
		i = skipSpace(json, i)
		if i < len(json) && json[i] == ',' {
			i = skipSpace(json, i+1)
		}
	}
	buf = appendNewline(buf, depth, indent, opts)
	buf = append(buf, '}')
	if i < len(json) {
		i++ // consume }
	}
	return buf, i
}

func appendSortedObject(buf []byte, json string, i, depth int, indent string, opts *Options) ([]byte, int) {
	var members []member
	for i < len(json) && json[i] != '}' {
		keyEnd, _ := skipString(json, i)
		key := json[i:keyEnd]
		i = skipSpace(json, keyEnd)
		if i < len(json) && json[i] == ':' {
			i++
		}
		i = skipSpace(json, i)
		valEnd := skipValue(json, i)
		members = append(members, member{key: key, val: json[i:valEnd]})
		i = skipSpace(json, valEnd)
		if i < len(json) && json[i] == ',' {
			i = skipSpace(json, i+1)
		}
	}
	sort.SliceStable(members, func(a, b int) bool {
		return members[a].key < members[b].key
	})
	buf = append(buf, '{')
	for n, m := range members {
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = appendNewline(buf, depth+1, indent, opts)
		buf = append(buf, m.key...)
		buf = append(buf, ':', ' ')
		buf, _ = appendAny(buf, m.val, 0, depth+1, indent, opts)
	}
	buf = appendNewline(buf, depth, indent, opts)
	buf = append(buf, '}')
	if i < len(json) {
		i++ // consume }
	}
	return buf, i
}

func appendArray(buf []byte, json string, i, depth int, indent string, opts *Options) ([]byte, int) {
	if compact, ok := fitsInline(json, i, depth, indent, opts); ok {
		return append(buf, compact...), skipValue(json, i)
	}
	i++ // consume [
	i = skipSpace(json, i)
	if i < len(json) && json[i] == ']' {
		return append(buf, '[', ']'), i + 1
	}
	buf = append(buf, '[')
	first := true
	for i < len(json) && json[i] != ']' {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = appendNewline(buf, depth+1, indent, opts)
		buf, i = appendAny(buf, json, i, depth+1, indent, opts)
		i = skipSpace(json, i)
		if i < len(json) && json[i] == ',' {
			i = skipSpace(json, i+1)
		}
	}
	buf = appendNewline(buf, depth, indent, opts)
	buf = append(buf, ']')
	if i < len(json) {
		i++ // consume ]
	}
	return buf, i
}

func skipSpace(json string, i int) int {
	for i < len(json) && json[i] <= ' ' {
		i++
	}
	return i
}

// skipString returns the index one past the closing quote, and whether the
// string contained escapes. The opening quote is at i. An unterminated string
// consumes the remainder of the input.
func skipString(json string, i int) (int, bool) {
	escaped := false
	for i = i + 1; i < len(json); i++ {
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

// skipScalar consumes a number or literal starting at i.
func skipScalar(json string, i int) int {
	for ; i < len(json); i++ {
		switch json[i] {
		case ' ', '\t', '\n', '\r', ',', ']', '}', ':':
			return i
		}
	}
	return i
}

// skipValue consumes exactly one value starting at the first non-space byte
// at or after i and returns the index one past it.
func skipValue(json string, i int) int {
	i = skipSpace(json, i)
	if i >= len(json) {
		return i
	}
	switch json[i] {
	case '{', '[':
		open, close := json[i], byte('}')
		if open == '[' {
			close = ']'
		}
		depth := 0
		for ; i < len(json); i++ {
			switch json[i] {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return i + 1
				}
			case '"':
				end, _ := skipString(json, i)
				i = end - 1
			}
		}
		return i
	case '"':
		end, _ := skipString(json, i)
		return end
	default:
		return skipScalar(json, i)
	}
}
