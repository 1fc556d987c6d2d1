package query

// The scanner is a forward byte-level tokeniser. Every function below takes a
// cursor into the document and returns a new cursor; none of them allocate,
// none of them panic on malformed input. A scan that runs into bytes it cannot
// make sense of stops at the offending byte and reports a truncated range; the
// evaluator surfaces that as a not-present result.
//
// The scanner is deliberately lenient: it tolerates a dangling comma before a
// closing bracket and does not verify numbers or literals byte-for-byte. The
// strict checker lives in valid.go.

// skipSpace advances past spaces, tabs, carriage returns, and line feeds.
func skipSpace(json string, i int) int {
	for i < len(json) && json[i] <= ' ' {
		i++
	}
	return i
}

// skipString consumes a string whose opening quote is at i. It returns the
// index one past the closing quote and whether the string contained escapes.
// An unterminated string consumes the remainder of the input.
func skipString(json string, i int) (int, bool) {
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

// skipScalar consumes a number or literal starting at i, stopping at the
// first structural byte or whitespace.
func skipScalar(json string, i int) int {
	for ; i < len(json); i++ {
		switch json[i] {
		case ' ', '\t', '\n', '\r', ',', ']', '}', ':':
			return i
		}
	}
	return i
}

// skipContainer consumes an object or array whose opening bracket is at i,
// counting depth and honouring strings. It returns the index one past the
// matching close bracket, or len(json) if the container is unterminated.
func skipContainer(json string, i int) int {
	open := json[i]
	close := byte('}')
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
}

// skipValue consumes exactly one value starting at the first non-space byte
// at or after i. It returns the start of the value and the index one past it.
// ok is false when there is no value to consume.
func skipValue(json string, i int) (start, end int, ok bool) {
	i = skipSpace(json, i)
	if i >= len(json) {
		return i, i, false
	}
	switch json[i] {
	case '{', '[':
		return i, skipContainer(json, i), true
	case '"':
		e, _ := skipString(json, i)
		return i, e, true
	case '}', ']', ',', ':':
		return i, i, false
	default:
		return i, skipScalar(json, i), true
	}
}

// element is one step of container iteration: the raw key range (objects
// only) and the raw value range.
type element struct {
	keyStart, keyEnd int // zero width for array elements
	keyEscaped       bool
	valStart, valEnd int
}

// nextElement advances to the next member of a container. The caller passes
// the cursor just past the previous element (or just past the opening
// bracket for the first call). ok is false once the matching close bracket,
// the end of input, or an unscannable byte is reached.
func nextElement(json string, i int, inObject bool) (elem element, next int, ok bool) {
	i = skipSpace(json, i)
	if i < len(json) && json[i] == ',' {
		i = skipSpace(json, i+1)
	}
	if i >= len(json) || json[i] == '}' || json[i] == ']' {
		return element{}, i, false
	}
	if inObject {
		if json[i] != '"' {
			return element{}, i, false
		}
		keyEnd, escaped := skipString(json, i)
		elem.keyStart, elem.keyEnd, elem.keyEscaped = i, keyEnd, escaped
		i = skipSpace(json, keyEnd)
		if i >= len(json) || json[i] != ':' {
			return element{}, i, false
		}
		i++
	}
	start, end, vok := skipValue(json, i)
	if !vok {
		return element{}, i, false
	}
	elem.valStart, elem.valEnd = start, end
	return elem, end, true
}

// countElements returns the number of elements in the array whose raw text is
// json (including the surrounding brackets).
func countElements(json string) int {
	n := 0
	for i := 1; ; {
		_, next, ok := nextElement(json, i, false)
		if !ok {
			return n
		}
		n++
		i = next
	}
}
