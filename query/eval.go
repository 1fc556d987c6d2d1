package query

import "strconv"

// Get evaluates a path expression against a JSON document and returns the
// matching value as a view into json. A path that does not resolve — because
// nothing matches, the document is malformed, or the path itself cannot be
// parsed — returns the not-present result; callers detect this with
// [Result.Exists]. Get never panics, whatever the input.
func Get(json, path string) Result {
	p, err := ParsePath(path)
	if err != nil {
		return Result{}
	}
	return p.Get(json)
}

// GetBytes is like [Get] for a byte slice document.
func GetBytes(json []byte, path string) Result {
	return Get(string(json), path)
}

// Parse returns the root descriptor of a document: the first value in json,
// unevaluated. Use [Result.Get] to query it further.
func Parse(json string) Result {
	start, end, ok := skipValue(json, 0)
	if !ok {
		return Result{}
	}
	res := makeResult(json[start:end])
	res.Index = start
	return res
}

// ParseBytes is like [Parse] for a byte slice document.
func ParseBytes(json []byte) Result {
	return Parse(string(json))
}

// Get evaluates the parsed path against a document.
func (p *Path) Get(json string) Result {
	root := Parse(json)
	if p.JSONLines {
		root = joinLines(json)
	}
	return evalSegments(root, p.Segments)
}

// evalSegments consumes segments left to right, threading a current value.
// Each segment is a pure function from the current value to the next one; a
// not-present current value short-circuits everything that follows.
func evalSegments(cur Result, segs []Segment) Result {
	for si := 0; si < len(segs); si++ {
		if !cur.Exists() {
			return Result{}
		}
		switch seg := segs[si].(type) {
		case PipeSegment:
			// The left side is already materialised in cur; evaluation simply
			// continues with cur as the new root.
		case KeySegment:
			cur = getKey(cur, seg.Name, seg.Escaped)
		case WildcardSegment:
			cur = getWildcard(cur, seg.Pattern)
		case IndexSegment:
			switch cur.Kind {
			case Array:
				cur = getIndex(cur, seg.Index)
			case Object:
				cur = getKey(cur, seg.Name, false)
			default:
				return Result{}
			}
		case ArrayLenSegment:
			if cur.Kind != Array {
				return Result{}
			}
			n := countElements(cur.Raw)
			cur = Result{Kind: Number, Raw: strconv.Itoa(n), Num: float64(n), Index: -1}
		case ArrayEachSegment:
			if cur.Kind != Array {
				return Result{}
			}
			tail := segs[si+1 : nextPipe(segs, si+1)]
			cur = collectEach(cur.Array(), tail)
			si += len(tail)
		case QuerySegment:
			if cur.Kind != Array {
				return Result{}
			}
			matches := evalQuery(cur, seg)
			if !seg.All {
				if len(matches) == 0 {
					return Result{}
				}
				cur = matches[0]
				break
			}
			tail := segs[si+1 : nextPipe(segs, si+1)]
			cur = collectEach(matches, tail)
			si += len(tail)
		case MultipathSegment:
			cur = evalMultipath(cur, seg)
		case ModifierSegment:
			cur = applyModifier(cur, seg)
		default:
			return Result{}
		}
	}
	return cur
}

// nextPipe returns the index of the next PipeSegment at or after from, or
// len(segs).
func nextPipe(segs []Segment, from int) int {
	for ; from < len(segs); from++ {
		if _, ok := segs[from].(PipeSegment); ok {
			return from
		}
	}
	return from
}

// getKey selects an object member by name. The first matching member wins.
func getKey(cur Result, name string, _ bool) Result {
	if cur.Kind != Object {
		return Result{}
	}
	for i := 1; ; {
		elem, next, ok := nextElement(cur.Raw, i, true)
		if !ok {
			return Result{}
		}
		key := cur.Raw[elem.keyStart+1 : elem.keyEnd-1]
		if elem.keyEscaped {
			key = unescape(key)
		}
		if key == name {
			return cur.subResult(elem.valStart, elem.valEnd)
		}
		i = next
	}
}

// getWildcard selects the first object member whose decoded name matches the
// glob pattern.
func getWildcard(cur Result, pattern string) Result {
	if cur.Kind != Object {
		return Result{}
	}
	for i := 1; ; {
		elem, next, ok := nextElement(cur.Raw, i, true)
		if !ok {
			return Result{}
		}
		key := cur.Raw[elem.keyStart+1 : elem.keyEnd-1]
		if elem.keyEscaped {
			key = unescape(key)
		}
		if matchGlob(key, pattern) {
			return cur.subResult(elem.valStart, elem.valEnd)
		}
		i = next
	}
}

// getIndex selects the nth element of an array.
func getIndex(cur Result, n int) Result {
	count := 0
	for i := 1; ; {
		elem, next, ok := nextElement(cur.Raw, i, false)
		if !ok {
			return Result{}
		}
		if count == n {
			return cur.subResult(elem.valStart, elem.valEnd)
		}
		count++
		i = next
	}
}

// collectEach applies tail to every element and gathers the results that
// exist into a new array. An empty tail collects the elements themselves.
func collectEach(elems []Result, tail []Segment) Result {
	buf := make([]byte, 0, 64)
	buf = append(buf, '[')
	n := 0
	for _, elem := range elems {
		r := elem
		if len(tail) > 0 {
			r = evalSegments(elem, tail)
		}
		if !r.Exists() {
			continue
		}
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, r.Raw...)
		n++
	}
	buf = append(buf, ']')
	return Result{Kind: Array, Raw: string(buf), Index: -1}
}

// evalQuery returns the elements of the current array that satisfy the query.
func evalQuery(cur Result, seg QuerySegment) []Result {
	var matches []Result
	for _, elem := range cur.Array() {
		probe := elem
		if seg.Path != "" {
			probe = Get(elem.Raw, seg.Path)
		}
		if queryMatches(seg, probe) {
			matches = append(matches, elem)
			if !seg.All {
				return matches
			}
		}
	}
	return matches
}

// evalMultipath evaluates every part against the same current value and
// assembles a new array or object.
func evalMultipath(cur Result, seg MultipathSegment) Result {
	buf := make([]byte, 0, 64)
	open, close := byte('['), byte(']')
	if seg.Object {
		open, close = '{', '}'
	}
	buf = append(buf, open)
	n := 0
	for _, part := range seg.Parts {
		r := part.Path.Get(cur.Raw)
		if !r.Exists() {
			continue
		}
		if n > 0 {
			buf = append(buf, ',')
		}
		if seg.Object {
			buf = appendJSONString(buf, part.Name)
			buf = append(buf, ':')
		}
		buf = append(buf, r.Raw...)
		n++
	}
	buf = append(buf, close)
	kind := Array
	if seg.Object {
		kind = Object
	}
	return Result{Kind: kind, Raw: string(buf), Index: -1}
}

// joinLines synthesises the JSON Lines view of a document: an array whose
// elements are the whitespace-separated top-level values of the input.
func joinLines(json string) Result {
	buf := make([]byte, 0, len(json)+16)
	buf = append(buf, '[')
	n := 0
	for i := 0; i < len(json); {
		start, end, ok := skipValue(json, i)
		if !ok || end == start {
			break
		}
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, json[start:end]...)
		n++
		i = end
	}
	buf = append(buf, ']')
	return Result{Kind: Array, Raw: string(buf), Index: -1}
}
