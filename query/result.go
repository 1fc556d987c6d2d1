package query

import (
	"strconv"
	"strings"
)

// Kind is the JSON kind of a [Result].
type Kind int

const (
	// NotPresent means the path did not resolve to a value.
	NotPresent Kind = iota
	// Null is the JSON null literal.
	Null
	// False is the JSON false literal.
	False
	// True is the JSON true literal.
	True
	// Number is a JSON number.
	Number
	// String is a JSON string.
	String
	// Array is a JSON array.
	Array
	// Object is a JSON object.
	Object
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case NotPresent:
		return "NotPresent"
	case Null:
		return "Null"
	case False:
		return "False"
	case True:
		return "True"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the outcome of evaluating a path against a document: a kind plus
// the raw byte range of the value.
//
// A Result normally borrows the document it was queried from: Raw is a
// substring of the caller's input and Index is its byte offset, so
// json[r.Index:r.Index+len(r.Raw)] == r.Raw. Results whose text was rewritten
// by a modifier, and results produced by multipaths, element collection, or
// JSON Lines evaluation own their text instead; for those Index is -1. A
// modifier that leaves its input unchanged returns the borrowed result.
//
// The zero Result is the not-present result.
type Result struct {
	// Kind is the JSON kind of the value.
	Kind Kind
	// Raw is the raw JSON text of the value. For String this includes the
	// surrounding quotes.
	Raw string
	// Str is the decoded form of a String value.
	Str string
	// Num is the numeric form of a Number value.
	Num float64
	// Index is the byte offset of Raw within the queried document, or -1 when
	// the result owns its text.
	Index int
}

// Exists reports whether the path resolved to a value.
func (r Result) Exists() bool {
	return r.Kind != NotPresent
}

// JSON returns the raw JSON text of the value.
func (r Result) JSON() string {
	return r.Raw
}

// String returns a string form of the value: the decoded text for strings,
// the raw text for everything else, and "" when not present.
func (r Result) String() string {
	if r.Kind == String {
		return r.Str
	}
	return r.Raw
}

// Bool returns the value as a bool. Strings are matched against "true"
// case-insensitively, numbers are true when non-zero.
func (r Result) Bool() bool {
	switch r.Kind {
	case True:
		return true
	case Number:
		return r.Num != 0
	case String:
		b, _ := strconv.ParseBool(strings.ToLower(r.Str))
		return b
	default:
		return false
	}
}

// Int returns the value as an int64. Integer text is parsed directly so that
// values beyond the float64-safe range stay exact.
func (r Result) Int() int64 {
	switch r.Kind {
	case True:
		return 1
	case Number:
		if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return n
		}
		return int64(r.Num)
	case String:
		n, _ := strconv.ParseInt(r.Str, 10, 64)
		return n
	default:
		return 0
	}
}

// Uint returns the value as a uint64. Integer text is parsed directly so that
// values beyond the float64-safe range stay exact.
func (r Result) Uint() uint64 {
	switch r.Kind {
	case True:
		return 1
	case Number:
		if n, err := strconv.ParseUint(r.Raw, 10, 64); err == nil {
			return n
		}
		if r.Num < 0 {
			return 0
		}
		return uint64(r.Num)
	case String:
		n, _ := strconv.ParseUint(r.Str, 10, 64)
		return n
	default:
		return 0
	}
}

// Float returns the value as a float64.
func (r Result) Float() float64 {
	switch r.Kind {
	case True:
		return 1
	case Number:
		return r.Num
	case String:
		n, _ := strconv.ParseFloat(r.Str, 64)
		return n
	default:
		return 0
	}
}

// Value returns the value decoded into Go types: nil, bool, float64, string,
// []any, or map[string]any.
func (r Result) Value() any {
	switch r.Kind {
	case Null:
		return nil
	case False:
		return false
	case True:
		return true
	case Number:
		return r.Num
	case String:
		return r.Str
	case Array:
		elems := r.Array()
		out := make([]any, 0, len(elems))
		for _, e := range elems {
			out = append(out, e.Value())
		}
		return out
	case Object:
		out := make(map[string]any)
		r.Each(func(key, value Result) bool {
			out[key.Str] = value.Value()
			return true
		})
		return out
	default:
		return nil
	}
}

// Get evaluates a path against this result's value. When both this result and
// the child borrow their document, the child's Index is adjusted to be an
// offset into the originally queried document.
func (r Result) Get(path string) Result {
	child := Get(r.Raw, path)
	if child.Exists() && child.Index >= 0 && r.Index >= 0 {
		child.Index += r.Index
	}
	return child
}

// Each iterates the value. For objects, fn receives each member's key and
// value; for arrays the key is the element index as a Number result. A
// primitive value yields a single call with an empty key. Returning false
// from fn stops the iteration.
func (r Result) Each(fn func(key, value Result) bool) {
	switch r.Kind {
	case NotPresent:
		return
	case Object, Array:
		inObject := r.Kind == Object
		n := 0
		for i := 1; ; {
			elem, next, ok := nextElement(r.Raw, i, inObject)
			if !ok {
				return
			}
			var key Result
			if inObject {
				key = r.subResult(elem.keyStart, elem.keyEnd)
			} else {
				key = Result{Kind: Number, Raw: strconv.Itoa(n), Num: float64(n), Index: -1}
				n++
			}
			if !fn(key, r.subResult(elem.valStart, elem.valEnd)) {
				return
			}
			i = next
		}
	default:
		fn(Result{}, r)
	}
}

// Array returns the elements of an array value. A primitive value is
// returned as a single-element slice, mirroring how a query over a scalar
// behaves; a not-present result yields nil.
func (r Result) Array() []Result {
	switch r.Kind {
	case NotPresent:
		return nil
	case Array:
		var out []Result
		for i := 1; ; {
			elem, next, ok := nextElement(r.Raw, i, false)
			if !ok {
				return out
			}
			out = append(out, r.subResult(elem.valStart, elem.valEnd))
			i = next
		}
	default:
		return []Result{r}
	}
}

// Map returns the members of an object value keyed by decoded member name.
// Non-objects yield an empty map.
func (r Result) Map() map[string]Result {
	out := make(map[string]Result)
	if r.Kind != Object {
		return out
	}
	r.Each(func(key, value Result) bool {
		out[key.Str] = value
		return true
	})
	return out
}

// subResult builds the Result for the byte range [start, end) of r.Raw,
// keeping offsets anchored to the original document when r borrows it.
func (r Result) subResult(start, end int) Result {
	res := makeResult(r.Raw[start:end])
	if r.Index >= 0 {
		res.Index = r.Index + start
	}
	return res
}

// makeResult classifies the raw text of exactly one value. The offset is -1;
// callers that know where the text came from overwrite it.
func makeResult(raw string) Result {
	if raw == "" {
		return Result{}
	}
	res := Result{Raw: raw, Index: -1}
	switch raw[0] {
	case '{':
		res.Kind = Object
	case '[':
		res.Kind = Array
	case '"':
		res.Kind = String
		res.Str = unquote(raw)
	case 't':
		res.Kind = True
	case 'f':
		res.Kind = False
	case 'n':
		res.Kind = Null
	default:
		res.Kind = Number
		res.Num, _ = strconv.ParseFloat(raw, 64)
	}
	return res
}
