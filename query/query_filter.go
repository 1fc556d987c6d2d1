package query

// queryMatches reports whether the value a query resolved from an element
// satisfies the comparison. The value may be not-present: only the coercing
// boolean operator matches in that case; every other operator requires a
// resolved value.
func queryMatches(seg QuerySegment, v Result) bool {
	if seg.Op == "==~" {
		// The only coercing comparison. The right side must itself be a
		// boolean literal.
		switch seg.lit.kind {
		case True:
			return coerceBool(v)
		case False:
			return !coerceBool(v)
		default:
			return false
		}
	}
	if !v.Exists() {
		return false
	}
	if seg.Op == "" {
		// Bare query: an existence test.
		return true
	}
	lit := seg.lit
	switch seg.Op {
	case "=", "==":
		return queryEquals(v, lit)
	case "!=":
		return !queryEquals(v, lit)
	case "<", "<=", ">", ">=":
		return queryOrdered(seg.Op, v, lit)
	case "%":
		return v.Kind == String && lit.kind == String && matchGlob(v.Str, lit.str)
	case "!%":
		return v.Kind == String && lit.kind == String && !matchGlob(v.Str, lit.str)
	default:
		return false
	}
}

// queryEquals compares a value against a literal without coercion: a type
// mismatch is simply false.
func queryEquals(v Result, lit queryLiteral) bool {
	switch lit.kind {
	case String:
		return v.Kind == String && v.Str == lit.str
	case Number:
		if v.Kind != Number {
			return false
		}
		// Identical text is equal regardless of float64 precision.
		if v.Raw == lit.raw {
			return true
		}
		return v.Num == lit.num
	case True:
		return v.Kind == True
	case False:
		return v.Kind == False
	case Null:
		return v.Kind == Null
	default:
		return false
	}
}

// queryOrdered compares numbers numerically and strings lexicographically
// after decoding. Mixed types are false.
func queryOrdered(op string, v Result, lit queryLiteral) bool {
	if v.Kind == Number && lit.kind == Number {
		switch op {
		case "<":
			return v.Num < lit.num
		case "<=":
			return v.Num <= lit.num
		case ">":
			return v.Num > lit.num
		case ">=":
			return v.Num >= lit.num
		}
		return false
	}
	if v.Kind == String && lit.kind == String {
		switch op {
		case "<":
			return v.Str < lit.str
		case "<=":
			return v.Str <= lit.str
		case ">":
			return v.Str > lit.str
		case ">=":
			return v.Str >= lit.str
		}
		return false
	}
	return false
}

// coerceBool maps any value onto a boolean for the "==~" operator:
// true is true; false, null, and not-present are false; a number is its
// non-zeroness; the strings "true" and "1" are true and every other string
// is false; arrays and objects are false.
func coerceBool(v Result) bool {
	switch v.Kind {
	case True:
		return true
	case Number:
		return v.Num != 0
	case String:
		return v.Str == "true" || v.Str == "1"
	default:
		return false
	}
}
