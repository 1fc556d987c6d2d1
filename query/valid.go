package query

// maxValidDepth bounds container nesting during strict validation. Documents
// nested deeper than this are reported invalid rather than risking the
// stack.
const maxValidDepth = 10000

// Valid reports whether json is a single well-formed JSON document. Unlike
// the scanner, which is lenient, validation is strict: trailing commas,
// malformed numbers, bad escapes, and trailing content all fail.
func Valid(json string) bool {
	i, ok := validValue(json, 0, 0)
	if !ok {
		return false
	}
	return skipSpace(json, i) == len(json)
}

// ValidBytes is like [Valid] for a byte slice document.
func ValidBytes(json []byte) bool {
	return Valid(string(json))
}

func validValue(json string, i, depth int) (int, bool) {
	if depth > maxValidDepth {
		return i, false
	}
	i = skipSpace(json, i)
	if i >= len(json) {
		return i, false
	}
	switch json[i] {
	case '{':
		return validObject(json, i+1, depth+1)
	case '[':
		return validArray(json, i+1, depth+1)
	case '"':
		return validString(json, i)
	case 't':
		return validLiteral(json, i, "true")
	case 'f':
		return validLiteral(json, i, "false")
	case 'n':
		return validLiteral(json, i, "null")
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return validNumber(json, i)
	default:
		return i, false
	}
}

func validObject(json string, i, depth int) (int, bool) {
	i = skipSpace(json, i)
	if i < len(json) && json[i] == '}' {
		return i + 1, true
	}
	for {
		i = skipSpace(json, i)
		if i >= len(json) || json[i] != '"' {
			return i, false
		}
		var ok bool
		i, ok = validString(json, i)
		if !ok {
			return i, false
		}
		i = skipSpace(json, i)
		if i >= len(json) || json[i] != ':' {
			return i, false
		}
		i, ok = validValue(json, i+1, depth)
		if !ok {
			return i, false
		}
		i = skipSpace(json, i)
		if i >= len(json) {
			return i, false
		}
		switch json[i] {
		case ',':
			i++
		case '}':
			return i + 1, true
		default:
			return i, false
		}
	}
}

func validArray(json string, i, depth int) (int, bool) {
	i = skipSpace(json, i)
	if i < len(json) && json[i] == ']' {
		return i + 1, true
	}
	for {
		var ok bool
		i, ok = validValue(json, i, depth)
		if !ok {
			return i, false
		}
		i = skipSpace(json, i)
		if i >= len(json) {
			return i, false
		}
		switch json[i] {
		case ',':
			i++
		case ']':
			return i + 1, true
		default:
			return i, false
		}
	}
}

func validString(json string, i int) (int, bool) {
	for i++; i < len(json); i++ {
		c := json[i]
		switch {
		case c == '"':
			return i + 1, true
		case c == '\\':
			i++
			if i >= len(json) {
				return i, false
			}
			switch json[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if i+4 >= len(json) {
					return i, false
				}
				for j := 1; j <= 4; j++ {
					if !isHex(json[i+j]) {
						return i, false
					}
				}
				i += 4
			default:
				return i, false
			}
		case c < 0x20:
			return i, false
		}
	}
	return i, false
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func validNumber(json string, i int) (int, bool) {
	if json[i] == '-' {
		i++
	}
	// Integer part: a single zero or a non-zero digit run.
	switch {
	case i < len(json) && json[i] == '0':
		i++
	case i < len(json) && json[i] >= '1' && json[i] <= '9':
		for i < len(json) && json[i] >= '0' && json[i] <= '9' {
			i++
		}
	default:
		return i, false
	}
	if i < len(json) && json[i] == '.' {
		i++
		if i >= len(json) || json[i] < '0' || json[i] > '9' {
			return i, false
		}
		for i < len(json) && json[i] >= '0' && json[i] <= '9' {
			i++
		}
	}
	if i < len(json) && (json[i] == 'e' || json[i] == 'E') {
		i++
		if i < len(json) && (json[i] == '+' || json[i] == '-') {
			i++
		}
		if i >= len(json) || json[i] < '0' || json[i] > '9' {
			return i, false
		}
		for i < len(json) && json[i] >= '0' && json[i] <= '9' {
			i++
		}
	}
	return i, true
}

func validLiteral(json string, i int, want string) (int, bool) {
	if len(json)-i < len(want) || json[i:i+len(want)] != want {
		return i, false
	}
	return i + len(want), true
}
