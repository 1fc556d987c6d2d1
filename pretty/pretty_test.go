package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUgly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "object", in: "{\n  \"a\": 1,\n  \"b\": [1, 2]\n}", want: `{"a":1,"b":[1,2]}`},
		{name: "string whitespace kept", in: `{"a": "x  y"}`, want: `{"a":"x  y"}`},
		{name: "escaped quote", in: `{"a": "he said \" hi"}`, want: `{"a":"he said \" hi"}`},
		{name: "already compact", in: `{"a":1}`, want: `{"a":1}`},
		{name: "scalar", in: "  42  ", want: "42"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ugly(tt.in))
		})
	}
}

func TestPretty(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		got := Pretty(`{"name":{"first":"Tom"},"age":37}`)
		want := "{\n" +
			"  \"name\": {\n" +
			"    \"first\": \"Tom\"\n" +
			"  },\n" +
			"  \"age\": 37\n" +
			"}"
		assert.Equal(t, want, got)
	})

	t.Run("array", func(t *testing.T) {
		got := Pretty(`[1,[2,3]]`)
		want := "[\n" +
			"  1,\n" +
			"  [\n" +
			"    2,\n" +
			"    3\n" +
			"  ]\n" +
			"]"
		assert.Equal(t, want, got)
	})

	t.Run("empty containers stay closed", func(t *testing.T) {
		assert.Equal(t, "{}", Pretty("{}"))
		assert.Equal(t, "[]", Pretty("[]"))
		assert.Equal(t, "{\n  \"a\": {}\n}", Pretty(`{"a":{}}`))
	})

	t.Run("scalar passthrough", func(t *testing.T) {
		assert.Equal(t, "42", Pretty("42"))
		assert.Equal(t, `"x"`, Pretty(`"x"`))
	})
}

func TestPrettyOptions(t *testing.T) {
	t.Run("custom indent", func(t *testing.T) {
		got := PrettyOptions(`{"a":1}`, &Options{Indent: "\t"})
		assert.Equal(t, "{\n\t\"a\": 1\n}", got)
	})

	t.Run("prefix", func(t *testing.T) {
		got := PrettyOptions(`{"a":1}`, &Options{Indent: "  ", Prefix: "# "})
		assert.Equal(t, "# {\n#   \"a\": 1\n# }", got)
	})

	t.Run("sort keys", func(t *testing.T) {
		got := PrettyOptions(`{"b":2,"a":{"z":1,"y":0}}`, &Options{Indent: "  ", SortKeys: true})
		want := "{\n" +
			"  \"a\": {\n" +
			"    \"y\": 0,\n" +
			"    \"z\": 1\n" +
			"  },\n" +
			"  \"b\": 2\n" +
			"}"
		assert.Equal(t, want, got)
	})

	t.Run("width collapses small containers", func(t *testing.T) {
		got := PrettyOptions(`{"a":[1,2,3],"b":{"c":1}}`, &Options{Indent: "  ", Width: 80})
		assert.Equal(t, `{"a":[1,2,3],"b":{"c":1}}`, got)
	})

	t.Run("width expands large containers", func(t *testing.T) {
		doc := `{"a":"0123456789012345678901234567890123456789"}`
		got := PrettyOptions(doc, &Options{Indent: "  ", Width: 10})
		assert.Contains(t, got, "\n")
	})

	t.Run("nil options match Pretty", func(t *testing.T) {
		doc := `{"a":[1,2],"b":"x"}`
		assert.Equal(t, Pretty(doc), PrettyOptions(doc, nil))
	})
}

// TestRoundTrip verifies the reformat idempotence contract:
// Ugly(Pretty(doc)) == Ugly(doc).
func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[1,2,{"c":"x y"}],"d":null}`,
		`[]`,
		`{}`,
		`[[[[1]]]]`,
		`{"s":"with \"escapes\" and \\ slashes","n":-1.5e-3}`,
		`{"mixed": [true, false, null, 0, "", {}, []]}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			require.Equal(t, Ugly(doc), Ugly(Pretty(doc)))
			// Pretty output is stable: formatting twice changes nothing.
			assert.Equal(t, Pretty(doc), Pretty(Pretty(doc)))
		})
	}
}

func TestPrettyMalformedInput(t *testing.T) {
	// Garbage never panics; unscannable bytes are passed through.
	inputs := []string{"{", "[1,", `{"a":`, "tru", "", "]"}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_ = Pretty(in)
			_ = Ugly(in)
		}, "input %q", in)
	}
}
