package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipValue(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		start int
		want  string
		ok    bool
	}{
		{name: "object", json: ` {"a":1} tail`, want: `{"a":1}`, ok: true},
		{name: "nested object", json: `{"a":{"b":[1,2]}}`, want: `{"a":{"b":[1,2]}}`, ok: true},
		{name: "array", json: `[1,[2,3],"x"]`, want: `[1,[2,3],"x"]`, ok: true},
		{name: "string", json: `"he said \"hi\"" ,`, want: `"he said \"hi\""`, ok: true},
		{name: "string with bracket", json: `"}{][" 1`, want: `"}{]["`, ok: true},
		{name: "number", json: ` -12.5e3,`, want: `-12.5e3`, ok: true},
		{name: "true", json: `true]`, want: `true`, ok: true},
		{name: "null", json: ` null `, want: `null`, ok: true},
		{name: "empty", json: "   ", ok: false},
		{name: "close bracket", json: `]`, ok: false},
		{name: "unterminated object", json: `{"a":1`, want: `{"a":1`, ok: true},
		{name: "unterminated string", json: `"abc`, want: `"abc`, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := skipValue(tt.json, tt.start)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, tt.json[start:end])
			}
		})
	}
}

func TestNextElement(t *testing.T) {
	t.Run("object members", func(t *testing.T) {
		json := `{"a": 1, "b\"x": "two" , "c": [3]}`
		var keys, vals []string
		for i := 1; ; {
			elem, next, ok := nextElement(json, i, true)
			if !ok {
				break
			}
			keys = append(keys, json[elem.keyStart:elem.keyEnd])
			vals = append(vals, json[elem.valStart:elem.valEnd])
			i = next
		}
		assert.Equal(t, []string{`"a"`, `"b\"x"`, `"c"`}, keys)
		assert.Equal(t, []string{`1`, `"two"`, `[3]`}, vals)
	})

	t.Run("array elements", func(t *testing.T) {
		json := `[1, "two", {"three": 3}, [4]]`
		var vals []string
		for i := 1; ; {
			elem, next, ok := nextElement(json, i, false)
			if !ok {
				break
			}
			vals = append(vals, json[elem.valStart:elem.valEnd])
			i = next
		}
		assert.Equal(t, []string{`1`, `"two"`, `{"three": 3}`, `[4]`}, vals)
	})

	t.Run("dangling comma is skipped", func(t *testing.T) {
		json := `[1, 2, ]`
		assert.Equal(t, 2, countElements(json))
	})

	t.Run("malformed member stops iteration", func(t *testing.T) {
		json := `{"a" 1}`
		_, _, ok := nextElement(json, 1, true)
		assert.False(t, ok)
	})

	t.Run("empty containers", func(t *testing.T) {
		assert.Equal(t, 0, countElements(`[]`))
		assert.Equal(t, 0, countElements(`[   ]`))
	})
}

func TestScannerTruncation(t *testing.T) {
	// A scan over malformed input stops at the offending byte; the evaluator
	// surfaces the damage as not-present rather than an error.
	require.False(t, Get(`{"a": }`, "a").Exists())
	require.False(t, Get(`{"a"`, "a").Exists())
	assert.False(t, Get(`[1, 2`, "5").Exists())
	assert.True(t, Get(`[1, 2`, "1").Exists(), "elements before the damage stay reachable")
}
