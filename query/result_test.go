package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAccessors(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		r := Get(`{"s":"he said \"hi\""}`, "s")
		assert.Equal(t, String, r.Kind)
		assert.Equal(t, `"he said \"hi\""`, r.Raw)
		assert.Equal(t, `he said "hi"`, r.Str)
		assert.Equal(t, `he said "hi"`, r.String())
	})

	t.Run("number conversions", func(t *testing.T) {
		r := Get(`{"n":42}`, "n")
		assert.Equal(t, int64(42), r.Int())
		assert.Equal(t, uint64(42), r.Uint())
		assert.InDelta(t, 42.0, r.Float(), 1e-12)
		assert.True(t, r.Bool())
	})

	t.Run("large integers stay exact", func(t *testing.T) {
		r := Get(`{"n":9007199254740993}`, "n")
		assert.Equal(t, int64(9007199254740993), r.Int())
		assert.Equal(t, uint64(9007199254740993), r.Uint())
	})

	t.Run("numeric strings convert", func(t *testing.T) {
		r := Get(`{"n":"128"}`, "n")
		assert.Equal(t, int64(128), r.Int())
		assert.InDelta(t, 128.0, r.Float(), 1e-12)
	})

	t.Run("booleans", func(t *testing.T) {
		assert.True(t, Get(`{"b":true}`, "b").Bool())
		assert.False(t, Get(`{"b":false}`, "b").Bool())
		assert.True(t, Get(`{"b":"True"}`, "b").Bool())
		assert.Equal(t, int64(1), Get(`{"b":true}`, "b").Int())
	})

	t.Run("not present zero values", func(t *testing.T) {
		r := Get(`{}`, "missing")
		assert.False(t, r.Exists())
		assert.Empty(t, r.String())
		assert.Zero(t, r.Int())
		assert.Zero(t, r.Float())
		assert.False(t, r.Bool())
		assert.Nil(t, r.Value())
	})
}

func TestResultValue(t *testing.T) {
	r := Parse(`{"a": 1, "b": ["x", true, null], "c": {"d": 2.5}}`)
	v, ok := r.Value().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), v["a"])
	assert.Equal(t, []any{"x", true, nil}, v["b"])
	assert.Equal(t, map[string]any{"d": 2.5}, v["c"])
}

func TestResultArrayAndMap(t *testing.T) {
	t.Run("array of scalars", func(t *testing.T) {
		elems := Get(`{"a":[1,2,3]}`, "a").Array()
		require.Len(t, elems, 3)
		assert.Equal(t, int64(2), elems[1].Int())
	})

	t.Run("scalar yields itself", func(t *testing.T) {
		elems := Get(`{"a":1}`, "a").Array()
		require.Len(t, elems, 1)
		assert.Equal(t, int64(1), elems[0].Int())
	})

	t.Run("not present yields nil", func(t *testing.T) {
		assert.Nil(t, Get(`{}`, "a").Array())
	})

	t.Run("map of members", func(t *testing.T) {
		m := Get(`{"a":{"x":1,"y":"two"}}`, "a").Map()
		require.Len(t, m, 2)
		assert.Equal(t, int64(1), m["x"].Int())
		assert.Equal(t, "two", m["y"].Str)
	})

	t.Run("map of non-object is empty", func(t *testing.T) {
		assert.Empty(t, Get(`{"a":[1]}`, "a").Map())
	})
}

func TestResultGetChaining(t *testing.T) {
	json := `{"outer": {"inner": {"leaf": 7}}}`
	outer := Get(json, "outer")
	leaf := outer.Get("inner.leaf")
	require.True(t, leaf.Exists())
	assert.Equal(t, int64(7), leaf.Int())

	// The chained result's offset is anchored to the original document.
	require.GreaterOrEqual(t, leaf.Index, 0)
	assert.Equal(t, leaf.Raw, json[leaf.Index:leaf.Index+len(leaf.Raw)])
}

func TestResultEachPrimitive(t *testing.T) {
	calls := 0
	Get(`{"a":1}`, "a").Each(func(key, value Result) bool {
		calls++
		assert.False(t, key.Exists())
		assert.Equal(t, int64(1), value.Int())
		return true
	})
	assert.Equal(t, 1, calls)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NotPresent", NotPresent.String())
	assert.Equal(t, "Null", Null.String())
	assert.Equal(t, "False", False.String())
	assert.Equal(t, "True", True.String())
	assert.Equal(t, "Number", Number.String())
	assert.Equal(t, "String", String.String())
	assert.Equal(t, "Array", Array.String())
	assert.Equal(t, "Object", Object.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "simple escapes", in: `a\"b\\c\/d`, want: `a"b\c/d`},
		{name: "control escapes", in: `\b\f\n\r\t`, want: "\b\f\n\r\t"},
		{name: "unicode escape", in: `\u30c4`, want: "ツ"},
		{name: "surrogate pair", in: `\ud83d\ude00`, want: "😀"},
		{name: "raw unicode passthrough", in: `ツ😀`, want: "ツ😀"},
		{name: "lone surrogate", in: `\ud83d!`, want: "�!"},
		{name: "bad hex keeps following bytes", in: `\u12g4`, want: "�12g4"},
		{name: "trailing backslash", in: `abc\`, want: "abc�"},
		{name: "unknown escape keeps char", in: `\q`, want: "q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}
