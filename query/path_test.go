package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePath tests the path tokeniser.
func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		segLen  int // Expected number of segments
	}{
		// Valid expressions
		{name: "single key", input: "name", segLen: 1},
		{name: "nested keys", input: "name.first", segLen: 2},
		{name: "index", input: "children.0", segLen: 2},
		{name: "terminal hash", input: "children.#", segLen: 2},
		{name: "hash with tail", input: "friends.#.age", segLen: 3},
		{name: "escaped dot", input: `fav\.movie`, segLen: 1},
		{name: "wildcard star", input: "child*.2", segLen: 2},
		{name: "wildcard question", input: "c?ildren.0", segLen: 2},
		{name: "query first", input: "friends.#(last==Murphy)", segLen: 2},
		{name: "query all", input: "friends.#(last==Murphy)#", segLen: 2},
		{name: "query with tail", input: "friends.#(age>45)#.first", segLen: 3},
		{name: "query existence", input: "friends.#(nets)", segLen: 2},
		{name: "nested query", input: `friends.#(nets.#(net=ig))`, segLen: 2},
		{name: "multipath array", input: "[a,b.c]", segLen: 1},
		{name: "multipath object", input: "{a,n:b}", segLen: 1},
		{name: "multipath then modifier", input: "[a,b].@reverse", segLen: 2},
		{name: "modifier", input: "@pretty", segLen: 1},
		{name: "modifier with arg", input: `@pretty:{"indent":"\t"}`, segLen: 1},
		{name: "modifier arg then tail", input: `@join:{"preserve":true}.@ugly`, segLen: 2},
		{name: "pipe", input: "a.b|c", segLen: 4},
		{name: "pipe only", input: "|", segLen: 1},
		{name: "json lines count", input: "..#", segLen: 1},
		{name: "json lines tail", input: "..#.@this|@ugly", segLen: 4},
		{name: "hash key prefix", input: "#items", segLen: 1},

		// Structural errors
		{name: "unterminated query", input: "friends.#(last=", wantErr: true},
		{name: "unterminated multipath", input: "[a,b", wantErr: true},
		{name: "trailing garbage after multipath", input: "[a]x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePath(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, p.Segments, tt.segLen)
			assert.Equal(t, tt.input, p.String())
		})
	}
}

func TestParsePathSegmentDetails(t *testing.T) {
	t.Run("escaped key is unescaped", func(t *testing.T) {
		p, err := ParsePath(`fav\.movie`)
		require.NoError(t, err)
		key, ok := p.Segments[0].(KeySegment)
		require.True(t, ok)
		assert.Equal(t, "fav.movie", key.Name)
		assert.True(t, key.Escaped)
	})

	t.Run("digits become an index", func(t *testing.T) {
		p, err := ParsePath("items.12")
		require.NoError(t, err)
		idx, ok := p.Segments[1].(IndexSegment)
		require.True(t, ok)
		assert.Equal(t, 12, idx.Index)
		assert.Equal(t, "12", idx.Name)
	})

	t.Run("hash before pipe is a length", func(t *testing.T) {
		p, err := ParsePath("a.#|b")
		require.NoError(t, err)
		_, ok := p.Segments[1].(ArrayLenSegment)
		assert.True(t, ok)
	})

	t.Run("hash before dot collects", func(t *testing.T) {
		p, err := ParsePath("a.#.b")
		require.NoError(t, err)
		_, ok := p.Segments[1].(ArrayEachSegment)
		assert.True(t, ok)
	})

	t.Run("query operator and literal", func(t *testing.T) {
		p, err := ParsePath(`friends.#(age>=45)#`)
		require.NoError(t, err)
		q, ok := p.Segments[1].(QuerySegment)
		require.True(t, ok)
		assert.Equal(t, "age", q.Path)
		assert.Equal(t, ">=", q.Op)
		assert.Equal(t, "45", q.Value)
		assert.True(t, q.All)
	})

	t.Run("coercing operator", func(t *testing.T) {
		p, err := ParsePath(`vals.#(b==~true)#`)
		require.NoError(t, err)
		q := p.Segments[1].(QuerySegment)
		assert.Equal(t, "==~", q.Op)
		assert.Equal(t, "true", q.Value)
	})

	t.Run("quoted literal keeps escapes out", func(t *testing.T) {
		p, err := ParsePath(`friends.#(last="Mur\"phy")`)
		require.NoError(t, err)
		q := p.Segments[1].(QuerySegment)
		assert.Equal(t, "last", q.Path)
		assert.Equal(t, "=", q.Op)
		assert.Equal(t, `"Mur\"phy"`, q.Value)
	})

	t.Run("multipath names", func(t *testing.T) {
		p, err := ParsePath("{counts:[a.#,b.#],c.d,[e].@reverse,f}")
		require.NoError(t, err)
		mp, ok := p.Segments[0].(MultipathSegment)
		require.True(t, ok)
		require.Len(t, mp.Parts, 4)
		assert.True(t, mp.Object)

		assert.Equal(t, "counts", mp.Parts[0].Name)
		assert.True(t, mp.Parts[0].Explicit)

		assert.Equal(t, "d", mp.Parts[1].Name)
		assert.False(t, mp.Parts[1].Explicit)

		assert.Equal(t, "@reverse", mp.Parts[2].Name)
		assert.Equal(t, "f", mp.Parts[3].Name)
	})

	t.Run("multipath without a simple tail name", func(t *testing.T) {
		p, err := ParsePath("{[a,b]}")
		require.NoError(t, err)
		mp := p.Segments[0].(MultipathSegment)
		require.Len(t, mp.Parts, 1)
		assert.Equal(t, "_", mp.Parts[0].Name)
	})

	t.Run("modifier argument boundaries", func(t *testing.T) {
		p, err := ParsePath(`@join:{"preserve":true}.@ugly`)
		require.NoError(t, err)
		mod := p.Segments[0].(ModifierSegment)
		assert.Equal(t, "join", mod.Name)
		assert.Equal(t, `{"preserve":true}`, mod.Arg)
		mod2 := p.Segments[1].(ModifierSegment)
		assert.Equal(t, "ugly", mod2.Name)
		assert.Empty(t, mod2.Arg)
	})

	t.Run("json lines prefix", func(t *testing.T) {
		p, err := ParsePath("..#.a")
		require.NoError(t, err)
		assert.True(t, p.JSONLines)
		require.Len(t, p.Segments, 2)
	})
}
