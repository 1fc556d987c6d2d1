package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	valid := []string{
		`{}`,
		`[]`,
		`{"a":1}`,
		`{"a": {"b": [1, 2.5, -3e10, "x", true, false, null]}}`,
		` { "a" : 1 } `,
		`"lone string"`,
		`"esc \" \\ \/ \b \f \n \r \t é"`,
		`0`,
		`-0.5`,
		`1e6`,
		`1E+6`,
		`123.456e-7`,
		`true`,
		`false`,
		`null`,
	}
	for _, json := range valid {
		t.Run("valid "+json, func(t *testing.T) {
			assert.True(t, Valid(json), "should be valid: %s", json)
		})
	}

	invalid := []string{
		``,
		`   `,
		`{`,
		`}`,
		`{"a":1,}`,
		`[1,2,]`,
		`{"a" 1}`,
		`{"a":}`,
		`{a:1}`,
		`[1 2]`,
		`"unterminated`,
		`"bad \x escape"`,
		`"bad \u00g0 escape"`,
		"\"control \x01 char\"",
		`01`,
		`1.`,
		`.5`,
		`+1`,
		`1e`,
		`tru`,
		`truex`,
		`nulll`,
		`{"a":1} trailing`,
		`{"a":1}{"b":2}`,
	}
	for _, json := range invalid {
		t.Run("invalid "+json, func(t *testing.T) {
			assert.False(t, Valid(json), "should be invalid: %s", json)
		})
	}
}

func TestValidDepthLimit(t *testing.T) {
	deep := strings.Repeat("[", maxValidDepth+10) + strings.Repeat("]", maxValidDepth+10)
	assert.False(t, Valid(deep))

	shallow := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	assert.True(t, Valid(shallow))
}

func TestValidBytes(t *testing.T) {
	assert.True(t, ValidBytes([]byte(`{"a":1}`)))
	assert.False(t, ValidBytes([]byte(`{"a":`)))
}
