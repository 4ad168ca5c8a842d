package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTokenStopsAtDelimiter(t *testing.T) {
	cur := NewCursor("a=1&b=2")
	name := ParseToken("a=1&b=2", cur, QueryParamSeparators)
	assert.Equal(t, "a", name)
	assert.False(t, cur.AtEnd())
	assert.Equal(t, byte('='), "a=1&b=2"[cur.Pos])
}

func TestParseTokenToEOF(t *testing.T) {
	cur := NewCursor("justtext")
	tok := ParseToken("justtext", cur, QueryParamSeparators)
	assert.Equal(t, "justtext", tok)
	assert.True(t, cur.AtEnd())
}

func TestParseTokenEmptySpan(t *testing.T) {
	cur := NewCursor("=1")
	tok := ParseToken("=1", cur, QueryParamSeparators)
	assert.Equal(t, "", tok)
	assert.Equal(t, 0, cur.Pos)
}
