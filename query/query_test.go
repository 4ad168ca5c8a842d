package query

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badu/uri/charclass"
	"github.com/badu/uri/pair"
	"github.com/badu/uri/percent"
)

func TestParseEmptyString(t *testing.T) {
	got, err := Parse("", percent.UTF8(), false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseDropsEmptyName(t *testing.T) {
	got, err := Parse("a=1&b=&c&=d", percent.UTF8(), false)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "a", got[0].Name())
	v, ok := got[0].Value()
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	assert.Equal(t, "b", got[1].Name())
	v, ok = got[1].Value()
	assert.True(t, ok)
	assert.Equal(t, "", v)

	assert.Equal(t, "c", got[2].Name())
	_, ok = got[2].Value()
	assert.False(t, ok)
}

func TestParsePlusAsBlank(t *testing.T) {
	got, err := Parse("a+b=c+d", percent.UTF8(), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a b", got[0].Name())
	v, _ := got[0].Value()
	assert.Equal(t, "c d", v)
}

func TestFormatRoundTrip(t *testing.T) {
	params := []pair.Pair{pair.New("q", "hello world"), pair.NewFlag("flag")}
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, params, percent.UTF8(), charclass.Unreserved, false))
	assert.Equal(t, "q=hello%20world&flag", buf.String())
}

func TestOrderPreservedRoundTrip(t *testing.T) {
	params := []pair.Pair{pair.New("y", "2"), pair.New("x", "1")}
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, params, percent.UTF8(), charclass.Unreserved, false))
	parsed, err := Parse(buf.String(), percent.UTF8(), false)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "y", parsed[0].Name())
	assert.Equal(t, "x", parsed[1].Name())
}
