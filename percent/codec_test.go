package percent

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badu/uri/charclass"
)

func TestEncodeUppercasesHex(t *testing.T) {
	s, err := EncodeString("a b\x00\xff", UTF8(), charclass.Unreserved, false)
	require.NoError(t, err)
	assert.NotContains(t, s, "%2b") // no lowercase hex anywhere
	for i := 0; i+2 < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		for _, r := range s[i+1 : i+3] {
			assert.False(t, r >= 'a' && r <= 'f', "lowercase hex digit found in %q", s)
		}
	}
}

func TestEncodeGodel(t *testing.T) {
	s, err := EncodeString("Gödel", UTF8(), charclass.Unreserved, false)
	require.NoError(t, err)
	assert.Equal(t, "G%C3%B6del", s)
}

func TestDecodeGodel(t *testing.T) {
	s, err := Decode("G%C3%B6del", UTF8(), false)
	require.NoError(t, err)
	assert.Equal(t, "Gödel", s)
}

func TestDecodeMalformedEscapePassesThrough(t *testing.T) {
	s, err := Decode("a%ZZb", UTF8(), false)
	require.NoError(t, err)
	assert.Equal(t, "a%ZZb", s)
}

func TestDecodeTruncatedEscapeAtEOF(t *testing.T) {
	s, err := Decode("abc%", UTF8(), false)
	require.NoError(t, err)
	assert.Equal(t, "abc%", s)

	s, err = Decode("abc%A", UTF8(), false)
	require.NoError(t, err)
	assert.Equal(t, "abc%", s)
}

func TestPlusAsBlankDuality(t *testing.T) {
	encoded, err := EncodeString("a b", UTF8(), charclass.Unreserved, true)
	require.NoError(t, err)
	assert.Equal(t, "a+b", encoded)

	decoded, err := Decode(encoded, UTF8(), true)
	require.NoError(t, err)
	assert.Equal(t, "a b", decoded)
}

func TestRoundTripASCIISafeSet(t *testing.T) {
	input := "abcXYZ019-._~"
	for _, r := range input {
		b := byte(r)
		require.True(t, charclass.Unreserved.Contains(b))
	}
	encoded, err := EncodeString(input, UTF8(), charclass.Unreserved, false)
	require.NoError(t, err)
	assert.Equal(t, input, encoded)
	decoded, err := Decode(encoded, UTF8(), false)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestRoundTripUnicode(t *testing.T) {
	inputs := []string{"héllo wörld", "日本語", "\U0001F600"}
	for _, in := range inputs {
		encoded, err := EncodeString(in, UTF8(), charclass.Unreserved, false)
		require.NoError(t, err)
		decoded, err := Decode(encoded, UTF8(), false)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestEncodeNilCharsetBufferAppendOnly(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("prefix-")
	require.NoError(t, Encode(&buf, "a b", nil, charclass.Unreserved, false))
	assert.Equal(t, "prefix-a%20b", buf.String())
}

func TestPresetCodecs(t *testing.T) {
	s, err := RFC3986.Encode("a:b/c")
	require.NoError(t, err)
	assert.Equal(t, "a%3Ab%2Fc", s)

	s, err = RFC5987.Encode("Ā")
	require.NoError(t, err)
	assert.NotEmpty(t, s)

	back, err := RFC3986.Decode("a%3Ab%2Fc")
	require.NoError(t, err)
	assert.Equal(t, "a:b/c", back)
}

func TestNewCharsetLatin1(t *testing.T) {
	cs, err := NewCharset("iso-8859-1")
	require.NoError(t, err)
	encoded, err := EncodeString("café", cs, charclass.Unreserved, false)
	require.NoError(t, err)
	decoded, err := Decode(encoded, cs, false)
	require.NoError(t, err)
	assert.Equal(t, "café", decoded)
}

func TestNewCharsetUnknown(t *testing.T) {
	_, err := NewCharset("not-a-real-charset")
	assert.Error(t, err)
}
