package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHostPort(t *testing.T) {
	p, err := Parse("example.com:8080")
	require.NoError(t, err)
	assert.Equal(t, "", p.UserInfo)
	assert.Equal(t, "example.com", p.Host)
	assert.Equal(t, 8080, p.Port)
}

func TestParseUserInfoHostPort(t *testing.T) {
	p, err := Parse("u:p@example.com:8080")
	require.NoError(t, err)
	assert.Equal(t, "u:p", p.UserInfo)
	assert.Equal(t, "example.com", p.Host)
	assert.Equal(t, 8080, p.Port)
}

func TestParseIPv6Bracketed(t *testing.T) {
	p, err := Parse("[::1]:80")
	require.NoError(t, err)
	assert.Equal(t, "::1", p.Host)
	assert.Equal(t, 80, p.Port)
}

func TestParseIPv6NoPort(t *testing.T) {
	p, err := Parse("[::1]")
	require.NoError(t, err)
	assert.Equal(t, "::1", p.Host)
	assert.Equal(t, -1, p.Port)
}

func TestParseHostOnly(t *testing.T) {
	p, err := Parse("example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", p.Host)
	assert.Equal(t, -1, p.Port)
}

func TestParseUnterminatedIPv6(t *testing.T) {
	_, err := Parse("[::1")
	assert.Error(t, err)
}

func TestIsIPv6Bracketed(t *testing.T) {
	assert.True(t, IsIPv6Bracketed("[::1]"))
	assert.False(t, IsIPv6Bracketed("example.com"))
}
