package pair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicWithValue(t *testing.T) {
	p := New("q", "hello world")
	assert.Equal(t, "q", p.Name())
	v, ok := p.Value()
	assert.True(t, ok)
	assert.Equal(t, "hello world", v)
}

func TestBasicFlagHasNoValue(t *testing.T) {
	p := NewFlag("debug")
	assert.Equal(t, "debug", p.Name())
	_, ok := p.Value()
	assert.False(t, ok)
}

func TestBasicSatisfiesPair(t *testing.T) {
	var p Pair = New("a", "b")
	assert.Equal(t, "a", p.Name())
}
