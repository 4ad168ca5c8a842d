package charclass

import "testing"

import "github.com/stretchr/testify/assert"

func TestUnreservedMembers(t *testing.T) {
	for _, b := range []byte("abcXYZ019-._~") {
		assert.True(t, Unreserved.Contains(b), "expected %q in Unreserved", b)
	}
	for _, b := range []byte(" %/:@?#[]") {
		assert.False(t, Unreserved.Contains(b), "expected %q not in Unreserved", b)
	}
}

func TestPcharIncludesColonAndAt(t *testing.T) {
	assert.True(t, Pchar.Contains(':'))
	assert.True(t, Pchar.Contains('@'))
	assert.False(t, Pchar.Contains('/'))
	assert.False(t, Pchar.Contains('?'))
}

func TestQueryAndFragmentAddSlashAndQuestionMark(t *testing.T) {
	for _, set := range []Set{Query, Fragment} {
		assert.True(t, set.Contains('/'))
		assert.True(t, set.Contains('?'))
		assert.True(t, set.Contains(':'))
	}
}

func TestRFC5987UnreservedMembers(t *testing.T) {
	for _, b := range []byte("abcXYZ019!#$&+-.^_`|~") {
		assert.True(t, RFC5987Unreserved.Contains(b))
	}
	assert.False(t, RFC5987Unreserved.Contains(':'))
	assert.False(t, RFC5987Unreserved.Contains('/'))
}

func TestUnionIsCommutative(t *testing.T) {
	a := Union(Unreserved, SubDelims)
	b := Union(SubDelims, Unreserved)
	assert.Equal(t, a, b)
}
