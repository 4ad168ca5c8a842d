/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package path

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badu/uri/charclass"
	"github.com/badu/uri/percent"
)

func TestSplitEmpty(t *testing.T) {
	assert.Equal(t, []string{}, Split(""))
}

func TestSplitRoot(t *testing.T) {
	assert.Equal(t, []string{""}, Split("/"))
}

func TestSplitTrailingSlash(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, Split("a/b/"))
}

func TestSplitRootless(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Split("a/b"))
}

func TestSplitRooted(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Split("/a/b"))
}

func TestParseDecodesEachSegment(t *testing.T) {
	segments, err := Parse("/a%20b/c", percent.UTF8())
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "c"}, segments)
}

func TestFormatRooted(t *testing.T) {
	var buf bytes.Buffer
	err := Format(&buf, []string{"a b", "c"}, false, percent.UTF8(), charclass.Unreserved)
	require.NoError(t, err)
	assert.Equal(t, "/a%20b/c", buf.String())
}

func TestFormatRootless(t *testing.T) {
	var buf bytes.Buffer
	err := Format(&buf, []string{"a", "b"}, true, percent.UTF8(), charclass.Unreserved)
	require.NoError(t, err)
	assert.Equal(t, "a/b", buf.String())
}

func TestFormatEmptySegmentsPreservesTrailingSlash(t *testing.T) {
	var buf bytes.Buffer
	err := Format(&buf, []string{"a", ""}, false, percent.UTF8(), charclass.Unreserved)
	require.NoError(t, err)
	assert.Equal(t, "/a/", buf.String())
}

func TestSplitFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"", "/", "/a/b/", "a/b", "/a"} {
		segments := Split(raw)
		var buf bytes.Buffer
		rootless := raw != "" && raw[0] != '/'
		require.NoError(t, Format(&buf, segments, rootless, percent.UTF8(), charclass.PathSegment))
		assert.Equal(t, raw, buf.String())
	}
}
