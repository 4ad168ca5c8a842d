/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package path splits and joins "/"-separated URI path segments,
// preserving the rootless-vs-rooted distinction and trailing-slash
// artifacts, and delegates per-segment percent (de)coding to percent.
package path

import (
	"bytes"

	"github.com/badu/uri/charclass"
	"github.com/badu/uri/percent"
)

const separator = '/'

// Split breaks s into segments on '/', skipping at most one leading
// separator. Segments are not percent-decoded. A trailing '/' produces a
// trailing empty segment.
func Split(s string) []string {
	if s == "" {
		return []string{}
	}
	i := 0
	if s[0] == separator {
		i = 1
	}
	var segments []string
	var buf bytes.Buffer
	for ; i < len(s); i++ {
		if s[i] == separator {
			segments = append(segments, buf.String())
			buf.Reset()
		} else {
			buf.WriteByte(s[i])
		}
	}
	segments = append(segments, buf.String())
	return segments
}

// Parse is Split followed by a percent-decode of every segment.
func Parse(s string, cs percent.Charset) ([]string, error) {
	segments := Split(s)
	out := make([]string, len(segments))
	for i, seg := range segments {
		decoded, err := percent.Decode(seg, cs, false)
		if err != nil {
			return nil, err
		}
		out[i] = decoded
	}
	return out, nil
}

// Format writes segments to out, joined by '/'. A leading '/' is
// prepended for every segment except when it is the first one and
// rootless is set.
func Format(out *bytes.Buffer, segments []string, rootless bool, cs percent.Charset, safe charclass.Set) error {
	for i, seg := range segments {
		if i > 0 || !rootless {
			out.WriteByte(separator)
		}
		if err := percent.Encode(out, seg, cs, safe, false); err != nil {
			return err
		}
	}
	return nil
}
