/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import "strings"

// Optimize lowercases the scheme, then — unless the path is rootless,
// in which case it stops immediately, per source — lowercases the
// host, clears every raw-encoded cache so buildString reconstructs
// purely from decoded state, and removes "." / ".." dot-segments from
// the path per RFC 3986 §5.2.4. A trailing slash is preserved. A
// rootless path's dot-segments are left untouched entirely, since the
// early return above skips removeDotSegments for it.
func (b *Builder) Optimize() *Builder {
	if b.hasScheme {
		b.scheme = strings.ToLower(b.scheme)
	}

	if b.pathRootless {
		return b
	}

	if b.hasHost {
		b.host = strings.ToLower(b.host)
	}

	b.clearSchemeSpecificPart()
	b.clearAuthorityCache()
	b.encodedUserInfo, b.hasEncodedUserInfo = "", false
	b.clearPathCache()
	b.clearQueryCache()
	b.encodedFragment, b.hasEncodedFragment = "", false

	if b.pathSegments != nil {
		b.pathSegments = removeDotSegments(b.pathSegments)
	}

	return b
}

// removeDotSegments is only ever reached for a rooted path (Optimize
// returns early for a rootless one), so a ".." with nothing left to
// pop is always simply discarded — there is always a root to discard
// it against here.
func removeDotSegments(segments []string) []string {
	trailingSlash := len(segments) > 0 && segments[len(segments)-1] == ""

	var out []string
	for i, seg := range segments {
		switch seg {
		case ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." && out[len(out)-1] != "" {
				out = out[:len(out)-1]
			}
		default:
			if seg == "" && i != len(segments)-1 {
				continue
			}
			out = append(out, seg)
		}
	}

	if trailingSlash && (len(out) == 0 || out[len(out)-1] != "") {
		out = append(out, "")
	}
	if out == nil {
		out = []string{}
	}
	return out
}
