/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import "strings"

// rawParts is the purely-syntactic top-level decomposition of a URI
// string, performed without validating or decoding any percent-escape —
// that forgiveness belongs entirely to package percent, applied by
// digestURI and by the accessors that need a decoded view.
type rawParts struct {
	scheme    string
	hasScheme bool

	// schemeSpecificPart is everything between the scheme colon (or the
	// start of the string, if no scheme) and the fragment marker. It is
	// always populated for a non-empty input; it is the outermost raw
	// cache and is what an unmodified round trip echoes back.
	schemeSpecificPart string

	// opaque is true when schemeSpecificPart does not begin with '/'
	// (mirrors java.net.URI's notion of an opaque URI: mailto:, tel:,
	// data: and similar). Opaque URIs have no authority/path/query
	// structure of their own.
	opaque bool

	hasAuthority bool
	authority    string // raw, brackets retained for IPv6 literals

	path string // raw; "" is a valid empty path

	hasQuery bool
	query    string // raw, without '?'

	hasFragment bool
	fragment    string // raw, without '#'
}

func isSchemeChar(b byte, first bool) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case !first && (b >= '0' && b <= '9' || b == '+' || b == '-' || b == '.'):
		return true
	default:
		return false
	}
}

// splitScheme looks for "ALPHA *(ALPHA / DIGIT / '+' / '-' / '.') ':'" at
// the start of s and, if found, returns the scheme token and the
// remainder after the colon.
func splitScheme(s string) (scheme string, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ':' {
			if i == 0 {
				return "", s, false
			}
			return s[:i], s[i+1:], true
		}
		if !isSchemeChar(c, i == 0) {
			return "", s, false
		}
	}
	return "", s, false
}

// parseRaw performs the minimal RFC 3986 top-level split:
//
//	URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//
// with java.net.URI-style opaque-URI detection for anything whose
// scheme-specific part does not begin with '/'.
func parseRaw(s string) rawParts {
	var out rawParts

	body := s
	if idx := strings.IndexByte(body, '#'); idx != -1 {
		out.hasFragment = true
		out.fragment = body[idx+1:]
		body = body[:idx]
	}

	if scheme, rest, ok := splitScheme(body); ok {
		out.scheme = scheme
		out.hasScheme = true
		body = rest
	}
	out.schemeSpecificPart = body

	if body == "" {
		return out
	}
	if body[0] != '/' {
		out.opaque = out.hasScheme
		// Non-scheme relative references with no leading '/' are a
		// rootless path, not "opaque" (opaque is only meaningful when a
		// scheme is present); fall through to hier-part handling below
		// for that case.
		if out.opaque {
			return out
		}
	}

	hier := body
	if idx := strings.IndexByte(hier, '?'); idx != -1 {
		out.hasQuery = true
		out.query = hier[idx+1:]
		hier = hier[:idx]
	}

	if strings.HasPrefix(hier, "//") {
		rest := hier[2:]
		end := strings.IndexAny(rest, "/")
		if end == -1 {
			out.authority = rest
			out.hasAuthority = true
			out.path = ""
		} else {
			out.authority = rest[:end]
			out.hasAuthority = true
			out.path = rest[end:]
		}
	} else {
		out.path = hier
	}

	return out
}
