/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import (
	"github.com/badu/uri/authority"
	"github.com/badu/uri/path"
	"github.com/badu/uri/percent"
	"github.com/badu/uri/query"
)

// NewBuilderFromString parses s and returns a Builder seeded with both
// its raw and decoded components. Parsing is purely syntactic (see
// parseRaw); a malformed authority is tolerated per the documented
// tri-state (encodedAuthority set, host left unset) rather than
// rejected, but a string with no recognizable URI structure at all
// still cannot happen here — parseRaw always succeeds syntactically,
// so the only possible error is from the percent-decode/charset layer.
func NewBuilderFromString(s string) (*Builder, error) {
	b := NewBuilder()
	if err := b.digestURI(s); err != nil {
		return nil, &Error{Op: "parse", Input: s, Err: err}
	}
	return b, nil
}

// digestURI populates b from raw, mirroring Apache URIBuilder.digestURI:
// the outermost scheme-specific-part raw cache is always set from an
// unmodified parse, and is the first thing any mutator clears.
func (b *Builder) digestURI(raw string) error {
	parts := parseRaw(raw)

	b.scheme = parts.scheme
	b.hasScheme = parts.hasScheme

	b.encodedSchemeSpecificPart = parts.schemeSpecificPart
	b.hasSchemeSpecificPart = true

	if parts.opaque {
		return nil
	}

	if parts.hasFragment {
		b.encodedFragment = parts.fragment
		b.hasEncodedFragment = true
		decoded, err := percent.Decode(parts.fragment, b.charset, b.plusAsBlank)
		if err != nil {
			return err
		}
		b.fragment = decoded
		b.hasFragment = true
	}

	if parts.hasAuthority {
		b.encodedAuthority = parts.authority
		b.hasEncodedAuthority = true
		if p, err := authority.Parse(parts.authority); err == nil {
			if p.UserInfo != "" {
				decoded, err := percent.Decode(p.UserInfo, b.charset, false)
				if err != nil {
					return err
				}
				b.userInfo = decoded
				b.hasUserInfo = true
			}
			decodedHost, err := percent.Decode(p.Host, b.charset, false)
			if err != nil {
				return err
			}
			b.host = decodedHost
			b.hasHost = true
			b.port = p.Port
		}
	}

	b.encodedPath = parts.path
	b.hasEncodedPath = true
	b.pathRootless = len(parts.path) == 0 || parts.path[0] != '/'
	segments, err := path.Parse(parts.path, b.charset)
	if err != nil {
		return err
	}
	b.pathSegments = segments

	if parts.hasQuery {
		b.encodedQuery = parts.query
		b.hasEncodedQuery = true
		params, err := query.Parse(parts.query, b.charset, b.plusAsBlank)
		if err != nil {
			return err
		}
		b.queryParams = params
	}

	return nil
}
