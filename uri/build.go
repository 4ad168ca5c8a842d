/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/badu/uri/charclass"
	"github.com/badu/uri/path"
	"github.com/badu/uri/percent"
	"github.com/badu/uri/query"
)

// slot identifies which component a safe-set lookup is for.
type slot int

const (
	slotUserInfo slot = iota
	slotRegName
	slotPath
	slotQuery
	slotFragment
)

// safeSet returns the character class left unescaped when re-encoding a
// decoded value for slot under policy. Strict only ever allows the
// unreserved set; RFC3986Policy uses each component's own broader set.
func safeSet(s slot, policy EncodingPolicy) charclass.Set {
	if policy == Strict {
		return charclass.Unreserved
	}
	switch s {
	case slotUserInfo:
		return charclass.Userinfo
	case slotRegName:
		return charclass.RegName
	case slotPath:
		return charclass.PathSegment
	case slotQuery:
		return charclass.Query
	case slotFragment:
		return charclass.Fragment
	default:
		return charclass.Unreserved
	}
}

// Build validates and serializes b into an immutable URI value.
func (b *Builder) Build() (URI, error) {
	if (b.scheme == "http" || b.scheme == "https") && b.hasScheme {
		blank := !b.hasHost || b.host == ""
		if blank {
			return URI{}, &Error{Op: "build", Input: b.scheme, Err: ErrBlankHost}
		}
	}

	s, err := b.buildString()
	if err != nil {
		return URI{}, &Error{Op: "build", Input: s, Err: err}
	}
	return URI{raw: s}, nil
}

// String serializes b, discarding any error (returns "" on failure).
// Prefer Build for anything that should surface a malformed-component
// error.
func (b *Builder) String() string {
	s, err := b.buildString()
	if err != nil {
		return ""
	}
	return s
}

// buildString mirrors Apache URIBuilder.buildString: prefer the
// outermost still-valid raw cache, falling back to component-by-
// component reconstruction once a mutator has cleared it.
func (b *Builder) buildString() (string, error) {
	var out bytes.Buffer

	if b.hasScheme {
		out.WriteString(b.scheme)
		out.WriteByte(':')
	}

	if b.hasSchemeSpecificPart {
		// Nothing has mutated a component since this Builder was parsed
		// (or SetSchemeSpecificPart was called directly): echo the raw
		// scheme-specific part verbatim rather than reconstruct it, even
		// though its pieces have also been decomposed into host/path/
		// query fields for the accessors' benefit.
		out.WriteString(b.encodedSchemeSpecificPart)
	} else {
		if err := b.buildHierPart(&out); err != nil {
			return "", err
		}
	}

	if b.hasFragment {
		out.WriteByte('#')
		if err := percent.Encode(&out, b.fragment, b.charset, safeSet(slotFragment, b.encodingPolicy), false); err != nil {
			return "", err
		}
	} else if b.hasEncodedFragment {
		out.WriteByte('#')
		out.WriteString(b.encodedFragment)
	}

	return out.String(), nil
}

func (b *Builder) buildHierPart(out *bytes.Buffer) error {
	authoritySpecified := b.hasUserInfo || b.hasHost || b.hasEncodedAuthority
	if err := b.buildAuthority(out); err != nil {
		return err
	}
	if err := b.buildPath(out, authoritySpecified); err != nil {
		return err
	}
	return b.buildQuery(out)
}

func (b *Builder) buildAuthority(out *bytes.Buffer) error {
	switch {
	case b.hasUserInfo || b.hasHost:
		out.WriteString("//")
		if b.hasUserInfo {
			if err := b.writeUserInfo(out); err != nil {
				return err
			}
			out.WriteByte('@')
		}
		if b.hasHost {
			if isIPv6Literal(b.host) {
				out.WriteByte('[')
				out.WriteString(b.host)
				out.WriteByte(']')
			} else if err := percent.Encode(out, b.host, b.charset, safeSet(slotRegName, b.encodingPolicy), false); err != nil {
				return err
			}
		}
		if b.port >= 0 {
			out.WriteByte(':')
			out.WriteString(strconv.Itoa(b.port))
		}
	case b.hasEncodedAuthority:
		out.WriteString("//")
		out.WriteString(b.encodedAuthority)
	}
	return nil
}

// writeUserInfo splits userInfo on its first ':' into user/password
// halves, encoding each separately and emitting the ':' literally — a
// userinfo value containing a literal ':' is user:password, not a
// single opaque token. Mirrors Apache URIBuilder.buildString's
// userInfo-splitting branch.
func (b *Builder) writeUserInfo(out *bytes.Buffer) error {
	safe := safeSet(slotUserInfo, b.encodingPolicy)
	if idx := strings.IndexByte(b.userInfo, ':'); idx != -1 {
		if err := percent.Encode(out, b.userInfo[:idx], b.charset, safe, false); err != nil {
			return err
		}
		out.WriteByte(':')
		return percent.Encode(out, b.userInfo[idx+1:], b.charset, safe, false)
	}
	return percent.Encode(out, b.userInfo, b.charset, safe, false)
}

func isIPv6Literal(host string) bool {
	for i := 0; i < len(host); i++ {
		if host[i] == ':' {
			return true
		}
	}
	return false
}

func (b *Builder) buildPath(out *bytes.Buffer, authoritySpecified bool) error {
	switch {
	case b.pathSegments != nil:
		rootless := b.pathRootless && !authoritySpecified
		return path.Format(out, b.pathSegments, rootless, b.charset, safeSet(slotPath, b.encodingPolicy))
	case b.hasEncodedPath:
		out.WriteString(b.encodedPath)
	}
	return nil
}

func (b *Builder) buildQuery(out *bytes.Buffer) error {
	switch {
	case b.queryParams != nil:
		out.WriteByte('?')
		return query.Format(out, b.queryParams, b.charset, safeSet(slotQuery, b.encodingPolicy), b.plusAsBlank)
	case b.hasQuery:
		out.WriteByte('?')
		return percent.Encode(out, b.query, b.charset, safeSet(slotQuery, b.encodingPolicy), b.plusAsBlank)
	case b.hasEncodedQuery:
		out.WriteByte('?')
		out.WriteString(b.encodedQuery)
	}
	return nil
}
