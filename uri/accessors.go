/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import (
	"github.com/badu/uri/pair"
	"github.com/badu/uri/path"
	"github.com/badu/uri/percent"
)

// GetScheme returns the scheme and whether one is set.
func (b *Builder) GetScheme() (string, bool) { return b.scheme, b.hasScheme }

// GetUserInfo returns the decoded userinfo and whether it is set.
func (b *Builder) GetUserInfo() (string, bool) {
	if b.hasUserInfo {
		return b.userInfo, true
	}
	if b.hasEncodedUserInfo {
		decoded, err := percent.Decode(b.encodedUserInfo, b.charset, b.plusAsBlank)
		if err == nil {
			return decoded, true
		}
	}
	return "", false
}

// GetHost returns the host (brackets stripped for IPv6 literals) and
// whether one is set.
func (b *Builder) GetHost() (string, bool) { return b.host, b.hasHost }

// GetPort returns the port, or -1 if unset.
func (b *Builder) GetPort() int { return b.port }

// GetPath returns the decoded, joined path, "/"-prefixed, or "" when
// there are no segments. It does not special-case a rootless builder
// (rootless only governs how Build serializes the path when no
// authority precedes it).
func (b *Builder) GetPath() (string, error) {
	segments, err := b.GetPathSegments()
	if err != nil {
		return "", err
	}
	if segments == nil {
		return "", nil
	}
	joined := ""
	for _, seg := range segments {
		joined += "/"
		joined += seg
	}
	return joined, nil
}

// GetPathSegments returns the decoded path segments, decoding
// encodedPath lazily if pathSegments was never materialized.
func (b *Builder) GetPathSegments() ([]string, error) {
	if b.pathSegments != nil {
		return b.pathSegments, nil
	}
	if b.hasEncodedPath {
		return decodeSegments(b.encodedPath, b.charset)
	}
	return nil, nil
}

func decodeSegments(raw string, cs percent.Charset) ([]string, error) {
	return path.Parse(raw, cs)
}

// GetQueryParams returns the query parameters, or nil if no query is set.
func (b *Builder) GetQueryParams() []pair.Pair { return b.queryParams }

// GetFirstQueryParam returns the first parameter named name, if present.
func (b *Builder) GetFirstQueryParam(name string) (pair.Pair, bool) {
	for _, p := range b.queryParams {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// GetFragment returns the decoded fragment and whether one is set.
func (b *Builder) GetFragment() (string, bool) {
	if b.hasFragment {
		return b.fragment, true
	}
	if b.hasEncodedFragment {
		decoded, err := percent.Decode(b.encodedFragment, b.charset, b.plusAsBlank)
		if err == nil {
			return decoded, true
		}
	}
	return "", false
}

// IsAbsolute reports whether a scheme is set.
func (b *Builder) IsAbsolute() bool { return b.hasScheme }

// IsOpaque reports whether b has no path of its own at all — neither
// decoded segments nor a raw encoded path were ever captured. This
// matches Apache's isOpaque() precisely: authority or query alone
// (with no path) still counts as opaque.
func (b *Builder) IsOpaque() bool { return b.pathSegments == nil && !b.hasEncodedPath }

// IsPathEmpty reports whether the path has no segments at all (as
// opposed to a single empty segment, i.e. a bare "/").
func (b *Builder) IsPathEmpty() bool {
	segments, _ := b.GetPathSegments()
	return len(segments) == 0
}

// IsQueryEmpty reports whether there is no query component at all: no
// parameter list (an empty list left by ClearParameters still counts as
// a query), no custom query and no cached encoded query.
func (b *Builder) IsQueryEmpty() bool {
	return b.queryParams == nil && !b.hasQuery && !b.hasEncodedQuery
}

// GetAuthority returns an Authority view of the current
// userinfo/host/port, and whether a host is set at all.
func (b *Builder) GetAuthority() (Authority, bool) {
	if !b.hasHost {
		return Authority{}, false
	}
	return Authority{userInfo: b.userInfo, host: b.host, port: b.port}, true
}

// Authority is a read-only (userInfo, host, port) view returned by
// GetAuthority.
type Authority struct {
	userInfo string
	host     string
	port     int
}

func (a Authority) UserInfo() string { return a.userInfo }
func (a Authority) HostName() string { return a.host }
func (a Authority) Port() int        { return a.port }
