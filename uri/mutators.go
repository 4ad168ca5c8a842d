/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import (
	"bytes"
	"net"
	"strings"

	"github.com/badu/uri/authority"
	"github.com/badu/uri/pair"
	"github.com/badu/uri/path"
	"github.com/badu/uri/percent"
	"github.com/badu/uri/query"
)

// clearSchemeSpecificPart drops the outermost raw echo cache. Every
// mutator that touches authority/path/query/userinfo/host/port calls
// this first, matching Apache URIBuilder's invalidation rule: once any
// inner component is set explicitly, buildString can no longer trust
// the raw scheme-specific-part cache.
func (b *Builder) clearSchemeSpecificPart() {
	b.hasSchemeSpecificPart = false
	b.encodedSchemeSpecificPart = ""
}

// SetScheme sets the scheme. An empty string clears it.
func (b *Builder) SetScheme(scheme string) *Builder {
	b.scheme = scheme
	b.hasScheme = scheme != ""
	return b
}

// SetUserInfo sets the decoded userinfo, clearing any encoded cache. A
// blank string normalizes to unset, matching Apache setUserInfo's
// !TextUtils.isBlank(userInfo) guard.
func (b *Builder) SetUserInfo(userInfo string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearAuthorityCache()
	b.userInfo = userInfo
	b.hasUserInfo = strings.TrimSpace(userInfo) != ""
	b.encodedUserInfo = ""
	b.hasEncodedUserInfo = false
	return b
}

// SetHost sets the decoded host name or IPv4/IPv6 literal (unbracketed).
func (b *Builder) SetHost(host string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearAuthorityCache()
	b.host = host
	b.hasHost = host != ""
	return b
}

// SetHostIP sets the host from a parsed net.IP, avoiding a round trip
// through manual string formatting. Grounded on Apache's
// setHost(InetAddress).
func (b *Builder) SetHostIP(ip net.IP) *Builder {
	return b.SetHost(ip.String())
}

// SetPort sets the port. A negative value clears it.
func (b *Builder) SetPort(port int) *Builder {
	b.clearSchemeSpecificPart()
	b.clearAuthorityCache()
	if port < 0 {
		b.port = -1
	} else {
		b.port = port
	}
	return b
}

func (b *Builder) clearAuthorityCache() {
	b.hasEncodedAuthority = false
	b.encodedAuthority = ""
}

// SetAuthority adopts userInfo/host/port from a NamedEndpoint collaborator
// such as authority.HttpHost or authority.URIAuthority.
func (b *Builder) SetAuthority(endpoint authority.NamedEndpoint) *Builder {
	b.clearSchemeSpecificPart()
	b.clearAuthorityCache()
	if ui, ok := endpoint.(interface{ UserInfo() string }); ok {
		b.userInfo = ui.UserInfo()
		b.hasUserInfo = b.userInfo != ""
	}
	b.host = endpoint.HostName()
	b.hasHost = b.host != ""
	b.port = endpoint.Port()
	return b
}

// SetHttpHost is SetAuthority plus adopting the endpoint's scheme.
func (b *Builder) SetHttpHost(h authority.HttpHost) *Builder {
	b.SetScheme(h.Scheme())
	return b.SetAuthority(h)
}

func (b *Builder) clearPathCache() {
	b.hasEncodedPath = false
	b.encodedPath = ""
}

// SetPath sets the decoded, joined path, splitting it into segments.
// A leading "/" marks the path as rooted.
func (b *Builder) SetPath(p string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearPathCache()
	if p == "" {
		b.pathSegments = nil
		b.pathRootless = false
		return b
	}
	rootless := p[0] != '/'
	segments := splitDecodedPath(p, rootless)
	b.pathSegments = segments
	b.pathRootless = rootless
	return b
}

func splitDecodedPath(p string, rootless bool) []string {
	start := 0
	if !rootless {
		start = 1
	}
	var segments []string
	buf := make([]byte, 0, len(p))
	for i := start; i < len(p); i++ {
		if p[i] == '/' {
			segments = append(segments, string(buf))
			buf = buf[:0]
		} else {
			buf = append(buf, p[i])
		}
	}
	segments = append(segments, string(buf))
	return segments
}

// SetPathSegments sets the (decoded) path segments directly, rooted.
func (b *Builder) SetPathSegments(segments ...string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearPathCache()
	b.pathSegments = segments
	b.pathRootless = false
	return b
}

// SetPathSegmentsRootless is SetPathSegments without a leading "/".
func (b *Builder) SetPathSegmentsRootless(segments ...string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearPathCache()
	b.pathSegments = segments
	b.pathRootless = true
	return b
}

// AppendPath splits path on '/' and appends each resulting decoded
// segment, rather than treating path as one opaque segment. Grounded
// on Apache appendPath(String), which is exactly
// appendPathSegments(splitPath(path)).
func (b *Builder) AppendPath(p string) *Builder {
	return b.AppendPathSegments(path.Split(p)...)
}

// AppendPathSegments appends decoded path segments.
func (b *Builder) AppendPathSegments(segments ...string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearPathCache()
	b.pathSegments = append(b.pathSegments, segments...)
	return b
}

func (b *Builder) clearQueryCache() {
	b.hasEncodedQuery = false
	b.encodedQuery = ""
	b.hasQuery = false
	b.query = ""
}

// SetCustomQuery sets a raw, single-blob query string that is encoded
// verbatim rather than split into name/value pairs. A blank string
// normalizes to unset, matching Apache setCustomQuery's
// !TextUtils.isBlank(query) guard.
func (b *Builder) SetCustomQuery(raw string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearQueryCache()
	b.queryParams = nil
	b.query = raw
	b.hasQuery = strings.TrimSpace(raw) != ""
	return b
}

// SetParameter replaces every existing parameter named name with a
// single pair (name, value).
func (b *Builder) SetParameter(name, value string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearQueryCache()
	filtered := b.queryParams[:0:0]
	for _, p := range b.queryParams {
		if p.Name() != name {
			filtered = append(filtered, p)
		}
	}
	filtered = append(filtered, pair.New(name, value))
	b.queryParams = filtered
	return b
}

// AddParameter appends a single (name, value) pair to the query.
func (b *Builder) AddParameter(name, value string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearQueryCache()
	b.queryParams = append(b.queryParams, pair.New(name, value))
	return b
}

// AddParameters appends every pair in params to the query.
func (b *Builder) AddParameters(params ...pair.Pair) *Builder {
	b.clearSchemeSpecificPart()
	b.clearQueryCache()
	b.queryParams = append(b.queryParams, params...)
	return b
}

// RemoveParameter drops every parameter named name. An empty name is a
// valid parameter name in this engine (Go has no null string), so this
// is never rejected.
func (b *Builder) RemoveParameter(name string) *Builder {
	b.clearSchemeSpecificPart()
	b.clearQueryCache()
	filtered := b.queryParams[:0:0]
	for _, p := range b.queryParams {
		if p.Name() != name {
			filtered = append(filtered, p)
		}
	}
	b.queryParams = filtered
	return b
}

// ClearParameters drops every query parameter, leaving an empty
// (non-nil) query.
func (b *Builder) ClearParameters() *Builder {
	b.clearSchemeSpecificPart()
	b.clearQueryCache()
	b.queryParams = []pair.Pair{}
	return b
}

// RemoveQuery clears the query entirely (nil pathSegments-equivalent
// for query: no query component at all).
func (b *Builder) RemoveQuery() *Builder {
	b.clearSchemeSpecificPart()
	b.clearQueryCache()
	b.queryParams = nil
	return b
}

// SetFragment sets the decoded fragment. An empty string clears it.
func (b *Builder) SetFragment(fragment string) *Builder {
	b.fragment = fragment
	b.hasFragment = fragment != ""
	b.encodedFragment = ""
	b.hasEncodedFragment = false
	return b
}

// SetCharset changes the charset used for future encode/decode of
// decoded-form setters and accessors.
func (b *Builder) SetCharset(cs percent.Charset) *Builder {
	b.charset = cs
	return b
}

// SetEncodingPolicy changes which safe set Build uses per component.
func (b *Builder) SetEncodingPolicy(policy EncodingPolicy) *Builder {
	b.encodingPolicy = policy
	return b
}

// SetPlusAsBlank toggles '+' <-> space duality for the query component.
// If a raw encoded query is cached, it is re-parsed into query
// parameters under the new setting; parameters set through the other
// mutators (with no cached encoded query) are left as they are.
func (b *Builder) SetPlusAsBlank(plusAsBlank bool) *Builder {
	if b.plusAsBlank == plusAsBlank {
		return b
	}
	b.plusAsBlank = plusAsBlank
	if b.hasEncodedQuery {
		if params, err := query.Parse(b.encodedQuery, b.charset, b.plusAsBlank); err == nil {
			b.queryParams = params
		}
	}
	return b
}

// SetSchemeSpecificPart sets the raw scheme-specific part directly,
// bypassing authority/path/query decomposition (an opaque URI).
func (b *Builder) SetSchemeSpecificPart(ssp string) *Builder {
	b.encodedSchemeSpecificPart = ssp
	b.hasSchemeSpecificPart = true
	b.clearAuthorityCache()
	b.clearPathCache()
	b.clearQueryCache()
	b.hasUserInfo, b.hasHost = false, false
	b.pathSegments = nil
	b.queryParams = nil
	return b
}

// SetSchemeSpecificPartWithQuery sets ssp and appends a formatted query
// built from params. Grounded on Apache
// setSchemeSpecificPart(String, NameValuePair...).
func (b *Builder) SetSchemeSpecificPartWithQuery(ssp string, params ...pair.Pair) (*Builder, error) {
	b.SetSchemeSpecificPart(ssp)
	var buf bytes.Buffer
	if err := query.Format(&buf, params, b.charset, safeSet(slotQuery, b.encodingPolicy), b.plusAsBlank); err != nil {
		return b, err
	}
	b.encodedSchemeSpecificPart = ssp + "?" + buf.String()
	return b, nil
}
