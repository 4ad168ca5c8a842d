/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package authority parses the "user:info@host:port" authority
// production, including the bracketed IPv6-literal host form, and
// carries the small (scheme?, userInfo?, host, port) collaborator
// tuples used at the URIBuilder boundary.
package authority

import "strings"

// Parsed is the decomposition of a raw authority string.
type Parsed struct {
	UserInfo string // "" if absent
	Host     string // brackets stripped for IPv6 literals
	Port     int    // -1 if absent
}

// NamedEndpoint is the minimal collaborator any (host, port) tuple must
// satisfy to be adopted via Builder.SetAuthority.
type NamedEndpoint interface {
	HostName() string
	Port() int
}

// HttpHost carries a scheme, host name, and port, e.g. "https://example.com:8443".
type HttpHost struct {
	scheme string
	host   string
	port   int
}

// NewHttpHost builds an HttpHost. port may be -1 for "unset".
func NewHttpHost(scheme, host string, port int) HttpHost {
	return HttpHost{scheme: scheme, host: host, port: port}
}

func (h HttpHost) Scheme() string   { return h.scheme }
func (h HttpHost) HostName() string { return h.host }
func (h HttpHost) Port() int        { return h.port }

// URIAuthority carries the (userInfo?, host, port) triple of a URI's
// authority component.
type URIAuthority struct {
	userInfo string
	host     string
	port     int
}

// NewURIAuthority builds a URIAuthority. port may be -1 for "unset".
func NewURIAuthority(userInfo, host string, port int) URIAuthority {
	return URIAuthority{userInfo: userInfo, host: host, port: port}
}

func (a URIAuthority) UserInfo() string { return a.userInfo }
func (a URIAuthority) HostName() string { return a.host }
func (a URIAuthority) Port() int        { return a.port }

// IsIPv6Bracketed reports whether host begins with '[' and ends with ']'
// — the URI-syntax marker for a raw IPv6 literal.
func IsIPv6Bracketed(host string) bool {
	return len(host) >= 2 && strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]")
}

// IsIPv6 reports whether host (already unbracketed) looks like an IPv6
// literal, i.e. it contains a ':'. This mirrors the source's textual
// heuristic rather than performing full address validation, since a
// decoded host string here is never anything but a literal address or a
// reg-name.
func IsIPv6(host string) bool {
	return strings.Contains(host, ":")
}
