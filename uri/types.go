/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package uri implements URIBuilder: a mutable URI component state
// machine that keeps both raw-encoded and decoded representations of
// each component in sync, and serializes back to a byte-faithful RFC
// 3986 string.
package uri

import (
	"github.com/badu/uri/pair"
	"github.com/badu/uri/percent"
)

// EncodingPolicy selects which safe-character set is used per component
// when a decoded value has to be re-encoded.
type EncodingPolicy int

const (
	// Strict allows only RFC 3986 unreserved characters to remain
	// unescaped in every component. This is the default.
	Strict EncodingPolicy = iota

	// RFC3986Policy follows the component-specific safe sets of RFC
	// 3986 (userinfo, reg-name, path segment, query, fragment each
	// have their own broader safe set).
	RFC3986Policy
)

// Builder is the mutable URI component state machine described by this
// package's documentation. The zero value is not usable; construct one
// with NewBuilder or NewBuilderFromString.
//
// A Builder is not safe for concurrent use: mutators touch several
// fields non-atomically. The URI value returned by Build is immutable
// and safe to share.
type Builder struct {
	scheme                    string
	hasScheme                 bool
	encodedSchemeSpecificPart string
	hasSchemeSpecificPart     bool
	encodedAuthority          string
	hasEncodedAuthority       bool
	userInfo                  string
	hasUserInfo               bool
	encodedUserInfo           string
	hasEncodedUserInfo        bool
	host                      string
	hasHost                   bool
	port                      int
	encodedPath               string
	hasEncodedPath            bool
	pathRootless              bool
	pathSegments              []string // nil means unset
	encodedQuery              string
	hasEncodedQuery           bool
	queryParams               []pair.Pair // nil means unset
	query                     string
	hasQuery                  bool
	fragment                  string
	hasFragment               bool
	encodedFragment           string
	hasEncodedFragment        bool

	charset        percent.Charset
	encodingPolicy EncodingPolicy
	plusAsBlank    bool
}

// NewBuilder returns an empty Builder: every component unset, port -1,
// EncodingPolicy Strict, charset UTF-8, plusAsBlank false.
func NewBuilder() *Builder {
	return &Builder{
		port:    -1,
		charset: percent.UTF8(),
	}
}
