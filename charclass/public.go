/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package charclass

// The RFC 3986 / RFC 5987 character classes. Each is built once at
// package init and never mutated afterwards, so concurrent readers need
// no locking.
var (
	Alpha  Set
	Digit  Set

	GenDelims Set
	SubDelims Set

	// Unreserved is ALPHA / DIGIT / "-" / "." / "_" / "~".
	Unreserved Set

	// Uric is Unreserved ∪ SubDelims (RFC 3986 "uric").
	Uric Set

	// Pchar is Unreserved ∪ SubDelims ∪ {':', '@'}.
	Pchar Set

	// Userinfo is Unreserved ∪ SubDelims ∪ {':'}.
	Userinfo Set

	// RegName is Unreserved ∪ SubDelims (reg-name production).
	RegName Set

	// PathSegment is an alias for Pchar.
	PathSegment Set

	// Query is Pchar ∪ {'/', '?'}.
	Query Set

	// Fragment is Pchar ∪ {'/', '?'}.
	Fragment Set

	// RFC5987Unreserved is the attr-char production of RFC 5987.
	RFC5987Unreserved Set
)

func init() {
	Alpha = Set{}.withRange('a', 'z').withRange('A', 'Z')
	Digit = Set{}.withRange('0', '9')

	GenDelims = Set{}.with(":/?#[]@")
	SubDelims = Set{}.with("!$&'()*+,;=")

	Unreserved = Union(Alpha, Digit).with("-._~")
	Uric = Union(Unreserved, SubDelims)

	Pchar = Union(Unreserved, SubDelims).with(":@")
	Userinfo = Union(Unreserved, SubDelims).with(":")
	RegName = Union(Unreserved, SubDelims)
	PathSegment = Pchar
	Query = Union(Pchar).with("/?")
	Fragment = Union(Pchar).with("/?")

	RFC5987Unreserved = Union(Alpha, Digit).with("!#$&+-.^_`|~")
}
