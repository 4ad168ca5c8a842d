/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package pair defines the name/value collaborator used for query
// parameters. It is deliberately minimal: this module depends only on
// the Pair interface, never on a concrete container type.
package pair

// Pair is an ordered name/value entry. Value's second return reports
// whether a value is present at all ("name" vs "name=") — a pair can
// have a name with no '=' in the serialized query string.
type Pair interface {
	Name() string
	Value() (value string, ok bool)
}

// Basic is the default, immutable Pair implementation.
type Basic struct {
	name     string
	value    string
	hasValue bool
}
