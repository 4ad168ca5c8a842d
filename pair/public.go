/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pair

// New returns a Pair with a present value (which may be the empty string).
func New(name, value string) Basic {
	return Basic{name: name, value: value, hasValue: true}
}

// NewFlag returns a Pair with no value at all ("name" rather than "name=").
func NewFlag(name string) Basic {
	return Basic{name: name}
}

func (p Basic) Name() string { return p.name }

func (p Basic) Value() (string, bool) { return p.value, p.hasValue }
