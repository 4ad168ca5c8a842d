/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package token provides the minimal cursor-based scanner shared by the
// query and path parsers.
package token

// Cursor tracks a scan position over a bounded slice of a string. Start
// and End delimit the region being scanned; Pos is the current offset.
type Cursor struct {
	Start, End, Pos int
}

// NewCursor returns a Cursor covering s[0:len(s)].
func NewCursor(s string) *Cursor {
	return &Cursor{Start: 0, End: len(s), Pos: 0}
}

// AtEnd reports whether the cursor has reached the end of its region.
func (c *Cursor) AtEnd() bool {
	return c.Pos >= c.End
}
