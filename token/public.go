/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package token

import "github.com/badu/uri/charclass"

// ParseToken advances cur from its current position until src is
// exhausted or a character in delims is found, and returns the spanned
// substring without consuming the delimiter.
func ParseToken(src string, cur *Cursor, delims charclass.Set) string {
	start := cur.Pos
	for cur.Pos < cur.End && !delims.Contains(src[cur.Pos]) {
		cur.Pos++
	}
	return src[start:cur.Pos]
}

// QueryParamSeparators is the delimiter set {'&', '='} used when scanning
// a query-string parameter name.
var QueryParamSeparators = charclass.Of('&', '=')

// QueryValueSeparators is the delimiter set {'&'} used when scanning a
// query-string parameter value.
var QueryValueSeparators = charclass.Of('&')
