/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percent

import "github.com/badu/uri/charclass"

// Codec is a reusable percent-encoder/decoder bound to one safe set. It is
// immutable and safe for concurrent use.
type Codec struct {
	safe charclass.Set
}

// NewCodec returns a Codec whose safe set is safe.
func NewCodec(safe charclass.Set) *Codec {
	return &Codec{safe: safe}
}

// RFC3986 is the general-purpose codec: only RFC 3986 unreserved
// characters are left unescaped.
var RFC3986 = NewCodec(charclass.Unreserved)

// RFC5987 is the attribute-value codec used for constructs such as
// Content-Disposition's filename* parameter.
var RFC5987 = NewCodec(charclass.RFC5987Unreserved)

// Encode percent-encodes content as UTF-8 with blankAsPlus=false.
func (c *Codec) Encode(content string) (string, error) {
	return EncodeString(content, UTF8(), c.safe, false)
}

// Decode percent-decodes content as UTF-8 with plusAsBlank=false.
func (c *Codec) Decode(content string) (string, error) {
	return Decode(content, UTF8(), false)
}
