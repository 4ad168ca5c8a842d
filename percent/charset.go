/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percent

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Charset is the byte-level transcoder collaborator. It converts between
// Go's native UTF-8 strings and the byte sequence a percent-encoded URI
// component actually carries. The zero value of any implementation is
// never used directly by this package; call UTF8() for the default.
type Charset interface {
	// Encode transcodes s (interpreted as UTF-8) into the charset's bytes.
	Encode(s string) ([]byte, error)
	// Decode transcodes b (in the charset's bytes) into a UTF-8 string.
	Decode(b []byte) (string, error)
	// Name reports the IANA name of the charset, e.g. "utf-8".
	Name() string
}

type xtextCharset struct {
	name string
	enc  encoding.Encoding
}

func (c xtextCharset) Encode(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "percent: encode to charset %q", c.name)
	}
	return out, nil
}

func (c xtextCharset) Decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(err, "percent: decode from charset %q", c.name)
	}
	return string(out), nil
}

func (c xtextCharset) Name() string { return c.name }

var utf8Charset = xtextCharset{name: "utf-8", enc: unicode.UTF8}

// UTF8 is the default Charset used throughout this module when the
// caller does not specify one.
func UTF8() Charset { return utf8Charset }

// NewCharset resolves name (any IANA/WHATWG label accepted by
// golang.org/x/text/encoding/htmlindex, e.g. "iso-8859-1", "windows-1252",
// "utf-8") to a Charset.
func NewCharset(name string) (Charset, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "percent: unknown charset %q", name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return xtextCharset{name: canonical, enc: enc}, nil
}
