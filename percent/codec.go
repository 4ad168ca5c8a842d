/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package percent implements the byte-accurate percent-encoding codec at
// the heart of this module: encode(charset-transcoded bytes, safe-set) and
// its forgiving decode counterpart, per RFC 3986 (and RFC 5987 for the
// attribute-value variant).
package percent

import (
	"bytes"

	"github.com/badu/uri/charclass"
)

const upperHex = "0123456789ABCDEF"

// Encode transcodes input via cs (UTF8() if nil) and appends its
// percent-encoded form to out. Bytes in safe are emitted verbatim; a
// space is emitted as '+' when blankAsPlus is set; everything else is
// emitted as an uppercase-hex "%XY" triplet.
func Encode(out *bytes.Buffer, input string, cs Charset, safe charclass.Set, blankAsPlus bool) error {
	if cs == nil {
		cs = UTF8()
	}
	raw, err := cs.Encode(input)
	if err != nil {
		return err
	}
	for _, b := range raw {
		switch {
		case safe.Contains(b):
			out.WriteByte(b)
		case blankAsPlus && b == ' ':
			out.WriteByte('+')
		default:
			out.WriteByte('%')
			out.WriteByte(upperHex[b>>4])
			out.WriteByte(upperHex[b&0xF])
		}
	}
	return nil
}

// EncodeString is Encode returning a freshly allocated string.
func EncodeString(input string, cs Charset, safe charclass.Set, blankAsPlus bool) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, input, cs, safe, blankAsPlus); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Decode scans input left to right, forgivingly: a "%xy" escape with
// non-hex digits is pushed through literally rather than rejected. A '%'
// with fewer than two characters after it is pushed as a bare '%' and
// decoding stops there, dropping what follows it. A '+' becomes a space
// when plusAsBlank is set. The resulting bytes are transcoded back to a
// UTF-8 string via cs (UTF8() if nil).
func Decode(input string, cs Charset, plusAsBlank bool) (string, error) {
	if cs == nil {
		cs = UTF8()
	}
	buf := make([]byte, 0, len(input))
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == '%':
			if i+2 < len(input) {
				hi, okHi := hexDigit(input[i+1])
				lo, okLo := hexDigit(input[i+2])
				if okHi && okLo {
					buf = append(buf, byte(hi<<4|lo))
					i += 3
					continue
				}
				buf = append(buf, '%', input[i+1], input[i+2])
				i += 3
				continue
			}
			// Fewer than two characters remain: push '%' and stop.
			buf = append(buf, '%')
			i = len(input)
		case plusAsBlank && c == '+':
			buf = append(buf, ' ')
			i++
		default:
			buf = append(buf, c)
			i++
		}
	}
	return cs.Decode(buf)
}
