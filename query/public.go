/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package query

import (
	"bytes"

	"github.com/badu/uri/charclass"
	"github.com/badu/uri/pair"
	"github.com/badu/uri/percent"
	"github.com/badu/uri/token"
)

// Parse splits s on '&' into name/value tokens, percent-decoding each
// with cs and plusAsBlank. A pair whose name is empty (e.g. the "" in
// "a=1&=d") is dropped. A pair with no '=' at all yields a Pair with no
// value (pair.NewFlag semantics).
func Parse(s string, cs percent.Charset, plusAsBlank bool) ([]pair.Pair, error) {
	if s == "" {
		return []pair.Pair{}, nil
	}
	cur := token.NewCursor(s)
	var out []pair.Pair
	for !cur.AtEnd() {
		name := token.ParseToken(s, cur, token.QueryParamSeparators)
		var (
			value    string
			hasValue bool
		)
		if !cur.AtEnd() {
			delim := s[cur.Pos]
			cur.Pos++
			if delim == valueSeparator {
				value = token.ParseToken(s, cur, token.QueryValueSeparators)
				hasValue = true
				if !cur.AtEnd() {
					cur.Pos++ // skip trailing '&'
				}
			}
		}
		if name == "" {
			continue
		}
		decodedName, err := percent.Decode(name, cs, plusAsBlank)
		if err != nil {
			return nil, err
		}
		if !hasValue {
			out = append(out, pair.NewFlag(decodedName))
			continue
		}
		decodedValue, err := percent.Decode(value, cs, plusAsBlank)
		if err != nil {
			return nil, err
		}
		out = append(out, pair.New(decodedName, decodedValue))
	}
	if out == nil {
		out = []pair.Pair{}
	}
	return out, nil
}

// Format joins params with '&', percent-encoding each name/value with cs
// and safe. Pairs without a value are written as a bare name.
func Format(out *bytes.Buffer, params []pair.Pair, cs percent.Charset, safe charclass.Set, blankAsPlus bool) error {
	for i, p := range params {
		if i > 0 {
			out.WriteByte(paramSeparator)
		}
		if err := percent.Encode(out, p.Name(), cs, safe, blankAsPlus); err != nil {
			return err
		}
		if value, ok := p.Value(); ok {
			out.WriteByte(valueSeparator)
			if err := percent.Encode(out, value, cs, safe, blankAsPlus); err != nil {
				return err
			}
		}
	}
	return nil
}
