/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import "github.com/pkg/errors"

// ErrBlankHost is the sentinel wrapped by Error when Build is called on
// an http/https scheme with no host.
var ErrBlankHost = errors.New("uri: http/https URI cannot have an empty host identifier")

// ErrMalformedURI is a sentinel for input that is not syntactically a
// URI. NewBuilderFromString never returns it: its syntactic split
// accepts any string, so its errors come only from percent-decoding.
var ErrMalformedURI = errors.New("uri: malformed URI")

// Error reports an operation, the offending input, and the underlying
// cause, mirroring the teacher's *url.Error{Op, URL, Err} shape.
type Error struct {
	Op    string
	Input string
	Err   error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Input + ": " + e.Err.Error()
}

// Unwrap allows errors.Is/errors.As (and pkg/errors.Cause) to see through
// to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause returns the wrapped cause for pkg/errors.Cause.
func (e *Error) Cause() error {
	return e.Err
}
