/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

// URI is the immutable result of Builder.Build: a validated, serialized
// URI string. It is safe to share across goroutines.
type URI struct {
	raw string
}

// String returns the serialized form.
func (u URI) String() string { return u.raw }
