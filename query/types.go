/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package query splits and joins the "k=v&k=v" query-string grammar
// without losing round-trip fidelity, delegating per-slot percent
// (de)coding to package percent.
package query

const (
	paramSeparator = '&'
	valueSeparator = '='
)
