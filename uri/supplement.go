/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package uri

import (
	"net"
	"strings"

	"github.com/pkg/errors"
)

// Localhost sets the host to the canonical name the resolver reports for
// "localhost" (net.LookupCNAME), with any trailing dot removed. Grounded
// on Apache URIBuilder.localhost().
func (b *Builder) Localhost() (*Builder, error) {
	name, err := net.LookupCNAME("localhost")
	if err != nil {
		return b, errors.Wrap(err, "uri: resolve localhost")
	}
	return b.SetHost(strings.TrimSuffix(name, ".")), nil
}

// LoopbackAddress sets the host to the IPv4 loopback address
// (127.0.0.1). Grounded on Apache URIBuilder.loopbackAddress().
func (b *Builder) LoopbackAddress() *Builder {
	return b.SetHost(net.IPv4(127, 0, 0, 1).String())
}
