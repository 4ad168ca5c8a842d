/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package authority

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse decomposes a raw (still percent-encoded) authority string of the
// form "[userinfo@]host[:port]" into its parts. Bracketed IPv6 literals
// are recognized and unbracketed in the returned Host. Port is -1 when
// absent.
func Parse(encoded string) (*Parsed, error) {
	rest := encoded
	userInfo := ""
	if idx := strings.LastIndexByte(rest, '@'); idx != -1 {
		userInfo = rest[:idx]
		rest = rest[idx+1:]
	}

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return nil, errors.Errorf("authority: unterminated IPv6 literal in %q", encoded)
		}
		host := rest[1:end]
		remainder := rest[end+1:]
		port := -1
		if remainder != "" {
			if !strings.HasPrefix(remainder, ":") {
				return nil, errors.Errorf("authority: unexpected characters after IPv6 literal in %q", encoded)
			}
			p, err := strconv.Atoi(remainder[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "authority: invalid port in %q", encoded)
			}
			port = p
		}
		return &Parsed{UserInfo: userInfo, Host: host, Port: port}, nil
	}

	host := rest
	port := -1
	if idx := strings.LastIndexByte(rest, ':'); idx != -1 {
		p, err := strconv.Atoi(rest[idx+1:])
		if err == nil {
			host = rest[:idx]
			port = p
		}
	}
	return &Parsed{UserInfo: userInfo, Host: host, Port: port}, nil
}
