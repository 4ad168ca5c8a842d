/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/badu/uri/pair"
	"github.com/badu/uri/percent"
	"github.com/badu/uri/uri"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func runBuild(cmd *cobra.Command, args []string) error {
	base := ""
	if len(args) == 1 {
		base = args[0]
	}

	b, err := newBuilder(base)
	if err != nil {
		return errors.Wrap(err, "uribuild")
	}

	if err := applyFlags(cmd, b); err != nil {
		return errors.Wrap(err, "uribuild")
	}

	if optimize, _ := cmd.Flags().GetBool("optimize"); optimize {
		log.Debug().Msg("optimizing")
		b.Optimize()
	}

	result, err := b.Build()
	if err != nil {
		return errors.Wrap(err, "uribuild: build")
	}

	fmt.Println(result.String())
	return nil
}

func newBuilder(base string) (*uri.Builder, error) {
	if base == "" {
		log.Debug().Msg("no base URI given, starting empty")
		return uri.NewBuilder(), nil
	}
	log.Debug().Str("base", base).Msg("parsing base URI")
	return uri.NewBuilderFromString(base)
}

func applyFlags(cmd *cobra.Command, b *uri.Builder) error {
	flags := cmd.Flags()

	if charsetName := cliViper.GetString("charset"); charsetName != "" && charsetName != "utf-8" {
		cs, err := percent.NewCharset(charsetName)
		if err != nil {
			return err
		}
		b.SetCharset(cs)
	}

	if policyName := cliViper.GetString("policy"); strings.EqualFold(policyName, "rfc3986") {
		b.SetEncodingPolicy(uri.RFC3986Policy)
	}

	if scheme, _ := flags.GetString("scheme"); scheme != "" {
		b.SetScheme(scheme)
	}
	if host, _ := flags.GetString("host"); host != "" {
		b.SetHost(host)
	}
	if port, _ := flags.GetInt("port"); port >= 0 {
		b.SetPort(port)
	}
	if p, _ := flags.GetString("path"); p != "" {
		b.SetPath(p)
	}
	if fragment, _ := flags.GetString("fragment"); fragment != "" {
		b.SetFragment(fragment)
	}

	queries, _ := flags.GetStringSlice("query")
	for _, kv := range queries {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			b.AddParameters(pair.NewFlag(name))
			continue
		}
		b.AddParameters(pair.New(name, value))
	}

	return nil
}
