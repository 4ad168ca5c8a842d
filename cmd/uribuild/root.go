/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package main implements uribuild, a demo CLI that parses, mutates,
// optimizes, and re-serializes a URI from flags, exercising the uri
// package end to end.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cliViper *viper.Viper
	cfgFile  string
)

var rootCmd = &cobra.Command{
	Use:     "uribuild [base-uri]",
	Short:   "Parse, mutate, optimize, and serialize a URI",
	Version: "0.1.0",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runBuild,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("scheme", "", "set the scheme")
	flags.String("host", "", "set the host")
	flags.Int("port", -1, "set the port")
	flags.String("path", "", "set the decoded path")
	flags.StringSlice("query", nil, "add a name=value query parameter (repeatable)")
	flags.String("fragment", "", "set the decoded fragment")
	flags.String("charset", "utf-8", "charset used for percent-encode/decode")
	flags.String("policy", "strict", "encoding policy: strict or rfc3986")
	flags.Bool("optimize", false, "remove dot-segments and lowercase scheme/host before printing")
	flags.StringVar(&cfgFile, "config-file", "", "config file with default encoding-policy/charset")

	cliViper = viper.New()
	if err := cliViper.BindPFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("bind flags: %w", err))
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile == "" {
		return
	}
	cliViper.SetConfigFile(cfgFile)
	if err := cliViper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read config file: %w", err))
	}
}

func main() {
	Execute()
}
