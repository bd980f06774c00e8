// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toggle replays recorded gesture scripts against a draggable
// switch and draws every frame of it on the terminal.
package main

import (
	"context"
	"os"

	"cogentcore.org/toggle/base/logx"
	"cogentcore.org/toggle/toggle"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var quiet bool
	root := &cobra.Command{
		Use:          "toggle",
		Short:        "Play gesture scripts against a draggable switch",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(verbose >= 2, verbose == 1, quiet)
			logx.SetDefaultLogger()
		},
	}
	root.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more; -vv logs every step and state change")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	root.AddCommand(newPlayCmd(), newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "Print the default configuration, or check and print the given one, as TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := toggle.DefaultConfig()
			if len(args) == 1 {
				fn, err := homedir.Expand(args[0])
				if err != nil {
					return err
				}
				cfg, err = toggle.OpenConfig(fn)
				if err != nil {
					return err
				}
			}
			return cfg.Write(cmd.OutOrStdout())
		},
	}
}
