//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "nodelocator/cmd/nodelocator/locate"
	"nodelocator/cmd/registry"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "nodelocator",
	Short:             "Locate the Node.js runtime bundled with an application",
	Long:              "Resolve the platform identifier of the host and find the matching runtimes/<rid>/native/node binary",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: registry.PersistentPreRunE,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	registry.AddPersistentFlags(rootCmd.PersistentFlags())
	for _, c := range registry.Commands {
		parent := rootCmd
		if c.Parent != nil {
			parent = c.Parent
		}
		parent.AddCommand(c.Command)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	NotifyAndExit(err)
}

func NotifyAndExit(err error) {
	if err != nil {
		logrus.Error(err.Error())
	}
	registry.SetExitCode(registry.ExitCodeFor(err))
	os.Exit(registry.GetExitCode())
}
