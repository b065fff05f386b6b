//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package locate

import (
	"fmt"
	"io"

	"nodelocator/cmd/registry"
	"nodelocator/pkg/define"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := define.GitCommit
		if v == "" {
			v = "unknown"
		}
		return registry.WriteResult(cmd.OutOrStdout(), map[string]string{"version": v}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, v)
			return err //nolint:wrapcheck
		})
	},
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: versionCmd,
	})
}
