//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package locate

import (
	"fmt"
	"io"

	"nodelocator/cmd/registry"
	"nodelocator/pkg/libexec"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the bundled Node.js binary",
	Long:  "Resolve the host platform and print <base-dir>/runtimes/<rid>/native/node[.exe] if it exists",
	Args:  cobra.NoArgs,
	RunE:  path,
	Example: `nodelocator path --base-dir /opt/app
  nodelocator path --base-dir /opt/app --os windows --arch arm64`,
}

type pathResult struct {
	Path string `json:"path"`
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: pathCmd,
	})
}

func path(cmd *cobra.Command, _ []string) error {
	base, err := baseDirectory()
	if err != nil {
		return err
	}
	h, isCurrent, err := targetHost(registry.Config())
	if err != nil {
		return err
	}

	p, err := libexec.ExecutablePath(base, h)
	if err != nil {
		return describeFailure(err, isCurrent)
	}

	return registry.WriteResult(cmd.OutOrStdout(), pathResult{Path: p}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, p)
		return err //nolint:wrapcheck
	})
}
