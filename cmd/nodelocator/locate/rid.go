//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package locate

import (
	"fmt"
	"io"

	"nodelocator/cmd/registry"
	"nodelocator/pkg/platform"

	"github.com/spf13/cobra"
)

var ridCmd = &cobra.Command{
	Use:   "rid",
	Short: "Print the platform identifier of the host",
	Long:  "Resolve the platform identifier (e.g. linux-x64) used to select the bundled Node.js runtime",
	Args:  cobra.NoArgs,
	RunE:  rid,
	Example: `nodelocator rid
  nodelocator rid --runtime-identifier linux-x64-musl --os freebsd`,
}

type ridResult struct {
	Identifier        platform.Identifier `json:"identifier"`
	OS                string              `json:"os"`
	Arch              string              `json:"arch"`
	RuntimeIdentifier string              `json:"runtimeIdentifier"`
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: ridCmd,
	})
}

func rid(cmd *cobra.Command, _ []string) error {
	h, isCurrent, err := targetHost(registry.Config())
	if err != nil {
		return err
	}

	id, err := platform.Resolve(h)
	if err != nil {
		return describeFailure(err, isCurrent)
	}

	res := ridResult{
		Identifier:        id,
		OS:                h.OS.String(),
		Arch:              h.Arch.String(),
		RuntimeIdentifier: h.RuntimeIdentifier,
	}
	return registry.WriteResult(cmd.OutOrStdout(), res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, id)
		return err //nolint:wrapcheck
	})
}
