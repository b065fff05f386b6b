//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package locate

import (
	"fmt"
	"io"
	"text/tabwriter"

	"nodelocator/cmd/registry"
	"nodelocator/pkg/platform"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the supported platform identifiers",
	Long:  "List the supported platform identifiers in the order used by the prefix fallback",
	Args:  cobra.NoArgs,
	RunE:  catalog,
}

type catalogEntry struct {
	Identifier platform.Identifier `json:"identifier"`
	OS         string              `json:"os"`
	Arch       string              `json:"arch"`
	Executable string              `json:"executable"`
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: catalogCmd,
	})
}

func catalog(cmd *cobra.Command, _ []string) error {
	ids := platform.KnownIdentifiers()
	entries := make([]catalogEntry, 0, len(ids))
	for _, id := range ids {
		k, _ := id.Key()
		entries = append(entries, catalogEntry{
			Identifier: id,
			OS:         k.OS.String(),
			Arch:       k.Arch.String(),
			Executable: platform.ExecutableFileName(k.OS),
		})
	}

	return registry.WriteResult(cmd.OutOrStdout(), entries, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
		fmt.Fprintln(tw, "RID\tOS\tARCH\tEXECUTABLE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Identifier, e.OS, e.Arch, e.Executable)
		}
		return tw.Flush() //nolint:wrapcheck
	})
}
