//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package locate

import (
	"fmt"
	"io"
	"text/tabwriter"

	"nodelocator/cmd/registry"
	"nodelocator/pkg/libexec"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check which platforms have a bundled Node.js binary",
	Long:  "Check <base-dir>/runtimes/<rid>/native/ for every supported platform identifier",
	Args:  cobra.NoArgs,
	RunE:  audit,
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: auditCmd,
	})
}

func audit(cmd *cobra.Command, _ []string) error {
	base, err := baseDirectory()
	if err != nil {
		return err
	}

	entries, err := libexec.Audit(cmd.Context(), base)
	if err != nil {
		return err //nolint:wrapcheck
	}

	missing := 0
	for _, e := range entries {
		if !e.Present {
			missing++
		}
	}
	logrus.Debugf("Audit of %q: %d of %d platforms missing", base, missing, len(entries))

	return registry.WriteResult(cmd.OutOrStdout(), entries, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
		fmt.Fprintln(tw, "RID\tSTATUS\tSIZE\tPATH")
		for _, e := range entries {
			status, size := "missing", "-"
			switch {
			case e.Error != "":
				status = e.Error
			case e.Present:
				status, size = "ok", humanize.Bytes(uint64(e.Size))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Identifier, status, size, e.Path)
		}
		return tw.Flush() //nolint:wrapcheck
	})
}
