//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package locate

import (
	"fmt"

	"nodelocator/cmd/registry"
	"nodelocator/pkg/config"
	"nodelocator/pkg/define"
	"nodelocator/pkg/platform"
)

// targetHost is the host selected by --os/--arch/--runtime-identifier, or
// the running process.
func targetHost(c *config.Config) (platform.Host, bool, error) {
	h, err := c.Host()
	if err != nil {
		return h, false, fmt.Errorf("invalid target host: %w", err)
	}
	return h, c.OS == "" && c.Arch == "", nil
}

// describeFailure adds the probed host details when the running host itself
// is unsupported.
func describeFailure(err error, isCurrent bool) error {
	if isCurrent {
		return platform.WithHostDetails(err)
	}
	return err
}

func baseDirectory() (string, error) {
	base := registry.Config().BaseDirectory
	if base == "" {
		return "", fmt.Errorf("no base directory, use --base-dir: %w", define.ErrInvalidArg)
	}
	return base, nil
}
