//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package system

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"
)

// Version describes the host OS release, e.g. "ubuntu 22.04 (linux 6.5.0-41-generic)".
// It degrades to runtime.GOOS when the release cannot be probed.
func Version() string {
	platform, _, version, err := host.PlatformInformation()
	if err != nil {
		logrus.Warnf("failed to get platform information: %v", err)
	}
	kernel, err := host.KernelVersion()
	if err != nil {
		logrus.Warnf("failed to get kernel version: %v", err)
	}

	// The version might have newlines or tabs; convert to spaces.
	version = strings.Join(strings.Fields(version), " ")

	var b strings.Builder
	if platform != "" {
		b.WriteString(platform)
		if version != "" {
			b.WriteString(" " + version)
		}
		b.WriteString(" (")
	}
	b.WriteString(runtime.GOOS)
	if kernel != "" {
		b.WriteString(" " + kernel)
	}
	if platform != "" {
		b.WriteString(")")
	}
	return b.String()
}
