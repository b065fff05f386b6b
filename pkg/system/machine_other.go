//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

//go:build !unix

package system

import (
	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"
)

// MachineArch returns the native processor architecture as reported by the
// kernel (x86_64, arm64, ...), also for emulated processes.
func MachineArch() string {
	arch, err := host.KernelArch()
	if err != nil {
		logrus.Warnf("failed to get kernel architecture: %v", err)
		return ""
	}
	return arch
}
