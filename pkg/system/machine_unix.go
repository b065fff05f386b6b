//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

//go:build unix

package system

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// MachineArch returns the kernel machine name (x86_64, aarch64, arm64, ...).
func MachineArch() string {
	utsname := &unix.Utsname{}
	if err := unix.Uname(utsname); err != nil {
		logrus.Warnf("failed to get hardware machine: %v", err)
		return ""
	}
	return unix.ByteSliceToString(utsname.Machine[:])
}
