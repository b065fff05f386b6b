//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package cmdflags

const (
	ConfigFlag            = "config"
	BaseDirFlag           = "base-dir"
	RuntimeIdentifierFlag = "runtime-identifier"
	OSFlag                = "os"
	ArchFlag              = "arch"
	LogLevelFlag          = "log-level"
	LogOutFlag            = "log-out"
	FormatFlag            = "format"
)

const (
	ExitOK                   = 0
	ExitError                = 1
	ExitPlatformNotSupported = 2
	ExitBinaryNotFound       = 3
)
