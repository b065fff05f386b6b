//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package define

const (
	RuntimesPrefixDir = "runtimes"
	NativePrefixDir   = "native"

	NodeBinaryName        = "node"
	NodeWindowsBinaryName = "node.exe"

	LogOutStdout = "stdout"
	LogOutStderr = "stderr"

	FormatText = "text"
	FormatJSON = "json"

	DefaultLogLevel = "info"
	DefaultFormat   = FormatText
)

// Environment variables consulted while probing the host.
const (
	RuntimeIdentifierEnv = "NODELOCATOR_RUNTIME_IDENTIFIER"
	BaseDirEnv           = "NODELOCATOR_BASE_DIR"
)

var (
	GitCommit string
)
