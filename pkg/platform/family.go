//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"strings"

	"nodelocator/pkg/define"
)

// OSFamily is the operating system family a bundled runtime is built for.
type OSFamily int

const (
	UnknownOS OSFamily = iota
	Windows
	Linux
	MacOS
)

const (
	windows = "windows"
	linux   = "linux"
	macos   = "macos"
	unknown = "unknown"
)

func (o OSFamily) String() string {
	switch o {
	case Windows:
		return windows
	case Linux:
		return linux
	case MacOS:
		return macos
	default:
	}
	return unknown
}

// Token is the OS part of a platform identifier, e.g. "osx" for MacOS.
func (o OSFamily) Token() string {
	switch o {
	case Windows:
		return "win"
	case Linux:
		return linux
	case MacOS:
		return "osx"
	default:
	}
	return ""
}

// ParseOSFamily accepts Go names (darwin), family names (macos) and
// identifier tokens (osx). An empty input yields fallback.
func ParseOSFamily(input string, fallback OSFamily) (OSFamily, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case windows, "win":
		return Windows, nil
	case linux:
		return Linux, nil
	case macos, "darwin", "osx":
		return MacOS, nil
	case "":
		return fallback, nil
	default:
		return UnknownOS, fmt.Errorf("unknown OS family %q: %w", input, define.ErrInvalidArg)
	}
}

// CanonicalGOOS turns a name accepted by ParseOSFamily into its runtime.GOOS
// value. Unclassified names (freebsd, plan9) are returned lower-cased so they
// still end up in the derived runtime identifier.
func CanonicalGOOS(input string) string {
	name := strings.TrimSpace(strings.ToLower(input))
	switch o, _ := ParseOSFamily(name, UnknownOS); o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "darwin"
	default:
	}
	return name
}

// OSFamilyFromGOOS classifies a runtime.GOOS value. Anything outside the
// three supported families is UnknownOS.
func OSFamilyFromGOOS(goos string) OSFamily {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	default:
	}
	return UnknownOS
}

// Arch is the processor architecture a bundled runtime is built for.
type Arch int

const (
	UnknownArch Arch = iota
	X64
	Arm64
)

const (
	x64   = "x64"
	arm64 = "arm64"
)

func (a Arch) String() string {
	switch a {
	case X64:
		return x64
	case Arm64:
		return arm64
	default:
	}
	return unknown
}

// Token is the architecture part of a platform identifier.
func (a Arch) Token() string {
	switch a {
	case X64, Arm64:
		return a.String()
	default:
	}
	return ""
}

// ParseArch accepts Go names (amd64), identifier tokens (x64) and kernel
// machine names (x86_64, aarch64). An empty input yields fallback.
func ParseArch(input string, fallback Arch) (Arch, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case x64, "amd64", "x86_64":
		return X64, nil
	case arm64, "aarch64":
		return Arm64, nil
	case "":
		return fallback, nil
	default:
		return UnknownArch, fmt.Errorf("unknown architecture %q: %w", input, define.ErrInvalidArg)
	}
}

// CanonicalGOARCH is CanonicalGOOS for architectures: x64 and x86_64 become
// amd64, aarch64 becomes arm64.
func CanonicalGOARCH(input string) string {
	name := strings.TrimSpace(strings.ToLower(input))
	switch a, _ := ParseArch(name, UnknownArch); a {
	case X64:
		return "amd64"
	case Arm64:
		return "arm64"
	default:
	}
	return name
}

// ArchFromGOARCH classifies a runtime.GOARCH value.
func ArchFromGOARCH(goarch string) Arch {
	switch goarch {
	case "amd64":
		return X64
	case "arm64":
		return Arm64
	default:
	}
	return UnknownArch
}
