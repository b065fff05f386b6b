//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"nodelocator/pkg/define"
	"nodelocator/pkg/system"
)

// Host is what resolution looks at. OSDescription and ArchDescription are
// only used for diagnostics.
type Host struct {
	OS   OSFamily
	Arch Arch

	// RuntimeIdentifier is the free-form identifier used by the prefix
	// fallback, e.g. "linux-x64-musl".
	RuntimeIdentifier string

	GOOS            string
	GOARCH          string
	OSDescription   string
	ArchDescription string
}

func (h Host) Key() Key {
	return Key{OS: h.OS, Arch: h.Arch}
}

func (h Host) osDescription() string {
	if h.OSDescription != "" {
		return h.OSDescription
	}
	if h.GOOS != "" {
		return h.GOOS
	}
	return h.OS.String()
}

func (h Host) archDescription() string {
	if h.ArchDescription != "" {
		return h.ArchDescription
	}
	if h.GOARCH != "" {
		return h.GOARCH
	}
	return h.Arch.String()
}

// HostFor builds the Host of a Go target. The runtime identifier is derived
// from goos and goarch.
func HostFor(goos, goarch string) Host {
	return Host{
		OS:                OSFamilyFromGOOS(goos),
		Arch:              ArchFromGOARCH(goarch),
		RuntimeIdentifier: RuntimeIdentifierFor(goos, goarch),
		GOOS:              goos,
		GOARCH:            goarch,
	}
}

// HostForNames is HostFor for user supplied names such as "macos"/"x64" or
// "freebsd"/"386". Names outside the catalog give UnknownOS or UnknownArch,
// leaving the decision to the prefix fallback.
func HostForNames(osName, archName string) Host {
	return HostFor(CanonicalGOOS(osName), CanonicalGOARCH(archName))
}

// CurrentHost describes the running process. NODELOCATOR_RUNTIME_IDENTIFIER,
// when set, replaces the derived runtime identifier.
func CurrentHost() Host {
	h := HostFor(runtime.GOOS, runtime.GOARCH)
	if rid := strings.TrimSpace(os.Getenv(define.RuntimeIdentifierEnv)); rid != "" {
		h.RuntimeIdentifier = rid
	}
	return h
}

// RuntimeIdentifierFor renders goos/goarch in identifier form, e.g.
// windows/386 -> "win-x86", freebsd/amd64 -> "freebsd-x64".
func RuntimeIdentifierFor(goos, goarch string) string {
	osToken := OSFamilyFromGOOS(goos).Token()
	if osToken == "" {
		osToken = goos
	}

	archToken := ArchFromGOARCH(goarch).Token()
	if archToken == "" {
		switch goarch {
		case "386":
			archToken = "x86"
		default:
			archToken = goarch
		}
	}
	return fmt.Sprintf("%s-%s", osToken, archToken)
}

// WithHostDetails fills a NotSupportedError with the probed OS release and
// kernel machine name. Probing is skipped on the success path.
func WithHostDetails(err error) error {
	var nse *NotSupportedError
	if !errors.As(err, &nse) {
		return err
	}
	nse.OSDescription = system.Version()
	if machine := system.MachineArch(); machine != "" && machine != runtime.GOARCH {
		nse.Architecture = fmt.Sprintf("%s (%s)", runtime.GOARCH, machine)
	} else {
		nse.Architecture = runtime.GOARCH
	}
	return err
}
