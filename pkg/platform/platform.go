//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package platform maps the host operating system and processor architecture
// to the identifier naming the directory of a bundled runtime, e.g. "linux-x64".
package platform

import (
	"strings"

	"nodelocator/pkg/define"

	"github.com/sirupsen/logrus"
)

// Identifier is a platform identifier from the catalog, e.g. "osx-arm64".
type Identifier string

const (
	WinX64     Identifier = "win-x64"
	WinArm64   Identifier = "win-arm64"
	LinuxX64   Identifier = "linux-x64"
	LinuxArm64 Identifier = "linux-arm64"
	OSXX64     Identifier = "osx-x64"
	OSXArm64   Identifier = "osx-arm64"
)

func (id Identifier) String() string {
	return string(id)
}

// Key reports the (OS, architecture) pair id is resolved from.
func (id Identifier) Key() (Key, bool) {
	for k, v := range resolutionTable {
		if v == id {
			return k, true
		}
	}
	return Key{}, false
}

// Key is the exact lookup key of the resolution table.
type Key struct {
	OS   OSFamily
	Arch Arch
}

// knownIdentifiers is the catalog. Prefix fallback walks it in this order
// and the first match wins.
var knownIdentifiers = [...]Identifier{
	WinX64,
	WinArm64,
	LinuxX64,
	LinuxArm64,
	OSXX64,
	OSXArm64,
}

var resolutionTable = map[Key]Identifier{
	{OS: Windows, Arch: X64}:   WinX64,
	{OS: Windows, Arch: Arm64}: WinArm64,
	{OS: Linux, Arch: X64}:     LinuxX64,
	{OS: Linux, Arch: Arm64}:   LinuxArm64,
	{OS: MacOS, Arch: X64}:     OSXX64,
	{OS: MacOS, Arch: Arm64}:   OSXArm64,
}

// KnownIdentifiers returns a copy of the catalog in fallback order.
func KnownIdentifiers() []Identifier {
	ids := make([]Identifier, len(knownIdentifiers))
	copy(ids, knownIdentifiers[:])
	return ids
}

// Lookup is the exact (OS, architecture) match.
func Lookup(k Key) (Identifier, bool) {
	id, ok := resolutionTable[k]
	return id, ok
}

// MatchPrefix returns the first catalog entry that is a case-insensitive
// prefix of rid.
func MatchPrefix(rid string) (Identifier, bool) {
	if rid == "" {
		return "", false
	}
	lower := strings.ToLower(rid)
	for _, id := range knownIdentifiers {
		if strings.HasPrefix(lower, string(id)) {
			return id, true
		}
	}
	return "", false
}

// Resolve returns the catalog identifier for h: the exact table entry for its
// (OS, architecture) pair, otherwise the first catalog entry prefixing
// h.RuntimeIdentifier. It fails with *NotSupportedError when neither matches.
func Resolve(h Host) (Identifier, error) {
	if id, ok := Lookup(h.Key()); ok {
		logrus.Debugf("Resolved platform %q from %s/%s", id, h.OS, h.Arch)
		return id, nil
	}

	if id, ok := MatchPrefix(h.RuntimeIdentifier); ok {
		logrus.Debugf("Resolved platform %q from runtime identifier %q", id, h.RuntimeIdentifier)
		return id, nil
	}

	return "", &NotSupportedError{
		OSDescription:     h.osDescription(),
		Architecture:      h.archDescription(),
		RuntimeIdentifier: h.RuntimeIdentifier,
	}
}

// ResolveIdentifier resolves the identifier of the running process.
func ResolveIdentifier() (Identifier, error) {
	h := CurrentHost()
	id, err := Resolve(h)
	if err != nil {
		return "", WithHostDetails(err)
	}
	return id, nil
}

// ExecutableFileName is the bundled node binary name for the OS family.
func ExecutableFileName(o OSFamily) string {
	if o == Windows {
		return define.NodeWindowsBinaryName
	}
	return define.NodeBinaryName
}
