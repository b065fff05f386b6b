//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package libexec finds the Node.js binary bundled under
// <base>/runtimes/<identifier>/native/.
package libexec

import (
	"fmt"
	"os"
	"path/filepath"

	"nodelocator/pkg/define"
	"nodelocator/pkg/platform"

	"github.com/sirupsen/logrus"
)

var (
	baseDir string
)

// Setup records the directory of executablePath as the application base
// directory used by FindNode.
func Setup(executablePath string) error {
	dir := filepath.Dir(executablePath)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("failed to find application base directory: %w", err)
	}
	baseDir = dir
	return nil
}

// BaseDirectory is the directory recorded by Setup.
func BaseDirectory() string {
	return baseDir
}

// FindNode returns the bundled node binary below the directory given to Setup.
func FindNode() (string, error) {
	if baseDir == "" {
		return "", fmt.Errorf("application base directory is not set up: %w", define.ErrInvalidArg)
	}
	return GetExecutablePath(baseDir)
}

// CandidatePath joins the expected location of the node binary for id.
func CandidatePath(baseDirectory string, id platform.Identifier, o platform.OSFamily) string {
	return filepath.Join(baseDirectory, define.RuntimesPrefixDir, id.String(), define.NativePrefixDir, platform.ExecutableFileName(o))
}

// GetExecutablePath resolves the identifier of the running process and
// returns the bundled node binary for it below baseDirectory.
func GetExecutablePath(baseDirectory string) (string, error) {
	id, err := platform.ResolveIdentifier()
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return find(baseDirectory, id, platform.CurrentHost().OS)
}

// ExecutablePath is GetExecutablePath for an explicit host.
func ExecutablePath(baseDirectory string, h platform.Host) (string, error) {
	id, err := platform.Resolve(h)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return find(baseDirectory, id, h.OS)
}

// find performs the single existence check. The file is never opened; a
// directory at the path does not count as the binary.
func find(baseDirectory string, id platform.Identifier, o platform.OSFamily) (string, error) {
	p := CandidatePath(baseDirectory, id, o)
	fi, err := os.Stat(p)
	if err == nil && fi.IsDir() {
		err = ErrIsDirectory
	}
	if err != nil {
		return "", &BinaryNotFoundError{
			Path:       p,
			Identifier: id,
			Known:      platform.KnownIdentifiers(),
			Err:        err,
		}
	}
	logrus.Debugf("Found node binary for %q at %q", id, p)
	return p, nil
}
