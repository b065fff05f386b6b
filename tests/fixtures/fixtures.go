//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package fixtures locates the checked-in test data under tests/fixtures.
//
// bundle/ is an application bundle holding node binaries for linux-x64,
// osx-arm64 and win-x64 only, next to an "app" executable.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var dir string
var once sync.Once

// GetTestFixtures joins elem below tests/fixtures of the module root.
func GetTestFixtures(elem ...string) string {
	once.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current working directory: %w", err))
		}
		dir = findFixtures(cwd)
	})

	return filepath.Join(append([]string{dir}, elem...)...)
}

// Bundle is the fixture application bundle.
func Bundle() string {
	return GetTestFixtures("bundle")
}

func findFixtures(dir string) string {
	if dir == "/" || filepath.VolumeName(dir) == dir {
		panic(fmt.Errorf("could not find project root (no go.mod found)"))
	}

	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
		return filepath.Join(dir, "tests", "fixtures")
	}

	return findFixtures(filepath.Dir(dir))
}
