//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"

	"nodelocator/pkg/define"

	"github.com/sirupsen/logrus"
)

func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		BaseDirectory: defaultBaseDirectory(),
		LogLevel:      define.DefaultLogLevel,
		Format:        define.DefaultFormat,
	}
}

func defaultBaseDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		logrus.Warnf("failed to get executable path: %v", err)
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
