//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"nodelocator/pkg/define"
	"nodelocator/pkg/platform"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the nodelocator command.
type Config struct {
	// BaseDirectory holds the runtimes/ tree. Defaults to the directory of
	// the running executable.
	BaseDirectory string `yaml:"baseDirectory"`
	// RuntimeIdentifier replaces the derived free-form identifier used by
	// the prefix fallback.
	RuntimeIdentifier string `yaml:"runtimeIdentifier"`
	// OS and Arch resolve for another host instead of the running one.
	OS   string `yaml:"os"`
	Arch string `yaml:"arch"`

	LogLevel string `yaml:"logLevel"`
	Format   string `yaml:"format"`
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	c := defaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	logrus.Debugf("Loaded config from %q", path)
	return c, nil
}

// ApplyEnv overrides fields from NODELOCATOR_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(define.BaseDirEnv)); v != "" {
		c.BaseDirectory = v
	}
	if v := strings.TrimSpace(os.Getenv(define.RuntimeIdentifierEnv)); v != "" {
		c.RuntimeIdentifier = v
	}
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, define.ErrInvalidArg)
	}
	switch c.Format {
	case define.FormatText, define.FormatJSON:
	default:
		return fmt.Errorf("output format %q: %w", c.Format, define.ErrInvalidArg)
	}
	if c.RuntimeIdentifier != "" && !define.RuntimeIdentifierRegex.MatchString(c.RuntimeIdentifier) {
		return fmt.Errorf("%q: %w", c.RuntimeIdentifier, define.ErrRuntimeIdentifier)
	}
	return c.validatePlatformNames()
}

// validatePlatformNames only rejects malformed names; freebsd or mips are
// accepted and left to resolution to judge.
func (c *Config) validatePlatformNames() error {
	for _, name := range []string{c.OS, c.Arch} {
		if name != "" && !define.PlatformNameRegex.MatchString(name) {
			return fmt.Errorf("platform name %q: %w", name, define.ErrInvalidArg)
		}
	}
	return nil
}

// Host is the host to resolve for. Without OS/Arch overrides it is the
// running process; a missing half of an override is taken from it.
func (c *Config) Host() (platform.Host, error) {
	if err := c.validatePlatformNames(); err != nil {
		return platform.Host{}, err
	}
	h := platform.CurrentHost()

	if c.OS != "" || c.Arch != "" {
		osName, archName := c.OS, c.Arch
		if osName == "" {
			osName = h.GOOS
		}
		if archName == "" {
			archName = h.GOARCH
		}
		h = platform.HostForNames(osName, archName)
	}

	if c.RuntimeIdentifier != "" {
		h.RuntimeIdentifier = c.RuntimeIdentifier
	}
	return h, nil
}
