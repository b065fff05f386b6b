//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"os"

	cmdflags "nodelocator/cmd/nodelocator/flags"
	"nodelocator/pkg/config"
	"nodelocator/pkg/define"
	mylog "nodelocator/pkg/log"
	"nodelocator/pkg/system"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CliCommand struct {
	Command *cobra.Command
	Parent  *cobra.Command
}

var (
	exitCode = cmdflags.ExitOK
	// Commands All commands will be registin here
	Commands []CliCommand
)

func SetExitCode(code int) {
	exitCode = code
}

func GetExitCode() int {
	return exitCode
}

// ExitCodeFor maps resolution failures to distinct exit codes.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return cmdflags.ExitOK
	case errors.Is(err, define.ErrPlatformNotSupported):
		return cmdflags.ExitPlatformNotSupported
	case errors.Is(err, define.ErrBinaryNotFound):
		return cmdflags.ExitBinaryNotFound
	default:
	}
	return cmdflags.ExitError
}

// Options are the raw persistent flag values.
type Options struct {
	ConfigFile        string
	BaseDir           string
	RuntimeIdentifier string
	OS                string
	Arch              string
	LogLevel          string
	LogOut            string
	Format            string
}

var (
	opts Options
	cfg  *config.Config
)

// AddPersistentFlags binds the global flags to the root command.
func AddPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVar(&opts.ConfigFile, cmdflags.ConfigFlag, "", "YAML config file")
	flags.StringVar(&opts.BaseDir, cmdflags.BaseDirFlag, "", "Directory holding the runtimes/ tree (default: directory of this executable)")
	flags.StringVar(&opts.RuntimeIdentifier, cmdflags.RuntimeIdentifierFlag, "", "Free-form runtime identifier used by the prefix fallback, e.g. linux-x64-musl")
	flags.StringVar(&opts.OS, cmdflags.OSFlag, "", "Resolve for this OS instead of the host (windows|linux|macos, or another GOOS such as freebsd)")
	flags.StringVar(&opts.Arch, cmdflags.ArchFlag, "", "Resolve for this architecture instead of the host (x64|arm64, or another GOARCH such as 386)")
	flags.StringVar(&opts.LogLevel, cmdflags.LogLevelFlag, define.DefaultLogLevel, "Log level (trace|debug|info|warn|error)")
	flags.StringVar(&opts.LogOut, cmdflags.LogOutFlag, define.LogOutStderr, "Where to write the log (stderr|stdout)")
	flags.StringVarP(&opts.Format, cmdflags.FormatFlag, "f", define.DefaultFormat, "Output format (text|json)")
}

// Config is the merged configuration, available after PersistentPreRunE.
func Config() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// buildConfig merges, lowest first: defaults, config file, environment, flags.
func buildConfig(flags *pflag.FlagSet) (*config.Config, error) {
	c := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		c = loaded
	}
	c.ApplyEnv()

	overrides := map[string]*string{
		cmdflags.BaseDirFlag:           &c.BaseDirectory,
		cmdflags.RuntimeIdentifierFlag: &c.RuntimeIdentifier,
		cmdflags.OSFlag:                &c.OS,
		cmdflags.ArchFlag:              &c.Arch,
		cmdflags.LogLevelFlag:          &c.LogLevel,
		cmdflags.FormatFlag:            &c.Format,
	}
	for name, field := range overrides {
		if f := flags.Lookup(name); f != nil && f.Changed {
			*field = f.Value.String()
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func showLogHeader() {
	logrus.Debugf("%s", system.Version())
	logrus.Debug(fmt.Sprintf("CMDLINE: %q", os.Args))
	if define.GitCommit == "" {
		define.GitCommit = "unknown"
	}
	logrus.Debug(fmt.Sprintf("NODELOCATOR VERSION: %s", define.GitCommit))
	logrus.Debugf("BASE DIRECTORY: %s", cfg.BaseDirectory)
}

func PersistentPreRunE(cmd *cobra.Command, args []string) error {
	c, err := buildConfig(cmd.Flags())
	if err != nil {
		return err
	}
	cfg = c

	if err := mylog.Setup(cfg.LogLevel, opts.LogOut); err != nil {
		return fmt.Errorf("set logger error: %w", err)
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		showLogHeader()
	}
	return nil
}
