//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package log

import (
	"fmt"
	"io"
	"os"

	"nodelocator/pkg/define"

	"github.com/sirupsen/logrus"
)

// Setup configures the global logger. out is "stdout" or "stderr"; any other
// value is treated as stderr so that command output on stdout stays clean.
func Setup(level string, out string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, define.ErrInvalidArg)
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   false,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	logrus.SetOutput(writer(out))
	return nil
}

func writer(out string) io.Writer {
	if out == define.LogOutStdout {
		return os.Stdout
	}
	return os.Stderr
}
