//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package registry

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"nodelocator/pkg/define"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddPersistentFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestBuildConfigPrecedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nodelocator.yaml")
	require.NoError(t, os.WriteFile(file, []byte("baseDirectory: /from/file\nruntimeIdentifier: file-rid\nformat: json\n"), 0o644))

	t.Setenv(define.BaseDirEnv, "/from/env")
	t.Setenv(define.RuntimeIdentifierEnv, "")

	c, err := buildConfig(newFlagSet(t, "--config", file))
	require.NoError(t, err)
	require.Equal(t, "/from/env", c.BaseDirectory)
	require.Equal(t, "file-rid", c.RuntimeIdentifier)
	require.Equal(t, define.FormatJSON, c.Format)

	c, err = buildConfig(newFlagSet(t, "--config", file, "--base-dir", "/from/flag", "--format", "text"))
	require.NoError(t, err)
	require.Equal(t, "/from/flag", c.BaseDirectory)
	require.Equal(t, define.FormatText, c.Format)
}

func TestBuildConfigInvalid(t *testing.T) {
	_, err := buildConfig(newFlagSet(t, "--log-level", "loud"))
	require.ErrorIs(t, err, define.ErrInvalidArg)

	_, err = buildConfig(newFlagSet(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteResult(t *testing.T) {
	defer func() { cfg = nil }()

	cfg, _ = buildConfig(newFlagSet(t, "--format", "json"))
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, map[string]string{"path": "/opt/node"}, func(w io.Writer) error {
		t.Fatal("text writer must not be called for json output")
		return nil
	}))
	require.JSONEq(t, `{"path":"/opt/node"}`, buf.String())

	cfg, _ = buildConfig(newFlagSet(t))
	buf.Reset()
	require.NoError(t, WriteResult(&buf, nil, func(w io.Writer) error {
		_, err := io.WriteString(w, "/opt/node\n")
		return err
	}))
	require.Equal(t, "/opt/node\n", buf.String())
}
