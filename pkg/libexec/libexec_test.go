//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package libexec_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"nodelocator/pkg/define"
	"nodelocator/pkg/libexec"
	"nodelocator/pkg/platform"
	"nodelocator/tests/fixtures"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	dir := fixtures.Bundle()

	err := libexec.Setup(filepath.Join(dir, "app"))
	require.NoError(t, err)
	require.Equal(t, dir, libexec.BaseDirectory())

	err = libexec.Setup(filepath.Join(dir, "missing", "app"))
	require.Error(t, err)
	require.Equal(t, dir, libexec.BaseDirectory())
}

func TestExecutablePath(t *testing.T) {
	dir := fixtures.Bundle()

	tests := []struct {
		name    string
		host    platform.Host
		want    string
		wantErr bool
	}{
		{
			name: "linux-x64",
			host: platform.HostFor("linux", "amd64"),
			want: filepath.Join(dir, "runtimes", "linux-x64", "native", "node"),
		},
		{
			name: "osx-arm64",
			host: platform.HostFor("darwin", "arm64"),
			want: filepath.Join(dir, "runtimes", "osx-arm64", "native", "node"),
		},
		{
			name: "win-x64",
			host: platform.HostFor("windows", "amd64"),
			want: filepath.Join(dir, "runtimes", "win-x64", "native", "node.exe"),
		},
		{
			name: "musl fallback",
			host: platform.Host{GOOS: "linux", RuntimeIdentifier: "linux-x64-musl"},
			want: filepath.Join(dir, "runtimes", "linux-x64", "native", "node"),
		},
		{
			name:    "linux-arm64 not bundled",
			host:    platform.HostFor("linux", "arm64"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := libexec.ExecutablePath(dir, tt.host)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, define.ErrBinaryNotFound)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, p)
		})
	}
}

func TestExecutablePathFileName(t *testing.T) {
	dir := t.TempDir()

	for _, goos := range []string{"windows", "linux", "darwin"} {
		h := platform.HostFor(goos, "arm64")
		_, err := libexec.ExecutablePath(dir, h)

		var bnf *libexec.BinaryNotFoundError
		require.True(t, errors.As(err, &bnf))
		if goos == "windows" {
			require.True(t, strings.HasSuffix(bnf.Path, "node.exe"), bnf.Path)
		} else {
			require.Equal(t, "node", filepath.Base(bnf.Path))
		}
	}
}

func TestBinaryNotFound(t *testing.T) {
	dir := t.TempDir()
	h := platform.HostFor("linux", "amd64")

	_, err := libexec.ExecutablePath(dir, h)
	require.ErrorIs(t, err, define.ErrBinaryNotFound)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.False(t, errors.Is(err, define.ErrPlatformNotSupported))

	var bnf *libexec.BinaryNotFoundError
	require.True(t, errors.As(err, &bnf))

	want := filepath.Join(dir, "runtimes", "linux-x64", "native", "node")
	require.Equal(t, want, bnf.Path)
	require.Equal(t, platform.LinuxX64, bnf.Identifier)
	require.Equal(t, platform.KnownIdentifiers(), bnf.Known)
	require.Contains(t, err.Error(), want)
	for _, id := range platform.KnownIdentifiers() {
		require.Contains(t, err.Error(), id.String())
	}
}

func TestExecutablePathDirectory(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "runtimes", "linux-x64", "native", "node")
	require.NoError(t, os.MkdirAll(want, 0o755))

	p, err := libexec.ExecutablePath(dir, platform.HostFor("linux", "amd64"))
	require.Empty(t, p)
	require.ErrorIs(t, err, define.ErrBinaryNotFound)
	require.ErrorIs(t, err, libexec.ErrIsDirectory)

	var bnf *libexec.BinaryNotFoundError
	require.True(t, errors.As(err, &bnf))
	require.Equal(t, want, bnf.Path)

	entries, err := libexec.Audit(context.Background(), dir)
	require.NoError(t, err)
	require.False(t, entries[2].Present)
	require.Equal(t, libexec.ErrIsDirectory.Error(), entries[2].Error)
}

func TestExecutablePathNotSupported(t *testing.T) {
	_, err := libexec.ExecutablePath(fixtures.Bundle(), platform.HostFor("freebsd", "amd64"))
	require.ErrorIs(t, err, define.ErrPlatformNotSupported)
	require.False(t, errors.Is(err, define.ErrBinaryNotFound))
}

func TestExecutablePathUnchanged(t *testing.T) {
	dir := t.TempDir()
	native := filepath.Join(dir, "runtimes", "linux-x64", "native")
	require.NoError(t, os.MkdirAll(native, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(native, "node"), []byte("#!/bin/sh\n"), 0o755))

	// no cleaning beyond the join
	base := dir + string(filepath.Separator)
	p, err := libexec.ExecutablePath(base, platform.HostFor("linux", "amd64"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "runtimes", "linux-x64", "native", "node"), p)

	again, err := libexec.ExecutablePath(base, platform.HostFor("linux", "amd64"))
	require.NoError(t, err)
	require.Equal(t, p, again)
}

func TestGetExecutablePath(t *testing.T) {
	t.Setenv(define.RuntimeIdentifierEnv, "")

	id, err := platform.ResolveIdentifier()
	if err != nil {
		t.Skipf("host %s/%s has no catalog identifier", runtime.GOOS, runtime.GOARCH)
	}

	dir := t.TempDir()
	_, err = libexec.GetExecutablePath(dir)
	require.ErrorIs(t, err, define.ErrBinaryNotFound)

	k, _ := id.Key()
	want := libexec.CandidatePath(dir, id, k.OS)
	require.NoError(t, os.MkdirAll(filepath.Dir(want), 0o755))
	require.NoError(t, os.WriteFile(want, nil, 0o755))

	p, err := libexec.GetExecutablePath(dir)
	require.NoError(t, err)
	require.Equal(t, want, p)

	require.NoError(t, libexec.Setup(filepath.Join(dir, "app")))
	p, err = libexec.FindNode()
	require.NoError(t, err)
	require.Equal(t, want, p)
}

func TestAudit(t *testing.T) {
	dir := fixtures.Bundle()

	entries, err := libexec.Audit(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, len(platform.KnownIdentifiers()))

	present := map[platform.Identifier]bool{}
	for i, e := range entries {
		require.Equal(t, platform.KnownIdentifiers()[i], e.Identifier)
		require.Empty(t, e.Error)
		present[e.Identifier] = e.Present
		if e.Present {
			require.Positive(t, e.Size)
		}
	}

	require.Equal(t, map[platform.Identifier]bool{
		platform.WinX64:     true,
		platform.WinArm64:   false,
		platform.LinuxX64:   true,
		platform.LinuxArm64: false,
		platform.OSXX64:     false,
		platform.OSXArm64:   true,
	}, present)
	require.Equal(t, filepath.Join(dir, "runtimes", "win-x64", "native", "node.exe"), entries[0].Path)
}

func TestAuditCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := libexec.Audit(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
