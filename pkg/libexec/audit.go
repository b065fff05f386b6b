//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package libexec

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"nodelocator/pkg/platform"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Entry is the state of one catalog identifier inside a bundle.
type Entry struct {
	Identifier platform.Identifier `json:"identifier"`
	Path       string              `json:"path"`
	Present    bool                `json:"present"`
	Size       int64               `json:"size,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// Audit checks every catalog identifier below baseDirectory and reports the
// entries in catalog order. A missing binary is reported, not returned as an
// error; only a cancelled ctx fails the audit.
func Audit(ctx context.Context, baseDirectory string) ([]Entry, error) {
	ids := platform.KnownIdentifiers()
	entries := make([]Entry, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}
			entries[i] = auditOne(baseDirectory, id)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("audit of %q interrupted: %w", baseDirectory, err)
	}
	return entries, nil
}

func auditOne(baseDirectory string, id platform.Identifier) Entry {
	k, _ := id.Key()
	e := Entry{
		Identifier: id,
		Path:       CandidatePath(baseDirectory, id, k.OS),
	}

	fi, err := os.Stat(e.Path)
	switch {
	case err == nil && fi.IsDir():
		e.Error = ErrIsDirectory.Error()
	case err == nil:
		e.Present = true
		e.Size = fi.Size()
	case errors.Is(err, fs.ErrNotExist):
		logrus.Debugf("No binary for %q at %q", id, e.Path)
	default:
		e.Error = err.Error()
	}
	return e
}
