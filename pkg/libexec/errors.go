//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package libexec

import (
	"errors"
	"fmt"
	"strings"

	"nodelocator/pkg/define"
	"nodelocator/pkg/platform"
)

var ErrIsDirectory = errors.New("is a directory")

// BinaryNotFoundError means the identifier resolved but the bundle has no
// binary at the expected path.
type BinaryNotFoundError struct {
	Path       string
	Identifier platform.Identifier
	Known      []platform.Identifier
	Err        error
}

func (e *BinaryNotFoundError) Error() string {
	known := make([]string, 0, len(e.Known))
	for _, id := range e.Known {
		known = append(known, id.String())
	}
	return fmt.Sprintf("embedded Node.js binary for RID %q was not found. Checked %q. Available RIDs: %s",
		e.Identifier, e.Path, strings.Join(known, ", "))
}

func (e *BinaryNotFoundError) Is(target error) bool {
	return target == define.ErrBinaryNotFound
}

func (e *BinaryNotFoundError) Unwrap() error {
	return e.Err
}
