//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package define

import (
	"errors"
)

var (
	ErrPlatformNotSupported = errors.New("platform not supported")
	ErrBinaryNotFound       = errors.New("embedded binary not found")
)
