//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package define

import (
	"errors"
	"fmt"

	"github.com/containers/storage/pkg/regexp"
)

var (
	RuntimeIdentifierRegex = regexp.Delayed("^[a-zA-Z0-9][a-zA-Z0-9_.-]*$")
	PlatformNameRegex      = regexp.Delayed("^[a-zA-Z0-9][a-zA-Z0-9_]*$")
	ErrRuntimeIdentifier   = fmt.Errorf("runtime identifiers must match [a-zA-Z0-9][a-zA-Z0-9_.-]*: %w", ErrInvalidArg)
	ErrInvalidArg          = errors.New("invalid argument")
)
