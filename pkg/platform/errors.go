//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"

	"nodelocator/pkg/define"
)

// NotSupportedError means no catalog identifier exists for the host.
type NotSupportedError struct {
	OSDescription     string
	Architecture      string
	RuntimeIdentifier string
}

func (e *NotSupportedError) Error() string {
	msg := fmt.Sprintf("no embedded Node.js binary is defined for OS %q and architecture %q", e.OSDescription, e.Architecture)
	if e.RuntimeIdentifier != "" {
		msg += fmt.Sprintf(" (runtime identifier %q)", e.RuntimeIdentifier)
	}
	return msg
}

func (e *NotSupportedError) Is(target error) bool {
	return target == define.ErrPlatformNotSupported
}
