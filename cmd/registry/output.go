//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"io"

	"nodelocator/pkg/define"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteResult prints value as JSON when --format json is selected, otherwise
// it hands w to text.
func WriteResult(w io.Writer, value interface{}, text func(w io.Writer) error) error {
	if Config().Format != define.FormatJSON {
		return text(w)
	}

	coder := json.NewEncoder(w)
	coder.SetIndent("", "  ")
	if err := coder.Encode(value); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}
	return nil
}
