// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strings

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// WrapString - wraps v on word boundaries so that no line exceeds maxLength runes. Words longer than maxLength
// are split on rune boundaries. Zero or negative maxLength disables wrapping.
func WrapString(v string, maxLength int) string {
	if maxLength <= 0 {
		return v
	}
	lines := strings.Split(wordwrap.WrapString(v, uint(maxLength)), "\n")
	res := make([]string, 0, len(lines))
	for _, s := range lines {
		runes := []rune(s)
		for len(runes) > maxLength {
			res = append(res, string(runes[:maxLength]))
			runes = runes[maxLength:]
		}
		res = append(res, string(runes))
	}
	return strings.Join(res, "\n")
}

// WrapList - joins the items with ", " and wraps the result.
func WrapList(items []string, maxLength int) string {
	return WrapString(strings.Join(items, ", "), maxLength)
}

// SizePretty - formats the size in bytes using binary units.
func SizePretty(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
