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
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	original := "1234567890"
	maxLength := 7

	strs := strings.Split(WrapString(original, maxLength), "\n")
	require.Len(t, strs, 2)
	require.Len(t, strs[0], 7)
	require.Len(t, strs[1], 3)
}

func TestWrapString_LongWords(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		expected  string
	}{
		{name: "ascii", value: "1234567890", maxLength: 7, expected: "1234567\n890"},
		{name: "two byte runes", value: strings.Repeat("é", 10), maxLength: 7, expected: "ééééééé\néé"},
		{name: "three byte runes", value: "日本語の識別子", maxLength: 3, expected: "日本語\nの識別\n子"},
		{name: "fits in runes", value: strings.Repeat("é", 10), maxLength: 15, expected: strings.Repeat("é", 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := WrapString(tt.value, tt.maxLength)
			require.True(t, utf8.ValidString(res))
			assert.Equal(t, tt.expected, res)
			for _, line := range strings.Split(res, "\n") {
				assert.LessOrEqual(t, utf8.RuneCountInString(line), tt.maxLength)
			}
		})
	}
}

func TestWrapList_Multibyte(t *testing.T) {
	members := []string{strings.Repeat("ü", 12), "ä", strings.Repeat("ß", 5)}
	res := WrapList(members, 8)
	require.True(t, utf8.ValidString(res))
	for _, line := range strings.Split(res, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 8)
	}
	strip := strings.NewReplacer("\n", "", " ", "", ",", "")
	assert.Equal(t, strip.Replace(strings.Join(members, ", ")), strip.Replace(res))
}

func TestWrapString_Disabled(t *testing.T) {
	assert.Equal(t, "1234567890", WrapString("1234567890", 0))
}

func TestWrapList(t *testing.T) {
	res := WrapList([]string{"10000000", "20000000", "30000000"}, 20)
	assert.Equal(t, "10000000, 20000000,\n30000000", res)
}

func TestSizePretty(t *testing.T) {
	assert.Equal(t, "512 B", SizePretty(512))
	assert.Equal(t, "1.0 KiB", SizePretty(1024))
	assert.Equal(t, "1.5 MiB", SizePretty(1024*1024*3/2))
}
