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

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Command
		ok       bool
	}{
		{
			name:     "add",
			line:     "add 1 2",
			expected: Command{Kind: KindLink, A: "1", B: "2"},
			ok:       true,
		},
		{
			name:     "remove",
			line:     "remove 10000000 20000000",
			expected: Command{Kind: KindUnlink, A: "10000000", B: "20000000"},
			ok:       true,
		},
		{
			name:     "is linked",
			line:     "is linked 4 1",
			expected: Command{Kind: KindQuery, A: "4", B: "1"},
			ok:       true,
		},
		{
			name:     "keywords are case-insensitive",
			line:     "IS Linked a B",
			expected: Command{Kind: KindQuery, A: "a", B: "B"},
			ok:       true,
		},
		{
			name:     "extra whitespace",
			line:     "  add\t1    2 ",
			expected: Command{Kind: KindLink, A: "1", B: "2"},
			ok:       true,
		},
		{
			name:     "tab separated query",
			line:     "is\tlinked\t4\t1\r",
			expected: Command{Kind: KindQuery, A: "4", B: "1"},
			ok:       true,
		},
		{
			name:     "non numeric identifiers",
			line:     "add alpha 0x1f",
			expected: Command{Kind: KindLink, A: "alpha", B: "0x1f"},
			ok:       true,
		},
		{name: "empty", line: ""},
		{name: "whitespace only", line: "   "},
		{name: "add without second vertex", line: "add 1"},
		{name: "add with extra token", line: "add 1 2 3"},
		{name: "unknown keyword", line: "link 1 2"},
		{name: "is without linked", line: "is connected 1 2"},
		{name: "is linked with three tokens", line: "is linked 1"},
		{name: "remove with four tokens", line: "remove 1 2 3"},
		{
			name: "free text",
			line: "note: this shouldn't crash even though this line doesn't follow the format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Parse(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "add 1 2", Command{Kind: KindLink, A: "1", B: "2"}.String())
	assert.Equal(t, "remove 1 2", Command{Kind: KindUnlink, A: "1", B: "2"}.String())
	assert.Equal(t, "is linked 1 2", Command{Kind: KindQuery, A: "1", B: "2"}.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
