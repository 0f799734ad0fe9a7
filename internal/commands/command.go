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
	"fmt"
	"strings"
)

const (
	addKeyword    = "add"
	removeKeyword = "remove"
	isKeyword     = "is"
	linkedKeyword = "linked"
)

const (
	linkTokensCount  = 3
	queryTokensCount = 4
)

type Kind int

const (
	KindLink Kind = iota + 1
	KindUnlink
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindLink:
		return addKeyword
	case KindUnlink:
		return removeKeyword
	case KindQuery:
		return isKeyword + " " + linkedKeyword
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command - a single parsed line of the script.
type Command struct {
	Kind Kind
	A    string
	B    string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s %s", c.Kind, c.A, c.B)
}

// Parse - parses a script line. The line is split on whitespace and keywords are case-insensitive:
//
//	add <a> <b>
//	remove <a> <b>
//	is linked <a> <b>
//
// The identifiers are taken verbatim. It returns false if the line does not match any command.
func Parse(line string) (Command, bool) {
	tokens := strings.Fields(line)
	switch len(tokens) {
	case linkTokensCount:
		switch strings.ToLower(tokens[0]) {
		case addKeyword:
			return Command{Kind: KindLink, A: tokens[1], B: tokens[2]}, true
		case removeKeyword:
			return Command{Kind: KindUnlink, A: tokens[1], B: tokens[2]}, true
		}
	case queryTokensCount:
		if strings.ToLower(tokens[0]) == isKeyword && strings.ToLower(tokens[1]) == linkedKeyword {
			return Command{Kind: KindQuery, A: tokens[2], B: tokens[3]}, true
		}
	}
	return Command{}, false
}
