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

package config

import (
	"encoding/json"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// StringToSliceWithBracketHookFunc - decodes a string like ["a.txt", "b.txt"] into a slice. It is used for list
// values that come from the environment variables. Any other string is passed to the next hook.
func StringToSliceWithBracketHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Kind,
		t reflect.Kind,
		data interface{}) (interface{}, error) {
		if f != reflect.String || t != reflect.Slice {
			return data, nil
		}

		raw := data.(string)
		if raw == "" {
			return []string{}, nil
		}
		var slice []string
		if err := json.Unmarshal([]byte(raw), &slice); err != nil {
			return data, nil
		}
		return slice, nil
	}
}

// DecodeHooks - the hooks used to decode viper settings into Config.
func DecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		StringToSliceWithBracketHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
