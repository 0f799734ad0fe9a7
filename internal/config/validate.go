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
	"errors"
	"fmt"

	"github.com/clusterlink/clusterlink/internal/storages"
	"github.com/clusterlink/clusterlink/internal/utils/logger"
)

var (
	ErrInvalidJobs             = errors.New("jobs must be greater than zero")
	ErrInvalidTimeout          = errors.New("timeout must not be negative")
	ErrUnknownComponentsFormat = errors.New("unknown components format")
	ErrInvalidMaxWidth         = errors.New("max width must not be negative")
)

// Validate - checks the values that cannot be verified by decoding. The storage specific settings are checked by
// the storage constructors.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case logger.LogFormatTextValue, logger.LogFormatJsonValue:
	default:
		return fmt.Errorf("log.format %s: %w", c.Log.Format, logger.ErrUnknownLogFormat)
	}

	switch c.Storage.Type {
	case storages.DirectoryStorageType, storages.S3StorageType:
	default:
		return fmt.Errorf("storage.type %s: %w", c.Storage.Type, storages.ErrUnknownStorageType)
	}

	if c.Run.Jobs <= 0 {
		return fmt.Errorf("run.jobs %d: %w", c.Run.Jobs, ErrInvalidJobs)
	}
	if c.Run.Timeout < 0 {
		return fmt.Errorf("run.timeout %s: %w", c.Run.Timeout, ErrInvalidTimeout)
	}

	switch c.Components.Format {
	case ComponentsFormatText, ComponentsFormatJson, ComponentsFormatYaml:
	default:
		return fmt.Errorf("components.format %s: %w", c.Components.Format, ErrUnknownComponentsFormat)
	}
	if c.Components.MaxWidth < 0 {
		return fmt.Errorf("components.max_width %d: %w", c.Components.MaxWidth, ErrInvalidMaxWidth)
	}
	return nil
}
