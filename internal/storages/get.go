// Copyright 2023 Greenmask
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

package storages

import (
	"context"
	"errors"
	"fmt"

	"github.com/clusterlink/clusterlink/internal/interfaces"
	"github.com/clusterlink/clusterlink/internal/storages/directory"
	"github.com/clusterlink/clusterlink/internal/storages/s3"
)

const (
	DirectoryStorageType = "directory"
	S3StorageType        = "s3"
)

var (
	ErrUnknownStorageType = errors.New("unknown storage type")
)

// Get returns a storage based on the configuration.
func Get(
	ctx context.Context,
	storageType string,
	s3Cfg s3.Config,
	directoryCfg directory.Config,
	logLevel string,
) (interfaces.Storager, error) {
	switch storageType {
	case DirectoryStorageType:
		st, err := directory.New(directoryCfg)
		if err != nil {
			return nil, fmt.Errorf("init directory storage: %w", err)
		}
		return st, nil
	case S3StorageType:
		st, err := s3.New(ctx, s3Cfg, logLevel)
		if err != nil {
			return nil, fmt.Errorf("init s3 storage: %w", err)
		}
		return st, nil
	}
	return nil, fmt.Errorf("storage type %s: %w", storageType, ErrUnknownStorageType)
}
