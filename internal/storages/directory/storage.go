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

package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/clusterlink/clusterlink/internal/interfaces"
)

var (
	errPathIsRequired = errors.New("path is required")
	errPathIsFile     = errors.New("received directory path is file")
)

type Config struct {
	Path string
}

func NewConfig(p string) Config {
	return Config{
		Path: p,
	}
}

type Storage struct {
	cwd string
}

func New(cfg Config) (*Storage, error) {
	if cfg.Path == "" {
		return nil, errPathIsRequired
	}
	fileInfo, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("stat storage path: %w", err)
	}
	if !fileInfo.IsDir() {
		return nil, errPathIsFile
	}
	return &Storage{
		cwd: cfg.Path,
	}, nil
}

func (s *Storage) GetCwd() string {
	return s.cwd
}

func (s *Storage) Dirname() string {
	return filepath.Base(s.cwd)
}

func (s *Storage) ListDir(ctx context.Context) (files []string, dirs []interfaces.Storager, err error) {
	entries, err := os.ReadDir(s.cwd)
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, &Storage{cwd: path.Join(s.cwd, entry.Name())})
		} else {
			files = append(files, entry.Name())
		}
	}
	return
}

func (s *Storage) GetObject(ctx context.Context, filePath string) (reader io.ReadCloser, err error) {
	reader, err = os.Open(path.Join(s.cwd, filePath))
	return
}

func (s *Storage) Exists(ctx context.Context, fileName string) (bool, error) {
	_, err := os.Stat(path.Join(s.cwd, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Storage) SubStorage(dp string, relative bool) interfaces.Storager {
	dirPath := dp
	if relative {
		dirPath = path.Join(s.cwd, dp)
	}
	return &Storage{
		cwd: dirPath,
	}
}

func (s *Storage) Stat(ctx context.Context, fileName string) (*interfaces.ObjectStat, error) {
	fullPath := path.Join(s.cwd, fileName)
	fileInfo, err := os.Stat(fullPath)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return &interfaces.ObjectStat{
			Name:  fullPath,
			Exist: false,
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("error getting file stat: %w", err)
	}

	return &interfaces.ObjectStat{
		Name:         fullPath,
		Size:         fileInfo.Size(),
		LastModified: fileInfo.ModTime(),
		Exist:        true,
	}, nil
}
