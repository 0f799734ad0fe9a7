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
	"github.com/clusterlink/clusterlink/internal/storages"
	"github.com/clusterlink/clusterlink/internal/storages/directory"
	"github.com/clusterlink/clusterlink/internal/storages/s3"
)

const (
	defaultStorageType          = storages.DirectoryStorageType
	defaultStorageDirectoryPath = "."
)

type DirectoryConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path,omitempty"`
}

func NewStorageDirectory() DirectoryConfig {
	return DirectoryConfig{
		Path: defaultStorageDirectoryPath,
	}
}

func (d DirectoryConfig) ToDirectoryConfig() directory.Config {
	return directory.NewConfig(d.Path)
}

type S3Config struct {
	Endpoint         string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint,omitempty"`
	Bucket           string `mapstructure:"bucket" yaml:"bucket" json:"bucket,omitempty"`
	Prefix           string `mapstructure:"prefix" yaml:"prefix" json:"prefix,omitempty"`
	Region           string `mapstructure:"region" yaml:"region" json:"region,omitempty"`
	AccessKeyId      string `mapstructure:"access_key_id" yaml:"access_key_id" json:"access_key_id,omitempty"`
	SecretAccessKey  string `mapstructure:"secret_access_key" yaml:"secret_access_key" json:"-"`
	SessionToken     string `mapstructure:"session_token" yaml:"session_token" json:"-"`
	RoleArn          string `mapstructure:"role_arn" yaml:"role_arn" json:"role_arn,omitempty"`
	SessionName      string `mapstructure:"session_name" yaml:"session_name" json:"session_name,omitempty"`
	MaxRetries       int    `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
	CertFile         string `mapstructure:"cert_file" yaml:"cert_file" json:"cert_file,omitempty"`
	UseListObjectsV1 bool   `mapstructure:"use_list_objects_v1" yaml:"use_list_objects_v1" json:"use_list_objects_v1"`
	ForcePathStyle   *bool  `mapstructure:"force_path_style" yaml:"force_path_style" json:"force_path_style,omitempty"`
	UseAccelerate    bool   `mapstructure:"use_accelerate" yaml:"use_accelerate" json:"use_accelerate"`
	NoVerifySsl      bool   `mapstructure:"no_verify_ssl" yaml:"no_verify_ssl" json:"no_verify_ssl"`
}

func NewStorageS3() S3Config {
	return S3Config{
		MaxRetries: -1,
	}
}

func (c S3Config) ToS3Config() s3.Config {
	return s3.Config{
		Bucket:   c.Bucket,
		Prefix:   c.Prefix,
		Endpoint: c.Endpoint,
		Region:   c.Region,
		Credentials: s3.Credentials{
			AccessKeyId:     c.AccessKeyId,
			SecretAccessKey: c.SecretAccessKey,
			SessionToken:    c.SessionToken,
			RoleArn:         c.RoleArn,
			SessionName:     c.SessionName,
		},
		MaxRetries:       c.MaxRetries,
		CertFile:         c.CertFile,
		ForcePathStyle:   c.ForcePathStyle,
		UseAccelerate:    c.UseAccelerate,
		UseListObjectsV1: c.UseListObjectsV1,
		NoVerifySsl:      c.NoVerifySsl,
	}
}

type StorageConfig struct {
	Type      string          `mapstructure:"type" yaml:"type" json:"type,omitempty"`
	S3        S3Config        `mapstructure:"s3"  json:"s3,omitempty" yaml:"s3"`
	Directory DirectoryConfig `mapstructure:"directory" json:"directory,omitempty" yaml:"directory"`
}

func NewStorageConfig() StorageConfig {
	return StorageConfig{
		Type:      defaultStorageType,
		S3:        NewStorageS3(),
		Directory: NewStorageDirectory(),
	}
}
