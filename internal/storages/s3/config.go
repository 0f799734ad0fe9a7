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

package s3

import "errors"

const (
	defaultMaxRetries     = 3
	defaultForcePathStyle = true
)

var errNoBucket = errors.New("bucket is required")

// Config - where the scripts are kept in a bucket and how the bucket is reached.
type Config struct {
	Bucket string
	// Prefix - key prefix of the scripts. A trailing slash is appended when missing.
	Prefix      string
	Endpoint    string
	Region      string
	Credentials Credentials
	// MaxRetries - retries of a failed request. A negative value selects the default.
	MaxRetries int
	// CertFile - PEM bundle of the CA that signed the endpoint certificate.
	CertFile string
	// ForcePathStyle - addresses the bucket as endpoint/bucket rather than bucket.endpoint. Nil means true,
	// which is what MinIO and most self-hosted endpoints expect.
	ForcePathStyle   *bool
	UseAccelerate    bool
	UseListObjectsV1 bool
	NoVerifySsl      bool
}

// Credentials - static keys and an optional role to assume with them. When the keys are empty the default
// AWS provider chain (env, shared file, instance role) is used.
type Credentials struct {
	AccessKeyId     string
	SecretAccessKey string
	SessionToken    string
	RoleArn         string
	SessionName     string
}

func (c Config) Validate() error {
	if c.Bucket == "" {
		return errNoBucket
	}
	return nil
}

func (c Config) maxRetries() int {
	if c.MaxRetries < 0 {
		return defaultMaxRetries
	}
	return c.MaxRetries
}

func (c Config) forcePathStyle() bool {
	if c.ForcePathStyle == nil {
		return defaultForcePathStyle
	}
	return *c.ForcePathStyle
}

func (c Credentials) isStatic() bool {
	return c.AccessKeyId != "" && c.SecretAccessKey != ""
}
