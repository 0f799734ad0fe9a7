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

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/rs/zerolog/log"

	"github.com/clusterlink/clusterlink/internal/interfaces"
)

const keyDelimiter = "/"

// Error codes of a missing key. HeadObject has no body, so it reports NotFound instead of NoSuchKey.
const (
	awsCodeNotFound  = "NotFound"
	awsCodeNoSuchKey = "NoSuchKey"
)

// Storage - read-only view of the scripts under a key prefix of a bucket.
type Storage struct {
	service s3iface.S3API
	bucket  string
	prefix  string
	listV1  bool
}

func New(ctx context.Context, cfg Config, logLevel string) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	service, err := newService(ctx, cfg, logLevel)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Str("Region", aws.StringValue(service.Config.Region)).
		Str("Bucket", cfg.Bucket).
		Str("Prefix", cfg.Prefix).
		Msg("using s3 storage")
	return newStorage(service, cfg, fixPrefix(cfg.Prefix)), nil
}

func newStorage(service s3iface.S3API, cfg Config, prefix string) *Storage {
	return &Storage{
		service: service,
		bucket:  cfg.Bucket,
		prefix:  prefix,
		listV1:  cfg.UseListObjectsV1,
	}
}

func (s *Storage) withPrefix(prefix string) *Storage {
	sub := *s
	sub.prefix = prefix
	return &sub
}

func (s *Storage) GetCwd() string {
	return s.prefix
}

func (s *Storage) Dirname() string {
	return filepath.Base(s.prefix)
}

// ListDir - lists one level of the prefix. Common prefixes become sub storages.
func (s *Storage) ListDir(ctx context.Context) (files []string, dirs []interfaces.Storager, err error) {
	collect := func(commonPrefixes []*s3.CommonPrefix, objects []*s3.Object) {
		for _, p := range commonPrefixes {
			dirs = append(dirs, s.withPrefix(fixPrefix(aws.StringValue(p.Prefix))))
		}
		for _, o := range objects {
			// Some clients create an empty object named after the prefix to mark a directory.
			if name := strings.TrimPrefix(aws.StringValue(o.Key), s.prefix); name != "" {
				files = append(files, name)
			}
		}
	}

	if s.listV1 {
		err = s.listV1Pages(ctx, collect)
	} else {
		err = s.listV2Pages(ctx, collect)
	}
	if err != nil {
		return nil, nil, err
	}
	return files, dirs, nil
}

func (s *Storage) listV1Pages(ctx context.Context, collect func([]*s3.CommonPrefix, []*s3.Object)) error {
	in := &s3.ListObjectsInput{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(s.prefix),
		Delimiter: aws.String(keyDelimiter),
	}
	err := s.service.ListObjectsPagesWithContext(ctx, in, func(page *s3.ListObjectsOutput, _ bool) bool {
		collect(page.CommonPrefixes, page.Contents)
		return true
	})
	if err != nil {
		return fmt.Errorf("list objects of %s: %w", s.prefix, err)
	}
	return nil
}

func (s *Storage) listV2Pages(ctx context.Context, collect func([]*s3.CommonPrefix, []*s3.Object)) error {
	in := &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(s.prefix),
		Delimiter: aws.String(keyDelimiter),
	}
	err := s.service.ListObjectsV2PagesWithContext(ctx, in, func(page *s3.ListObjectsV2Output, _ bool) bool {
		collect(page.CommonPrefixes, page.Contents)
		return true
	})
	if err != nil {
		return fmt.Errorf("list objects v2 of %s: %w", s.prefix, err)
	}
	return nil
}

func (s *Storage) GetObject(ctx context.Context, filePath string) (io.ReadCloser, error) {
	key := path.Join(s.prefix, filePath)
	obj, err := s.service.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	return obj.Body, nil
}

// SubStorage - returns the storage of subPath. A relative subPath is joined to the current prefix.
func (s *Storage) SubStorage(subPath string, relative bool) interfaces.Storager {
	if relative {
		subPath = path.Join(s.prefix, subPath)
	}
	return s.withPrefix(fixPrefix(subPath))
}

func (s *Storage) Exists(ctx context.Context, fileName string) (bool, error) {
	stat, err := s.Stat(ctx, fileName)
	if err != nil {
		return false, err
	}
	return stat.Exist, nil
}

// Stat - a missing key is not an error, it is reported with Exist set to false.
func (s *Storage) Stat(ctx context.Context, fileName string) (*interfaces.ObjectStat, error) {
	key := path.Join(s.prefix, fileName)
	out, err := s.service.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return &interfaces.ObjectStat{Name: key}, nil
		}
		return nil, fmt.Errorf("head object %s: %w", key, err)
	}
	return &interfaces.ObjectStat{
		Name:         key,
		Size:         aws.Int64Value(out.ContentLength),
		LastModified: aws.TimeValue(out.LastModified),
		Exist:        true,
	}, nil
}

func isNotFound(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}
	return awsErr.Code() == awsCodeNotFound || awsErr.Code() == awsCodeNoSuchKey
}

func fixPrefix(prefix string) string {
	if prefix != "" && !strings.HasSuffix(prefix, keyDelimiter) {
		return prefix + keyDelimiter
	}
	return prefix
}
