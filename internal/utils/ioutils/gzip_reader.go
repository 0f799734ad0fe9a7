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

package ioutils

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/klauspost/pgzip"
	"github.com/rs/zerolog/log"
)

// GzipReader - decompresses the stream and closes the underlying reader on Close.
type GzipReader struct {
	gz io.ReadCloser
	r  io.ReadCloser
}

func NewGzipReader(r io.ReadCloser, usePgzip bool) (*GzipReader, error) {
	gz, err := getGzipReadCloser(r, usePgzip)
	if err != nil {
		if err := r.Close(); err != nil {
			log.Warn().
				Err(err).
				Msg("error closing script object")
		}
		return nil, err
	}

	return &GzipReader{
		gz: gz,
		r:  r,
	}, nil
}

func getGzipReadCloser(r io.Reader, usePgzip bool) (io.ReadCloser, error) {
	if usePgzip {
		gz, err := pgzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("cannot create pgzip reader: %w", err)
		}
		return gz, nil
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot create gzip reader: %w", err)
	}
	return gz, nil
}

func (r *GzipReader) Read(p []byte) (n int, err error) {
	return r.gz.Read(p)
}

// Close - closes both readers. The last error is returned.
func (r *GzipReader) Close() error {
	var lastErr error
	if err := r.gz.Close(); err != nil {
		lastErr = fmt.Errorf("error closing gzip reader: %w", err)
		log.Warn().
			Err(err).
			Msg("error closing gzip reader")
	}
	if err := r.r.Close(); err != nil {
		lastErr = fmt.Errorf("error closing script object: %w", err)
		log.Warn().
			Err(err).
			Msg("error closing script object")
	}
	return lastErr
}
