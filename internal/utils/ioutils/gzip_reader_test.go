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
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScript = `add 1 2
add 2 3
is linked 1 3
remove 2 3
is linked 1 3
`

type readCloserMock struct {
	r              io.Reader
	closeCallCount int
	closeErr       error
}

func (r *readCloserMock) Read(p []byte) (n int, err error) {
	return r.r.Read(p)
}

func (r *readCloserMock) Close() error {
	r.closeCallCount++
	return r.closeErr
}

func gzipData(t *testing.T, data string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	gz := gzip.NewWriter(buf)
	_, err := gz.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestGzipReader_Read(t *testing.T) {
	for _, usePgzip := range []bool{false, true} {
		objSrc := &readCloserMock{r: bytes.NewReader(gzipData(t, testScript))}
		r, err := NewGzipReader(objSrc, usePgzip)
		require.NoError(t, err)
		res, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, testScript, string(res))
		require.NoError(t, r.Close())
		require.Equal(t, 1, objSrc.closeCallCount)
	}
}

func TestGzipReader_InvalidHeader(t *testing.T) {
	objSrc := &readCloserMock{r: strings.NewReader(testScript)}
	_, err := NewGzipReader(objSrc, false)
	require.ErrorContains(t, err, "cannot create gzip reader")
	require.Equal(t, 1, objSrc.closeCallCount)
}

func TestGzipReader_CloseError(t *testing.T) {
	objSrc := &readCloserMock{
		r:        bytes.NewReader(gzipData(t, testScript)),
		closeErr: errors.New("storage object error"),
	}
	r, err := NewGzipReader(objSrc, false)
	require.NoError(t, err)
	err = r.Close()
	require.ErrorContains(t, err, "error closing script object")
	require.Equal(t, 1, objSrc.closeCallCount)
}

func TestCountReader(t *testing.T) {
	r := NewCountReader(io.NopCloser(strings.NewReader(testScript)))
	_, err := io.Copy(io.Discard, r)
	require.NoError(t, err)
	require.Equal(t, int64(len(testScript)), r.GetCount())
	require.NoError(t, r.Close())
}
