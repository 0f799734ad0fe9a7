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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlink/clusterlink/internal/connectivity"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestProcessor_Process(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		p := NewProcessor(connectivity.New[string](), out)
		stats, err := p.Process(context.Background(), script(
			"remove 1 2",
			"note: this shouldn't crash even though this line doesn't follow the format",
			"add 1 2",
			"add 2 3",
			"add 1 3",
			"add 3 4",
			"add 5 6",
			"is linked 1 1",
			"is linked 1 4",
			"is linked 5 6",
			"is linked 1 6",
			"remove 1 3",
			"is linked 4 1",
			"remove 5 6",
			"is linked 5 6",
		))
		require.NoError(t, err)
		assert.Equal(t, "true\ntrue\ntrue\nfalse\ntrue\nfalse\n", out.String())
		assert.Equal(t, Stats{Links: 5, Unlinks: 3, Queries: 6, Skipped: 1}, stats)
	})

	t.Run("path with bridge removal", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		p := NewProcessor(connectivity.New[string](), out)
		_, err := p.Process(context.Background(), script(
			"add 1 2",
			"add 2 3",
			"add 3 4",
			"is linked 3 1",
			"remove 3 4",
			"is linked 1 4",
		))
		require.NoError(t, err)
		assert.Equal(t, "true\nfalse\n", out.String())
	})

	t.Run("large identifiers", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		p := NewProcessor(connectivity.New[string](), out)
		_, err := p.Process(context.Background(), script(
			"remove 10000000 20000000",
			"note: add 10000000 20000000 this shouldn't crash even though this line doesn't follow the0 format0",
			"add 10000000 20000000",
			"add 20000000 30000000",
			"add 10000000 30000000",
			"add 30000000 40000000",
			"add 50000000 60000000",
			"is linked 10000000 10000000",
			"is linked 10000000 40000000",
			"is linked 50000000 60000000",
			"is linked 10000000 60000000",
			"remove 10000000 30000000",
			"is linked 40000000 10000000",
			"remove 50000000 60000000",
			"is linked 50000000 60000000",
			"add 50000000 30000000",
			"is linked 50000000 40000000",
			"remove 30000000 40000000",
			"is linked 40000000 50000000",
			"remove 20000000 10000000",
			"is linked 10000000 40000000",
			"is linked 10000000 60000000",
			"is linked 20000000 30000000",
			"is linked 50000000 20000000",
		))
		require.NoError(t, err)
		expected := []string{
			"true", "true", "true", "false",
			"true", "false", "true", "false",
			"false", "false", "true", "true",
		}
		assert.Equal(t, strings.Join(expected, "\n")+"\n", out.String())
	})

	t.Run("stops on blank line", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		p := NewProcessor(connectivity.New[string](), out)
		stats, err := p.Process(context.Background(), script(
			"add 1 2",
			"is linked 1 2",
			"",
			"is linked 1 2",
		))
		require.NoError(t, err)
		assert.Equal(t, "true\n", out.String())
		assert.Equal(t, 1, stats.Queries)
	})

	t.Run("continues past blank line when disabled", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		p := NewProcessor(connectivity.New[string](), out, WithStopOnBlankLine(false))
		stats, err := p.Process(context.Background(), script(
			"add 1 2",
			"",
			"is linked 1 2",
		))
		require.NoError(t, err)
		assert.Equal(t, "true\n", out.String())
		assert.Equal(t, Stats{Links: 1, Queries: 1, Skipped: 1}, stats)
	})

	t.Run("whitespace only line does not stop processing", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		p := NewProcessor(connectivity.New[string](), out)
		_, err := p.Process(context.Background(), script(
			"add 1 2",
			"  ",
			"is linked 2 1",
		))
		require.NoError(t, err)
		assert.Equal(t, "true\n", out.String())
	})

	t.Run("crlf line endings", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		p := NewProcessor(connectivity.New[string](), out)
		_, err := p.Process(context.Background(), strings.NewReader("add 1 2\r\nis linked 1 2\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "true\n", out.String())
	})

	t.Run("quiet", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		g := connectivity.New[string]()
		p := NewProcessor(g, out, WithQuiet())
		stats, err := p.Process(context.Background(), script("add 1 2", "is linked 1 2"))
		require.NoError(t, err)
		assert.Empty(t, out.String())
		assert.Equal(t, 1, stats.Queries)
		assert.True(t, g.Connected("1", "2"))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := NewProcessor(connectivity.New[string](), bytes.NewBuffer(nil))
		_, err := p.Process(ctx, script("add 1 2"))
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("line too long", func(t *testing.T) {
		p := NewProcessor(connectivity.New[string](), bytes.NewBuffer(nil))
		_, err := p.Process(context.Background(), strings.NewReader(strings.Repeat("a", maxLineSize+1)))
		require.Error(t, err)
	})
}
