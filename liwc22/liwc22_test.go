// Copyright 2025 The liwca Authors
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

package liwc22

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remrama/liwca/errors"
)

type fakeProcess struct {
	alive   bool
	stopped bool
}

func (p *fakeProcess) Alive() bool {
	return p.alive
}

func (p *fakeProcess) Stop() error {
	p.alive = false
	p.stopped = true
	return nil
}

// newFakeTool returns a Tool whose process seams spawn proc and resolve
// every executable name to itself.
func newFakeTool(proc *fakeProcess, starts *int, opts ...Option) *Tool {
	t := New(opts...)
	t.lookPath = func(file string) (string, error) {
		return file, nil
	}
	t.start = func(_ string) (process, error) {
		if starts != nil {
			*starts++
		}
		proc.alive = true
		return proc, nil
	}
	return t
}

func TestTool_Start(t *testing.T) {
	t.Parallel()

	var starts int
	proc := &fakeProcess{}
	tool := newFakeTool(proc, &starts)

	require.Equal(t, Stopped, tool.State())
	require.NoError(t, tool.Start(context.Background()))
	assert.Equal(t, Running, tool.State())
	assert.Equal(t, 1, starts)

	// Start is idempotent while running.
	require.NoError(t, tool.Start(context.Background()))
	assert.Equal(t, 1, starts)
}

func TestTool_Start_unavailable(t *testing.T) {
	t.Parallel()

	tool := New()
	tool.lookPath = func(file string) (string, error) {
		return "", stderrors.New("executable file not found")
	}

	err := tool.Start(context.Background())
	require.ErrorIs(t, err, errors.ErrToolUnavailable)

	var unavailErr *errors.ToolUnavailableError
	require.ErrorAs(t, err, &unavailErr)
	assert.Equal(t, DefaultAppName, unavailErr.Name)
	assert.Equal(t, Stopped, tool.State())
}

func TestTool_Start_neverUp(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{}
	tool := newFakeTool(proc, nil,
		WithStartWait(10*time.Millisecond),
		WithPollInterval(time.Millisecond),
	)
	tool.probe = func() bool {
		return false
	}

	err := tool.Start(context.Background())
	require.ErrorIs(t, err, errors.ErrToolUnavailable)
	assert.Equal(t, Stopped, tool.State())
	assert.True(t, proc.stopped)
}

func TestTool_Start_canceled(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{}
	tool := newFakeTool(proc, nil, WithPollInterval(time.Millisecond))
	tool.probe = func() bool {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tool.Start(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Stopped, tool.State())
	assert.True(t, proc.stopped)
}

func TestTool_Stop(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{}
	tool := newFakeTool(proc, nil)

	// Stopping a handle that started nothing is a no-op.
	require.NoError(t, tool.Stop())
	assert.Equal(t, Stopped, tool.State())

	require.NoError(t, tool.Start(context.Background()))
	require.NoError(t, tool.Stop())
	assert.Equal(t, Stopped, tool.State())
	assert.True(t, proc.stopped)
}

func TestTool_Analyze(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "results.csv")

	proc := &fakeProcess{}
	tool := newFakeTool(proc, nil)

	var gotName string
	var gotArgs []string
	tool.run = func(_ context.Context, name string, args ...string) (string, error) {
		gotName = name
		gotArgs = args
		return "", os.WriteFile(outputPath, []byte("Filename,WC\n"), 0o600)
	}

	got, err := tool.Analyze(context.Background(), "sleep.dicx", "diary.txt", outputPath)
	require.NoError(t, err)
	assert.Equal(t, outputPath, got)

	// Analyze starts the application on demand.
	assert.Equal(t, Running, tool.State())

	assert.Equal(t, DefaultCLIName, gotName)
	assert.Equal(t, []string{
		"--mode", "wc",
		"--dictionary", "sleep.dicx",
		"--input", "diary.txt",
		"--output", outputPath,
	}, gotArgs)
}

func TestTool_Analyze_commandFailed(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{}
	tool := newFakeTool(proc, nil)
	tool.run = func(_ context.Context, _ string, _ ...string) (string, error) {
		return "bad dictionary", stderrors.New("exit status 1")
	}

	_, err := tool.Analyze(context.Background(), "sleep.dicx", "diary.txt", "results.csv")
	require.ErrorIs(t, err, errors.ErrToolExecution)

	var execErr *errors.ToolExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "bad dictionary", execErr.Stderr)
}

func TestTool_Analyze_noResults(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{}
	tool := newFakeTool(proc, nil)
	tool.run = func(_ context.Context, _ string, _ ...string) (string, error) {
		return "", nil
	}

	_, err := tool.Analyze(context.Background(), "sleep.dicx", "diary.txt", filepath.Join(t.TempDir(), "results.csv"))
	require.ErrorIs(t, err, errors.ErrToolExecution)
}

func TestTool_Analyze_cliUnavailable(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{}
	tool := newFakeTool(proc, nil)
	tool.lookPath = func(file string) (string, error) {
		if file == DefaultCLIName {
			return "", stderrors.New("executable file not found")
		}
		return file, nil
	}

	_, err := tool.Analyze(context.Background(), "sleep.dicx", "diary.txt", "results.csv")
	require.ErrorIs(t, err, errors.ErrToolUnavailable)

	var unavailErr *errors.ToolUnavailableError
	require.ErrorAs(t, err, &unavailErr)
	assert.Equal(t, DefaultCLIName, unavailErr.Name)
}
