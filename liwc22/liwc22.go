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
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/remrama/liwca/errors"
)

const (
	// DefaultAppName is the LIWC-22 application executable name.
	DefaultAppName = "LIWC-22"

	// DefaultCLIName is the LIWC-22 command line executable name.
	DefaultCLIName = "liwc-22-cli"

	defaultStartWait    = 30 * time.Second
	defaultPollInterval = time.Second
)

// State is the lifecycle state of the managed application process.
type State int

const (
	// Stopped means the application is not managed by this handle.
	Stopped State = iota

	// Starting means the application has been spawned but is not yet
	// confirmed up.
	Starting

	// Running means the application is up and the CLI can be invoked.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Starting:
		return "starting"
	case Running:
		return "running"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// process is a handle to a spawned application process.
type process interface {
	// Alive reports whether the process is still running.
	Alive() bool

	// Stop terminates the process and waits for it to exit.
	Stop() error
}

// osProcess manages a real operating system process.
type osProcess struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func startProcess(path string) (process, error) {
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	p := &osProcess{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		_ = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

func (p *osProcess) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *osProcess) Stop() error {
	if !p.Alive() {
		return nil
	}
	if err := p.cmd.Process.Kill(); err != nil {
		return err
	}
	<-p.done
	return nil
}

// Tool is a handle to the LIWC-22 application. The zero value is not usable;
// use New.
type Tool struct {
	appName      string
	cliName      string
	startWait    time.Duration
	pollInterval time.Duration

	mu    sync.Mutex
	state State
	proc  process

	// Process seams, replaced in tests.
	lookPath func(file string) (string, error)
	start    func(path string) (process, error)
	probe    func() bool
	run      func(ctx context.Context, name string, args ...string) (string, error)
}

// Option configures a Tool.
type Option func(*Tool)

// WithAppName overrides the application executable name.
func WithAppName(name string) Option {
	return func(t *Tool) {
		t.appName = name
	}
}

// WithCLIName overrides the command line executable name.
func WithCLIName(name string) Option {
	return func(t *Tool) {
		t.cliName = name
	}
}

// WithStartWait bounds how long Start waits for the application to come up.
func WithStartWait(d time.Duration) Option {
	return func(t *Tool) {
		t.startWait = d
	}
}

// WithPollInterval sets the delay between startup probes.
func WithPollInterval(d time.Duration) Option {
	return func(t *Tool) {
		t.pollInterval = d
	}
}

// New returns a Tool handle in the Stopped state.
func New(opts ...Option) *Tool {
	t := &Tool{
		appName:      DefaultAppName,
		cliName:      DefaultCLIName,
		startWait:    defaultStartWait,
		pollInterval: defaultPollInterval,
		lookPath:     exec.LookPath,
		start:        startProcess,
		run:          runCommand,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current lifecycle state.
func (t *Tool) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start spawns the application and waits until it is up or the start wait
// elapses. Start is idempotent while the application is Running.
func (t *Tool) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Running {
		return nil
	}

	path, err := t.lookPath(t.appName)
	if err != nil {
		return &errors.ToolUnavailableError{
			Name: t.appName,
			Err:  err,
		}
	}

	proc, err := t.start(path)
	if err != nil {
		return &errors.ToolUnavailableError{
			Name: t.appName,
			Err:  err,
		}
	}
	t.state = Starting
	t.proc = proc

	probe := t.probe
	if probe == nil {
		probe = proc.Alive
	}

	deadline := time.Now().Add(t.startWait)
	for {
		if probe() {
			t.state = Running
			return nil
		}
		if time.Now().After(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			t.abort()
			return ctx.Err()
		case <-time.After(t.pollInterval):
		}
	}

	t.abort()
	return &errors.ToolUnavailableError{
		Name: t.appName,
		Err:  fmt.Errorf("not up after %s", t.startWait),
	}
}

// abort stops the spawned process and resets to Stopped. The caller must
// hold t.mu.
func (t *Tool) abort() {
	if t.proc != nil {
		_ = t.proc.Stop()
		t.proc = nil
	}
	t.state = Stopped
}

// Stop terminates the application if this handle started it.
func (t *Tool) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.proc == nil {
		t.state = Stopped
		return nil
	}
	err := t.proc.Stop()
	t.proc = nil
	t.state = Stopped
	if err != nil {
		return fmt.Errorf("stopping %s: %w", t.appName, err)
	}
	return nil
}

// Analyze runs a word count analysis of inputPath against the dictionary at
// dictPath, writing results to outputPath. The application is started first
// if it is not already Running. It returns the path of the written results.
func (t *Tool) Analyze(ctx context.Context, dictPath, inputPath, outputPath string) (string, error) {
	if t.State() != Running {
		if err := t.Start(ctx); err != nil {
			return "", err
		}
	}

	cli, err := t.lookPath(t.cliName)
	if err != nil {
		return "", &errors.ToolUnavailableError{
			Name: t.cliName,
			Err:  err,
		}
	}

	stderr, err := t.run(ctx, cli,
		"--mode", "wc",
		"--dictionary", dictPath,
		"--input", inputPath,
		"--output", outputPath,
	)
	if err != nil {
		return "", &errors.ToolExecutionError{
			Msg:    "analyzing " + inputPath,
			Stderr: stderr,
			Err:    err,
		}
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", &errors.ToolExecutionError{
			Msg: "no results written to " + outputPath,
			Err: err,
		}
	}
	return outputPath, nil
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}
