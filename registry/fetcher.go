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

package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/remrama/liwca"
	"github.com/remrama/liwca/errors"
)

// Fetcher downloads registry dictionaries and caches the raw artifacts on
// disk. A cached artifact is reused only when its checksum still matches the
// manifest, so a truncated or tampered cache entry triggers a fresh download
// rather than a bad read.
type Fetcher struct {
	reg      *Registry
	client   *resty.Client
	cacheDir string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithCacheDir sets the directory where downloaded artifacts are stored.
func WithCacheDir(dir string) Option {
	return func(f *Fetcher) {
		f.cacheDir = dir
	}
}

// WithClient sets the HTTP client used for downloads.
func WithClient(client *resty.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithRegistry sets the registry consulted for entry lookups.
func WithRegistry(reg *Registry) Option {
	return func(f *Fetcher) {
		f.reg = reg
	}
}

// NewFetcher returns a Fetcher using the default registry and a per-user
// cache directory unless overridden by options.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}
	if f.reg == nil {
		reg, err := Default()
		if err != nil {
			return nil, err
		}
		f.reg = reg
	}
	if f.client == nil {
		f.client = resty.New()
	}
	if f.cacheDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolving cache directory: %w", err)
		}
		f.cacheDir = filepath.Join(dir, "liwca")
	}
	return f, nil
}

// Fetch downloads the named dictionary if it is not already cached and
// returns the path to a readable dictionary file. For entries with a
// processor the returned path points at the converted .dicx file; otherwise
// it points at the raw artifact.
func (f *Fetcher) Fetch(ctx context.Context, name string) (string, error) {
	e, err := f.reg.Lookup(name)
	if err != nil {
		return "", err
	}

	rawPath := filepath.Join(f.cacheDir, e.File)
	if !f.cached(e, rawPath) {
		if err := f.download(ctx, e, rawPath); err != nil {
			return "", err
		}
	}

	if e.Processor == "" {
		return rawPath, nil
	}
	return f.process(e, rawPath)
}

// FetchDictionary fetches the named dictionary and reads it.
func (f *Fetcher) FetchDictionary(ctx context.Context, name string) (*liwca.Dictionary, error) {
	path, err := f.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return liwca.ReadFile(path)
}

// cached reports whether path holds an artifact matching the manifest
// checksum.
func (f *Fetcher) cached(e Entry, path string) bool {
	contents, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return checksum(contents) == e.SHA256
}

func (f *Fetcher) download(ctx context.Context, e Entry, path string) error {
	res, err := f.client.R().
		SetContext(ctx).
		Get(e.URL)
	if err != nil {
		return fmt.Errorf("downloading %q: %w", e.Name, err)
	}
	if res.StatusCode() != http.StatusOK {
		return fmt.Errorf("downloading %q: status code %d", e.Name, res.StatusCode())
	}

	body := res.Body()
	if got := checksum(body); got != e.SHA256 {
		return &errors.IntegrityError{
			Name: e.Name,
			Want: e.SHA256,
			Got:  got,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	// Write to a temporary file first so an interrupted write never leaves
	// a partial artifact at the cache path.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("caching %q: %w", e.Name, err)
	}
	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("caching %q: %w", e.Name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("caching %q: %w", e.Name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("caching %q: %w", e.Name, err)
	}
	return nil
}

// process converts a raw artifact into a .dicx file alongside it and returns
// the converted path. An existing conversion is reused.
func (f *Fetcher) process(e Entry, rawPath string) (string, error) {
	dicxPath := strings.TrimSuffix(rawPath, filepath.Ext(rawPath)) + liwca.ExtDicx
	if _, err := os.Stat(dicxPath); err == nil {
		return dicxPath, nil
	}

	proc, ok := processors[e.Processor]
	if !ok {
		return "", fmt.Errorf("entry %q: unknown processor %q", e.Name, e.Processor)
	}
	raw, err := os.ReadFile(rawPath)
	if err != nil {
		return "", fmt.Errorf("reading raw %q artifact: %w", e.Name, err)
	}
	d, err := proc(e.Name, raw)
	if err != nil {
		return "", err
	}
	if _, err := liwca.WriteFile(d, dicxPath); err != nil {
		return "", fmt.Errorf("writing converted %q dictionary: %w", e.Name, err)
	}
	return dicxPath, nil
}

func checksum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
