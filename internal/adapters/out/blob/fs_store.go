// Package blob provides a filesystem-backed image store. Post images are
// written under a base directory and served by URL; the engine only ever
// stores the returned URL.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sharebite/internal/pkg/errs"
)

// FsStore stores blobs as files under baseDir and returns URLs rooted at
// baseURL.
type FsStore struct {
	baseDir string
	baseURL string
}

// NewFsStore creates a filesystem blob store. The base directory is created
// on first use.
func NewFsStore(baseDir, baseURL string) (*FsStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errs.NewStoreUnavailableError("create blob dir", err)
	}

	return &FsStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put stores data under name and returns its URL. The name must not contain
// path separators.
func (s *FsStore) Put(_ context.Context, name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", errs.NewValueIsInvalidError("name")
	}

	if err := os.WriteFile(filepath.Join(s.baseDir, name), data, 0o644); err != nil {
		return "", errs.NewStoreUnavailableError("write blob", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, name), nil
}

// Get retrieves previously stored bytes by name.
func (s *FsStore) Get(_ context.Context, name string) ([]byte, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, errs.NewValueIsInvalidError("name")
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewObjectNotFoundError("blob", name)
		}
		return nil, errs.NewStoreUnavailableError("read blob", err)
	}

	return data, nil
}
