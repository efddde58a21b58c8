package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/filex"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// DiskStore keeps uploads as flat files in a single shared directory.
type DiskStore struct {
	dir string
}

// NewDiskStore ensures dir exists and returns a store rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &DiskStore{dir: abs}, nil
}

// Save validates the upload and writes it under a generated name. The write
// is capped at MaxUploadSize even if the declared size lied.
func (s *DiskStore) Save(ctx context.Context, ownerID int64, originalName string, content io.Reader, size int64) (*models.StoredFile, error) {
	if err := ValidateUpload(originalName, size); err != nil {
		return nil, err
	}

	name := NewStorageName(originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	written, err := io.Copy(f, io.LimitReader(content, MaxUploadSize+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	if written > MaxUploadSize {
		_ = os.Remove(path)
		return nil, common.ErrFileTooLarge
	}

	return &models.StoredFile{
		FileName: name,
		FilePath: "/uploads/" + name,
	}, nil
}

// List enumerates every stored file in the shared directory. Dotfiles are
// skipped.
func (s *DiskStore) List(ctx context.Context, ownerID int64) ([]*models.StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.dir, err)
	}

	result := []*models.StoredFile{}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		result = append(result, &models.StoredFile{
			FileName: e.Name(),
			FilePath: "/uploads/" + e.Name(),
		})
	}
	return result, nil
}

// Delete removes the named file. An absent file yields common.ErrorNotFound
// on every call.
func (s *DiskStore) Delete(ctx context.Context, key string) error {
	// keys are flat names; anything path-like cannot match a stored file
	if key != filepath.Base(key) {
		return common.ErrorNotFound
	}

	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
