// Package storage abstracts upload persistence behind one FileStore
// interface with two backends: a local directory and S3-compatible object
// storage. The backend is selected once by configuration, not per call site.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MaxUploadSize is the upload payload cap (10 MiB).
const MaxUploadSize = 10 << 20

// allowedExtensions is the accepted set of upload file extensions,
// compared case-insensitively.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// FileStore stores, enumerates and deletes uploaded blobs.
//
// ownerID identifies the uploading user. Neither shipped backend scopes
// storage by owner (listing returns the whole directory or bucket, matching
// the system this replaces); the parameter exists so a scoping backend can be
// added without touching call sites.
type FileStore interface {
	Save(ctx context.Context, ownerID int64, originalName string, content io.Reader, size int64) (*models.StoredFile, error)
	List(ctx context.Context, ownerID int64) ([]*models.StoredFile, error)
	Delete(ctx context.Context, key string) error
}

// ValidateUpload checks the original file name against the allowed extension
// set and the declared size against MaxUploadSize.
func ValidateUpload(originalName string, size int64) error {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return common.ErrUnsupportedFileType
	}
	if size > MaxUploadSize {
		return common.ErrFileTooLarge
	}
	return nil
}

// NewStorageName generates a collision-resistant stored name that preserves
// the original extension.
func NewStorageName(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}
