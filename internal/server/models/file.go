package models

import "time"

// StoredFile identifies a persisted upload. FileName and FilePath are always
// set; Key, Size and LastModified are populated by the object-storage backend
// only.
type StoredFile struct {
	FileName     string     `json:"fileName"`
	FilePath     string     `json:"filePath"`
	Key          string     `json:"key,omitempty"`
	Size         int64      `json:"size,omitempty"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}
