package filestorage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotManaged is returned for references that do not point into this storage
	ErrNotManaged = errors.New("file reference is not managed by this storage")
	// ErrNotFound is returned when a managed reference has no stored file
	ErrNotFound = errors.New("stored file not found")
)

// Incoming is an uploaded file that has passed type checks and is ready to be stored
type Incoming struct {
	OriginalName string
	Content      []byte
	MimeType     string
}

// StoredFile describes a file after it has been durably written
type StoredFile struct {
	Path         string `json:"path"` // server-relative reference, e.g. /uploads/<name>
	Name         string `json:"name"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes the file and returns its server-relative reference
	Save(ctx context.Context, file Incoming) (StoredFile, error)

	// Delete removes a previously stored file; unknown files are not an error
	Delete(ctx context.Context, ref string) error

	// Open streams a stored file together with its content type
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)

	// Owns reports whether ref points into this storage
	Owns(ref string) bool
}
