package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/campusconnect/placement-api/internal/pkg/logger"
	"github.com/google/uuid"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath  string // directory where files are written
	urlPrefix string // public prefix of returned references, e.g. /uploads
}

// NewLocalStorage creates the base directory if needed
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

// BasePath is the directory served as static files
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// URLPrefix is the public prefix of stored references
func (ls *LocalStorage) URLPrefix() string {
	return ls.urlPrefix
}

// Save writes the file under a collision-free name
func (ls *LocalStorage) Save(_ context.Context, file Incoming) (StoredFile, error) {
	name := uniqueName(file.OriginalName)
	dstPath := filepath.Join(ls.basePath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return StoredFile{}, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, bytes.NewReader(file.Content))
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return StoredFile{}, fmt.Errorf("failed to save file content: %w", err)
	}

	stored := StoredFile{
		Path:         ls.urlPrefix + "/" + name,
		Name:         name,
		OriginalName: file.OriginalName,
		Size:         written,
		MimeType:     file.MimeType,
	}
	logger.Debug().Str("filename", file.OriginalName).Str("path", stored.Path).Msg("File saved")
	return stored, nil
}

// Delete removes a stored file. Missing files count as deleted.
func (ls *LocalStorage) Delete(_ context.Context, ref string) error {
	name, err := ls.fileName(ref)
	if err != nil {
		return err
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Debug().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// Open returns the stored file for streaming
func (ls *LocalStorage) Open(_ context.Context, ref string) (io.ReadCloser, string, error) {
	name, err := ls.fileName(ref)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(filepath.Join(ls.basePath, name))
	if os.IsNotExist(err) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	return f, mime.TypeByExtension(filepath.Ext(name)), nil
}

// Owns reports whether ref is a reference produced by this storage
func (ls *LocalStorage) Owns(ref string) bool {
	_, err := ls.fileName(ref)
	return err == nil
}

func (ls *LocalStorage) fileName(ref string) (string, error) {
	return managedName(ls.urlPrefix, ref)
}

// managedName extracts the flat file name from a reference under prefix
func managedName(prefix, ref string) (string, error) {
	if !strings.HasPrefix(ref, prefix+"/") {
		return "", ErrNotManaged
	}
	name := strings.TrimPrefix(ref, prefix+"/")
	if name == "" || name != path.Base(name) || name == "." || name == ".." {
		return "", ErrNotManaged
	}
	return name, nil
}

func uniqueName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if len(ext) > 10 {
		ext = ""
	}
	return uuid.New().String() + ext
}
