// Package storage provides file storage implementations for upload handling.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	learningapp "github.com/wordnest/backend/internal/application/learning"
)

// LocalStore writes uploaded files to a directory on local disk and returns
// the public path they are served under. Generated names combine a nanosecond
// timestamp with a random suffix so concurrent uploads never collide.
type LocalStore struct {
	// Dir is the root directory files are written to
	Dir string
	// BaseURL is the public path prefix, e.g. "/uploads"
	BaseURL string
}

// NewLocalStore creates a LocalStore rooted at dir
func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: baseURL}
}

// Ensure LocalStore implements FileStore
var _ learningapp.FileStore = (*LocalStore)(nil)

// Save stores the uploaded file under <Dir>/<folder>/ and returns its public
// path <BaseURL>/<folder>/<unique-name>. The original file extension is
// preserved.
func (s *LocalStore) Save(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", fmt.Errorf("no file to store")
	}

	dir := filepath.Join(s.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uniqueName(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write stored file: %w", err)
	}

	return path.Join(s.BaseURL, folder, name), nil
}

// uniqueName builds a collision-resistant filename preserving the extension
func uniqueName(original string) string {
	ext := filepath.Ext(original)
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), suffix, ext)
}
