package upload

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "forumhub/internal/errors"
)

// URLPrefix is where the store's directory is served from.
const URLPrefix = "/uploads"

// Store persists validated images under randomly generated names.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates a store writing to dir, rejecting files over maxBytes.
func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// EnsureDir creates the storage directory if absent. Failure is logged and
// reported but callers treat it as non-fatal; the subsequent write surfaces
// the real error if the directory is genuinely unusable.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Printf("upload: cannot create directory %s: %v", s.dir, err)
		return err
	}
	return nil
}

// Save validates and persists one uploaded file:
// size gate first, then magic-number sniffing, then a write under a fresh
// uuid name with the sniffed extension. The caller-supplied filename and
// content type are never consulted. Returns the public path of the stored
// file.
func (s *Store) Save(src io.ReadSeeker, size int64) (string, error) {
	if size == 0 || size > s.maxBytes {
		return "", apperrors.ErrInvalidFileSize
	}

	imgType := DetectImageType(src)
	if imgType == ImageUnknown {
		return "", apperrors.ErrInvalidFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: rewind upload: %v", apperrors.ErrStorageWrite, err)
	}

	_ = s.EnsureDir()

	name := uuid.New().String() + "." + string(imgType)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", apperrors.ErrStorageWrite, name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: write %s: %v", apperrors.ErrStorageWrite, name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: close %s: %v", apperrors.ErrStorageWrite, name, err)
	}

	return URLPrefix + "/" + name, nil
}
