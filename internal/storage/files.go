package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"payment-config-service/internal/models"
)

var (
	ErrEmptyUpload = errors.New("upload has no content")
	ErrBadUpload   = errors.New("upload content is not valid base64")
	ErrOutsideRoot = errors.New("path escapes the storage root")
)

// FileStore persists uploaded logos and attachments on local disk under a
// single root. Stored paths are relative to the root so they can be served
// and later deleted without knowing the deployment layout.
type FileStore struct {
	root   string
	logger *logrus.Logger
}

func NewFileStore(root string, logger *logrus.Logger) *FileStore {
	return &FileStore{root: root, logger: logger}
}

// Store decodes the upload and writes it under dir, returning the relative
// path to record on the entity. The stored name is randomized; the original
// name only contributes its extension.
func (s *FileStore) Store(upload *models.FileUpload, dir string) (string, error) {
	if upload == nil || strings.TrimSpace(upload.Content) == "" {
		return "", ErrEmptyUpload
	}

	content := upload.Content
	// Accept data-URI payloads from browser clients.
	if idx := strings.Index(content, ";base64,"); idx >= 0 {
		content = content[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", ErrBadUpload
	}

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	name := uuid.New().String() + ext
	relative := filepath.Join(dir, name)

	absolute, err := s.resolve(relative)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(absolute), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(absolute, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return relative, nil
}

// Delete removes a previously stored file. A missing file is not an error;
// replacement flows delete the old path after the new one is committed, and
// a crash in between leaves an orphan rather than a broken record.
func (s *FileStore) Delete(relative string) error {
	if strings.TrimSpace(relative) == "" {
		return nil
	}

	absolute, err := s.resolve(relative)
	if err != nil {
		return err
	}

	if err := os.Remove(absolute); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStore) resolve(relative string) (string, error) {
	absolute := filepath.Join(s.root, filepath.Clean("/"+relative))
	if !strings.HasPrefix(absolute, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", ErrOutsideRoot
	}
	return absolute, nil
}
