package photo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrInvalidMimeType = errors.New("unsupported image type")

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// DiskStore saves images under baseDir and serves them from staticBase.
// Used for local development and tests when Cloudinary is not
// configured.
type DiskStore struct {
	baseDir    string
	staticBase string
}

func NewDiskStore(baseDir, staticBase string) *DiskStore {
	return &DiskStore{baseDir: baseDir, staticBase: staticBase}
}

func (s *DiskStore) Store(_ context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidMimeType
	}

	// Sniff the MIME type from the leading bytes
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mimeType := strings.Split(http.DetectContentType(head), ";")[0]
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return "", ErrInvalidMimeType
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", err
	}

	name := filename + ext
	if err := os.WriteFile(filepath.Join(absDir, name), data, 0o644); err != nil {
		return "", err
	}

	relPath := relDir + "/" + name
	return s.staticBase + "/" + relPath, nil
}
