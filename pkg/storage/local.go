package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

// BlobStore persists uploaded images and returns the relative path
// they will be served back from.
type BlobStore interface {
	SaveLogo(file *multipart.FileHeader) (string, error)
	SaveGallery(file *multipart.FileHeader) (string, error)
}

type LocalStore struct {
	baseDir  string
	maxBytes int64
	log      *zap.Logger
}

func NewLocalStore(config utils.UploadConfig, log *zap.Logger) (*LocalStore, error) {
	// Separate folders per category, created up front so saves never race mkdir
	for _, sub := range []string{"logos", "gallery"} {
		if err := os.MkdirAll(filepath.Join(config.Dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", sub, err)
		}
	}

	return &LocalStore{
		baseDir:  config.Dir,
		maxBytes: int64(config.MaxSize) * 1024 * 1024,
		log:      log.With(zap.String("component", "storage")),
	}, nil
}

func (s *LocalStore) SaveLogo(file *multipart.FileHeader) (string, error) {
	return s.save("logos", "logo_image", file)
}

func (s *LocalStore) SaveGallery(file *multipart.FileHeader) (string, error) {
	return s.save("gallery", "gallery_images", file)
}

func (s *LocalStore) save(subdir, field string, file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxBytes {
		return "", fmt.Errorf("file %s exceeds maximum size", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	// Unique file name: fieldname-timestamp-random.ext
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	fullPath := filepath.Join(s.baseDir, subdir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", fullPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		s.log.Error("Failed to write uploaded file",
			zap.Error(err),
			zap.String("path", fullPath),
		)
		return "", fmt.Errorf("write file %s: %w", fullPath, err)
	}

	// Relative path so the client can request it via /uploads/...
	relPath := filepath.ToSlash(filepath.Join("uploads", subdir, name))

	s.log.Debug("Stored uploaded file",
		zap.String("field", field),
		zap.String("path", relPath),
		zap.Int64("size", file.Size),
	)

	return relPath, nil
}
