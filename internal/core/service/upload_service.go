package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

const uploadKeyPrefix = "images"

// UploadService decodes base64 image payloads and writes them to the
// object store under generated keys.
type UploadService struct {
	store ports.ObjectStore
}

func NewUploadService(store ports.ObjectStore) *UploadService {
	return &UploadService{store: store}
}

func (s *UploadService) Upload(ctx context.Context, in ports.UploadInput) (string, error) {
	if in.FileData == "" {
		return "", domain.ErrNoFile
	}

	data, err := base64.StdEncoding.DecodeString(in.FileData)
	if err != nil {
		return "", domain.ErrInvalidFileData
	}

	name := in.FileName
	if name == "" {
		name = "image.jpg"
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = "jpg"
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = contentTypeForExt(ext)
	}

	key := fmt.Sprintf("%s/%s.%s", uploadKeyPrefix, uuid.New(), ext)
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return "", err
	}
	return s.store.PublicURL(key), nil
}

// contentTypeForExt infers a content type from the file extension alone.
// The actual bytes are not inspected.
func contentTypeForExt(ext string) string {
	switch ext {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
