package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

type stubObjectStore struct {
	key         string
	contentType string
	data        []byte
}

func (s *stubObjectStore) Put(_ context.Context, key, contentType string, data []byte) error {
	s.key = key
	s.contentType = contentType
	s.data = data
	return nil
}

func (s *stubObjectStore) PublicURL(key string) string {
	return "https://cdn.example.com/projects/key-id/bucket/" + key
}

func TestUploadService_Upload_Success(t *testing.T) {
	store := &stubObjectStore{}
	svc := NewUploadService(store)

	payload := []byte("fake png bytes")
	url, err := svc.Upload(context.Background(), ports.UploadInput{
		FileData: base64.StdEncoding.EncodeToString(payload),
		FileName: "Cover.PNG",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if !strings.HasPrefix(store.key, "images/") || !strings.HasSuffix(store.key, ".png") {
		t.Fatalf("unexpected key: %q", store.key)
	}
	if store.contentType != "image/png" {
		t.Fatalf("expected inferred image/png, got %q", store.contentType)
	}
	if string(store.data) != string(payload) {
		t.Fatalf("stored bytes differ from decoded payload")
	}
	if url != store.PublicURL(store.key) {
		t.Fatalf("unexpected url: %q", url)
	}
}

func TestUploadService_Upload_Defaults(t *testing.T) {
	store := &stubObjectStore{}
	svc := NewUploadService(store)

	_, err := svc.Upload(context.Background(), ports.UploadInput{
		FileData: base64.StdEncoding.EncodeToString([]byte("x")),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasSuffix(store.key, ".jpg") {
		t.Fatalf("expected jpg fallback, got %q", store.key)
	}
	if store.contentType != "image/jpeg" {
		t.Fatalf("expected image/jpeg fallback, got %q", store.contentType)
	}
}

func TestUploadService_Upload_ExplicitContentType(t *testing.T) {
	store := &stubObjectStore{}
	svc := NewUploadService(store)

	_, err := svc.Upload(context.Background(), ports.UploadInput{
		FileData:    base64.StdEncoding.EncodeToString([]byte("x")),
		FileName:    "pic.webp",
		ContentType: "application/octet-stream",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if store.contentType != "application/octet-stream" {
		t.Fatalf("explicit content type must win, got %q", store.contentType)
	}
}

func TestUploadService_Upload_Validation(t *testing.T) {
	svc := NewUploadService(&stubObjectStore{})
	ctx := context.Background()

	if _, err := svc.Upload(ctx, ports.UploadInput{}); err != domain.ErrNoFile {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
	if _, err := svc.Upload(ctx, ports.UploadInput{FileData: "%%%not-base64%%%"}); err != domain.ErrInvalidFileData {
		t.Fatalf("expected ErrInvalidFileData, got %v", err)
	}
}

func TestContentTypeForExt(t *testing.T) {
	cases := map[string]string{
		"png":  "image/png",
		"gif":  "image/gif",
		"webp": "image/webp",
		"svg":  "image/svg+xml",
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		"bmp":  "image/jpeg",
	}
	for ext, want := range cases {
		if got := contentTypeForExt(ext); got != want {
			t.Fatalf("contentTypeForExt(%q) = %q, want %q", ext, got, want)
		}
	}
}
