package ports

import "context"

// ObjectStore abstracts the S3-compatible bucket uploads go to.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	// PublicURL builds the CDN URL the stored object is served from.
	PublicURL(key string) string
}

// UploadInput is a single base64-encoded image upload.
type UploadInput struct {
	FileData    string
	FileName    string
	ContentType string
}

// UploadService decodes and stores uploaded images.
type UploadService interface {
	Upload(ctx context.Context, in UploadInput) (url string, err error)
}
