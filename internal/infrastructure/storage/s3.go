// Package storage wraps the S3-compatible object store image uploads go to.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kotatsu-vn/novel-backend/internal/infrastructure/config"
)

// Client is an ObjectStore backed by an S3-compatible endpoint.
type Client struct {
	s3          *s3.Client
	bucket      string
	accessKeyID string
	cdnBase     string
}

// New builds the S3 client with static credentials and a custom endpoint.
func New(ctx context.Context, cfg config.StorageConfig) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Client{
		s3:          client,
		bucket:      cfg.Bucket,
		accessKeyID: cfg.AccessKeyID,
		cdnBase:     cfg.CDNBaseURL,
	}, nil
}

func (c *Client) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage put %s: %w", key, err)
	}
	return nil
}

// PublicURL follows the CDN template the front-end expects:
// <cdn-base>/projects/<access-key-id>/bucket/<key>
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/projects/%s/bucket/%s", c.cdnBase, c.accessKeyID, key)
}
