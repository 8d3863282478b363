package storage

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/owiro17/smarttrimz/internal/config"
)

// S3Storage holds processed avatars in an S3-compatible bucket and
// hands back the public URL stored on the user record.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Storage(cfg *config.Config) *S3Storage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Custom endpoints (MinIO in dev) need path-style addressing.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Storage{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: cfg.S3PublicBaseURL,
	}
}

// PutAvatar uploads the WebP-encoded avatar under a per-user key,
// overwriting any previous one.
func (s *S3Storage) PutAvatar(
	ctx context.Context,
	userID string,
	data []byte,
) (string, error) {

	key := "avatars/" + userID + ".webp"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
