// Package storage uploads check-in photos to S3 compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"field-marketing-backend/internal/config"
	apperrors "field-marketing-backend/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

//go:generate mockgen -source=photos.go -destination=../mocks/storage_mocks.go -package=mocks

// PhotoStoreInterface stores blobs and returns a publicly resolvable URL
type PhotoStoreInterface interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, overwrite bool) (string, error)
	URL(key string) string
}

// objectAPI is the subset of the S3 client the store needs
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PhotoStore implements PhotoStoreInterface on S3 or MinIO
type S3PhotoStore struct {
	client        objectAPI
	bucket        string
	region        string
	endpoint      string
	publicBaseURL string
}

// NewS3PhotoStore creates a store from configuration. An endpoint selects
// MinIO style path addressing with static credentials.
func NewS3PhotoStore(ctx context.Context, cfg *config.Config) (*S3PhotoStore, error) {
	if !cfg.PhotoStorageEnabled() {
		return nil, apperrors.ErrPhotoStorageNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3Endpoint != "" {
		if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
			return nil, apperrors.NewConfigurationError("S3_ACCESS_KEY and S3_SECRET_KEY are required with S3_ENDPOINT")
		}
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PhotoStore(client, cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint, cfg.S3PublicBaseURL), nil
}

func newS3PhotoStore(client objectAPI, bucket, region, endpoint, publicBaseURL string) *S3PhotoStore {
	return &S3PhotoStore{
		client:        client,
		bucket:        bucket,
		region:        region,
		endpoint:      strings.TrimSuffix(endpoint, "/"),
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload writes body under key. Without overwrite the write is conditional
// and an existing object yields ErrPhotoExists.
func (s *S3PhotoStore) Upload(ctx context.Context, key string, body io.Reader, contentType string, overwrite bool) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if !overwrite {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return "", apperrors.ErrPhotoExists
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrPhotoUploadFailed, err)
	}
	return s.URL(key), nil
}

// URL returns the public URL of key
func (s *S3PhotoStore) URL(key string) string {
	switch {
	case s.publicBaseURL != "":
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key)
	case s.endpoint != "":
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	}
}

// PhotoKey builds the object key of a check-in photo:
// visits/<owner>/<unix millis>-<short id>-<file name>
func PhotoKey(ownerID, fileName string, now time.Time) string {
	name := sanitize(path.Base(fileName))
	if name == "" || name == "." {
		name = "photo"
	}
	return fmt.Sprintf("visits/%s/%d-%s-%s",
		sanitize(ownerID), now.UnixMilli(), uuid.New().String()[:8], name)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
