package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/blogpress/blog-backend/internal/api/metrics"
	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

// S3Config carries the settings for the object-store upload backend. An
// Endpoint override points the client at MinIO-style deployments.
type S3Config struct {
	Region    string
	Bucket    string
	Folder    string
	AccessKey string
	SecretKey string
	Endpoint  string
	PublicURL string
}

// S3Store forwards cover images to an S3-compatible object store under a
// fixed key folder and returns the hosted URL. No local copy is retained.
type S3Store struct {
	client    *s3.Client
	bucket    string
	folder    string
	publicURL string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.Endpoint
	}

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		folder:    strings.Trim(cfg.Folder, "/"),
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *S3Store) Store(ctx context.Context, upload *ports.FileUpload) (string, error) {
	if upload == nil || upload.Reader == nil {
		return "", domain.ErrCoverRequired
	}

	key := s.folder + "/" + uuid.NewString()
	if ext := fileExt(upload.Filename); ext != "" {
		key += "." + ext
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   upload.Reader,
	}
	if upload.ContentType != "" {
		input.ContentType = aws.String(upload.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		metrics.UploadsTotal.WithLabelValues("s3", "error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}

	metrics.UploadsTotal.WithLabelValues("s3", "ok").Inc()
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// Remove deletes a stored cover by its hosted URL. URLs outside this
// store's bucket are ignored.
func (s *S3Store) Remove(ctx context.Context, ref string) error {
	prefix := s.publicURL + "/" + s.bucket + "/"
	if !strings.HasPrefix(ref, prefix) {
		return nil
	}
	key := strings.TrimPrefix(ref, prefix)

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
