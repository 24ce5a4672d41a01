package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

var _ BlobStore = (*S3Store)(nil)

// S3Config carries the settings for an S3-compatible object store
// (AWS S3, Cloudflare R2, MinIO).
type S3Config struct {
	AccountID     string
	AccessKeyID   string
	SecretKey     string
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// S3Store stores blobs in a single bucket of an S3-compatible service.
type S3Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3Store builds the S3 client. When Endpoint is empty and AccountID is
// set, the Cloudflare R2 endpoint for that account is used.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" && cfg.AccountID != "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3Store{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload blob")
		return "", fmt.Errorf("failed to upload blob %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to fetch blob")
		return nil, fmt.Errorf("failed to fetch blob %s: %w", key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to delete blob")
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) publicURL(key string) string {
	return s.publicBase + "/" + url.PathEscape(key)
}
