package filestorage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/campusconnect/placement-api/internal/pkg/logger"
)

// S3Config holds the object storage settings
type S3Config struct {
	Bucket       string
	Region       string
	Endpoint     string // custom endpoint for S3 compatible stores (R2, MinIO)
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	URLPrefix    string
}

// objectAPI is the subset of the S3 client used here
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage keeps uploads in an S3 compatible bucket. References keep the same
// /uploads/<name> shape as local storage and are streamed back by the API.
type S3Storage struct {
	client    objectAPI
	bucket    string
	urlPrefix string
}

// NewS3Storage builds an S3 client from static credentials or the default AWS chain
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("S3 storage configured")
	return newS3Storage(client, cfg.Bucket, cfg.URLPrefix), nil
}

func newS3Storage(client objectAPI, bucket, urlPrefix string) *S3Storage {
	return &S3Storage{
		client:    client,
		bucket:    bucket,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}
}

// Save uploads the file as an object keyed by its generated name
func (s *S3Storage) Save(ctx context.Context, file Incoming) (StoredFile, error) {
	name := uniqueName(file.OriginalName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(file.Content),
		ContentType:   aws.String(file.MimeType),
		ContentLength: aws.Int64(int64(len(file.Content))),
	})
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to put object: %w", err)
	}

	return StoredFile{
		Path:         s.urlPrefix + "/" + name,
		Name:         name,
		OriginalName: file.OriginalName,
		Size:         int64(len(file.Content)),
		MimeType:     file.MimeType,
	}, nil
}

// Delete removes the object behind ref
func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	name, err := managedName(s.urlPrefix, ref)
	if err != nil {
		return err
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Open streams the object behind ref
func (s *S3Storage) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	name, err := managedName(s.urlPrefix, ref)
	if err != nil {
		return nil, "", err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to get object: %w", err)
	}
	return out.Body, aws.ToString(out.ContentType), nil
}

// Owns reports whether ref is a reference produced by this storage
func (s *S3Storage) Owns(ref string) bool {
	_, err := managedName(s.urlPrefix, ref)
	return err == nil
}
