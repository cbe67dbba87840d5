package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	cfg "github.com/dafibh/fortuna/fortuna-dashboard/internal/config"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
)

// S3DatasetRepository implements DatasetObjectRepository using AWS S3
type S3DatasetRepository struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3DatasetRepository creates a new S3 dataset repository
func NewS3DatasetRepository(ctx context.Context, s3cfg cfg.S3Config) (*S3DatasetRepository, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s3cfg.Region),
	}

	if s3cfg.AccessKeyID != "" && s3cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				s3cfg.AccessKeyID,
				s3cfg.SecretAccessKey,
				"",
			),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Endpoint override for MinIO/LocalStack
	var client *s3.Client
	if s3cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	repo := &S3DatasetRepository{
		client: client,
		bucket: s3cfg.Bucket,
		prefix: s3cfg.Prefix,
	}

	// Imports are read-only: the bucket must already exist
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(repo.bucket)}); err != nil {
		return nil, fmt.Errorf("failed to access bucket %q: %w", repo.bucket, err)
	}

	return repo, nil
}

// Open fetches an object below the configured prefix
func (r *S3DatasetRepository) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	objectKey, err := ObjectKey(r.prefix, key)
	if err != nil {
		return nil, 0, err
	}

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, 0, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, objectKey)
		}
		return nil, 0, fmt.Errorf("failed to get object: %w", err)
	}

	size := int64(-1)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}
	return out.Body, size, nil
}
