package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	sc "github.com/dmitrijs2005/contactkeeper/internal/server/config"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// S3Store keeps uploads in a single S3-compatible bucket.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Store builds an S3 client from the server config. A base endpoint
// (e.g. MinIO) overrides the AWS default; credentials come from the config
// when set, otherwise from the default provider chain.
func NewS3Store(ctx context.Context, cfg *sc.Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3RootUser != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3RootUser, cfg.S3RootPassword, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: objectBaseURL(cfg),
	}, nil
}

func objectBaseURL(cfg *sc.Config) string {
	if cfg.S3BaseEndpoint != "" {
		return strings.TrimSuffix(cfg.S3BaseEndpoint, "/") + "/" + cfg.S3Bucket
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.S3Bucket)
}

func (s *S3Store) objectURL(key string) string {
	return s.baseURL + "/" + key
}

// Save validates the upload and puts it under a generated key.
func (s *S3Store) Save(ctx context.Context, ownerID int64, originalName string, content io.Reader, size int64) (*models.StoredFile, error) {
	if err := ValidateUpload(originalName, size); err != nil {
		return nil, err
	}

	key := NewStorageName(originalName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          io.LimitReader(content, MaxUploadSize),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &models.StoredFile{
		FileName: key,
		FilePath: s.objectURL(key),
		Key:      key,
		Size:     size,
	}, nil
}

// List enumerates the whole bucket.
func (s *S3Store) List(ctx context.Context, ownerID int64) ([]*models.StoredFile, error) {
	result := []*models.StoredFile{}

	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			result = append(result, &models.StoredFile{
				FileName:     path.Base(key),
				FilePath:     s.objectURL(key),
				Key:          key,
				Size:         aws.ToInt64(obj.Size),
				LastModified: obj.LastModified,
			})
		}
	}

	return result, nil
}

// Delete removes the object under key. An absent object yields
// common.ErrorNotFound.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("head object %s: %w", key, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
