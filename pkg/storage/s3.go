package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage stores uploads in an S3 bucket.
type S3Storage struct {
	client *s3.Client
	bucket string
}

// S3Config holds bucket and credential details.
type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Storage creates an S3-backed Storage.
func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}, nil
}

// Store uploads the bytes under the given key and returns the key.
func (s *S3Storage) Store(filename string, data io.Reader) (string, error) {
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
		Body:   data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to S3: %w", filename, err)
	}
	return filename, nil
}
