package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const basePath = "reports/"

type S3Client interface {
	UploadFile(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// PutObjectAPI is the part of *s3.Client the storage client uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type storageClient struct {
	bucket string
	client PutObjectAPI
}

func NewStorageClient(ctx context.Context, region, bucket string) (S3Client, error) {
	if bucket == "" {
		return nil, errors.New("bucket name is empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewWithAPI(s3.NewFromConfig(cfg), bucket), nil
}

func NewWithAPI(api PutObjectAPI, bucket string) S3Client {
	return &storageClient{bucket: bucket, client: api}
}

// UploadFile stores data under reports/<key> and returns the full object key.
func (s *storageClient) UploadFile(ctx context.Context, data []byte, key, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("key is empty")
	}

	fullKey := basePath + key
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("uploading %s: %w", fullKey, err)
	}
	return fullKey, nil
}
