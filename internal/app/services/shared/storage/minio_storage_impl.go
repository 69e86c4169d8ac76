package storage

import (
	"bytes"
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client     *minio.Client
	bucketName string
}

func NewMinioStorage(client *minio.Client, bucketName string) contracts.StorageService {
	return &minioStorage{
		client:     client,
		bucketName: bucketName,
	}
}

func (s *minioStorage) UploadObject(ctx context.Context, objectKey string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	return nil
}

func (s *minioStorage) GetPresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, s.bucketName)
	}
	return presignedURL.String(), nil
}
