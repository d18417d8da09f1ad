package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"dividend_backend/internal/feature/company/usecase"
)

// Uploader is the part of manager.Uploader the store uses.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// ObjectDeleter is the part of s3.Client the store uses.
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3IconStore uploads icons to an S3 bucket.
type S3IconStore struct {
	uploader Uploader
	deleter  ObjectDeleter
	bucket   string
	prefix   string
}

var _ usecase.IconStore = (*S3IconStore)(nil)

// NewS3IconStore returns a store writing objects under prefix in bucket.
func NewS3IconStore(uploader Uploader, deleter ObjectDeleter, bucket, prefix string) *S3IconStore {
	return &S3IconStore{uploader: uploader, deleter: deleter, bucket: bucket, prefix: prefix}
}

func (s *S3IconStore) key(name string) string {
	return path.Join(s.prefix, name)
}

// Save uploads data and returns the object location.
func (s *S3IconStore) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	out, err := s.uploader.Upload(ctx, in)
	if err != nil {
		return "", fmt.Errorf("storage: upload icon: %w", err)
	}
	return out.Location, nil
}

// Delete removes the object stored for name.
func (s *S3IconStore) Delete(ctx context.Context, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	_, err = s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return fmt.Errorf("storage: delete icon: %w", err)
	}
	return nil
}
