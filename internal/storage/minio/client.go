package minio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/files-manager/internal/model"
)

const (
	codeNoSuchKey = "NoSuchKey"
	sniffLen      = 3072
)

// objectAPI is the subset of *minio.Client the store needs.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

type sdkClient struct{ *minio.Client }

func (c sdkClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := c.Client.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Options holds connection settings for an S3 compatible endpoint.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

var _ model.Storage = (*Store)(nil)

// Store keeps content as objects in a single bucket. Locations are object keys.
type Store struct {
	api    objectAPI
	bucket string
}

// NewStore dials the endpoint and makes sure the bucket exists.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return newStoreWithAPI(ctx, sdkClient{client}, opts.Bucket)
}

func newStoreWithAPI(ctx context.Context, api objectAPI, bucket string) (*Store, error) {
	s := &Store{
		api:    api,
		bucket: bucket,
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return s, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

func objectKey(keyOrLocation string) (string, error) {
	key := strings.TrimLeft(keyOrLocation, "/")
	if key == "" {
		return "", fmt.Errorf("empty object key")
	}
	return key, nil
}

// Upload stores reader under key with a sniffed content type and returns
// the key as the location.
func (s *Store) Upload(ctx context.Context, key string, reader io.Reader) (string, error) {
	objKey, err := objectKey(key)
	if err != nil {
		return "", err
	}

	br := bufio.NewReaderSize(reader, sniffLen)
	head, _ := br.Peek(sniffLen)

	_, err = s.api.PutObject(ctx, s.bucket, objKey, br, -1, minio.PutObjectOptions{
		ContentType: mimetype.Detect(head).String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return objKey, nil
}

// Download opens the object at location. A missing object is model.ErrNotFound.
func (s *Store) Download(ctx context.Context, location string) (io.ReadCloser, error) {
	objKey, err := objectKey(location)
	if err != nil {
		return nil, err
	}

	// GetObject is lazy, stat first so a missing key surfaces here.
	if _, err := s.api.StatObject(ctx, s.bucket, objKey, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == codeNoSuchKey {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	obj, err := s.api.GetObject(ctx, s.bucket, objKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	return obj, nil
}

func (s *Store) Delete(ctx context.Context, location string) error {
	objKey, err := objectKey(location)
	if err != nil {
		return err
	}

	if err := s.api.RemoveObject(ctx, s.bucket, objKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

func (s *Store) Exists(ctx context.Context, location string) (bool, error) {
	objKey, err := objectKey(location)
	if err != nil {
		return false, err
	}

	_, err = s.api.StatObject(ctx, s.bucket, objKey, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == codeNoSuchKey {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}

	return true, nil
}
