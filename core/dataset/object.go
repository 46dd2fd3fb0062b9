package dataset

import (
	"context"
	"fmt"

	"tablediff/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectSource reads a CSV or XLSX object from S3-compatible storage.
type ObjectSource struct {
	client storage.Client
	bucket string
	key    string
}

// NewObjectSource creates a source for bucket/key.
func NewObjectSource(client storage.Client, bucket, key string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, key: key}
}

func (s *ObjectSource) Name() string { return schemeS3 + s.bucket + "/" + s.key }

func (s *ObjectSource) Load(ctx context.Context) (*Dataset, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, unreadable(s.Name(), fmt.Errorf("checking bucket: %w", err))
	}
	if !exists {
		return nil, unreadable(s.Name(), fmt.Errorf("bucket %s does not exist", s.bucket))
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, unreadable(s.Name(), err)
	}
	defer obj.Close()

	if isSpreadsheet(s.key) {
		return ReadExcel(s.Name(), obj, "")
	}
	return ReadCSV(s.Name(), obj)
}
