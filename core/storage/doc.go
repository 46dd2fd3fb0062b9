// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so datasets kept in AWS S3 or a self-hosted MinIO
// instance can be compared directly (`s3://bucket/path/export.csv`).
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "exports")
package storage
