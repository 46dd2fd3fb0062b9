// Package compare exposes the dataset reconciliation pipeline over HTTP.
//
// Datasets are referenced by location (see dataset.Opener) or uploaded as
// multipart files. Loaded locations are cached for the configured TTL.
//
// Local paths are resolved against the server data directory and refused
// when they leave it, symlinks included. Without a data directory only
// s3:// and db:// locations are accepted.
//
// # HTTP Endpoints
//
//   - POST /compare : compares two locations given as JSON.
//   - POST /compare/upload : compares two uploaded files (CSV or XLSX).
//
// # Status Codes
//
//   - 200: comparison ran, with or without discrepancies.
//   - 400: malformed request, local path outside the data directory,
//     unconfigured backend, schema or key column error.
//   - 422: a source could not be read, has ragged rows, or repeats a key under strict keys.
package compare
