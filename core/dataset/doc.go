// Package dataset loads tabular data for comparison.
//
// A Dataset is a header plus rows of string cells, fully materialized in memory.
// Sources are resolved from a location string by Opener:
//
//   - plain paths are CSV files whose first record is the header
//   - paths ending in .xlsx (optionally "#Sheet") are read with excelize
//   - s3://bucket/key objects are fetched through core/storage
//   - db://table reads a table through core/database
//
// Every failure to open or parse a location is reported as a *SourceError,
// which matches ErrSourceUnreadable with errors.Is.
//
// # Cache
//
// Cache keeps loaded datasets for a TTL, with singleflight protection against
// concurrent loads of the same location. The HTTP feature uses it; the CLI
// loads each location exactly once and does not.
package dataset
