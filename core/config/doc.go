// Package config provides configuration management for tablediff.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared next to each field with a `default`
// struct tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Compare: report format, only-right reporting, strict keys, sequential indexing
//   - Server: HTTP server settings (port, API key, body limit, dataset cache)
//   - Database: MySQL/SQLite connection details for db:// sources
//   - Storage: S3/MinIO credentials for s3:// sources
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Compare.Format)
package config
