package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies (uploaded datasets) in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
	// DataDir is the only directory HTTP requests may read local files from.
	// Empty restricts requests to s3:// and db:// locations.
	DataDir string `mapstructure:"data_dir" default:""`
	// CacheTTLSeconds is how long loaded datasets are reused between requests.
	// Zero disables the dataset cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 64 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// CacheTTL returns the dataset cache time-to-live.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
