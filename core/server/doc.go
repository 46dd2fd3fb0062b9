// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure: listen port, API key, request body limit and the
// dataset cache lifetime used by the compare feature.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/serve to configure Fiber.
package server
