// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a unique request id (RayID) for every incoming request, stored in
//     the context locals and echoed in the response headers for tracing.
//
// RayID must be registered first so every later log line carries the id.
package middleware
