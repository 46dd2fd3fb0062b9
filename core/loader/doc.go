// Package loader provides the feature loading system of the HTTP server.
//
// Each feature implements the Feature interface, which exposes its name,
// whether it is enabled and its route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll(), in registration order
//
// Disabled features are skipped. The first Load error aborts LoadAll and is
// returned wrapped with the feature name.
package loader
