package compare

import (
	"tablediff/core/dataset"
	"tablediff/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Compare feature.
func NewFeature(opener *dataset.Opener, cache *dataset.Cache, defaults reconcile.Config, dataDir string, logger *zap.Logger) *Feature {
	svc := NewService(opener, cache, defaults, dataDir, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "compare"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
