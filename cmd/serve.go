package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tablediff/core/config"
	"tablediff/core/database"
	"tablediff/core/dataset"
	"tablediff/core/loader"
	"tablediff/core/logger"
	"tablediff/core/middleware/auth"
	"tablediff/core/middleware/rayid"
	"tablediff/core/storage"

	"tablediff/feature/compare"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "tablediff/docs/swagger"
)

// @title tablediff API
// @version 1.0
// @description Key-indexed reconciliation of two tabular datasets.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Backends are optional; db:// and s3:// locations fail without them
		opener := &dataset.Opener{}
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			opener.DB = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}
		if store, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			opener.Storage = store
		}

		app, err := newServer(cfg, opener, logg)
		if err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newServer builds the fiber app: ray id, request logging, then the public
// health and swagger routes, then API key auth in front of every feature.
func newServer(cfg *config.Config, opener *dataset.Opener, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	mgr := loader.NewManager()
	mgr.Register(compare.NewFeature(
		opener,
		dataset.NewCache(cfg.Server.CacheTTL()),
		cfg.Compare,
		cfg.Server.DataDir,
		logg,
	))

	// RayID first so every log line can be traced
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Public routes
	app.Get("/health", handleHealth)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	for _, f := range mgr.Features() {
		logg.Info("Feature registered", zap.String("feature", f.Name()), zap.Bool("enabled", f.IsEnabled()))
	}
	if cfg.Server.ApiKey == "" {
		logg.Warn("API key authentication disabled")
	}

	return app, nil
}

// handleHealth reports that the server is up.
// @Summary Health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /health [get]
func handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
