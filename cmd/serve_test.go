package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"tablediff/core/config"
	"tablediff/core/dataset"
	"tablediff/core/middleware/auth"
	"tablediff/core/middleware/rayid"
	"tablediff/core/reconcile"
	"tablediff/core/server"
	"tablediff/feature/compare"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, dataDir string) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		Compare: reconcile.Config{Format: "text", ShowOnlyRight: true},
		Server:  server.Config{ApiKey: "secret", DataDir: dataDir},
	}
	app, err := newServer(cfg, &dataset.Opener{}, zap.NewNop())
	require.NoError(t, err)
	return app
}

// TestServer_HealthIsPublic tests that health checks need no API key.
func TestServer_HealthIsPublic(t *testing.T) {
	app := newTestServer(t, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
}

func TestServer_CompareRequiresKey(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "id,name\n1,Alice\n")
	b := writeCSV(t, dir, "b.csv", "id,name\n1,Alicia\n")
	app := newTestServer(t, dir)

	body, err := json.Marshal(compare.Request{Source1: a, Source2: b, PrimaryKeys: []string{"id"}})
	require.NoError(t, err)

	tests := []struct {
		name     string
		key      string
		expected int
	}{
		{"NoKey", "", fiber.StatusUnauthorized},
		{"WrongKey", "guess", fiber.StatusUnauthorized},
		{"ValidKey", "secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/compare", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.key != "" {
				req.Header.Set(auth.HeaderName, tt.key)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}
