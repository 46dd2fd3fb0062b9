package compare

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"tablediff/core/dataset"
	"tablediff/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, dataDir string) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := NewFeature(&dataset.Opener{}, dataset.NewCache(0), defaults(), dataDir, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return resp, doc
}

func TestHandleCompare(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "id,name,city\n1,Alice,NYC\n2,Bob,LA\n")
	b := writeCSV(t, dir, "b.csv", "id,name,city\n1,Alice,NYC\n2,Bob,SF\n")
	emails := writeCSV(t, dir, "emails.csv", "id,email\n1,a@example.com\n")
	ragged := writeCSV(t, dir, "ragged.csv", "id,name,city\n1,Alice\n")
	secret := writeCSV(t, t.TempDir(), "secret.csv", "id,name,city\n1,Alice,NYC\n")

	app := newTestApp(t, dir)

	tests := []struct {
		name     string
		body     any
		expected int
	}{
		{"Mismatch", Request{Source1: a, Source2: b, PrimaryKeys: []string{"id"}}, fiber.StatusOK},
		{"CommaSeparatedKeys", Request{Source1: a, Source2: b, PrimaryKeys: []string{"id,name"}}, fiber.StatusOK},
		{"MissingKeys", Request{Source1: a, Source2: b}, fiber.StatusBadRequest},
		{"SchemaMismatch", Request{Source1: a, Source2: emails, PrimaryKeys: []string{"id"}}, fiber.StatusBadRequest},
		{"Unreadable", Request{Source1: a, Source2: filepath.Join(dir, "missing.csv"), PrimaryKeys: []string{"id"}}, fiber.StatusUnprocessableEntity},
		{"Ragged", Request{Source1: a, Source2: ragged, PrimaryKeys: []string{"id"}}, fiber.StatusUnprocessableEntity},
		{"SystemFile", Request{Source1: "/etc/passwd", Source2: a, PrimaryKeys: []string{"id"}}, fiber.StatusBadRequest},
		{"OutsideDataDir", Request{Source1: a, Source2: secret, PrimaryKeys: []string{"id"}}, fiber.StatusBadRequest},
		{"MissingOutsideDataDir", Request{Source1: a, Source2: "/nonexistent/x.csv", PrimaryKeys: []string{"id"}}, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, doc := postJSON(t, app, "/compare", tt.body)
			assert.Equal(t, tt.expected, resp.StatusCode, doc)
			if tt.expected != fiber.StatusOK {
				assert.NotEmpty(t, doc["error"])
			}
		})
	}

	t.Run("Body", func(t *testing.T) {
		_, doc := postJSON(t, app, "/compare", Request{Source1: a, Source2: b, PrimaryKeys: []string{"id"}})
		assert.Equal(t, false, doc["equal"])
		assert.Equal(t, []any{}, doc["only_left"])
		mismatches := doc["mismatches"].([]any)
		require.Len(t, mismatches, 1)
		m := mismatches[0].(map[string]any)
		assert.Equal(t, []any{"2"}, m["key"])
		assert.Equal(t, "SF", m["right"].(map[string]any)["city"])
	})
}

// TestHandleCompare_NoDataDir tests that local paths are refused when no data directory is configured.
func TestHandleCompare_NoDataDir(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "id\n1\n")
	app := newTestApp(t, "")

	resp, doc := postJSON(t, app, "/compare", Request{Source1: a, Source2: a, PrimaryKeys: []string{"id"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, doc["error"], "local path not allowed")
}

func TestHandleCompare_InvalidBody(t *testing.T) {
	app := newTestApp(t, "")

	req := httptest.NewRequest("POST", "/compare", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func multipartBody(t *testing.T, files map[string]string, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, content := range files {
		fw, err := w.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleUpload(t *testing.T) {
	app := newTestApp(t, "")
	files := map[string]string{
		"source1": "id,name\n1,Alice\n2,Bob\n",
		"source2": "id,name\n2,Bob\n3,Carol\n",
	}

	tests := []struct {
		name     string
		files    map[string]string
		fields   map[string]string
		expected int
		onlyRt   int
	}{
		{"Default", files, map[string]string{"primary_keys": "id"}, fiber.StatusOK, 1},
		{"HideOnlyRight", files, map[string]string{"primary_keys": "id", "only_right": "false"}, fiber.StatusOK, 0},
		{"BadBool", files, map[string]string{"primary_keys": "id", "only_right": "maybe"}, fiber.StatusBadRequest, 0},
		{"MissingFile", map[string]string{"source1": files["source1"]}, map[string]string{"primary_keys": "id"}, fiber.StatusBadRequest, 0},
		{"UnknownKey", files, map[string]string{"primary_keys": "uuid"}, fiber.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.files, tt.fields)
			req := httptest.NewRequest("POST", "/compare/upload", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.StatusCode)

			if tt.expected == fiber.StatusOK {
				var doc map[string]any
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
				assert.Len(t, doc["only_right"], tt.onlyRt)
				assert.Equal(t, []any{[]any{"1"}}, doc["only_left"])
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{ErrInvalidRequest, fiber.StatusBadRequest},
		{ErrLocalPathDenied, fiber.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", reconcile.ErrSchemaMismatch), fiber.StatusBadRequest},
		{&reconcile.MissingKeyColumnError{Column: "id", Datasets: []int{2}}, fiber.StatusBadRequest},
		{reconcile.ErrDuplicateColumn, fiber.StatusBadRequest},
		{dataset.ErrUnsupportedSource, fiber.StatusBadRequest},
		{&dataset.SourceError{Location: "a.csv", Err: errors.New("eof")}, fiber.StatusUnprocessableEntity},
		{&reconcile.DuplicateKeyError{Key: reconcile.KeyTuple{"1"}}, fiber.StatusUnprocessableEntity},
		{reconcile.ErrRowWidth, fiber.StatusUnprocessableEntity},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, statusFor(tt.err), tt.err.Error())
	}
}
