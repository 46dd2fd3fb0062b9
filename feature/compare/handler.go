package compare

import (
	"errors"
	"mime/multipart"
	"strconv"

	"tablediff/core/dataset"
	"tablediff/core/logger"
	"tablediff/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/", h.HandleCompare)
	group.Post("/upload", h.HandleUpload)
}

// HandleCompare compares two dataset locations.
// @Summary Compare Datasets
// @Description Loads two datasets (file path, xlsx sheet, s3:// object or db:// table) and reports keys present on one side only and value mismatches.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body Request true "Datasets and primary key columns"
// @Success 200 {object} Response "Comparison Report"
// @Failure 400 {object} map[string]string "Invalid request or schema error"
// @Failure 422 {object} map[string]string "Unreadable dataset"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	resp, err := h.service.Compare(c.Context(), req)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(resp)
}

// HandleUpload compares two uploaded files.
// @Summary Compare Uploaded Datasets
// @Description Compares two uploaded CSV or XLSX files. An optional sheet1/sheet2 field selects the spreadsheet sheet.
// @Tags compare
// @Accept multipart/form-data
// @Produce json
// @Param source1 formData file true "Dataset 1"
// @Param source2 formData file true "Dataset 2"
// @Param primary_keys formData string true "Comma separated primary key columns"
// @Param sheet1 formData string false "Sheet of dataset 1"
// @Param sheet2 formData string false "Sheet of dataset 2"
// @Param only_right formData boolean false "Report keys only present in dataset 2"
// @Param strict_keys formData boolean false "Fail on repeated primary keys"
// @Success 200 {object} Response "Comparison Report"
// @Failure 400 {object} map[string]string "Invalid request or schema error"
// @Failure 422 {object} map[string]string "Unreadable dataset"
// @Router /compare/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Expected multipart form"})
	}

	up := Upload{PrimaryKeys: form.Value["primary_keys"]}
	if up.OnlyRight, err = formBool(form, "only_right"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if up.StrictKeys, err = formBool(form, "strict_keys"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for i, field := range []string{"source1", "source2"} {
		files := form.File[field]
		if len(files) == 0 {
			continue
		}
		f, err := files[0].Open()
		if err != nil {
			return h.fail(c, l, err)
		}
		defer f.Close()

		name := files[0].Filename
		if sheet := formString(form, "sheet"+strconv.Itoa(i+1)); sheet != "" {
			name += "#" + sheet
		}
		if i == 0 {
			up.Name1, up.Data1 = name, f
		} else {
			up.Name2, up.Data2 = name, f
		}
	}

	resp, err := h.service.CompareUpload(c.Context(), up)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(resp)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		l.Error("Comparison failed", zap.Error(err))
	} else {
		l.Warn("Comparison rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrLocalPathDenied),
		errors.Is(err, dataset.ErrUnsupportedSource),
		errors.Is(err, reconcile.ErrSchemaMismatch),
		errors.Is(err, reconcile.ErrMissingKeyColumn),
		errors.Is(err, reconcile.ErrNoKeyColumns),
		errors.Is(err, reconcile.ErrDuplicateColumn):
		return fiber.StatusBadRequest
	case errors.Is(err, dataset.ErrSourceUnreadable),
		errors.Is(err, reconcile.ErrRowWidth),
		errors.Is(err, reconcile.ErrDuplicateKey):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func formString(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func formBool(form *multipart.Form, key string) (*bool, error) {
	raw := formString(form, key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New("invalid boolean for " + key)
	}
	return &b, nil
}
