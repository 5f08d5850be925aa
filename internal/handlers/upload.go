package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"storedash-be/config"
	"storedash-be/internal/models"
	"storedash-be/internal/processor"
	"storedash-be/internal/services"

	"github.com/gin-gonic/gin"
)

// Uploader runs the spreadsheet upload workflow.
type Uploader interface {
	Preview(role, filename string, wb *processor.Workbook) (*models.UploadPreview, error)
	Process(ctx context.Context, req services.UploadRequest) (*models.UploadResult, error)
	Status() models.UploadStatus
	Reset(role string) error
	GetUpload(ctx context.Context, role, fileID string) (*models.UploadedFile, error)
}

type UploadHandler struct {
	cfg      *config.Config
	uploader Uploader
}

func NewUploadHandler(cfg *config.Config, uploader Uploader) *UploadHandler {
	return &UploadHandler{cfg: cfg, uploader: uploader}
}

// workbookUpload is one parsed request body.
type workbookUpload struct {
	filename string
	size     int64
	workbook *processor.Workbook
	mapping  models.SheetMapping
}

// readUpload accepts a multipart form with an .xlsx "file" plus mapping fields,
// or a JSON body {"sheets": ..., "order": ..., "mapping": ...}. It writes the
// error response itself and reports false on failure.
func (h *UploadHandler) readUpload(c *gin.Context) (*workbookUpload, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)

	var (
		up  *workbookUpload
		err error
	)
	if strings.HasPrefix(c.ContentType(), "application/json") {
		up, err = readJSONUpload(c)
	} else {
		up, err = readMultipartUpload(c, processor.UnzipLimit(h.cfg.MaxUploadBytes))
	}
	if err == nil {
		return up, true
	}

	var tooLarge *http.MaxBytesError
	var bad badUploadError
	switch {
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error:   "file_too_large",
			Message: err.Error(),
		})
	case errors.As(err, &bad):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "parse_error",
			Message: err.Error(),
		})
	}
	return nil, false
}

type badUploadError struct{ msg string }

func (e badUploadError) Error() string { return e.msg }

func readMultipartUpload(c *gin.Context, unzipLimit int64) (*workbookUpload, error) {
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, badUploadError{"file is required"}
	}

	var mapping models.SheetMapping
	if err := c.ShouldBind(&mapping); err != nil {
		return nil, badUploadError{err.Error()}
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := processor.ParseWorkbook(f, unzipLimit)
	if err != nil {
		return nil, err
	}
	return &workbookUpload{
		filename: header.Filename,
		size:     header.Size,
		workbook: wb,
		mapping:  mapping,
	}, nil
}

func readJSONUpload(c *gin.Context) (*workbookUpload, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	wb, err := processor.DecodeWorkbookJSON(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var extra struct {
		Filename string              `json:"filename"`
		Mapping  models.SheetMapping `json:"mapping"`
	}
	if err := json.Unmarshal(body, &extra); err != nil {
		return nil, err
	}
	if extra.Filename == "" {
		extra.Filename = "upload.json"
	}

	return &workbookUpload{
		filename: extra.Filename,
		size:     int64(len(body)),
		workbook: wb,
		mapping:  extra.Mapping,
	}, nil
}

// Preview godoc
// @Summary Parse a workbook and suggest a sheet mapping
// @Description Nothing is saved. Returns each sheet's row count and columns.
// @Tags uploads
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Success 200 {object} models.UploadPreview
// @Failure 403 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /uploads/preview [post]
func (h *UploadHandler) Preview(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}
	up, ok := h.readUpload(c)
	if !ok {
		return
	}

	preview, err := h.uploader.Preview(me.Role, up.filename, up.workbook)
	if err != nil {
		h.uploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// Process godoc
// @Summary Upload a workbook and save its leaderboards, details and call sheets
// @Tags uploads
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Param sales formData string false "Sales sheet name"
// @Param bdc formData string false "BDC sheet name"
// @Param appt formData string false "Appointment activity sheet name"
// @Param details formData string false "Person details sheet name"
// @Param calls formData string false "Call sheets sheet name"
// @Success 201 {object} models.UploadResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /uploads [post]
func (h *UploadHandler) Process(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}
	up, ok := h.readUpload(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.UploadTimeout)
	defer cancel()

	result, err := h.uploader.Process(ctx, services.UploadRequest{
		Filename:   up.filename,
		FileSize:   up.size,
		UploadedBy: me.Email,
		Role:       me.Role,
		Workbook:   up.workbook,
		Mapping:    up.mapping,
	})
	if err != nil {
		h.uploadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetStatus godoc
// @Summary Current upload workflow flags
// @Tags uploads
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.UploadStatus
// @Router /uploads/status [get]
func (h *UploadHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.uploader.Status())
}

// GetUpload godoc
// @Summary Stored record of one upload
// @Tags uploads
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Upload ID"
// @Success 200 {object} models.UploadedFile
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /uploads/{id} [get]
func (h *UploadHandler) GetUpload(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}

	file, err := h.uploader.GetUpload(c.Request.Context(), me.Role, c.Param("id"))
	if err != nil {
		h.uploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// ResetStatus godoc
// @Summary Force-clear a stuck upload
// @Tags uploads
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.UploadStatus
// @Failure 403 {object} models.ErrorResponse
// @Router /uploads/status [delete]
func (h *UploadHandler) ResetStatus(c *gin.Context) {
	me, ok := currentCaller(c)
	if !ok {
		return
	}
	if err := h.uploader.Reset(me.Role); err != nil {
		h.uploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.uploader.Status())
}

func (h *UploadHandler) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "forbidden",
			Message: "Admin access required",
		})
	case errors.Is(err, services.ErrInvalidMapping):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_mapping",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrUploadNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrUploadInProgress):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "upload_in_progress",
			Message: err.Error(),
		})
	default:
		serverError(c, "Upload failed", err)
	}
}
