package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/dto"
	"github.com/SscSPs/financial_reports_app/internal/middleware"
)

// uploadHandler handles HTTP requests related to workbook uploads
type uploadHandler struct {
	ingestionService portssvc.IngestionService
	maxUploadBytes   int64
}

// RegisterUploadRoutes registers upload routes. throttle guards the upload endpoint and may be nil.
func RegisterUploadRoutes(rg *gin.RouterGroup, ingestionService portssvc.IngestionService, maxUploadBytes int64, throttle gin.HandlerFunc) {
	h := &uploadHandler{ingestionService: ingestionService, maxUploadBytes: maxUploadBytes}

	create := []gin.HandlerFunc{h.createUpload}
	if throttle != nil {
		create = append([]gin.HandlerFunc{throttle}, create...)
	}

	uploads := rg.Group("/uploads")
	{
		uploads.POST("", create...)
		uploads.GET("", h.listUploads)
		uploads.GET("/:upload_id", h.getUpload)
	}
	rg.DELETE("/data", h.clearData)
}

// createUpload godoc
// @Summary Upload a financial workbook
// @Description Accepts an .xlsx or .xls workbook and ingests it in the background. Poll the upload for its status.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook"
// @Success 202 {object} dto.UploadResponse
// @Failure 400 {object} map[string]string "Missing or empty file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to start upload"
// @Security BearerAuth
// @Router /uploads [post]
func (h *uploadHandler) createUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Upload exceeds size limit", slog.Int64("limit", h.maxUploadBytes))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		logger.Warn("Missing file in upload request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A workbook is required in the 'file' form field"})
		return
	}

	file, err := fh.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is empty"})
		return
	}

	fileName := filepath.Base(fh.Filename)
	logger.Info("Received workbook upload", slog.String("file_name", fileName), slog.Int("size", len(data)))

	upload, err := h.ingestionService.StartUpload(c.Request.Context(), fileName, data)
	if err != nil {
		writeServiceError(c, logger, err, "start upload")
		return
	}
	c.JSON(http.StatusAccepted, dto.ToUploadResponse(upload))
}

// listUploads godoc
// @Summary List uploads
// @Description Lists uploads newest first, paginated with an opaque page token.
// @Tags uploads
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param pageToken query string false "Token of the next page"
// @Success 200 {object} dto.ListUploadsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list uploads"
// @Security BearerAuth
// @Router /uploads [get]
func (h *uploadHandler) listUploads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUploadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListUploads", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	uploads, next, err := h.ingestionService.ListUploads(c.Request.Context(), params.Limit, params.PageToken)
	if err != nil {
		writeServiceError(c, logger, err, "list uploads")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUploadsResponse(uploads, next))
}

// getUpload godoc
// @Summary Get an upload
// @Description Returns the status of one upload.
// @Tags uploads
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Success 200 {object} dto.UploadResponse
// @Failure 404 {object} map[string]string "Upload not found"
// @Security BearerAuth
// @Router /uploads/{upload_id} [get]
func (h *uploadHandler) getUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	uploadID := c.Param("upload_id")

	upload, err := h.ingestionService.GetUpload(c.Request.Context(), uploadID)
	if err != nil {
		writeServiceError(c, logger.With(slog.String("upload_id", uploadID)), err, "get upload")
		return
	}
	c.JSON(http.StatusOK, dto.ToUploadResponse(upload))
}

// clearData godoc
// @Summary Delete all financial data
// @Description Removes every upload, fact and reference row. Must not be called while an upload is processing.
// @Tags uploads
// @Success 204
// @Failure 500 {object} map[string]string "Failed to clear data"
// @Security BearerAuth
// @Router /data [delete]
func (h *uploadHandler) clearData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Received request to clear all financial data")

	if err := h.ingestionService.ClearAllData(c.Request.Context()); err != nil {
		writeServiceError(c, logger, err, "clear data")
		return
	}
	c.Status(http.StatusNoContent)
}
