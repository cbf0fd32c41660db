package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sauti.app/api/internal/http/dto"
	"sauti.app/api/internal/intake"
	"sauti.app/api/internal/model"
	"sauti.app/api/internal/service"
)

const defaultListLimit = 50

type ReportHandler struct {
	intake  service.IntakeService
	reports service.ReportService
}

func NewReportHandler(intakeSvc service.IntakeService, reports service.ReportService) *ReportHandler {
	return &ReportHandler{
		intake:  intakeSvc,
		reports: reports,
	}
}

func (h *ReportHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_request"})
		return
	}

	raw := intake.RawReport{
		Category:    req.Category,
		Urgency:     req.Urgency,
		Description: req.DescriptionText(),
		IsAnonymous: req.Anonymous,
		Contact:     req.Contact,
		Extensions:  req.Extensions(),
	}
	if req.Location != nil {
		raw.Location = *req.Location
	}

	report, err := h.intake.Submit(ctx, raw, model.PlatformWeb)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrMissingDescription):
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required", "code": "missing_description"})
		case errors.Is(err, intake.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category", "code": "unknown_category"})
		case errors.Is(err, intake.ErrUnknownUrgency):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown urgency", "code": "unknown_urgency"})
		case errors.Is(err, service.ErrStoreUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "report could not be stored, retry shortly", "code": "store_unavailable"})
		default:
			slog.ErrorContext(ctx, "failed to submit report", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit report", "code": "internal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}

func (h *ReportHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit := int64(defaultListLimit)
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit", "code": "invalid_request"})
			return
		}
		limit = parsed
	}

	reports, err := h.reports.ListRecent(ctx, int32(limit))
	if err != nil {
		slog.ErrorContext(ctx, "failed to list reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports", "code": "internal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponses(reports))
}

func (h *ReportHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id", "code": "invalid_request"})
		return
	}

	report, err := h.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found", "code": "not_found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get report", "error", err, "report_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get report", "code": "internal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id", "code": "invalid_request"})
		return
	}

	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required", "code": "invalid_request"})
		return
	}

	next, ok := model.ParseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status", "code": "unknown_status"})
		return
	}

	report, err := h.reports.UpdateStatus(ctx, id, next)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found", "code": "not_found"})
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "invalid_transition"})
		default:
			slog.ErrorContext(ctx, "failed to update report status", "error", err, "report_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status", "code": "internal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
