package handler

import (
	"errors"
	"net/http"
	"strconv"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report-related routes. All of them require an
// authenticated caller; the parent group carries the auth middleware.
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/questions", h.ListQuestions)
		reports.GET("/:id", h.Get)
		reports.PUT("/:id/submit", h.Submit)
		reports.POST("/:kind/:ownerId", h.Save)
	}
}

// Save creates a report for the owner, or reconciles an existing draft when
// the reportId query parameter is present.
// POST /api/reports/:kind/:ownerId?reportId=42
func (h *ReportHandler) Save(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid owner id"})
		return
	}

	var reportID *int64
	if raw := c.Query("reportId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid reportId"})
			return
		}
		reportID = &id
	}

	var sub dto.ReportSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	savedID, err := h.reportService.SaveReport(c.Request.Context(), c.Param("kind"), ownerID, reportID, sub)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidKind):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrOwnerNotFound), errors.Is(err, service.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrReportFinal), errors.Is(err, service.ErrReportExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ReportSavedResponse{Success: true, ReportID: savedID})
}

// Get retrieves a full report with its ratings, answers and tags
// GET /api/reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid report id"})
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Submit finalizes a draft report
// PUT /api/reports/:id/submit
func (h *ReportHandler) Submit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid report id"})
		return
	}

	if err := h.reportService.SubmitReport(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListQuestions returns the rating question catalogue
// GET /api/reports/questions
func (h *ReportHandler) ListQuestions(c *gin.Context) {
	questions, err := h.reportService.ListQuestions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}
