package handler

import (
	"errors"
	"net/http"
	"strconv"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	sectionService service.SectionService
}

func NewSectionHandler(sectionService service.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

func (h *SectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	sections := router.Group("/national-sections")
	{
		sections.GET("", h.Search)
		sections.GET("/:slug", h.GetBySlug)
	}
}

func (h *SectionHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	sections := router.Group("/national-sections")
	{
		sections.POST("", h.Create)
		sections.PUT("/:id", h.Update)
		sections.DELETE("/:id", h.Delete)
	}
}

func (h *SectionHandler) Search(c *gin.Context) {
	q, err := dto.ParseListQuery(c)
	if err != nil {
		var fieldErr *dto.FieldError
		if errors.As(err, &fieldErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fieldErr.Message, "field": fieldErr.Field})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sectionService.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search national sections"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SectionHandler) GetBySlug(c *gin.Context) {
	section, err := h.sectionService.GetBySlug(c.Request.Context(), c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load national section"})
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *SectionHandler) Create(c *gin.Context) {
	h.upsert(c, nil)
}

func (h *SectionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid section id"})
		return
	}
	h.upsert(c, &id)
}

func (h *SectionHandler) upsert(c *gin.Context, id *int64) {
	var req dto.UpsertSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	savedID, err := h.sectionService.Upsert(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownLocale):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save national section"})
		}
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": savedID})
}

func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid section id"})
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete national section"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "national section deleted"})
}
