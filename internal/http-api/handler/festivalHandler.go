package handler

import (
	"errors"
	"net/http"
	"strconv"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FestivalHandler struct {
	festivalService service.FestivalService
}

func NewFestivalHandler(festivalService service.FestivalService) *FestivalHandler {
	return &FestivalHandler{festivalService: festivalService}
}

// RegisterRoutes registers the public festival routes
func (h *FestivalHandler) RegisterRoutes(router *gin.RouterGroup) {
	festivals := router.Group("/festivals")
	{
		festivals.GET("", h.Search)
		festivals.GET("/:slug", h.GetBySlug)
	}
}

// RegisterAdminRoutes registers the write routes; the parent group carries
// auth and role middleware.
func (h *FestivalHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	festivals := router.Group("/festivals")
	{
		festivals.POST("", h.Create)
		festivals.PUT("/:id", h.Update)
		festivals.DELETE("/:id", h.Delete)
	}
}

// Search lists published festivals matching the composed filters
// GET /api/festivals?search=&categories=[1,2]&countryId=5&from=&to=&page=1
func (h *FestivalHandler) Search(c *gin.Context) {
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

	result, err := h.festivalService.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search festivals"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBySlug retrieves one festival in the requested locale
// GET /api/festivals/:slug?locale=fr
func (h *FestivalHandler) GetBySlug(c *gin.Context) {
	festival, err := h.festivalService.GetBySlug(c.Request.Context(), c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load festival"})
		return
	}
	c.JSON(http.StatusOK, festival)
}

func (h *FestivalHandler) Create(c *gin.Context) {
	h.upsert(c, nil)
}

func (h *FestivalHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid festival id"})
		return
	}
	h.upsert(c, &id)
}

func (h *FestivalHandler) upsert(c *gin.Context, id *int64) {
	var req dto.UpsertFestivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	savedID, err := h.festivalService.Upsert(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFestivalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownLocale):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save festival"})
		}
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": savedID})
}

func (h *FestivalHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid festival id"})
		return
	}

	if err := h.festivalService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete festival"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "festival deleted"})
}
