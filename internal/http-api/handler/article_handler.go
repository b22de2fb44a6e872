package handler

import (
	"errors"
	"net/http"
	"strconv"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup) {
	articles := router.Group("/news")
	{
		articles.GET("", h.List)
		articles.GET("/:slug", h.GetBySlug)
	}
}

func (h *ArticleHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	articles := router.Group("/news")
	{
		articles.POST("", h.Create)
		articles.PUT("/:id", h.Update)
		articles.DELETE("/:id", h.Delete)
	}
}

// List returns published news, localized with per-article fallback
// GET /api/news?locale=fr&page=1
func (h *ArticleHandler) List(c *gin.Context) {
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

	result, err := h.articleService.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load news"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	h.upsert(c, nil)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid article id"})
		return
	}
	h.upsert(c, &id)
}

func (h *ArticleHandler) upsert(c *gin.Context, id *int64) {
	var req dto.UpsertArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	authorID := c.GetString("userID")
	savedID, err := h.articleService.Upsert(c.Request.Context(), id, authorID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownLocale):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save article"})
		}
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": savedID})
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid article id"})
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
