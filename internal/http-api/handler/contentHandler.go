package handler

import (
	"errors"
	"net/http"
	"strconv"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the small localized site fixtures: festival
// categories, the navigation menu and home-page banners. Admin writes go
// through translation propagation, so a translator outage surfaces as 502.
type ContentHandler struct {
	categoryService service.CategoryService
	menuService     service.MenuService
	bannerService   service.BannerService
}

func NewContentHandler(
	categoryService service.CategoryService,
	menuService service.MenuService,
	bannerService service.BannerService,
) *ContentHandler {
	return &ContentHandler{
		categoryService: categoryService,
		menuService:     menuService,
		bannerService:   bannerService,
	}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	router.GET("/menu", h.ListMenu)
	router.GET("/banners", h.ListBanners)
}

func (h *ContentHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.POST("", h.SaveCategory)
		categories.PUT("/:id", h.SaveCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
	menu := router.Group("/menu")
	{
		menu.POST("", h.SaveMenuItem)
		menu.PUT("/:id", h.SaveMenuItem)
		menu.DELETE("/:id", h.DeleteMenuItem)
	}
	banners := router.Group("/banners")
	{
		banners.POST("", h.SaveBanner)
		banners.PUT("/:id", h.SaveBanner)
		banners.DELETE("/:id", h.DeleteBanner)
	}
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	views, err := h.categoryService.List(c.Request.Context(), c.Query("locale"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ContentHandler) ListMenu(c *gin.Context) {
	views, err := h.menuService.List(c.Request.Context(), c.Query("locale"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ContentHandler) ListBanners(c *gin.Context) {
	views, err := h.bannerService.List(c.Request.Context(), c.Query("locale"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load banners"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ContentHandler) SaveCategory(c *gin.Context) {
	id, ok := optionalIDParam(c)
	if !ok {
		return
	}

	var req dto.UpsertCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	savedID, err := h.categoryService.Upsert(c.Request.Context(), id, req)
	if err != nil {
		respondContentError(c, err, service.ErrCategoryNotFound, "failed to save category")
		return
	}
	c.JSON(savedStatus(id), gin.H{"id": savedID})
}

func (h *ContentHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid category id"})
		return
	}
	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondContentError(c, err, service.ErrCategoryNotFound, "failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func (h *ContentHandler) SaveMenuItem(c *gin.Context) {
	id, ok := optionalIDParam(c)
	if !ok {
		return
	}

	var req dto.UpsertMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	savedID, err := h.menuService.Upsert(c.Request.Context(), id, req)
	if err != nil {
		respondContentError(c, err, service.ErrMenuItemNotFound, "failed to save menu item")
		return
	}
	c.JSON(savedStatus(id), gin.H{"id": savedID})
}

func (h *ContentHandler) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid menu item id"})
		return
	}
	if err := h.menuService.Delete(c.Request.Context(), id); err != nil {
		respondContentError(c, err, service.ErrMenuItemNotFound, "failed to delete menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

func (h *ContentHandler) SaveBanner(c *gin.Context) {
	id, ok := optionalIDParam(c)
	if !ok {
		return
	}

	var req dto.UpsertBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	savedID, err := h.bannerService.Upsert(c.Request.Context(), id, req)
	if err != nil {
		respondContentError(c, err, service.ErrBannerNotFound, "failed to save banner")
		return
	}
	c.JSON(savedStatus(id), gin.H{"id": savedID})
}

func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid banner id"})
		return
	}
	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		respondContentError(c, err, service.ErrBannerNotFound, "failed to delete banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "banner deleted"})
}

// optionalIDParam reads the :id path parameter when present. POST routes
// have no :id and create; PUT routes must carry a valid one.
func optionalIDParam(c *gin.Context) (*int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
		return nil, false
	}
	return &id, true
}

func savedStatus(id *int64) int {
	if id == nil {
		return http.StatusCreated
	}
	return http.StatusOK
}

func respondContentError(c *gin.Context, err, notFound error, fallback string) {
	switch {
	case errors.Is(err, notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTranslator):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
