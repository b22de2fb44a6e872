package service

import (
	"context"
	"errors"
	"fmt"

	"folkfest/internal/cache"
	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuService interface {
	List(ctx context.Context, locale string) ([]dto.MenuItemView, error)
	Upsert(ctx context.Context, id *int64, req dto.UpsertMenuItemRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type menuService struct {
	menuRepo     repository.MenuRepository
	translations TranslationService
	locales      LocaleService
	cache        *cache.Cache
}

func NewMenuService(menuRepo repository.MenuRepository, translations TranslationService, locales LocaleService, c *cache.Cache) MenuService {
	return &menuService{
		menuRepo:     menuRepo,
		translations: translations,
		locales:      locales,
		cache:        c,
	}
}

func (s *menuService) List(ctx context.Context, locale string) ([]dto.MenuItemView, error) {
	lang, err := s.locales.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("content:menu:%s", lang.Code)
	var cached []dto.MenuItemView
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	items, err := s.menuRepo.List(ctx, lang.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.MenuItemView, 0, len(items))
	for _, item := range items {
		view := dto.MenuItemView{ID: item.ID, Slug: item.Slug, Position: item.Position}
		if len(item.Translations) > 0 {
			view.Title = item.Translations[0].Title
		}
		views = append(views, view)
	}

	_ = s.cache.Set(ctx, key, views)
	return views, nil
}

func (s *menuService) Upsert(ctx context.Context, id *int64, req dto.UpsertMenuItemRequest) (int64, error) {
	item := &models.MenuItem{
		Slug:      req.Slug,
		Position:  req.Position,
		Published: req.Published,
	}
	if id != nil {
		if _, err := s.menuRepo.FindByID(ctx, *id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrMenuItemNotFound
			}
			return 0, err
		}
		item.ID = *id
	}

	texts, err := s.translations.TranslateAll(ctx, req.Title, s.locales.DefaultCode())
	if err != nil {
		return 0, err
	}

	if err := s.menuRepo.Save(ctx, item, MenuItemTranslations(texts)); err != nil {
		return 0, err
	}

	_ = s.cache.Invalidate(ctx, "content:menu:*")
	return item.ID, nil
}

func (s *menuService) Delete(ctx context.Context, id int64) error {
	if _, err := s.menuRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, "content:menu:*")
	return nil
}
