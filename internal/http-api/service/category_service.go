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

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService interface {
	List(ctx context.Context, locale string) ([]dto.CategoryView, error)
	Upsert(ctx context.Context, id *int64, req dto.UpsertCategoryRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	translations TranslationService
	locales      LocaleService
	cache        *cache.Cache
}

func NewCategoryService(categoryRepo repository.CategoryRepository, translations TranslationService, locales LocaleService, c *cache.Cache) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		translations: translations,
		locales:      locales,
		cache:        c,
	}
}

func (s *categoryService) List(ctx context.Context, locale string) ([]dto.CategoryView, error) {
	lang, err := s.locales.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("content:categories:%s", lang.Code)
	var cached []dto.CategoryView
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(ctx, lang.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CategoryView, 0, len(categories))
	for _, c := range categories {
		view := dto.CategoryView{ID: c.ID, Slug: c.Slug}
		if len(c.Translations) > 0 {
			view.Name = c.Translations[0].Name
		}
		views = append(views, view)
	}

	_ = s.cache.Set(ctx, key, views)
	return views, nil
}

// Upsert saves the category with the admin-entered primary-locale name
// propagated to every configured locale. The translator runs before the
// transaction opens, so a translation failure writes nothing.
func (s *categoryService) Upsert(ctx context.Context, id *int64, req dto.UpsertCategoryRequest) (int64, error) {
	category := &models.Category{Slug: req.Slug}
	if id != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrCategoryNotFound
			}
			return 0, err
		}
		category.ID = *id
	}

	texts, err := s.translations.TranslateAll(ctx, req.Name, s.locales.DefaultCode())
	if err != nil {
		return 0, err
	}

	if err := s.categoryRepo.Save(ctx, category, CategoryTranslations(texts)); err != nil {
		return 0, err
	}

	_ = s.cache.Invalidate(ctx, "content:categories:*")
	return category.ID, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, "content:categories:*")
	return nil
}
