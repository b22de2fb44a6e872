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

var ErrBannerNotFound = errors.New("banner not found")

type BannerService interface {
	List(ctx context.Context, locale string) ([]dto.BannerView, error)
	Upsert(ctx context.Context, id *int64, req dto.UpsertBannerRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type bannerService struct {
	bannerRepo   repository.BannerRepository
	translations TranslationService
	locales      LocaleService
	cache        *cache.Cache
}

func NewBannerService(bannerRepo repository.BannerRepository, translations TranslationService, locales LocaleService, c *cache.Cache) BannerService {
	return &bannerService{
		bannerRepo:   bannerRepo,
		translations: translations,
		locales:      locales,
		cache:        c,
	}
}

func (s *bannerService) List(ctx context.Context, locale string) ([]dto.BannerView, error) {
	lang, err := s.locales.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("content:banners:%s", lang.Code)
	var cached []dto.BannerView
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	banners, err := s.bannerRepo.List(ctx, lang.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.BannerView, 0, len(banners))
	for _, b := range banners {
		view := dto.BannerView{ID: b.ID, Image: b.Image, Position: b.Position}
		if len(b.Translations) > 0 {
			view.Title = b.Translations[0].Title
			view.Subtitle = b.Translations[0].Subtitle
			view.Button = b.Translations[0].Button
		}
		views = append(views, view)
	}

	_ = s.cache.Set(ctx, key, views)
	return views, nil
}

// Upsert propagates the three banner texts separately. All translator calls
// happen before the write so a failure on any of them leaves the banner
// untouched.
func (s *bannerService) Upsert(ctx context.Context, id *int64, req dto.UpsertBannerRequest) (int64, error) {
	banner := &models.Banner{
		Image:     req.Image,
		Position:  req.Position,
		Published: req.Published,
	}
	if id != nil {
		if _, err := s.bannerRepo.FindByID(ctx, *id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrBannerNotFound
			}
			return 0, err
		}
		banner.ID = *id
	}

	source := s.locales.DefaultCode()
	titles, err := s.translations.TranslateAll(ctx, req.Title, source)
	if err != nil {
		return 0, err
	}
	subtitles, err := s.translations.TranslateAll(ctx, req.Subtitle, source)
	if err != nil {
		return 0, err
	}
	buttons, err := s.translations.TranslateAll(ctx, req.Button, source)
	if err != nil {
		return 0, err
	}

	rows := make([]models.BannerTranslation, 0, len(titles))
	for i := range titles {
		rows = append(rows, models.BannerTranslation{
			LanguageID: titles[i].LanguageID,
			Title:      titles[i].Text,
			Subtitle:   subtitles[i].Text,
			Button:     buttons[i].Text,
		})
	}

	if err := s.bannerRepo.Save(ctx, banner, rows); err != nil {
		return 0, err
	}

	_ = s.cache.Invalidate(ctx, "content:banners:*")
	return banner.ID, nil
}

func (s *bannerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.bannerRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBannerNotFound
		}
		return err
	}
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, "content:banners:*")
	return nil
}
