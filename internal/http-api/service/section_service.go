package service

import (
	"context"
	"errors"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrSectionNotFound = errors.New("national section not found")

type SectionService interface {
	Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.SectionView], error)
	GetBySlug(ctx context.Context, slug, locale string) (*dto.SectionView, error)
	Upsert(ctx context.Context, id *int64, req dto.UpsertSectionRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type sectionService struct {
	sectionRepo  repository.SectionRepository
	languageRepo repository.LanguageRepository
	locales      LocaleService
}

func NewSectionService(sectionRepo repository.SectionRepository, languageRepo repository.LanguageRepository, locales LocaleService) SectionService {
	return &sectionService{
		sectionRepo:  sectionRepo,
		languageRepo: languageRepo,
		locales:      locales,
	}
}

func (s *sectionService) Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.SectionView], error) {
	lang, err := s.locales.Resolve(ctx, q.Locale)
	if err != nil {
		return nil, err
	}

	sections, total, err := s.sectionRepo.Search(ctx, q, lang.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.SectionView, 0, len(sections))
	for i := range sections {
		views = append(views, sectionView(&sections[i]))
	}
	return dto.NewPaginatedResponse(views, total, q.Page, q.PageSize), nil
}

func (s *sectionService) GetBySlug(ctx context.Context, slug, locale string) (*dto.SectionView, error) {
	lang, err := s.locales.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}

	section, err := s.sectionRepo.FindBySlug(ctx, slug, lang.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	view := sectionView(section)
	return &view, nil
}

func (s *sectionService) Upsert(ctx context.Context, id *int64, req dto.UpsertSectionRequest) (int64, error) {
	section := &models.NationalSection{
		Slug:      req.Slug,
		CountryID: req.CountryID,
		Email:     req.Email,
		URL:       req.URL,
		Published: req.Published,
	}
	if id != nil {
		if _, err := s.sectionRepo.FindByID(ctx, *id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrSectionNotFound
			}
			return 0, err
		}
		section.ID = *id
	}

	var translations []models.NationalSectionTranslation
	if req.Translations != nil {
		translations = make([]models.NationalSectionTranslation, 0, len(req.Translations))
		for _, in := range req.Translations {
			lang, err := s.languageRepo.FindByCode(ctx, in.Locale)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return 0, ErrUnknownLocale
				}
				return 0, err
			}
			translations = append(translations, models.NationalSectionTranslation{
				LanguageID: lang.ID,
				Name:       in.Name,
				About:      in.Description,
			})
		}
	}

	if err := s.sectionRepo.Save(ctx, section, translations); err != nil {
		return 0, err
	}
	return section.ID, nil
}

func (s *sectionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.sectionRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}
	return s.sectionRepo.Delete(ctx, id)
}

func sectionView(sec *models.NationalSection) dto.SectionView {
	view := dto.SectionView{
		ID:        sec.ID,
		Slug:      sec.Slug,
		CountryID: sec.CountryID,
	}
	if len(sec.Translations) > 0 {
		view.Name = sec.Translations[0].Name
		view.About = sec.Translations[0].About
	}
	return view
}
