package service

import (
	"context"
	"errors"
	"time"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrFestivalNotFound = errors.New("festival not found")

type FestivalService interface {
	Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.FestivalView], error)
	GetBySlug(ctx context.Context, slug, locale string) (*dto.FestivalView, error)
	Upsert(ctx context.Context, id *int64, req dto.UpsertFestivalRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type festivalService struct {
	festivalRepo repository.FestivalRepository
	languageRepo repository.LanguageRepository
	locales      LocaleService
}

func NewFestivalService(festivalRepo repository.FestivalRepository, languageRepo repository.LanguageRepository, locales LocaleService) FestivalService {
	return &festivalService{
		festivalRepo: festivalRepo,
		languageRepo: languageRepo,
		locales:      locales,
	}
}

func (s *festivalService) Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.FestivalView], error) {
	lang, err := s.locales.Resolve(ctx, q.Locale)
	if err != nil {
		return nil, err
	}

	festivals, total, err := s.festivalRepo.Search(ctx, q, lang.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.FestivalView, 0, len(festivals))
	for i := range festivals {
		views = append(views, festivalView(&festivals[i]))
	}
	return dto.NewPaginatedResponse(views, total, q.Page, q.PageSize), nil
}

func (s *festivalService) GetBySlug(ctx context.Context, slug, locale string) (*dto.FestivalView, error) {
	lang, err := s.locales.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}

	festival, err := s.festivalRepo.FindBySlug(ctx, slug, lang.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFestivalNotFound
		}
		return nil, err
	}

	view := festivalView(festival)
	return &view, nil
}

func (s *festivalService) Upsert(ctx context.Context, id *int64, req dto.UpsertFestivalRequest) (int64, error) {
	festival := &models.Festival{
		Slug:              req.Slug,
		CountryID:         req.CountryID,
		NationalSectionID: req.NationalSectionID,
		Location:          req.Location,
		Email:             req.Email,
		URL:               req.URL,
		Published:         req.Published,
	}
	if req.DateFrom != nil {
		t := time.Unix(*req.DateFrom, 0).UTC()
		festival.DateFrom = &t
	}
	if req.DateTo != nil {
		t := time.Unix(*req.DateTo, 0).UTC()
		festival.DateTo = &t
	}
	if id != nil {
		if _, err := s.festivalRepo.FindByID(ctx, *id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrFestivalNotFound
			}
			return 0, err
		}
		festival.ID = *id
	}

	festival.Categories = make([]models.Category, 0, len(req.CategoryIDs))
	for _, cid := range req.CategoryIDs {
		festival.Categories = append(festival.Categories, models.Category{ID: cid})
	}
	festival.Groups = make([]models.Group, 0, len(req.GroupIDs))
	for _, gid := range req.GroupIDs {
		festival.Groups = append(festival.Groups, models.Group{ID: gid})
	}

	translations, err := s.festivalTranslations(ctx, req.Translations)
	if err != nil {
		return 0, err
	}

	if err := s.festivalRepo.Save(ctx, festival, translations); err != nil {
		return 0, err
	}
	return festival.ID, nil
}

func (s *festivalService) Delete(ctx context.Context, id int64) error {
	if _, err := s.festivalRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFestivalNotFound
		}
		return err
	}
	return s.festivalRepo.Delete(ctx, id)
}

// festivalTranslations resolves each input locale to its language row.
// Unknown locales are a caller error, not a fallback case.
func (s *festivalService) festivalTranslations(ctx context.Context, inputs []dto.TranslationInput) ([]models.FestivalTranslation, error) {
	if inputs == nil {
		return nil, nil
	}
	rows := make([]models.FestivalTranslation, 0, len(inputs))
	for _, in := range inputs {
		lang, err := s.languageRepo.FindByCode(ctx, in.Locale)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownLocale
			}
			return nil, err
		}
		rows = append(rows, models.FestivalTranslation{
			LanguageID:  lang.ID,
			Name:        in.Name,
			Description: in.Description,
		})
	}
	return rows, nil
}

func festivalView(f *models.Festival) dto.FestivalView {
	view := dto.FestivalView{
		ID:        f.ID,
		Slug:      f.Slug,
		CountryID: f.CountryID,
		Location:  f.Location,
		URL:       f.URL,
		DateFrom:  f.DateFrom,
		DateTo:    f.DateTo,
	}
	if len(f.Translations) > 0 {
		view.Name = f.Translations[0].Name
		view.Description = f.Translations[0].Description
	}
	return view
}
