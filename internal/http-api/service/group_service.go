package service

import (
	"context"
	"errors"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupService interface {
	Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.GroupView], error)
	GetBySlug(ctx context.Context, slug, locale string) (*dto.GroupView, error)
	Upsert(ctx context.Context, id *int64, req dto.UpsertGroupRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type groupService struct {
	groupRepo    repository.GroupRepository
	languageRepo repository.LanguageRepository
	locales      LocaleService
}

func NewGroupService(groupRepo repository.GroupRepository, languageRepo repository.LanguageRepository, locales LocaleService) GroupService {
	return &groupService{
		groupRepo:    groupRepo,
		languageRepo: languageRepo,
		locales:      locales,
	}
}

func (s *groupService) Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.GroupView], error) {
	lang, err := s.locales.Resolve(ctx, q.Locale)
	if err != nil {
		return nil, err
	}

	groups, total, err := s.groupRepo.Search(ctx, q, lang.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.GroupView, 0, len(groups))
	for i := range groups {
		views = append(views, groupView(&groups[i]))
	}
	return dto.NewPaginatedResponse(views, total, q.Page, q.PageSize), nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug, locale string) (*dto.GroupView, error) {
	lang, err := s.locales.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindBySlug(ctx, slug, lang.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	view := groupView(group)
	return &view, nil
}

func (s *groupService) Upsert(ctx context.Context, id *int64, req dto.UpsertGroupRequest) (int64, error) {
	group := &models.Group{
		Slug:              req.Slug,
		CountryID:         req.CountryID,
		NationalSectionID: req.NationalSectionID,
		MembersCount:      req.MembersCount,
		Published:         req.Published,
	}
	if id != nil {
		if _, err := s.groupRepo.FindByID(ctx, *id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrGroupNotFound
			}
			return 0, err
		}
		group.ID = *id
	}

	group.Categories = make([]models.Category, 0, len(req.CategoryIDs))
	for _, cid := range req.CategoryIDs {
		group.Categories = append(group.Categories, models.Category{ID: cid})
	}

	var translations []models.GroupTranslation
	if req.Translations != nil {
		translations = make([]models.GroupTranslation, 0, len(req.Translations))
		for _, in := range req.Translations {
			lang, err := s.languageRepo.FindByCode(ctx, in.Locale)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return 0, ErrUnknownLocale
				}
				return 0, err
			}
			translations = append(translations, models.GroupTranslation{
				LanguageID:  lang.ID,
				Name:        in.Name,
				Description: in.Description,
			})
		}
	}

	if err := s.groupRepo.Save(ctx, group, translations); err != nil {
		return 0, err
	}
	return group.ID, nil
}

func (s *groupService) Delete(ctx context.Context, id int64) error {
	if _, err := s.groupRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return err
	}
	return s.groupRepo.Delete(ctx, id)
}

func groupView(g *models.Group) dto.GroupView {
	view := dto.GroupView{
		ID:           g.ID,
		Slug:         g.Slug,
		CountryID:    g.CountryID,
		MembersCount: g.MembersCount,
	}
	if len(g.Translations) > 0 {
		view.Name = g.Translations[0].Name
		view.Description = g.Translations[0].Description
	}
	return view
}
