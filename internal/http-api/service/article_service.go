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

var ErrArticleNotFound = errors.New("article not found")

type ArticleService interface {
	List(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.ArticleView], error)
	GetBySlug(ctx context.Context, slug, locale string) (*dto.ArticleView, error)
	Upsert(ctx context.Context, id *int64, authorID string, req dto.UpsertArticleRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type articleService struct {
	articleRepo  repository.ArticleRepository
	languageRepo repository.LanguageRepository
	locales      LocaleService
}

func NewArticleService(articleRepo repository.ArticleRepository, languageRepo repository.LanguageRepository, locales LocaleService) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		languageRepo: languageRepo,
		locales:      locales,
	}
}

// List returns published news in the requested locale, falling back to the
// default locale per article when no translation exists.
func (s *articleService) List(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.ArticleView], error) {
	langs, err := s.locales.ResolveSet(ctx, q.Locale)
	if err != nil {
		return nil, err
	}

	articles, total, err := s.articleRepo.List(ctx, q, languageIDs(langs))
	if err != nil {
		return nil, err
	}

	views := make([]dto.ArticleView, 0, len(articles))
	for i := range articles {
		views = append(views, articleView(&articles[i], langs, false))
	}
	return dto.NewPaginatedResponse(views, total, q.Page, q.PageSize), nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug, locale string) (*dto.ArticleView, error) {
	langs, err := s.locales.ResolveSet(ctx, locale)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.FindBySlug(ctx, slug, languageIDs(langs))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	view := articleView(article, langs, true)
	return &view, nil
}

func (s *articleService) Upsert(ctx context.Context, id *int64, authorID string, req dto.UpsertArticleRequest) (int64, error) {
	article := &models.Article{
		Slug:      req.Slug,
		Published: req.Published,
	}
	if authorID != "" {
		article.AuthorID = &authorID
	}
	if req.PublishedAt != nil {
		t := time.Unix(*req.PublishedAt, 0).UTC()
		article.PublishedAt = &t
	}
	if id != nil {
		existing, err := s.articleRepo.FindByID(ctx, *id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrArticleNotFound
			}
			return 0, err
		}
		article.ID = existing.ID
		article.AuthorID = existing.AuthorID
	}

	translations := make([]models.ArticleTranslation, 0, len(req.Translations))
	for _, in := range req.Translations {
		lang, err := s.languageRepo.FindByCode(ctx, in.Locale)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrUnknownLocale
			}
			return 0, err
		}
		translations = append(translations, models.ArticleTranslation{
			LanguageID: lang.ID,
			Title:      in.Title,
			Summary:    in.Summary,
			Body:       in.Body,
		})
	}

	if err := s.articleRepo.Save(ctx, article, translations); err != nil {
		return 0, err
	}
	return article.ID, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.articleRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return s.articleRepo.Delete(ctx, id)
}

func languageIDs(langs []models.Language) []int64 {
	ids := make([]int64, 0, len(langs))
	for _, l := range langs {
		ids = append(ids, l.ID)
	}
	return ids
}

// articleView picks the first language in fallback order that has a
// translation row. Body is only included on detail views.
func articleView(a *models.Article, langs []models.Language, withBody bool) dto.ArticleView {
	view := dto.ArticleView{
		ID:          a.ID,
		Slug:        a.Slug,
		PublishedAt: a.PublishedAt,
	}

	byLang := make(map[int64]models.ArticleTranslation, len(a.Translations))
	for _, tr := range a.Translations {
		byLang[tr.LanguageID] = tr
	}
	for _, lang := range langs {
		if tr, ok := byLang[lang.ID]; ok {
			view.Title = tr.Title
			view.Summary = tr.Summary
			if withBody {
				view.Body = tr.Body
			}
			break
		}
	}

	return view
}
