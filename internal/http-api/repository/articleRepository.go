package repository

import (
	"context"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	List(ctx context.Context, q dto.ListQuery, languageIDs []int64) ([]models.Article, int64, error)
	FindBySlug(ctx context.Context, slug string, languageIDs []int64) (*models.Article, error)
	FindByID(ctx context.Context, id int64) (*models.Article, error)
	Save(ctx context.Context, article *models.Article, translations []models.ArticleTranslation) error
	Delete(ctx context.Context, id int64) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// List returns published articles newest first. Translations are preloaded
// for the requested and the fallback language; the service picks the first
// one present.
func (r *articleRepository) List(ctx context.Context, q dto.ListQuery, languageIDs []int64) ([]models.Article, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.Article{}).Where("published = ?", true)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Article
	err := db.
		Preload("Translations", "language_id IN ?", languageIDs).
		Order("published_at desc, id desc").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string, languageIDs []int64) (*models.Article, error) {
	var a models.Article
	err := r.db.WithContext(ctx).
		Preload("Translations", "language_id IN ?", languageIDs).
		Where("slug = ?", slug).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepository) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).Preload("Translations").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepository) Save(ctx context.Context, article *models.Article, translations []models.ArticleTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(article).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.ArticleTranslation{}).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ID = 0
			translations[i].ArticleID = article.ID
		}
		if len(translations) == 0 {
			return nil
		}
		return tx.Create(&translations).Error
	})
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}
