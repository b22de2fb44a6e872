package repository

import (
	"context"

	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context, languageID int64) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Save(ctx context.Context, category *models.Category, translations []models.CategoryTranslation) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, languageID int64) ([]models.Category, error) {
	var list []models.Category
	err := r.db.WithContext(ctx).
		Preload("Translations", "language_id = ?", languageID).
		Order("slug").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).Preload("Translations").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the category and one translation row per locale atomically.
// The caller supplies the full localized set (see TranslationService); the
// previous rows are replaced so stale locales never linger.
func (r *categoryRepository) Save(ctx context.Context, category *models.Category, translations []models.CategoryTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(category).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ID = 0
			translations[i].CategoryID = category.ID
		}
		if len(translations) == 0 {
			return nil
		}
		return tx.Create(&translations).Error
	})
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}
