package repository

import (
	"context"
	"strings"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type FestivalRepository interface {
	Search(ctx context.Context, q dto.ListQuery, languageID int64) ([]models.Festival, int64, error)
	FindByID(ctx context.Context, id int64) (*models.Festival, error)
	FindBySlug(ctx context.Context, slug string, languageID int64) (*models.Festival, error)
	Save(ctx context.Context, festival *models.Festival, translations []models.FestivalTranslation) error
	Delete(ctx context.Context, id int64) error
}

type festivalRepository struct {
	db *gorm.DB
}

func NewFestivalRepository(db *gorm.DB) FestivalRepository {
	return &festivalRepository{db: db}
}

// filtered composes the predicate set for one search request. An empty id
// set means no filter on that dimension; the date range applies to the
// festival start date.
func (r *festivalRepository) filtered(ctx context.Context, q dto.ListQuery, languageID int64) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.Festival{}).
		Joins("JOIN festival_translations ft ON ft.festival_id = festivals.id AND ft.language_id = ?", languageID).
		Where("festivals.published = ?", true)

	if q.Search != "" {
		// Each token must match the localized name or description.
		for _, token := range strings.Fields(q.Search) {
			p := "%" + strings.ToLower(token) + "%"
			db = db.Where("(LOWER(ft.name) LIKE ? OR LOWER(ft.description) LIKE ?)", p, p)
		}
	}
	if len(q.CategoryID) > 0 {
		db = db.Joins("JOIN festival_categories fc ON fc.festival_id = festivals.id").
			Where("fc.category_id IN ?", q.CategoryID)
	}
	if len(q.CountryID) > 0 {
		db = db.Where("festivals.country_id IN ?", q.CountryID)
	}
	if len(q.RegionID) > 0 {
		db = db.Joins("JOIN countries co ON co.id = festivals.country_id").
			Where("co.region_id IN ?", q.RegionID)
	}
	if q.DateFrom != nil {
		db = db.Where("festivals.date_from >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		db = db.Where("festivals.date_from <= ?", *q.DateTo)
	}

	return db
}

func (r *festivalRepository) Search(ctx context.Context, q dto.ListQuery, languageID int64) ([]models.Festival, int64, error) {
	var total int64
	if err := r.filtered(ctx, q, languageID).Distinct("festivals.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Festival
	err := r.filtered(ctx, q, languageID).
		Select("festivals.*").
		Group("festivals.id"). // category join fans out one row per match
		Order("festivals.date_from desc, festivals.id desc").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Preload("Translations", "language_id = ?", languageID).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *festivalRepository) FindByID(ctx context.Context, id int64) (*models.Festival, error) {
	var f models.Festival
	if err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Categories").
		Preload("Groups").
		First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *festivalRepository) FindBySlug(ctx context.Context, slug string, languageID int64) (*models.Festival, error) {
	var f models.Festival
	if err := r.db.WithContext(ctx).
		Preload("Translations", "language_id = ?", languageID).
		Preload("Categories").
		Where("slug = ?", slug).
		First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// Save writes the festival row, its association sets and its translation
// rows in one transaction. Translations are replaced wholesale.
func (r *festivalRepository) Save(ctx context.Context, festival *models.Festival, translations []models.FestivalTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(festival).Error; err != nil {
			return err
		}
		if festival.Categories != nil {
			if err := tx.Model(festival).Association("Categories").Replace(festival.Categories); err != nil {
				return err
			}
		}
		if festival.Groups != nil {
			if err := tx.Model(festival).Association("Groups").Replace(festival.Groups); err != nil {
				return err
			}
		}
		if translations == nil {
			return nil
		}
		if err := tx.Where("festival_id = ?", festival.ID).Delete(&models.FestivalTranslation{}).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ID = 0
			translations[i].FestivalID = festival.ID
		}
		if len(translations) == 0 {
			return nil
		}
		return tx.Create(&translations).Error
	})
}

func (r *festivalRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("festival_id = ?", id).Delete(&models.FestivalTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Festival{}, id).Error
	})
}
