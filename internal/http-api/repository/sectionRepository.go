package repository

import (
	"context"
	"strings"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type SectionRepository interface {
	Search(ctx context.Context, q dto.ListQuery, languageID int64) ([]models.NationalSection, int64, error)
	FindByID(ctx context.Context, id int64) (*models.NationalSection, error)
	FindBySlug(ctx context.Context, slug string, languageID int64) (*models.NationalSection, error)
	Save(ctx context.Context, section *models.NationalSection, translations []models.NationalSectionTranslation) error
	Delete(ctx context.Context, id int64) error
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) filtered(ctx context.Context, q dto.ListQuery, languageID int64) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.NationalSection{}).
		Joins("JOIN national_section_translations st ON st.section_id = national_sections.id AND st.language_id = ?", languageID).
		Where("national_sections.published = ?", true)

	if q.Search != "" {
		for _, token := range strings.Fields(q.Search) {
			p := "%" + strings.ToLower(token) + "%"
			db = db.Where("(LOWER(st.name) LIKE ? OR LOWER(st.about) LIKE ?)", p, p)
		}
	}
	if len(q.CountryID) > 0 {
		db = db.Where("national_sections.country_id IN ?", q.CountryID)
	}
	if len(q.RegionID) > 0 {
		db = db.Joins("JOIN countries co ON co.id = national_sections.country_id").
			Where("co.region_id IN ?", q.RegionID)
	}

	return db
}

func (r *sectionRepository) Search(ctx context.Context, q dto.ListQuery, languageID int64) ([]models.NationalSection, int64, error) {
	var total int64
	if err := r.filtered(ctx, q, languageID).Distinct("national_sections.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.NationalSection
	err := r.filtered(ctx, q, languageID).
		Select("national_sections.*").
		Group("national_sections.id").
		Order("national_sections.id").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Preload("Translations", "language_id = ?", languageID).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *sectionRepository) FindByID(ctx context.Context, id int64) (*models.NationalSection, error) {
	var s models.NationalSection
	if err := r.db.WithContext(ctx).Preload("Translations").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepository) FindBySlug(ctx context.Context, slug string, languageID int64) (*models.NationalSection, error) {
	var s models.NationalSection
	if err := r.db.WithContext(ctx).
		Preload("Translations", "language_id = ?", languageID).
		Where("slug = ?", slug).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepository) Save(ctx context.Context, section *models.NationalSection, translations []models.NationalSectionTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(section).Error; err != nil {
			return err
		}
		if translations == nil {
			return nil
		}
		if err := tx.Where("section_id = ?", section.ID).Delete(&models.NationalSectionTranslation{}).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ID = 0
			translations[i].SectionID = section.ID
		}
		if len(translations) == 0 {
			return nil
		}
		return tx.Create(&translations).Error
	})
}

func (r *sectionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).Delete(&models.NationalSectionTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.NationalSection{}, id).Error
	})
}
