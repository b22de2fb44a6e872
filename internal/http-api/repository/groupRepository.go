package repository

import (
	"context"
	"strings"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type GroupRepository interface {
	Search(ctx context.Context, q dto.ListQuery, languageID int64) ([]models.Group, int64, error)
	FindByID(ctx context.Context, id int64) (*models.Group, error)
	FindBySlug(ctx context.Context, slug string, languageID int64) (*models.Group, error)
	Save(ctx context.Context, group *models.Group, translations []models.GroupTranslation) error
	Delete(ctx context.Context, id int64) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) filtered(ctx context.Context, q dto.ListQuery, languageID int64) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.Group{}).
		Joins("JOIN group_translations gt ON gt.group_id = groups.id AND gt.language_id = ?", languageID).
		Where("groups.published = ?", true)

	if q.Search != "" {
		for _, token := range strings.Fields(q.Search) {
			p := "%" + strings.ToLower(token) + "%"
			db = db.Where("(LOWER(gt.name) LIKE ? OR LOWER(gt.description) LIKE ?)", p, p)
		}
	}
	if len(q.CategoryID) > 0 {
		db = db.Joins("JOIN group_categories gc ON gc.group_id = groups.id").
			Where("gc.category_id IN ?", q.CategoryID)
	}
	if len(q.CountryID) > 0 {
		db = db.Where("groups.country_id IN ?", q.CountryID)
	}
	if len(q.RegionID) > 0 {
		db = db.Joins("JOIN countries co ON co.id = groups.country_id").
			Where("co.region_id IN ?", q.RegionID)
	}

	return db
}

func (r *groupRepository) Search(ctx context.Context, q dto.ListQuery, languageID int64) ([]models.Group, int64, error) {
	var total int64
	if err := r.filtered(ctx, q, languageID).Distinct("groups.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Group
	err := r.filtered(ctx, q, languageID).
		Select("groups.*").
		Group("groups.id").
		Order("groups.id desc").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Preload("Translations", "language_id = ?", languageID).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *groupRepository) FindByID(ctx context.Context, id int64) (*models.Group, error) {
	var g models.Group
	if err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Categories").
		First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) FindBySlug(ctx context.Context, slug string, languageID int64) (*models.Group, error) {
	var g models.Group
	if err := r.db.WithContext(ctx).
		Preload("Translations", "language_id = ?", languageID).
		Preload("Categories").
		Where("slug = ?", slug).
		First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) Save(ctx context.Context, group *models.Group, translations []models.GroupTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(group).Error; err != nil {
			return err
		}
		if group.Categories != nil {
			if err := tx.Model(group).Association("Categories").Replace(group.Categories); err != nil {
				return err
			}
		}
		if translations == nil {
			return nil
		}
		if err := tx.Where("group_id = ?", group.ID).Delete(&models.GroupTranslation{}).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ID = 0
			translations[i].GroupID = group.ID
		}
		if len(translations) == 0 {
			return nil
		}
		return tx.Create(&translations).Error
	})
}

func (r *groupRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, id).Error
	})
}
