package repository

import (
	"context"

	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	List(ctx context.Context, languageID int64) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Save(ctx context.Context, item *models.MenuItem, translations []models.MenuItemTranslation) error
	Delete(ctx context.Context, id int64) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) List(ctx context.Context, languageID int64) ([]models.MenuItem, error) {
	var list []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Preload("Translations", "language_id = ?", languageID).
		Order("position, id").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).Preload("Translations").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Save(ctx context.Context, item *models.MenuItem, translations []models.MenuItemTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.MenuItemTranslation{}).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ID = 0
			translations[i].MenuItemID = item.ID
		}
		if len(translations) == 0 {
			return nil
		}
		return tx.Create(&translations).Error
	})
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.MenuItemTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuItem{}, id).Error
	})
}
