package repository

import (
	"context"

	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type BannerRepository interface {
	List(ctx context.Context, languageID int64) ([]models.Banner, error)
	FindByID(ctx context.Context, id int64) (*models.Banner, error)
	Save(ctx context.Context, banner *models.Banner, translations []models.BannerTranslation) error
	Delete(ctx context.Context, id int64) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) List(ctx context.Context, languageID int64) ([]models.Banner, error) {
	var list []models.Banner
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

func (r *bannerRepository) FindByID(ctx context.Context, id int64) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.WithContext(ctx).Preload("Translations").First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) Save(ctx context.Context, banner *models.Banner, translations []models.BannerTranslation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(banner).Error; err != nil {
			return err
		}
		if err := tx.Where("banner_id = ?", banner.ID).Delete(&models.BannerTranslation{}).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ID = 0
			translations[i].BannerID = banner.ID
		}
		if len(translations) == 0 {
			return nil
		}
		return tx.Create(&translations).Error
	})
}

func (r *bannerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("banner_id = ?", id).Delete(&models.BannerTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Banner{}, id).Error
	})
}
