package repository

import (
	"context"

	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Language, error)
	FindByCodes(ctx context.Context, codes []string) ([]models.Language, error)
	List(ctx context.Context) ([]models.Language, error)
}

type languageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	var lang models.Language
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&lang).Error; err != nil {
		return nil, err
	}
	return &lang, nil
}

// FindByCodes returns the rows in the order the codes were requested,
// skipping codes with no language row. Callers that need "requested locale
// then default" pass both and get an ordered pair back.
func (r *languageRepository) FindByCodes(ctx context.Context, codes []string) ([]models.Language, error) {
	var rows []models.Language
	if err := r.db.WithContext(ctx).Where("code IN ?", codes).Find(&rows).Error; err != nil {
		return nil, err
	}

	byCode := make(map[string]models.Language, len(rows))
	for _, row := range rows {
		byCode[row.Code] = row
	}

	ordered := make([]models.Language, 0, len(codes))
	for _, code := range codes {
		if row, ok := byCode[code]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}

func (r *languageRepository) List(ctx context.Context) ([]models.Language, error) {
	var rows []models.Language
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
