package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"folkfest/internal/config"
	"folkfest/internal/http-api/models"
)

func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := SeedLanguages(db, cfg.SupportedLocales); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to seed languages: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// Migrate applies the schema for every model the API serves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Language{},
		&models.Region{},
		&models.Country{},
		&models.NationalSection{},
		&models.NationalSectionTranslation{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.Festival{},
		&models.FestivalTranslation{},
		&models.Group{},
		&models.GroupTranslation{},
		&models.Article{},
		&models.ArticleTranslation{},
		&models.MenuItem{},
		&models.MenuItemTranslation{},
		&models.Banner{},
		&models.BannerTranslation{},
		&models.Report{},
		&models.Rating{},
		&models.RatingQuestion{},
		&models.RatingAnswer{},
		&models.Activity{},
		&models.RatingActivity{},
		&models.RatingLanguage{},
		&models.User{},
		&models.RefreshToken{},
	)
}

var localeNames = map[string]string{
	"en": "English",
	"fr": "Français",
	"es": "Español",
	"de": "Deutsch",
	"it": "Italiano",
	"pt": "Português",
	"ru": "Русский",
}

// SeedLanguages inserts a language row per configured locale if missing.
// Existing rows are left untouched so renames survive restarts.
func SeedLanguages(db *gorm.DB, locales []string) error {
	for _, code := range locales {
		name, ok := localeNames[code]
		if !ok {
			name = code
		}
		lang := models.Language{Code: code, Name: name}
		if err := db.Where(models.Language{Code: code}).FirstOrCreate(&lang).Error; err != nil {
			return fmt.Errorf("seed language %s: %w", code, err)
		}
	}
	return nil
}
