package service

import (
	"context"
	"errors"
	"fmt"

	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"
	"folkfest/internal/translate"
)

// ErrTranslator wraps any machine-translation failure. The policy is a hard
// fail: a translator error aborts the whole write, never a partial-locale
// persist.
var ErrTranslator = errors.New("translation service failed")

// LocalizedText is one locale's rendering of a source string.
type LocalizedText struct {
	LanguageID int64
	Code       string
	Text       string
}

// TranslationService fans primary-locale text out to every configured
// locale before the caller persists the full set in one transaction.
type TranslationService interface {
	TranslateAll(ctx context.Context, text, sourceLocale string) ([]LocalizedText, error)
}

type translationService struct {
	languageRepo repository.LanguageRepository
	translator   translate.Translator
}

func NewTranslationService(languageRepo repository.LanguageRepository, translator translate.Translator) TranslationService {
	return &translationService{
		languageRepo: languageRepo,
		translator:   translator,
	}
}

// TranslateAll returns one entry per configured language: the source text
// unchanged for the source locale and a machine translation for the rest.
// Empty source text yields empty strings for every locale without touching
// the translator (it would otherwise "translate" the empty string into
// non-empty garbage, and each call costs quota).
func (s *translationService) TranslateAll(ctx context.Context, text, sourceLocale string) ([]LocalizedText, error) {
	languages, err := s.languageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]LocalizedText, 0, len(languages))
	for _, lang := range languages {
		entry := LocalizedText{LanguageID: lang.ID, Code: lang.Code}

		switch {
		case text == "":
			// keep empty
		case lang.Code == sourceLocale:
			entry.Text = text
		default:
			translated, err := s.translator.Translate(ctx, text, sourceLocale, lang.Code)
			if err != nil {
				return nil, fmt.Errorf("%w: %s -> %s: %v", ErrTranslator, sourceLocale, lang.Code, err)
			}
			entry.Text = translated
		}

		out = append(out, entry)
	}

	return out, nil
}

// CategoryTranslations converts the fan-out into category translation rows.
func CategoryTranslations(texts []LocalizedText) []models.CategoryTranslation {
	rows := make([]models.CategoryTranslation, 0, len(texts))
	for _, t := range texts {
		rows = append(rows, models.CategoryTranslation{LanguageID: t.LanguageID, Name: t.Text})
	}
	return rows
}

// MenuItemTranslations converts the fan-out into menu translation rows.
func MenuItemTranslations(texts []LocalizedText) []models.MenuItemTranslation {
	rows := make([]models.MenuItemTranslation, 0, len(texts))
	for _, t := range texts {
		rows = append(rows, models.MenuItemTranslation{LanguageID: t.LanguageID, Title: t.Text})
	}
	return rows
}
