package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"folkfest/internal/cache"
	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"
)

var ErrUnknownLocale = errors.New("unknown locale")

// LocaleService maps request locale codes to language rows, falling back to
// the configured default when the requested locale is unsupported.
type LocaleService interface {
	Resolve(ctx context.Context, code string) (*models.Language, error)
	// ResolveSet returns the language rows for the given codes in request
	// order, deduplicated, always ending with the default locale. Edit
	// forms use this to show the requested and the default text together.
	ResolveSet(ctx context.Context, codes ...string) ([]models.Language, error)
	DefaultCode() string
}

type localeService struct {
	languageRepo repository.LanguageRepository
	cache        *cache.Cache
	defaultCode  string
}

func NewLocaleService(languageRepo repository.LanguageRepository, c *cache.Cache, defaultCode string) LocaleService {
	return &localeService{
		languageRepo: languageRepo,
		cache:        c,
		defaultCode:  defaultCode,
	}
}

func (s *localeService) DefaultCode() string {
	return s.defaultCode
}

func (s *localeService) Resolve(ctx context.Context, code string) (*models.Language, error) {
	code = normalizeLocale(code)
	if code == "" {
		code = s.defaultCode
	}

	if lang, err := s.lookup(ctx, code); err == nil {
		return lang, nil
	}

	// Unsupported locale: fall back instead of failing the request.
	if code != s.defaultCode {
		return s.lookup(ctx, s.defaultCode)
	}
	return nil, ErrUnknownLocale
}

func (s *localeService) ResolveSet(ctx context.Context, codes ...string) ([]models.Language, error) {
	wanted := make([]string, 0, len(codes)+1)
	seen := make(map[string]bool, len(codes)+1)
	for _, code := range codes {
		code = normalizeLocale(code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		wanted = append(wanted, code)
	}
	if !seen[s.defaultCode] {
		wanted = append(wanted, s.defaultCode)
	}

	langs, err := s.languageRepo.FindByCodes(ctx, wanted)
	if err != nil {
		return nil, err
	}
	if len(langs) == 0 {
		return nil, ErrUnknownLocale
	}
	return langs, nil
}

func (s *localeService) lookup(ctx context.Context, code string) (*models.Language, error) {
	key := fmt.Sprintf("lang:%s", code)

	var cached models.Language
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	lang, err := s.languageRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, lang) // best effort, lookup already succeeded
	return lang, nil
}

// normalizeLocale lowercases and strips any BCP 47 region suffix,
// so "fr-CA" resolves the same language row as "fr".
func normalizeLocale(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}
	return code
}
