package service

import (
	"context"
	"errors"
	"testing"

	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTranslator mocks the translate.Translator interface
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}

func seedLanguages(t *testing.T) repository.LanguageRepository {
	t.Helper()
	db := newTestDB(t)
	for _, l := range []models.Language{
		{Code: "en", Name: "English"},
		{Code: "fr", Name: "Français"},
		{Code: "es", Name: "Español"},
	} {
		require.NoError(t, db.Create(&l).Error)
	}
	return repository.NewLanguageRepository(db)
}

func TestTranslateAll_FansOutToEveryLocale(t *testing.T) {
	langRepo := seedLanguages(t)
	translator := new(MockTranslator)
	translator.On("Translate", mock.Anything, "Hello", "en", "fr").Return("Bonjour", nil)
	translator.On("Translate", mock.Anything, "Hello", "en", "es").Return("Hola", nil)

	svc := NewTranslationService(langRepo, translator)
	out, err := svc.TranslateAll(context.Background(), "Hello", "en")
	require.NoError(t, err)
	require.Len(t, out, 3)

	byCode := make(map[string]string, len(out))
	for _, entry := range out {
		byCode[entry.Code] = entry.Text
	}
	assert.Equal(t, "Hello", byCode["en"], "source locale keeps the original text")
	assert.Equal(t, "Bonjour", byCode["fr"])
	assert.Equal(t, "Hola", byCode["es"])
	translator.AssertExpectations(t)
}

func TestTranslateAll_EmptyTextSkipsTranslator(t *testing.T) {
	langRepo := seedLanguages(t)
	translator := new(MockTranslator)

	svc := NewTranslationService(langRepo, translator)
	out, err := svc.TranslateAll(context.Background(), "", "en")
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, entry := range out {
		assert.Empty(t, entry.Text)
	}
	translator.AssertNotCalled(t, "Translate")
}

func TestTranslateAll_TranslatorFailureAbortsWholeFanOut(t *testing.T) {
	langRepo := seedLanguages(t)
	translator := new(MockTranslator)
	translator.On("Translate", mock.Anything, "Hello", "en", "fr").Return("", errors.New("upstream 500"))

	svc := NewTranslationService(langRepo, translator)
	out, err := svc.TranslateAll(context.Background(), "Hello", "en")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrTranslator)
}
