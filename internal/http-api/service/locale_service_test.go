package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocaleService(t *testing.T) LocaleService {
	t.Helper()
	// nil cache: every lookup hits the database, which is what we want here
	return NewLocaleService(seedLanguages(t), nil, "en")
}

func TestLocaleResolve(t *testing.T) {
	svc := newLocaleService(t)
	ctx := context.Background()

	t.Run("ExactMatch", func(t *testing.T) {
		lang, err := svc.Resolve(ctx, "fr")
		require.NoError(t, err)
		assert.Equal(t, "fr", lang.Code)
	})

	t.Run("EmptyFallsBackToDefault", func(t *testing.T) {
		lang, err := svc.Resolve(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "en", lang.Code)
	})

	t.Run("UnsupportedFallsBackToDefault", func(t *testing.T) {
		lang, err := svc.Resolve(ctx, "ja")
		require.NoError(t, err)
		assert.Equal(t, "en", lang.Code)
	})

	t.Run("RegionVariantStripped", func(t *testing.T) {
		lang, err := svc.Resolve(ctx, "fr-CA")
		require.NoError(t, err)
		assert.Equal(t, "fr", lang.Code)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		lang, err := svc.Resolve(ctx, "ES")
		require.NoError(t, err)
		assert.Equal(t, "es", lang.Code)
	})
}

func TestLocaleResolveSet(t *testing.T) {
	svc := newLocaleService(t)
	ctx := context.Background()

	t.Run("RequestedThenDefault", func(t *testing.T) {
		langs, err := svc.ResolveSet(ctx, "fr")
		require.NoError(t, err)
		require.Len(t, langs, 2)
		assert.Equal(t, "fr", langs[0].Code)
		assert.Equal(t, "en", langs[1].Code)
	})

	t.Run("DefaultOnlyOnce", func(t *testing.T) {
		langs, err := svc.ResolveSet(ctx, "en")
		require.NoError(t, err)
		require.Len(t, langs, 1)
		assert.Equal(t, "en", langs[0].Code)
	})

	t.Run("UnknownCodesDropOut", func(t *testing.T) {
		langs, err := svc.ResolveSet(ctx, "ja", "es")
		require.NoError(t, err)
		require.Len(t, langs, 2)
		assert.Equal(t, "es", langs[0].Code)
		assert.Equal(t, "en", langs[1].Code)
	})
}
