package repository

import (
	"context"
	"testing"
	"time"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type festivalFixture struct {
	db       *gorm.DB
	repo     FestivalRepository
	language models.Language
	france   models.Country
	chile    models.Country
	folk     models.Category
	dance    models.Category
}

// newFestivalFixture seeds two countries in different regions and two
// categories; individual tests add the festivals they need.
func newFestivalFixture(t *testing.T) *festivalFixture {
	t.Helper()
	db := openTestDB(t)

	f := &festivalFixture{db: db, repo: NewFestivalRepository(db)}

	f.language = models.Language{Code: "en", Name: "English"}
	require.NoError(t, db.Create(&f.language).Error)

	europe := models.Region{Name: "Europe"}
	america := models.Region{Name: "South America"}
	require.NoError(t, db.Create(&europe).Error)
	require.NoError(t, db.Create(&america).Error)

	f.france = models.Country{Code: "FR", Name: "France", RegionID: &europe.ID}
	f.chile = models.Country{Code: "CL", Name: "Chile", RegionID: &america.ID}
	require.NoError(t, db.Create(&f.france).Error)
	require.NoError(t, db.Create(&f.chile).Error)

	f.folk = models.Category{Slug: "folk-music"}
	f.dance = models.Category{Slug: "traditional-dance"}
	require.NoError(t, db.Create(&f.folk).Error)
	require.NoError(t, db.Create(&f.dance).Error)

	return f
}

func (f *festivalFixture) addFestival(t *testing.T, slug, name string, countryID int64, start time.Time, published bool, categories ...models.Category) *models.Festival {
	t.Helper()
	festival := &models.Festival{
		Slug:       slug,
		CountryID:  countryID,
		DateFrom:   &start,
		Published:  published,
		Categories: categories,
	}
	translations := []models.FestivalTranslation{{LanguageID: f.language.ID, Name: name}}
	require.NoError(t, f.repo.Save(context.Background(), festival, translations))
	return festival
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestFestivalSearch_NoFiltersReturnsAllPublished(t *testing.T) {
	f := newFestivalFixture(t)
	f.addFestival(t, "paris-fest", "Paris Festival", f.france.ID, date(2025, 7, 1), true)
	f.addFestival(t, "santiago-fest", "Santiago Festival", f.chile.ID, date(2025, 2, 1), true)
	f.addFestival(t, "hidden-fest", "Hidden Festival", f.france.ID, date(2025, 5, 1), false)

	q := dto.ListQuery{Page: 1, PageSize: 20}
	list, total, err := f.repo.Search(context.Background(), q, f.language.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)
}

func TestFestivalSearch_TextSearchMatchesLocalizedName(t *testing.T) {
	f := newFestivalFixture(t)
	f.addFestival(t, "paris-fest", "Paris Summer Festival", f.france.ID, date(2025, 7, 1), true)
	f.addFestival(t, "santiago-fest", "Santiago Festival", f.chile.ID, date(2025, 2, 1), true)

	q := dto.ListQuery{Search: "summer PARIS", Page: 1, PageSize: 20}
	list, total, err := f.repo.Search(context.Background(), q, f.language.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "paris-fest", list[0].Slug)
}

func TestFestivalSearch_CategoryFilterCountsDistinct(t *testing.T) {
	f := newFestivalFixture(t)
	// Matches both requested categories; must still count once.
	f.addFestival(t, "paris-fest", "Paris Festival", f.france.ID, date(2025, 7, 1), true, f.folk, f.dance)
	f.addFestival(t, "santiago-fest", "Santiago Festival", f.chile.ID, date(2025, 2, 1), true)

	q := dto.ListQuery{CategoryID: []int64{f.folk.ID, f.dance.ID}, Page: 1, PageSize: 20}
	list, total, err := f.repo.Search(context.Background(), q, f.language.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "paris-fest", list[0].Slug)
}

func TestFestivalSearch_CountryAndRegionFilters(t *testing.T) {
	f := newFestivalFixture(t)
	f.addFestival(t, "paris-fest", "Paris Festival", f.france.ID, date(2025, 7, 1), true)
	f.addFestival(t, "santiago-fest", "Santiago Festival", f.chile.ID, date(2025, 2, 1), true)

	ctx := context.Background()

	byCountry, total, err := f.repo.Search(ctx, dto.ListQuery{CountryID: []int64{f.chile.ID}, Page: 1, PageSize: 20}, f.language.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byCountry, 1)
	assert.Equal(t, "santiago-fest", byCountry[0].Slug)

	byRegion, total, err := f.repo.Search(ctx, dto.ListQuery{RegionID: []int64{*f.france.RegionID}, Page: 1, PageSize: 20}, f.language.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byRegion, 1)
	assert.Equal(t, "paris-fest", byRegion[0].Slug)
}

func TestFestivalSearch_DateRange(t *testing.T) {
	f := newFestivalFixture(t)
	f.addFestival(t, "spring-fest", "Spring Festival", f.france.ID, date(2025, 4, 1), true)
	f.addFestival(t, "summer-fest", "Summer Festival", f.france.ID, date(2025, 7, 15), true)
	f.addFestival(t, "winter-fest", "Winter Festival", f.france.ID, date(2025, 12, 1), true)

	from := date(2025, 6, 1)
	to := date(2025, 9, 1)
	q := dto.ListQuery{DateFrom: &from, DateTo: &to, Page: 1, PageSize: 20}
	list, total, err := f.repo.Search(context.Background(), q, f.language.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "summer-fest", list[0].Slug)
}

func TestFestivalSearch_Pagination(t *testing.T) {
	f := newFestivalFixture(t)
	f.addFestival(t, "a-fest", "A Festival", f.france.ID, date(2025, 1, 1), true)
	f.addFestival(t, "b-fest", "B Festival", f.france.ID, date(2025, 2, 1), true)
	f.addFestival(t, "c-fest", "C Festival", f.france.ID, date(2025, 3, 1), true)

	ctx := context.Background()

	page1, total, err := f.repo.Search(ctx, dto.ListQuery{Page: 1, PageSize: 2}, f.language.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	// Newest start date first.
	assert.Equal(t, "c-fest", page1[0].Slug)

	page2, _, err := f.repo.Search(ctx, dto.ListQuery{Page: 2, PageSize: 2}, f.language.ID)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "a-fest", page2[0].Slug)
}

func TestFestivalSearch_PreloadsOnlyRequestedLanguage(t *testing.T) {
	f := newFestivalFixture(t)
	other := models.Language{Code: "fr", Name: "Français"}
	require.NoError(t, f.db.Create(&other).Error)

	festival := &models.Festival{Slug: "paris-fest", CountryID: f.france.ID, Published: true}
	translations := []models.FestivalTranslation{
		{LanguageID: f.language.ID, Name: "Paris Festival"},
		{LanguageID: other.ID, Name: "Festival de Paris"},
	}
	require.NoError(t, f.repo.Save(context.Background(), festival, translations))

	list, _, err := f.repo.Search(context.Background(), dto.ListQuery{Page: 1, PageSize: 20}, other.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Translations, 1)
	assert.Equal(t, "Festival de Paris", list[0].Translations[0].Name)
}

func TestFestivalSave_ReplacesTranslations(t *testing.T) {
	f := newFestivalFixture(t)
	festival := f.addFestival(t, "paris-fest", "Old Name", f.france.ID, date(2025, 7, 1), true)

	update := &models.Festival{ID: festival.ID, Slug: festival.Slug, CountryID: festival.CountryID, Published: true}
	require.NoError(t, f.repo.Save(context.Background(), update, []models.FestivalTranslation{
		{LanguageID: f.language.ID, Name: "New Name"},
	}))

	var rows []models.FestivalTranslation
	require.NoError(t, f.db.Where("festival_id = ?", festival.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "New Name", rows[0].Name)
}
