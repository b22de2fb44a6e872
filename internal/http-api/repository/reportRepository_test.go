package repository

import (
	"context"
	"testing"

	"folkfest/database"
	"folkfest/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory sqlite with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedFestival(t *testing.T, db *gorm.DB, slug string) *models.Festival {
	t.Helper()
	country := models.Country{Code: "FR", Name: "France"}
	require.NoError(t, db.Where(models.Country{Code: "FR"}).FirstOrCreate(&country).Error)
	festival := &models.Festival{Slug: slug, CountryID: country.ID, Published: true}
	require.NoError(t, db.Create(festival).Error)
	return festival
}

func ratingWithAnswers(counterpartID int64, score float64, answerScores ...int) models.Rating {
	r := models.Rating{CounterpartID: counterpartID, Score: score}
	for i, s := range answerScores {
		r.Answers = append(r.Answers, models.RatingAnswer{QuestionID: int64(i + 1), Score: s})
	}
	return r
}

func TestReportSave_Create(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2024, Draft: true}
	ratings := []models.Rating{
		ratingWithAnswers(101, 4.0, 3, 4, 5),
		ratingWithAnswers(102, 0),
	}

	require.NoError(t, repo.Save(ctx, report, ratings))
	require.NotZero(t, report.ID)

	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Ratings, 2)
	assert.Equal(t, int64(101), loaded.Ratings[0].CounterpartID)
	assert.InDelta(t, 4.0, loaded.Ratings[0].Score, 1e-9)
	assert.Len(t, loaded.Ratings[0].Answers, 3)
	assert.Equal(t, float64(0), loaded.Ratings[1].Score)
	assert.Empty(t, loaded.Ratings[1].Answers)
}

func TestReportSave_EditKeepsRatingIdentity(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2024, Draft: true}
	require.NoError(t, repo.Save(ctx, report, []models.Rating{ratingWithAnswers(101, 2.0, 2)}))

	var before models.Rating
	require.NoError(t, db.Where("report_id = ? AND counterpart_id = ?", report.ID, 101).First(&before).Error)

	// Resubmit with the same counterpart plus a new one.
	edit := &models.Report{ID: report.ID, Kind: report.Kind, OwnerID: report.OwnerID, Year: 2024}
	require.NoError(t, repo.Save(ctx, edit, []models.Rating{
		ratingWithAnswers(101, 5.0, 5),
		ratingWithAnswers(102, 3.0, 3),
	}))

	var after models.Rating
	require.NoError(t, db.Where("report_id = ? AND counterpart_id = ?", report.ID, 101).First(&after).Error)
	assert.Equal(t, before.ID, after.ID, "existing rating must keep its primary key")
	assert.InDelta(t, 5.0, after.Score, 1e-9)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Where("report_id = ?", report.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestReportSave_EditIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	initial := ratingWithAnswers(101, 4.0, 3, 4, 5)
	initial.Activities = []models.RatingActivity{{ActivityID: 7}}
	initial.Languages = []models.RatingLanguage{{LanguageID: 1}}
	summary := "unchanged"
	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2024, Draft: true, Summary: summary}
	require.NoError(t, repo.Save(ctx, report, []models.Rating{initial}))

	var before models.Rating
	require.NoError(t, db.Where("report_id = ? AND counterpart_id = ?", report.ID, 101).First(&before).Error)

	// Applying the same edit twice must leave the exact same state as once.
	for i := 0; i < 2; i++ {
		edit := &models.Report{ID: report.ID, Kind: report.Kind, OwnerID: report.OwnerID, Year: 2024, Summary: summary}
		identical := ratingWithAnswers(101, 4.0, 3, 4, 5)
		identical.Activities = []models.RatingActivity{{ActivityID: 7}}
		identical.Languages = []models.RatingLanguage{{LanguageID: 1}}
		require.NoError(t, repo.Save(ctx, edit, []models.Rating{identical}))
	}

	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", loaded.Summary)
	require.Len(t, loaded.Ratings, 1)
	assert.Equal(t, before.ID, loaded.Ratings[0].ID, "rating must keep its primary key across identical edits")
	assert.InDelta(t, 4.0, loaded.Ratings[0].Score, 1e-9)

	var answers, activities, languages int64
	db.Model(&models.RatingAnswer{}).Count(&answers)
	db.Model(&models.RatingActivity{}).Count(&activities)
	db.Model(&models.RatingLanguage{}).Count(&languages)
	assert.Equal(t, int64(3), answers)
	assert.Equal(t, int64(1), activities)
	assert.Equal(t, int64(1), languages)
}

func TestReportSave_PrunesAbsentCounterparts(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2024, Draft: true}
	first := []models.Rating{
		ratingWithAnswers(101, 4.0, 4),
		ratingWithAnswers(102, 3.0, 3),
	}
	first[1].Activities = []models.RatingActivity{{ActivityID: 7}}
	first[1].Languages = []models.RatingLanguage{{LanguageID: 1}}
	require.NoError(t, repo.Save(ctx, report, first))

	edit := &models.Report{ID: report.ID, Kind: report.Kind, OwnerID: report.OwnerID, Year: 2024}
	require.NoError(t, repo.Save(ctx, edit, []models.Rating{ratingWithAnswers(101, 4.0, 4)}))

	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Ratings, 1)
	assert.Equal(t, int64(101), loaded.Ratings[0].CounterpartID)

	// The pruned rating's child rows must be gone too.
	var answers, activities, languages int64
	db.Model(&models.RatingAnswer{}).Count(&answers)
	db.Model(&models.RatingActivity{}).Count(&activities)
	db.Model(&models.RatingLanguage{}).Count(&languages)
	assert.Equal(t, int64(1), answers)
	assert.Zero(t, activities)
	assert.Zero(t, languages)
}

func TestReportSave_ReplacesTagRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2024, Draft: true}
	initial := ratingWithAnswers(101, 4.0, 4)
	initial.Activities = []models.RatingActivity{{ActivityID: 1}, {ActivityID: 2}}
	require.NoError(t, repo.Save(ctx, report, []models.Rating{initial}))

	edit := &models.Report{ID: report.ID, Kind: report.Kind, OwnerID: report.OwnerID, Year: 2024}
	replacement := ratingWithAnswers(101, 4.0, 4)
	replacement.Activities = []models.RatingActivity{{ActivityID: 3}}
	require.NoError(t, repo.Save(ctx, edit, []models.Rating{replacement}))

	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Ratings, 1)
	require.Len(t, loaded.Ratings[0].Activities, 1)
	assert.Equal(t, int64(3), loaded.Ratings[0].Activities[0].ActivityID)
}

func TestReportSave_UpdatesScalars(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	attendees := 1200
	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2024, Draft: true, Summary: "first pass"}
	require.NoError(t, repo.Save(ctx, report, nil))

	edit := &models.Report{ID: report.ID, Kind: report.Kind, OwnerID: report.OwnerID, Year: 2024, AttendeesCount: &attendees, Summary: "final text"}
	require.NoError(t, repo.Save(ctx, edit, nil))

	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "final text", loaded.Summary)
	require.NotNil(t, loaded.AttendeesCount)
	assert.Equal(t, 1200, *loaded.AttendeesCount)
	assert.True(t, loaded.Draft, "editing must not flip the draft flag")
}

func TestReportSubmit(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2024, Draft: true}
	require.NoError(t, repo.Save(ctx, report, nil))

	require.NoError(t, repo.Submit(ctx, report.ID))
	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.False(t, loaded.Draft)

	// Submitting again is harmless.
	require.NoError(t, repo.Submit(ctx, report.ID))
}

func TestReportFindByOwnerYear(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	festival := seedFestival(t, db, "fete-2024")

	report := &models.Report{Kind: models.ReportKindFestival, OwnerID: festival.ID, Year: 2023, Draft: true}
	require.NoError(t, repo.Save(ctx, report, nil))

	found, err := repo.FindByOwnerYear(ctx, models.ReportKindFestival, festival.ID, 2023)
	require.NoError(t, err)
	assert.Equal(t, report.ID, found.ID)

	_, err = repo.FindByOwnerYear(ctx, models.ReportKindFestival, festival.ID, 2024)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByOwnerYear(ctx, models.ReportKindGroup, festival.ID, 2023)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
