package service

import (
	"context"
	"testing"

	"folkfest/database"
	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newReportService(t *testing.T) (ReportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewReportService(
		repository.NewReportRepository(db),
		repository.NewFestivalRepository(db),
		repository.NewGroupRepository(db),
		repository.NewSectionRepository(db),
	)
	return svc, db
}

func createFestival(t *testing.T, db *gorm.DB, slug string) *models.Festival {
	t.Helper()
	country := models.Country{Code: "FR", Name: "France"}
	require.NoError(t, db.Where(models.Country{Code: "FR"}).FirstOrCreate(&country).Error)
	festival := &models.Festival{Slug: slug, CountryID: country.ID, Published: true}
	require.NoError(t, db.Create(festival).Error)
	return festival
}

func submission(year int, ratings ...dto.RatingSubmission) dto.ReportSubmission {
	return dto.ReportSubmission{Year: year, Ratings: ratings}
}

func TestSaveReport_DerivesMeanScore(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")

	sub := submission(2024, dto.RatingSubmission{
		CounterpartID: 55,
		Answers: []dto.AnswerSubmission{
			{QuestionID: 1, Score: 3},
			{QuestionID: 2, Score: 4},
			{QuestionID: 3, Score: 5},
		},
	})

	id, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, sub)
	require.NoError(t, err)

	report, err := svc.GetReport(ctx, id)
	require.NoError(t, err)
	require.Len(t, report.Ratings, 1)
	assert.InDelta(t, 4.0, report.Ratings[0].Score, 1e-9)
}

func TestSaveReport_NoAnswersMeansZeroScore(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")

	sub := submission(2024, dto.RatingSubmission{CounterpartID: 55, Attended: false})

	id, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, sub)
	require.NoError(t, err)

	report, err := svc.GetReport(ctx, id)
	require.NoError(t, err)
	require.Len(t, report.Ratings, 1)
	assert.Equal(t, float64(0), report.Ratings[0].Score)
}

func TestSaveReport_ScoreRecomputedOnEdit(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")

	id, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2024, dto.RatingSubmission{
		CounterpartID: 55,
		Answers:       []dto.AnswerSubmission{{QuestionID: 1, Score: 2}},
	}))
	require.NoError(t, err)

	// Same counterpart, different answers: the stale mean must not survive.
	_, err = svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, &id, submission(2024, dto.RatingSubmission{
		CounterpartID: 55,
		Answers:       []dto.AnswerSubmission{{QuestionID: 1, Score: 5}, {QuestionID: 2, Score: 4}},
	}))
	require.NoError(t, err)

	report, err := svc.GetReport(ctx, id)
	require.NoError(t, err)
	require.Len(t, report.Ratings, 1)
	assert.InDelta(t, 4.5, report.Ratings[0].Score, 1e-9)
}

func TestSaveReport_OwnerMissing(t *testing.T) {
	svc, _ := newReportService(t)

	_, err := svc.SaveReport(context.Background(), models.ReportKindFestival, 999, nil, submission(2024))
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestSaveReport_UnknownKind(t *testing.T) {
	svc, _ := newReportService(t)

	_, err := svc.SaveReport(context.Background(), "committee", 1, nil, submission(2024))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestSaveReport_DuplicateYearRejected(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")

	_, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2024))
	require.NoError(t, err)

	_, err = svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2024))
	assert.ErrorIs(t, err, ErrReportExists)

	// A different year is fine.
	_, err = svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2025))
	assert.NoError(t, err)
}

func TestSaveReport_EditIntoTakenYearRejected(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")

	_, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2024))
	require.NoError(t, err)
	id, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2025))
	require.NoError(t, err)

	// Moving the 2025 report onto the taken year must fail cleanly.
	_, err = svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, &id, submission(2024))
	assert.ErrorIs(t, err, ErrReportExists)

	// Keeping its own year still works.
	_, err = svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, &id, submission(2025))
	assert.NoError(t, err)
}

func TestSaveReport_FinalizedIsImmutable(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")

	id, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2024))
	require.NoError(t, err)
	require.NoError(t, svc.SubmitReport(ctx, id))

	_, err = svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, &id, submission(2024))
	assert.ErrorIs(t, err, ErrReportFinal)
}

func TestSaveReport_EditWithForeignReportID(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")
	other := createFestival(t, db, "autre")

	id, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2024))
	require.NoError(t, err)

	// Another owner cannot reach this report through the edit path.
	_, err = svc.SaveReport(ctx, models.ReportKindFestival, other.ID, &id, submission(2024))
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestSubmitReport_IdempotentAndMissing(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	festival := createFestival(t, db, "fete")

	id, err := svc.SaveReport(ctx, models.ReportKindFestival, festival.ID, nil, submission(2024))
	require.NoError(t, err)

	require.NoError(t, svc.SubmitReport(ctx, id))
	require.NoError(t, svc.SubmitReport(ctx, id))

	assert.ErrorIs(t, svc.SubmitReport(ctx, 12345), ErrReportNotFound)
}

func TestGetReport_Missing(t *testing.T) {
	svc, _ := newReportService(t)
	_, err := svc.GetReport(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
