package repository

import (
	"context"

	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Report, error)
	FindByOwnerYear(ctx context.Context, kind string, ownerID int64, year int) (*models.Report, error)
	Save(ctx context.Context, report *models.Report, ratings []models.Rating) error
	Submit(ctx context.Context, id int64) error
	ListQuestions(ctx context.Context) ([]models.RatingQuestion, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) FindByID(ctx context.Context, id int64) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB { return db.Order("ratings.counterpart_id") }).
		Preload("Ratings.Answers").
		Preload("Ratings.Activities").
		Preload("Ratings.Languages").
		First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByOwnerYear(ctx context.Context, kind string, ownerID int64, year int) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Where("kind = ? AND owner_id = ? AND year = ?", kind, ownerID, year).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Save persists one report submission atomically. When report.ID is zero the
// report and all child rows are inserted; otherwise the existing tree is
// reconciled against the submission: ratings are matched by counterpart id
// and updated in place (keeping their row identity), unmatched submitted
// counterparts are inserted, and existing counterparts absent from the
// submission are pruned together with their answers and tags. Answer and tag
// rows are always replaced wholesale. Any failure aborts the whole
// transaction so no partial state can be observed.
func (r *reportRepository) Save(ctx context.Context, report *models.Report, ratings []models.Rating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if report.ID == 0 {
			if err := tx.Create(report).Error; err != nil {
				return err
			}
			for i := range ratings {
				if err := insertRating(tx, report.ID, &ratings[i]); err != nil {
					return err
				}
			}
			return nil
		}

		// Edit path: scalar fields first, then reconcile child rows.
		updates := map[string]interface{}{
			"year":               report.Year,
			"attendees_count":    report.AttendeesCount,
			"performances_count": report.PerformancesCount,
			"summary":            report.Summary,
		}
		if err := tx.Model(&models.Report{}).Where("id = ?", report.ID).Updates(updates).Error; err != nil {
			return err
		}

		var existing []models.Rating
		if err := tx.Where("report_id = ?", report.ID).Find(&existing).Error; err != nil {
			return err
		}
		existingByCounterpart := make(map[int64]models.Rating, len(existing))
		for _, e := range existing {
			existingByCounterpart[e.CounterpartID] = e
		}

		submitted := make(map[int64]bool, len(ratings))
		for i := range ratings {
			sub := &ratings[i]
			submitted[sub.CounterpartID] = true

			old, ok := existingByCounterpart[sub.CounterpartID]
			if !ok {
				if err := insertRating(tx, report.ID, sub); err != nil {
					return err
				}
				continue
			}

			// Update in place so the rating keeps its primary key.
			err := tx.Model(&models.Rating{}).Where("id = ?", old.ID).Updates(map[string]interface{}{
				"score":    sub.Score,
				"comment":  sub.Comment,
				"attended": sub.Attended,
				"official": sub.Official,
			}).Error
			if err != nil {
				return err
			}
			if err := deleteRatingChildren(tx, old.ID); err != nil {
				return err
			}
			if err := insertRatingChildren(tx, old.ID, sub); err != nil {
				return err
			}
			sub.ID = old.ID
		}

		// Prune ratings whose counterpart is gone from the submission.
		for counterpartID, old := range existingByCounterpart {
			if submitted[counterpartID] {
				continue
			}
			if err := deleteRatingChildren(tx, old.ID); err != nil {
				return err
			}
			if err := tx.Delete(&models.Rating{}, old.ID).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func insertRating(tx *gorm.DB, reportID int64, rating *models.Rating) error {
	rating.ID = 0
	rating.ReportID = reportID
	answers := rating.Answers
	activities := rating.Activities
	languages := rating.Languages
	rating.Answers = nil
	rating.Activities = nil
	rating.Languages = nil

	if err := tx.Create(rating).Error; err != nil {
		return err
	}

	rating.Answers = answers
	rating.Activities = activities
	rating.Languages = languages
	return insertRatingChildren(tx, rating.ID, rating)
}

func insertRatingChildren(tx *gorm.DB, ratingID int64, rating *models.Rating) error {
	for i := range rating.Answers {
		rating.Answers[i].ID = 0
		rating.Answers[i].RatingID = ratingID
	}
	if len(rating.Answers) > 0 {
		if err := tx.Create(&rating.Answers).Error; err != nil {
			return err
		}
	}

	for i := range rating.Activities {
		rating.Activities[i].ID = 0
		rating.Activities[i].RatingID = ratingID
	}
	if len(rating.Activities) > 0 {
		if err := tx.Create(&rating.Activities).Error; err != nil {
			return err
		}
	}

	for i := range rating.Languages {
		rating.Languages[i].ID = 0
		rating.Languages[i].RatingID = ratingID
	}
	if len(rating.Languages) > 0 {
		if err := tx.Create(&rating.Languages).Error; err != nil {
			return err
		}
	}

	return nil
}

// deleteRatingChildren removes answers and tag rows. The cascade is done in
// code, not by database constraint, so the prune path stays explicit.
func deleteRatingChildren(tx *gorm.DB, ratingID int64) error {
	if err := tx.Where("rating_id = ?", ratingID).Delete(&models.RatingAnswer{}).Error; err != nil {
		return err
	}
	if err := tx.Where("rating_id = ?", ratingID).Delete(&models.RatingActivity{}).Error; err != nil {
		return err
	}
	return tx.Where("rating_id = ?", ratingID).Delete(&models.RatingLanguage{}).Error
}

// Submit flips draft off. A finalized report is immutable; the service
// refuses edits before they ever reach Save.
func (r *reportRepository) Submit(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&models.Report{}).Where("id = ?", id).Update("draft", false).Error
}

func (r *reportRepository) ListQuestions(ctx context.Context) ([]models.RatingQuestion, error) {
	var questions []models.RatingQuestion
	if err := r.db.WithContext(ctx).Order("position, id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
