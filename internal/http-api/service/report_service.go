package service

import (
	"context"
	"errors"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"
	"folkfest/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrOwnerNotFound  = errors.New("report owner not found")
	ErrReportFinal    = errors.New("report is no longer a draft")
	ErrReportExists   = errors.New("a report for this period already exists")
	ErrInvalidKind    = errors.New("invalid report kind")
)

type ReportService interface {
	// SaveReport creates a report when reportID is nil and reconciles the
	// existing one otherwise. Returns the persisted report id.
	SaveReport(ctx context.Context, kind string, ownerID int64, reportID *int64, sub dto.ReportSubmission) (int64, error)
	GetReport(ctx context.Context, id int64) (*dto.ReportResponse, error)
	SubmitReport(ctx context.Context, id int64) error
	ListQuestions(ctx context.Context) ([]models.RatingQuestion, error)
}

type reportService struct {
	reportRepo   repository.ReportRepository
	festivalRepo repository.FestivalRepository
	groupRepo    repository.GroupRepository
	sectionRepo  repository.SectionRepository
}

func NewReportService(
	reportRepo repository.ReportRepository,
	festivalRepo repository.FestivalRepository,
	groupRepo repository.GroupRepository,
	sectionRepo repository.SectionRepository,
) ReportService {
	return &reportService{
		reportRepo:   reportRepo,
		festivalRepo: festivalRepo,
		groupRepo:    groupRepo,
		sectionRepo:  sectionRepo,
	}
}

func (s *reportService) SaveReport(ctx context.Context, kind string, ownerID int64, reportID *int64, sub dto.ReportSubmission) (int64, error) {
	if err := s.ownerExists(ctx, kind, ownerID); err != nil {
		return 0, err
	}

	report := &models.Report{
		Kind:              kind,
		OwnerID:           ownerID,
		Year:              sub.Year,
		Draft:             true,
		AttendeesCount:    sub.AttendeesCount,
		PerformancesCount: sub.PerformancesCount,
		Summary:           sub.Summary,
	}

	if reportID != nil {
		existing, err := s.reportRepo.FindByID(ctx, *reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrReportNotFound
			}
			return 0, err
		}
		// An id belonging to another entity's report is treated as absent,
		// not as someone else's report to overwrite.
		if existing.Kind != kind || existing.OwnerID != ownerID {
			return 0, ErrReportNotFound
		}
		if !existing.Draft {
			return 0, ErrReportFinal
		}
		// Moving the report to a year the owner already reported on would
		// trip the unique index; reject it up front.
		if existing.Year != sub.Year {
			if _, err := s.reportRepo.FindByOwnerYear(ctx, kind, ownerID, sub.Year); err == nil {
				return 0, ErrReportExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, err
			}
		}
		report.ID = existing.ID
	} else {
		if _, err := s.reportRepo.FindByOwnerYear(ctx, kind, ownerID, sub.Year); err == nil {
			return 0, ErrReportExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	ratings := buildRatings(sub.Ratings)
	if err := s.reportRepo.Save(ctx, report, ratings); err != nil {
		return 0, err
	}

	return report.ID, nil
}

func (s *reportService) GetReport(ctx context.Context, id int64) (*dto.ReportResponse, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return dto.FromModelToReportResponse(report), nil
}

// SubmitReport finalizes a draft. Submitting an already-final report is a
// no-op so clients can safely retry.
func (s *reportService) SubmitReport(ctx context.Context, id int64) error {
	if _, err := s.reportRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	return s.reportRepo.Submit(ctx, id)
}

func (s *reportService) ListQuestions(ctx context.Context) ([]models.RatingQuestion, error) {
	return s.reportRepo.ListQuestions(ctx)
}

func (s *reportService) ownerExists(ctx context.Context, kind string, ownerID int64) error {
	var err error
	switch kind {
	case models.ReportKindFestival:
		_, err = s.festivalRepo.FindByID(ctx, ownerID)
	case models.ReportKindGroup:
		_, err = s.groupRepo.FindByID(ctx, ownerID)
	case models.ReportKindNationalSection:
		_, err = s.sectionRepo.FindByID(ctx, ownerID)
	default:
		return ErrInvalidKind
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOwnerNotFound
		}
		return err
	}
	return nil
}

// buildRatings maps the submission into rating rows with the derived
// aggregate score already computed.
func buildRatings(subs []dto.RatingSubmission) []models.Rating {
	ratings := make([]models.Rating, 0, len(subs))
	for _, sub := range subs {
		rating := models.Rating{
			CounterpartID: sub.CounterpartID,
			Score:         meanScore(sub.Answers),
			Comment:       sub.Comment,
			Attended:      sub.Attended,
			Official:      sub.Official,
		}
		for _, ans := range sub.Answers {
			rating.Answers = append(rating.Answers, models.RatingAnswer{
				QuestionID: ans.QuestionID,
				Score:      ans.Score,
				Comment:    ans.Comment,
			})
		}
		for _, id := range sub.ActivityIDs {
			rating.Activities = append(rating.Activities, models.RatingActivity{ActivityID: id})
		}
		for _, id := range sub.LanguageIDs {
			rating.Languages = append(rating.Languages, models.RatingLanguage{LanguageID: id})
		}
		ratings = append(ratings, rating)
	}
	return ratings
}

// meanScore is the arithmetic mean of the answer scores, 0 for no answers.
func meanScore(answers []dto.AnswerSubmission) float64 {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += a.Score
	}
	return float64(sum) / float64(len(answers))
}
