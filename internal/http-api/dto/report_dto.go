package dto

import (
	"time"

	"folkfest/internal/http-api/models"
)

// Data Transfer Objects for report submission and retrieval

// AnswerSubmission: one answered rating question for a counterpart
type AnswerSubmission struct {
	QuestionID int64  `json:"question_id" binding:"required"`
	Score      int    `json:"score" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// RatingSubmission: the evaluation of one counterpart inside a report.
// The aggregate score is never accepted from the client; it is derived
// from the answers on every write.
type RatingSubmission struct {
	CounterpartID int64              `json:"counterpart_id" binding:"required"`
	Comment       string             `json:"comment"`
	Attended      bool               `json:"attended"`
	Official      bool               `json:"official"`
	ActivityIDs   []int64            `json:"activity_ids"`
	LanguageIDs   []int64            `json:"language_ids"`
	Answers       []AnswerSubmission `json:"answers" binding:"dive"`
}

// ReportSubmission: payload for creating or editing a report
type ReportSubmission struct {
	Year              int                `json:"year" binding:"required,min=1950,max=2100"`
	AttendeesCount    *int               `json:"attendees_count"`
	PerformancesCount *int               `json:"performances_count"`
	Summary           string             `json:"summary"`
	Ratings           []RatingSubmission `json:"ratings" binding:"dive"`
}

// ReportSavedResponse: returned by create and edit
type ReportSavedResponse struct {
	Success  bool  `json:"success"`
	ReportID int64 `json:"reportId"`
}

// AnswerResponse mirrors a persisted rating answer
type AnswerResponse struct {
	QuestionID int64  `json:"question_id"`
	Score      int    `json:"score"`
	Comment    string `json:"comment,omitempty"`
}

// RatingResponse mirrors a persisted rating with its child rows
type RatingResponse struct {
	ID            int64            `json:"id"`
	CounterpartID int64            `json:"counterpart_id"`
	Score         float64          `json:"score"`
	Comment       string           `json:"comment,omitempty"`
	Attended      bool             `json:"attended"`
	Official      bool             `json:"official"`
	ActivityIDs   []int64          `json:"activity_ids"`
	LanguageIDs   []int64          `json:"language_ids"`
	Answers       []AnswerResponse `json:"answers"`
}

// ReportResponse: full report detail
type ReportResponse struct {
	ID                int64            `json:"id"`
	Kind              string           `json:"kind"`
	OwnerID           int64            `json:"owner_id"`
	Year              int              `json:"year"`
	Draft             bool             `json:"draft"`
	AttendeesCount    *int             `json:"attendees_count,omitempty"`
	PerformancesCount *int             `json:"performances_count,omitempty"`
	Summary           string           `json:"summary,omitempty"`
	Ratings           []RatingResponse `json:"ratings"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// FromModelToReportResponse converts a Report model with preloaded ratings
func FromModelToReportResponse(report *models.Report) *ReportResponse {
	resp := &ReportResponse{
		ID:                report.ID,
		Kind:              report.Kind,
		OwnerID:           report.OwnerID,
		Year:              report.Year,
		Draft:             report.Draft,
		AttendeesCount:    report.AttendeesCount,
		PerformancesCount: report.PerformancesCount,
		Summary:           report.Summary,
		Ratings:           make([]RatingResponse, 0, len(report.Ratings)),
		CreatedAt:         report.CreatedAt,
		UpdatedAt:         report.UpdatedAt,
	}

	for _, rating := range report.Ratings {
		rr := RatingResponse{
			ID:            rating.ID,
			CounterpartID: rating.CounterpartID,
			Score:         rating.Score,
			Comment:       rating.Comment,
			Attended:      rating.Attended,
			Official:      rating.Official,
			ActivityIDs:   make([]int64, 0, len(rating.Activities)),
			LanguageIDs:   make([]int64, 0, len(rating.Languages)),
			Answers:       make([]AnswerResponse, 0, len(rating.Answers)),
		}
		for _, a := range rating.Activities {
			rr.ActivityIDs = append(rr.ActivityIDs, a.ActivityID)
		}
		for _, l := range rating.Languages {
			rr.LanguageIDs = append(rr.LanguageIDs, l.LanguageID)
		}
		for _, ans := range rating.Answers {
			rr.Answers = append(rr.Answers, AnswerResponse{
				QuestionID: ans.QuestionID,
				Score:      ans.Score,
				Comment:    ans.Comment,
			})
		}
		resp.Ratings = append(resp.Ratings, rr)
	}

	return resp
}
