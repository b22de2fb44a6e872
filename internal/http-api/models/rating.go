package models

import "time"

// Rating is one counterpart's evaluation inside a report. Score is derived:
// it must always equal the arithmetic mean of the current answers' scores
// (0 when there are none), recomputed on every write path.
type Rating struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ReportID      int64     `json:"report_id" gorm:"not null;uniqueIndex:idx_rating_counterpart"`
	CounterpartID int64     `json:"counterpart_id" gorm:"not null;uniqueIndex:idx_rating_counterpart"`
	Score         float64   `json:"score" gorm:"not null;default:0"`
	Comment       string    `json:"comment"`
	Attended      bool      `json:"attended" gorm:"default:false"`
	Official      bool      `json:"official" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Answers    []RatingAnswer   `json:"answers,omitempty" gorm:"foreignKey:RatingID;constraint:OnDelete:CASCADE;"`
	Activities []RatingActivity `json:"activities,omitempty" gorm:"foreignKey:RatingID;constraint:OnDelete:CASCADE;"`
	Languages  []RatingLanguage `json:"languages,omitempty" gorm:"foreignKey:RatingID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}

type RatingQuestion struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug     string `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Position int    `json:"position" gorm:"not null;default:0"`
	Prompt   string `json:"prompt" gorm:"not null"`
}

func (RatingQuestion) TableName() string {
	return "rating_questions"
}

type RatingAnswer struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	RatingID   int64  `json:"rating_id" gorm:"not null;index"`
	QuestionID int64  `json:"question_id" gorm:"not null"`
	Score      int    `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment    string `json:"comment"`
}

func (RatingAnswer) TableName() string {
	return "rating_answers"
}

type Activity struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Name string `json:"name" gorm:"not null"`
}

func (Activity) TableName() string {
	return "activities"
}

// RatingActivity and RatingLanguage are tag rows. They carry no data of
// their own and are replaced wholesale on every edit.
type RatingActivity struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	RatingID   int64 `json:"rating_id" gorm:"not null;index"`
	ActivityID int64 `json:"activity_id" gorm:"not null"`
}

func (RatingActivity) TableName() string {
	return "rating_activities"
}

type RatingLanguage struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	RatingID   int64 `json:"rating_id" gorm:"not null;index"`
	LanguageID int64 `json:"language_id" gorm:"not null"`
}

func (RatingLanguage) TableName() string {
	return "rating_languages"
}
