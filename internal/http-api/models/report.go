package models

import "time"

// Report kinds. Each kind owns a different aggregate root: a festival report
// rates the groups it invited, a group report rates the festivals it visited,
// a national-section report covers the section's own year.
const (
	ReportKindFestival        = "festival"
	ReportKindGroup           = "group"
	ReportKindNationalSection = "national_section"
)

type Report struct {
	ID                int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Kind              string    `json:"kind" gorm:"size:32;not null;uniqueIndex:idx_report_owner_year"`
	OwnerID           int64     `json:"owner_id" gorm:"not null;uniqueIndex:idx_report_owner_year"`
	Year              int       `json:"year" gorm:"not null;uniqueIndex:idx_report_owner_year"`
	Draft             bool      `json:"draft" gorm:"default:true"`
	AttendeesCount    *int      `json:"attendees_count,omitempty"`
	PerformancesCount *int      `json:"performances_count,omitempty"`
	Summary           string    `json:"summary"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE;"`
}

func (Report) TableName() string {
	return "reports"
}
