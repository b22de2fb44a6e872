package models

import "time"

type Festival struct {
	ID                int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug              string     `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	NationalSectionID *int64     `json:"national_section_id,omitempty" gorm:"index"`
	CountryID         int64      `json:"country_id" gorm:"not null;index"`
	Location          *string    `json:"location,omitempty"`
	Email             *string    `json:"email,omitempty"`
	URL               *string    `json:"url,omitempty"`
	DateFrom          *time.Time `json:"date_from,omitempty" gorm:"index"`
	DateTo            *time.Time `json:"date_to,omitempty"`
	Published         bool       `json:"published" gorm:"default:false"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Country      Country               `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Categories   []Category            `json:"categories,omitempty" gorm:"many2many:festival_categories;constraint:OnDelete:CASCADE;"`
	Groups       []Group               `json:"groups,omitempty" gorm:"many2many:festival_groups;constraint:OnDelete:CASCADE;"`
	Translations []FestivalTranslation `json:"translations,omitempty" gorm:"foreignKey:FestivalID;constraint:OnDelete:CASCADE;"`
}

func (Festival) TableName() string {
	return "festivals"
}

type FestivalTranslation struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FestivalID  int64  `json:"festival_id" gorm:"not null;uniqueIndex:idx_festival_lang"`
	LanguageID  int64  `json:"language_id" gorm:"not null;uniqueIndex:idx_festival_lang"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

func (FestivalTranslation) TableName() string {
	return "festival_translations"
}
