package models

import "time"

type NationalSection struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	CountryID int64     `json:"country_id" gorm:"not null;index"`
	Email     *string   `json:"email,omitempty"`
	URL       *string   `json:"url,omitempty"`
	Published bool      `json:"published" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Country      Country                      `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Translations []NationalSectionTranslation `json:"translations,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;"`
}

func (NationalSection) TableName() string {
	return "national_sections"
}

type NationalSectionTranslation struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	SectionID  int64  `json:"section_id" gorm:"not null;uniqueIndex:idx_section_lang"`
	LanguageID int64  `json:"language_id" gorm:"not null;uniqueIndex:idx_section_lang"`
	Name       string `json:"name" gorm:"not null"`
	About      string `json:"about"`
}

func (NationalSectionTranslation) TableName() string {
	return "national_section_translations"
}
