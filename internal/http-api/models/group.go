package models

import "time"

type Group struct {
	ID                int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug              string    `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	NationalSectionID *int64    `json:"national_section_id,omitempty" gorm:"index"`
	CountryID         int64     `json:"country_id" gorm:"not null;index"`
	MembersCount      *int      `json:"members_count,omitempty"`
	Published         bool      `json:"published" gorm:"default:false"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Country      Country            `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Categories   []Category         `json:"categories,omitempty" gorm:"many2many:group_categories;constraint:OnDelete:CASCADE;"`
	Translations []GroupTranslation `json:"translations,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;"`
}

func (Group) TableName() string {
	return "groups"
}

type GroupTranslation struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	GroupID     int64  `json:"group_id" gorm:"not null;uniqueIndex:idx_group_lang"`
	LanguageID  int64  `json:"language_id" gorm:"not null;uniqueIndex:idx_group_lang"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

func (GroupTranslation) TableName() string {
	return "group_translations"
}
