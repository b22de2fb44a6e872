package models

type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:200;not null"`

	Translations []CategoryTranslation `json:"translations,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

func (Category) TableName() string {
	return "categories"
}

type CategoryTranslation struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID int64  `json:"category_id" gorm:"not null;uniqueIndex:idx_category_lang"`
	LanguageID int64  `json:"language_id" gorm:"not null;uniqueIndex:idx_category_lang"`
	Name       string `json:"name" gorm:"not null"`
}

func (CategoryTranslation) TableName() string {
	return "category_translations"
}
