package models

import "time"

type Article struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	AuthorID    *string    `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Published   bool       `json:"published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at,omitempty" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Translations []ArticleTranslation `json:"translations,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE;"`
}

func (Article) TableName() string {
	return "articles"
}

type ArticleTranslation struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ArticleID  int64  `json:"article_id" gorm:"not null;uniqueIndex:idx_article_lang"`
	LanguageID int64  `json:"language_id" gorm:"not null;uniqueIndex:idx_article_lang"`
	Title      string `json:"title" gorm:"not null"`
	Summary    string `json:"summary"`
	Body       string `json:"body"`
}

func (ArticleTranslation) TableName() string {
	return "article_translations"
}
