package models

type Banner struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Image     string `json:"image" gorm:"not null"`
	Position  int    `json:"position" gorm:"not null;default:0"`
	Published bool   `json:"published" gorm:"default:true"`

	Translations []BannerTranslation `json:"translations,omitempty" gorm:"foreignKey:BannerID;constraint:OnDelete:CASCADE;"`
}

func (Banner) TableName() string {
	return "banners"
}

type BannerTranslation struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	BannerID   int64  `json:"banner_id" gorm:"not null;uniqueIndex:idx_banner_lang"`
	LanguageID int64  `json:"language_id" gorm:"not null;uniqueIndex:idx_banner_lang"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Button     string `json:"button"`
}

func (BannerTranslation) TableName() string {
	return "banner_translations"
}
