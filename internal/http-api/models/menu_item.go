package models

type MenuItem struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug      string `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Position  int    `json:"position" gorm:"not null;default:0"`
	Published bool   `json:"published" gorm:"default:true"`

	Translations []MenuItemTranslation `json:"translations,omitempty" gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE;"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

type MenuItemTranslation struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	MenuItemID int64  `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_menu_lang"`
	LanguageID int64  `json:"language_id" gorm:"not null;uniqueIndex:idx_menu_lang"`
	Title      string `json:"title" gorm:"not null"`
}

func (MenuItemTranslation) TableName() string {
	return "menu_item_translations"
}
