package models

type Language struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Code string `json:"code" gorm:"uniqueIndex;size:8;not null"`
	Name string `json:"name" gorm:"not null"`
}

func (Language) TableName() string {
	return "languages"
}
