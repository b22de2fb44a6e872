package models

type Region struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null"`
}

func (Region) TableName() string {
	return "regions"
}

type Country struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Code     string `json:"code" gorm:"uniqueIndex;size:2;not null"`
	Name     string `json:"name" gorm:"not null"`
	RegionID *int64 `json:"region_id,omitempty" gorm:"index"`

	Region *Region `json:"region,omitempty" gorm:"foreignKey:RegionID"`
}

func (Country) TableName() string {
	return "countries"
}
