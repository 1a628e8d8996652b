package db_models

type Country struct {
	BaseModel
	Name   string `gorm:"size:120;not null;uniqueIndex"`
	Img    string `gorm:"size:240;not null"`
	Cities []City `gorm:"foreignKey:CountryID"`
}
