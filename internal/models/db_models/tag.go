package db_models

type Tag struct {
	BaseModel
	Name    string   `gorm:"size:240;not null;uniqueIndex"`
	PoiTags []PoiTag `gorm:"foreignKey:TagID"`
}
