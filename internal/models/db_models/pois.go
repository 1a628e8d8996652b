package db_models

import "github.com/google/uuid"

type POI struct {
	BaseModel
	Name        string    `gorm:"size:120;not null;uniqueIndex:uq_poi_name_city,priority:1"`
	Description string    `gorm:"size:500;not null"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_poi_name_city,priority:2"`

	Images      []PoiImage `gorm:"foreignKey:PoiID"`
	PoiTags     []PoiTag   `gorm:"foreignKey:PoiID"`
	FavoritedBy []Favorite `gorm:"foreignKey:PoiID"`
	VisitedBy   []Visited  `gorm:"foreignKey:PoiID"`
}

func (POI) TableName() string {
	return "pois"
}
