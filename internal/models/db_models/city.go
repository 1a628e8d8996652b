package db_models

import "github.com/google/uuid"

type City struct {
	BaseModel
	Name      string    `gorm:"size:120;not null;uniqueIndex:uq_city_name_country,priority:1"`
	Season    string    `gorm:"size:120;not null"`
	CountryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_city_name_country,priority:2"`
	POIs      []POI     `gorm:"foreignKey:CityID"`
}
