package db_models

import "github.com/google/uuid"

// PoiTag links a POI to a tag; the pair is the primary key.
type PoiTag struct {
	PoiID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Tag   Tag       `gorm:"foreignKey:TagID"`
}
