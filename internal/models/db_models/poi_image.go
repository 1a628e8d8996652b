package db_models

import "github.com/google/uuid"

type PoiImage struct {
	BaseModel
	URL   string    `gorm:"column:url;size:240;not null"`
	PoiID uuid.UUID `gorm:"type:uuid;not null;index"`
}
