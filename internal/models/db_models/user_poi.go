package db_models

import "github.com/google/uuid"

// UserPoi is the shared row shape of the favorites and visited lists.
type UserPoi struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PoiID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt int64     `gorm:"autoCreateTime"`
}

type Favorite UserPoi

func (Favorite) TableName() string {
	return "favorites"
}

type Visited UserPoi

func (Visited) TableName() string {
	return "visited"
}
