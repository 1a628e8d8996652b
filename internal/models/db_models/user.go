package db_models

import "time"

const DefaultRole = "user"

type User struct {
	BaseModel
	Name      string    `gorm:"size:120;not null"`
	UserName  string    `gorm:"size:30;not null;uniqueIndex"`
	Email     string    `gorm:"size:120;not null;uniqueIndex"`
	Password  string    `gorm:"not null"`
	BirthDate time.Time `gorm:"not null"`
	Location  *string   `gorm:"size:120"`
	Role      string    `gorm:"size:20;not null;default:user"`
	Img       *string   `gorm:"size:240"`

	Favorites []Favorite `gorm:"foreignKey:UserID"`
	Visited   []Visited  `gorm:"foreignKey:UserID"`
}
