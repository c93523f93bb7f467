package models

import (
	"time"

	"gorm.io/datatypes"
)

// Review is a place review shown in the community feed.
type Review struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	UserID    uint                        `gorm:"index;not null" json:"user_id"`
	PlaceID   string                      `gorm:"size:128;index;not null" json:"place_id"`
	PlaceName string                      `gorm:"size:255;not null" json:"place_name"`
	Content   string                      `gorm:"type:text;not null" json:"content"`
	Rating    int                         `gorm:"not null;default:5" json:"rating"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Photos    int                         `gorm:"not null;default:0" json:"photos"`
	Likes     int                         `gorm:"not null;default:0;index" json:"likes"`
	CreatedAt time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	User      User                        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
}
