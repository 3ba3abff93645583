package models

import (
	"time"
)

// RoomType is a category of rooms sharing a capacity and a pool of physical units.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string `gorm:"column:name;uniqueIndex;size:64;not null" json:"name"`
	TotalUnits int    `gorm:"column:total_units;not null" json:"totalUnits"`
	Capacity   int    `gorm:"column:capacity;not null" json:"capacity"`

	CreatedAt time.Time `json:"-"`
}
