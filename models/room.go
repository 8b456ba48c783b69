package models

import "time"

type Room struct {
	RoomID    uint      `gorm:"primaryKey" json:"room_id"`
	RoomName  string    `gorm:"type:varchar(100);not null" json:"room_name"`
	Purpose   string    `gorm:"type:text" json:"purpose"`
	Capacity  int       `gorm:"default:0" json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}
