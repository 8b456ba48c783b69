package models

import "time"

type Club struct {
	ClubID       uint      `gorm:"primaryKey" json:"club_id"`
	ClubName     string    `gorm:"type:varchar(255);unique;not null" json:"club_name"`
	Description  string    `gorm:"type:text" json:"description"`
	LogoURL      string    `gorm:"type:varchar(255)" json:"logo_url"`
	Budget       float64   `gorm:"type:decimal(10,2);default:0.00" json:"budget"`
	TotalMembers int       `gorm:"default:0" json:"total_members"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
