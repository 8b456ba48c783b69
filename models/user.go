package models

import "time"

type Role string

const (
	RoleSUAdmin          Role = "SU_ADMIN"
	RoleStudentLifeAdmin Role = "STUDENT_LIFE_ADMIN"
	RoleClubLeader       Role = "CLUB_LEADER"
)

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSUAdmin, RoleStudentLifeAdmin, RoleClubLeader:
		return true
	}
	return false
}

type User struct {
	UserID       uint      `gorm:"primaryKey" json:"user_id"`
	UniversityID *string   `gorm:"type:varchar(50);unique" json:"university_id,omitempty"`
	Fullname     string    `gorm:"type:varchar(255);not null" json:"fullname"`
	Email        string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(50);not null" json:"role"`
	ClubID       *uint     `json:"club_id,omitempty"`
	Club         *Club     `gorm:"foreignKey:ClubID;references:ClubID;constraint:OnDelete:RESTRICT" json:"club,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
