package models

import "time"

type RequestType string

const (
	TypeRoomBooking RequestType = "ROOM_BOOKING"
	TypeEvent       RequestType = "EVENT"
	TypeFunding     RequestType = "FUNDING"
)

func (t RequestType) IsValid() bool {
	switch t {
	case TypeRoomBooking, TypeEvent, TypeFunding:
		return true
	}
	return false
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsReviewOutcome reports whether s is a state a reviewer may move a
// pending request into.
func (s RequestStatus) IsReviewOutcome() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

type Request struct {
	RequestID   uint          `gorm:"primaryKey" json:"request_id"`
	ClubID      uint          `gorm:"not null" json:"club_id"`
	Club        *Club         `gorm:"foreignKey:ClubID;references:ClubID;constraint:OnDelete:CASCADE" json:"club,omitempty"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	RequestType RequestType   `gorm:"type:varchar(50);not null" json:"request_type"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	EventDate   *time.Time    `gorm:"type:date" json:"event_date,omitempty"`
	StartTime   *string       `gorm:"type:varchar(5)" json:"start_time,omitempty"`
	EndTime     *string       `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	Location    *string       `gorm:"type:varchar(255)" json:"location,omitempty"`
	RoomID      *uint         `json:"room_id,omitempty"`
	Room        *Room         `gorm:"foreignKey:RoomID;references:RoomID;constraint:OnDelete:SET NULL" json:"room,omitempty"`
	SubmittedBy uint          `gorm:"not null" json:"submitted_by"`
	Submitter   *User         `gorm:"foreignKey:SubmittedBy;references:UserID;constraint:OnDelete:CASCADE" json:"submitter,omitempty"`
	ReviewedBy  *uint         `json:"reviewed_by,omitempty"`
	Reviewer    *User         `gorm:"foreignKey:ReviewedBy;references:UserID;constraint:OnDelete:SET NULL" json:"reviewer,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
