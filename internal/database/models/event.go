package models

import (
	"time"
)

// Event is a scheduled meeting. The organizer is always one of the event's
// attendees (see Attendee), and RoomIDs holds the 1-2 rooms booked for it,
// all from the organizer's organization.
type Event struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	StartTime   time.Time `json:"start_time" gorm:"not null;index"`
	EndTime     time.Time `json:"end_time" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	OrganizerID int64     `json:"organizer_id" gorm:"not null;index" validate:"required"`
	RoomIDs     IDList    `json:"room_ids" gorm:"type:jsonb;not null"`

	// Relationships
	Organizer *User      `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE"`
	Attendees []Attendee `json:"attendees,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
