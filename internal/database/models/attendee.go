package models

// Attendee associates a user with an event. 5-8 per event, all drawn from
// the event organizer's organization.
type Attendee struct {
	EventID int64 `json:"event_id" gorm:"primaryKey;autoIncrement:false"`
	UserID  int64 `json:"user_id" gorm:"primaryKey;autoIncrement:false"`

	// Relationships
	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Attendee
func (Attendee) TableName() string {
	return "attendees"
}
