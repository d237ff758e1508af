package models

// Room is a bookable space owned by one organization.
type Room struct {
	ID             int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Capacity       int    `json:"capacity" gorm:"not null" validate:"required,min=1"`
	Location       string `json:"location" gorm:"not null;size:100" validate:"required,max=100"`
	OrganizationID int64  `json:"organization_id" gorm:"not null;index" validate:"required"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Room
func (Room) TableName() string {
	return "rooms"
}
