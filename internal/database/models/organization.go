package models

// Organization is the reference catalogue entry everything else hangs off.
// The catalogue is fixed at startup and never mutated; ids are assigned in
// catalogue order starting at 1.
type Organization struct {
	ID        int64  `json:"id" yaml:"id" gorm:"primaryKey;autoIncrement:false" validate:"required,min=1"`
	Name      string `json:"name" yaml:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Address   string `json:"address" yaml:"address" gorm:"not null;size:200" validate:"required,max=200"`
	Domain    string `json:"domain" yaml:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,fqdn,max=100"`
	PhoneArea string `json:"phone_area" yaml:"phone_area" gorm:"not null;size:5" validate:"required,numeric,max=5"`
	// Naming conventions used by the generators.
	TeamPrefix string `json:"team_prefix" yaml:"team_prefix" gorm:"not null;size:50" validate:"required,max=50"`
	RoomLabel  string `json:"room_label" yaml:"room_label" gorm:"not null;size:50" validate:"required,max=50"`
	EventDesc  string `json:"event_desc" yaml:"event_desc" gorm:"type:text" validate:"required"`

	// Relationships
	Users []User `json:"users,omitempty" yaml:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Rooms []Room `json:"rooms,omitempty" yaml:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
